// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/dump"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlchip8"
	"github.com/jetsetilly/gopher8/gui/termchip8"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/television"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// SDL requires that window and event handling happen on the main thread. the
// television is run from the main goroutine so locking the thread here is
// enough
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the exit value of the program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TERM", "HEADLESS", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "TERM":
		err = term(md)

	case "HEADLESS":
		err = headless(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// emulation flags are shared by every mode that runs the VM. all flags
// override a preference for the duration of the session
func addEmulationFlags(md *modalflag.Modes, prefs *preferences.Preferences) *string {
	md.AddPref("ips", &prefs.IPS, fmt.Sprintf("instructions per second (%d to %d)", preferences.MinIPS, preferences.MaxIPS))
	md.AddPref("fx1e", &prefs.FX1EFlag, "FX1E sets VF when I goes beyond the addressable range")
	md.AddPref("seed", &prefs.RandSeed, "seed for random number generator (0 for time seeded)")
	return md.AddString("hash", "", "expected SHA-1 hash of the ROM")
}

func addDisplayFlags(md *modalflag.Modes, prefs *preferences.Preferences) {
	md.AddPref("fg", &prefs.Foreground, "foreground colour (hex RGB or RGBA)")
	md.AddPref("bg", &prefs.Background, "background colour (hex RGB or RGBA)")
}

// loads the ROM and creates a VM ready to run it
func newVM(md *modalflag.Modes, prefs *preferences.Preferences, label instance.Label, hash string) (*hardware.VM, romloader.Loader, error) {
	var ld romloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, ld, curated.Errorf("CHIP-8 ROM required for %s mode", md)
	case 1:
	default:
		return nil, ld, curated.Errorf("too many arguments for %s mode", md)
	}

	ld = romloader.NewLoader(md.GetArg(0), hash)
	err := ld.Load()
	if err != nil {
		return nil, ld, err
	}

	ins, err := instance.NewInstance(prefs)
	if err != nil {
		return nil, ld, err
	}
	ins.Label = label

	vm := hardware.NewVM(ins)
	err = vm.LoadProgram(ld.Data)
	if err != nil {
		return nil, ld, err
	}

	return vm, ld, nil
}

// returns a continueCheck function for television.Run() that ends the
// emulation on an interrupt signal
func interruptCheck() (func() (govern.State, error), func()) {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	check := func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	}

	return check, func() { signal.Stop(intChan) }
}

// the tone is either the beep sample or a square wave at the frequency in the
// preferences
func newTone(prefs *preferences.Preferences, beep string) (*tone.Tone, error) {
	if beep != "" {
		return tone.LoadSample(beep)
	}
	return tone.NewSquareWave(prefs.ToneFrequency.Get().(int), tone.SampleFreq), nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	hash := addEmulationFlags(md, prefs)
	addDisplayFlags(md, prefs)
	md.AddPref("scale", &prefs.Scale, "window scaling")
	md.AddPref("outlines", &prefs.Outlines, "draw outlines around pixels")
	md.AddPref("freq", &prefs.ToneFrequency, "frequency of the tone in Hz")
	fpsCap := md.AddBool("fpscap", true, "cap fps to 60Hz")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for the tone")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memviz := md.AddString("memviz", "", "write graphviz file of the VM state on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	vm, ld, err := newVM(md, prefs, instance.Main, *hash)
	if err != nil {
		return err
	}

	tv := television.NewTelevision(vm)
	defer func() {
		_ = tv.End()
	}()
	tv.SetFPSCap(*fpsCap)

	scr, err := sdlchip8.NewSdlChip8(prefs, ld.ShortName())
	if err != nil {
		return err
	}
	tv.AddPixelRenderer(scr)
	tv.SetInput(scr)

	tn, err := newTone(prefs, *beep)
	if err != nil {
		return err
	}

	aud, err := sdlaudio.NewAudio(tn)
	if err != nil {
		return err
	}
	tv.AddAudioMixer(aud)

	if *wav != "" {
		aw, err := wavwriter.New(*wav, tn)
		if err != nil {
			return err
		}
		tv.AddAudioMixer(aw)
	}

	check, stop := interruptCheck()
	defer stop()

	err = tv.Run(check)

	if *memviz != "" {
		if merr := writeMemviz(*memviz, vm); merr != nil && err == nil {
			err = merr
		}
	}

	return err
}

func writeMemviz(filename string, vm *hardware.VM) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	dump.Graphviz(f, vm.Snapshot())
	return nil
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	hash := addEmulationFlags(md, prefs)
	addDisplayFlags(md, prefs)
	fpsCap := md.AddBool("fpscap", true, "cap fps to 60Hz")
	wav := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log would interfere with the terminal display
	logger.SetEcho(nil, false)

	vm, _, err := newVM(md, prefs, instance.Main, *hash)
	if err != nil {
		return err
	}

	tv := television.NewTelevision(vm)
	defer func() {
		_ = tv.End()
	}()
	tv.SetFPSCap(*fpsCap)

	if *wav != "" {
		tn, err := newTone(prefs, "")
		if err != nil {
			return err
		}
		aw, err := wavwriter.New(*wav, tn)
		if err != nil {
			return err
		}
		tv.AddAudioMixer(aw)
	}

	scr, err := termchip8.NewTermChip8(prefs, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	tv.AddPixelRenderer(scr)
	tv.SetInput(scr)

	check, stop := interruptCheck()
	defer stop()

	return tv.Run(check)
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	// headless runs are not affected by preferences saved to disk
	prefs := preferences.NewDefaultPreferences()

	hash := addEmulationFlags(md, prefs)
	frames := md.AddInt("frames", 60, "number of frames to run")
	dumpFB := md.AddBool("fb", false, "print the framebuffer on completion")
	dumpRegs := md.AddBool("regs", false, "print the registers on completion")
	dumpMem := md.AddBool("mem", false, "print memory on completion")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	vm, _, err := newVM(md, prefs, instance.Headless, *hash)
	if err != nil {
		return err
	}

	// a time seeded random number generator would give a different digest
	// every time
	if prefs.RandSeed.Get().(int) == 0 {
		vm.Instance.Normalise()
	}

	tv := television.NewTelevision(vm)
	tv.SetFPSCap(false)

	vdig := digest.NewVideo()
	tv.AddPixelRenderer(vdig)
	adig := digest.NewAudio()
	tv.AddAudioMixer(adig)

	// a fault still produces a digest and the requested dumps. the fault is
	// returned at the end of the function
	err = tv.RunForFrameCount(*frames)

	if endErr := tv.End(); endErr != nil && err == nil {
		err = endErr
	}

	fmt.Fprintf(output, "frames: %d\n", tv.GetFrameNum())
	fmt.Fprintf(output, "video: %s\n", vdig.Hash())
	fmt.Fprintf(output, "audio: %s\n", adig.Hash())

	state := vm.Snapshot()
	if *dumpRegs {
		dump.Registers(output, state)
	}
	if *dumpFB {
		dump.Framebuffer(output, state)
	}
	if *dumpMem {
		dump.Memory(output, state)
	}

	return err
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	describe := md.AddBool("describe", false, "include a description of each instruction")
	hash := md.AddString("hash", "", "expected SHA-1 hash of the ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("CHIP-8 ROM required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0), *hash)
		err := ld.Load()
		if err != nil {
			return err
		}

		attr := disassembly.WriteAttr{
			ByteCode:    *bytecode,
			Description: *describe,
		}

		dsm := disassembly.FromProgram(ld.Data)
		return dsm.Write(output, attr)

	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "show revision information for release builds")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, release := version.Version()
	fmt.Fprintln(output, version.ApplicationName, v)
	if !release || *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}

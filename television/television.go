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

package television

import (
	"fmt"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Television is the frame driver for the VM.
type Television struct {
	vm *hardware.VM

	renderers []PixelRenderer
	mixers    []AudioMixer
	input     userinput.Source

	lmtr limiter

	// the number of frames driven since the television was created
	frameNum int

	// the number of instructions executed since the television was created
	instructions int

	// the user has requested that the emulation stop
	quit bool
}

// NewTelevision creates a new instance of the television type, driving the
// supplied VM. The frame limiter is enabled.
func NewTelevision(vm *hardware.VM) *Television {
	tv := &Television{vm: vm}
	tv.lmtr.init()
	tv.lmtr.setRate(FramesPerSecond)
	return tv
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%d IPF=%d", tv.frameNum, tv.Budget())
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// SetInput sets the source of user input. A nil value means that the keypad
// state is never changed by the television.
func (tv *Television) SetInput(input userinput.Source) {
	tv.input = input
}

// SetFPSCap sets whether the emulation should wait for the FPS limiter.
func (tv *Television) SetFPSCap(limit bool) {
	tv.lmtr.limit = limit
}

// GetFPS returns the current number of frames per second being achieved.
func (tv *Television) GetFPS() float32 {
	return tv.lmtr.actual
}

// GetFrameNum returns the number of frames driven since the television was
// created.
func (tv *Television) GetFrameNum() int {
	return tv.frameNum
}

// GetInstructionCount returns the number of instructions executed since the
// television was created.
func (tv *Television) GetInstructionCount() int {
	return tv.instructions
}

// Budget returns the number of instructions executed in a frame. The value is
// derived from the instructions-per-second preference every time and so
// changes to the preference take effect from the next frame.
func (tv *Television) Budget() int {
	ips := preferences.ClampIPS(tv.vm.Instance.Prefs.IPS.Get().(int))
	budget := ips / FramesPerSecond
	if budget < 1 {
		return 1
	}
	return budget
}

// End the television. Implementations of End() call EndRendering() and
// EndMixing() on each PixelRenderer and AudioMixer that has been added.
//
// The Television should be considered unusable after End() has been called.
func (tv *Television) End() error {
	tv.lmtr.end()

	var err error

	for _, r := range tv.renderers {
		if rerr := r.EndRendering(); rerr != nil && err == nil {
			err = rerr
		}
	}

	for _, m := range tv.mixers {
		if merr := m.EndMixing(); merr != nil && err == nil {
			err = merr
		}
	}

	return err
}

// Frame drives the VM forward by one frame. A returned error is either a CPU
// fault or an error from one of the renderers, mixers or the input source.
func (tv *Television) Frame() error {
	var toneEnded bool

	if tv.vm.State() == govern.Running {
		budget := tv.Budget()
		for i := 0; i < budget; i++ {
			r, err := tv.vm.Step()
			tv.instructions++
			if err != nil {
				return err
			}

			// keypad state can't change until the end of the frame so there
			// is no point executing the waiting instruction again
			if r.Waiting {
				break
			}
		}

		toneEnded = tv.vm.TickTimers()
		if toneEnded {
			logger.Log(logger.Allow, "television", "beep")
		}
	}

	tv.frameNum++

	frame := tv.vm.Frame()
	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum, frame); err != nil {
			return err
		}
	}

	// the tone is not audible while the emulation is paused
	var sound uint8
	if tv.vm.State() == govern.Running {
		sound = tv.vm.Timers.Sound
	}
	for _, m := range tv.mixers {
		if err := m.SetAudio(sound, toneEnded); err != nil {
			return err
		}
	}

	if err := tv.handleInput(); err != nil {
		return err
	}

	tv.lmtr.checkRate()

	return nil
}

func (tv *Television) handleInput() error {
	if tv.input == nil {
		return nil
	}

	ctrl, err := tv.input.Poll()
	if err != nil {
		return err
	}

	tv.vm.SetKeypad(ctrl.Keys)

	if ctrl.Quit {
		tv.quit = true
		return nil
	}

	if ctrl.Reset {
		if err := tv.vm.Reset(); err != nil {
			return err
		}
		logger.Log(logger.Allow, "television", "reset")
	}

	if ctrl.TogglePause {
		tv.vm.SetState(tv.vm.State().Toggle())
		logger.Logf(logger.Allow, "television", "%s", tv.vm.State())
	}

	return nil
}

// Run the television until the user quits, the VM faults or the continueCheck
// function returns govern.Ending. The continueCheck function is called once
// per frame and can be nil.
//
// Returns nil if the emulation ended normally.
func (tv *Television) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for !tv.quit {
		if err := tv.Frame(); err != nil {
			return err
		}

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return nil
		}
	}

	return nil
}

// RunForFrameCount runs the television for the specified number of frames.
// Stops early if the user quits or the VM faults.
func (tv *Television) RunForFrameCount(numFrames int) error {
	target := tv.frameNum + numFrames
	return tv.Run(func() (govern.State, error) {
		if tv.frameNum >= target {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}

// HasQuit returns true if the user has requested that the emulation stop.
func (tv *Television) HasQuit() bool {
	return tv.quit
}

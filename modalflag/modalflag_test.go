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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "headless", "-frames", "10", "rom.ch8"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("run", "headless")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "HEADLESS")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.Path(), "HEADLESS")
	test.ExpectEquality(t, md.GetArg(0), "rom.ch8")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.ch8"})
	md.AddSubModes("run", "headless")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "rom.ch8")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, s.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	var s strings.Builder

	md := modalflag.Modes{Output: &s}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, s.String(), expectedHelp)
}

func TestPrefs(t *testing.T) {
	var ips prefs.Int
	var outlines prefs.Bool
	var fg prefs.String

	test.DemandSuccess(t, ips.Set(700))
	test.DemandSuccess(t, outlines.Set(true))
	test.DemandSuccess(t, fg.Set("ffffffff"))

	md := modalflag.Modes{}
	md.NewArgs([]string{"-ips", "1000", "-outlines=false"})
	md.AddPref("ips", &ips, "instructions per second")
	md.AddPref("outlines", &outlines, "pixel outlines")
	md.AddPref("fg", &fg, "foreground colour")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ips.Get().(int), 1000)
	test.ExpectEquality(t, outlines.Get().(bool), false)

	// flag not specified so the preference is unchanged
	test.ExpectEquality(t, fg.Get().(string), "ffffffff")

	// boolean preference with no value
	md.NewArgs([]string{"-outlines"})
	md.AddPref("outlines", &outlines, "pixel outlines")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outlines.Get().(bool), true)
}

func TestPrefHook(t *testing.T) {
	var scale prefs.Int
	scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("scale must be at least 1")
		}
		return nil
	})

	md := modalflag.Modes{}
	md.NewArgs([]string{"-scale", "0"})
	md.AddPref("scale", &scale, "window scale")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

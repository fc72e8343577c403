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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

// loads V0 with 0x12, draws the zero glyph and then loops forever
var testROM = []uint8{0x60, 0x12, 0xa0, 0x50, 0xd0, 0x05, 0x12, 0x06}

func writeROM(t *testing.T, data []uint8) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o600))
	return filename
}

func TestHeadless(t *testing.T) {
	rom := writeROM(t, testROM)

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "5", "-regs", "-fb", rom}, &s), 0)

	out := s.String()
	test.ExpectSuccess(t, strings.Contains(out, "frames: 5\n"))
	test.ExpectSuccess(t, strings.Contains(out, "video: "))
	test.ExpectSuccess(t, strings.Contains(out, "PC=206"))
	test.ExpectSuccess(t, strings.Contains(out, "JP 0x206"))
	test.ExpectSuccess(t, strings.Contains(out, "****"))

	// a second run produces the same digest
	var s2 strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", "-frames", "5", "-regs", "-fb", rom}, &s2), 0)
	test.ExpectEquality(t, s2.String(), out)
}

func TestHeadlessFault(t *testing.T) {
	// return with an empty stack
	rom := writeROM(t, []uint8{0x00, 0xee})

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"headless", rom}, &s), 20)
	test.ExpectSuccess(t, strings.Contains(s.String(), "00ee at 0x0200"))
}

func TestMissingROM(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"headless"}, &s), 20)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "* error in HEADLESS mode"))
}

func TestDisasm(t *testing.T) {
	rom := writeROM(t, testROM)

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"disasm", rom}, &s), 0)

	expected := "200 LD V0, 0x12\n" +
		"202 LD I, 0x050\n" +
		"204 DRW V0, V0, 5\n" +
		"L206:\n" +
		"206 JP L206\n"
	test.ExpectEquality(t, s.String(), expected)
}

func TestBadFlag(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"-unknown"}, &s), 10)
}

func TestVersionMode(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"version"}, &s), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "Gopher8 "))
}

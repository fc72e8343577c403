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

package dump_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/dump"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/test"
)

// loads V0 with 0x12, points I at the glyph for zero and draws it at
// (0x12, 0x12)
func newState(t *testing.T) *hardware.State {
	t.Helper()

	vm := hardware.NewVM(instance.NewTestInstance())
	test.DemandSuccess(t, vm.LoadProgram([]uint8{0x60, 0x12, 0xa0, 0x50, 0xd0, 0x05}))
	for i := 0; i < 3; i++ {
		_, err := vm.Step()
		test.DemandSuccess(t, err)
	}

	return vm.Snapshot()
}

func TestRegisters(t *testing.T) {
	var s strings.Builder
	dump.Registers(&s, newState(t))

	out := s.String()
	test.ExpectSuccess(t, strings.Contains(out, "DRW V0, V0, 5"))
	test.ExpectSuccess(t, strings.Contains(out, "V0=12"))
	test.ExpectSuccess(t, strings.Contains(out, "VF=00"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=206"))
	test.ExpectSuccess(t, strings.Contains(out, "I=050"))
	test.ExpectSuccess(t, strings.Contains(out, "SP=0"))
}

func TestMemory(t *testing.T) {
	var s strings.Builder
	dump.Program(&s, newState(t))
	test.ExpectSuccess(t, strings.Contains(s.String(), " 60 12 a0 50 d0 05"))

	s.Reset()
	dump.Memory(&s, newState(t))

	// two header lines plus one line for every sixteen bytes
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 2+4096/16)
}

func TestFont(t *testing.T) {
	var s strings.Builder
	dump.Font(&s, newState(t))

	lines := strings.Split(s.String(), "\n")
	test.DemandEquality(t, len(lines), 7)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "#### "))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "#  # "))
	test.ExpectSuccess(t, strings.HasPrefix(lines[5], "#### "))
}

func TestFramebuffer(t *testing.T) {
	var s strings.Builder
	dump.Framebuffer(&s, newState(t))

	lines := strings.Split(s.String(), "\n")
	test.DemandEquality(t, len(lines), 32+3)

	// lines are offset by one because of the border
	test.ExpectEquality(t, lines[0x12+1][0x12+1:0x12+5], "****")
	test.ExpectEquality(t, lines[0x12+2][0x12+1:0x12+5], "*  *")
	test.ExpectEquality(t, strings.Count(s.String(), "*"), 14)
}

func TestGraphviz(t *testing.T) {
	var s strings.Builder
	dump.Graphviz(&s, newState(t))
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
}

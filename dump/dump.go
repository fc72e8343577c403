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

package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
)

// Registers writes the fields of the most recently executed instruction,
// followed by the CPU registers and the timers.
func Registers(w io.Writer, state *hardware.State) {
	res := state.CPU.LastResult
	if res.Final {
		ins := res.Instruction
		fmt.Fprintf(w, "Instr: %#04x (%s)\n", ins.Opcode, ins.String())
		fmt.Fprintf(w, "NNN: %#03x  NN: %#02x  N: %#x  X: %#x  Y: %#x\n", ins.NNN, ins.NN, ins.N, ins.X, ins.Y)
	} else {
		fmt.Fprintln(w, res.String())
	}

	for i, r := range state.CPU.V {
		if i > 0 {
			if i%4 == 0 {
				fmt.Fprintln(w)
			} else {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintf(w, "%s=%02x", r.Label(), r.Value())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s=%03x  %s=%03x  %s\n", state.CPU.PC.Label(), state.CPU.PC.Address(),
		state.CPU.I.Label(), state.CPU.I.Address(), state.CPU.Stack.String())
	fmt.Fprintln(w, state.Timers.String())
}

// Memory writes the entirety of memory as a hex dump with sixteen bytes per
// row.
func Memory(w io.Writer, state *hardware.State) {
	fmt.Fprintln(w, state.Mem.String())
}

// Program writes only the area of memory occupied by the loaded program.
func Program(w io.Writer, state *hardware.State) {
	size := state.Mem.ProgramSize()
	if size == 0 {
		fmt.Fprintln(w, "no program loaded")
		return
	}
	fmt.Fprintln(w, state.Mem.Dump(addresses.EntryPoint, addresses.EntryPoint+uint16(size)-1))
}

// Font writes the sixteen glyphs in the font, side by side. The glyphs are
// read from memory so any changes made by the program will be visible.
func Font(w io.Writer, state *hardware.State) {
	var s strings.Builder

	for d := uint8(0); d < addresses.NumGlyphs; d++ {
		fmt.Fprintf(&s, "  %X  ", d)
	}
	s.WriteString("\n")

	for row := uint16(0); row < addresses.GlyphSize; row++ {
		for d := uint8(0); d < addresses.NumGlyphs; d++ {
			v, err := state.Mem.Peek(memory.GlyphAddress(d) + row)
			if err != nil {
				v = 0
			}

			// only the upper nibble of each glyph row is drawn
			for b := 7; b >= 4; b-- {
				if v&(1<<b) != 0 {
					s.WriteByte('#')
				} else {
					s.WriteByte(' ')
				}
			}
			s.WriteString(" ")
		}
		s.WriteString("\n")
	}

	fmt.Fprint(w, s.String())
}

// Framebuffer writes the framebuffer inside a border. Lit pixels are drawn
// with an asterisk.
func Framebuffer(w io.Writer, state *hardware.State) {
	var s strings.Builder

	border := "+" + strings.Repeat("-", display.Width) + "+\n"
	s.WriteString(border)
	for y := 0; y < display.Height; y++ {
		s.WriteByte('|')
		for x := 0; x < display.Width; x++ {
			if state.Frame.Pixel(x, y) {
				s.WriteByte('*')
			} else {
				s.WriteByte(' ')
			}
		}
		s.WriteString("|\n")
	}
	s.WriteString(border)

	fmt.Fprint(w, s.String())
}

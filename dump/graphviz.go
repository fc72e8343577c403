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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// the CPU and VM types contain references to memory, preferences and other
// large structures. the machine type is a plain copy of the values that are
// interesting when visualised
type machine struct {
	State      string
	PC         uint16
	I          uint16
	V          [16]uint8
	Stack      []uint16
	Timers     timers.Timers
	Keypad     keypad.State
	LastResult *lastResult
}

type lastResult struct {
	Address   uint16
	Opcode    uint16
	Mnemonic  string
	Outcome   string
	Waiting   bool
	Collision bool
}

func newLastResult(res execution.Result) *lastResult {
	if !res.Final {
		return nil
	}
	return &lastResult{
		Address:   res.Address,
		Opcode:    res.Opcode,
		Mnemonic:  res.Instruction.String(),
		Outcome:   res.Outcome.String(),
		Waiting:   res.Waiting,
		Collision: res.Collision,
	}
}

// Graphviz writes the state of the CPU, timers and keypad in the Graphviz dot
// format.
func Graphviz(w io.Writer, state *hardware.State) {
	m := &machine{
		State:      state.Govern.String(),
		PC:         state.CPU.PC.Address(),
		I:          state.CPU.I.Address(),
		Stack:      state.CPU.Stack.Entries(),
		Timers:     state.Timers,
		Keypad:     state.Keypad,
		LastResult: newLastResult(state.CPU.LastResult),
	}
	for i, r := range state.CPU.V {
		m.V[i] = r.Value()
	}

	memviz.Map(w, m)
}

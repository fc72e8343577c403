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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Outcome is the way in which an instruction execution ended.
type Outcome int

// List of valid Outcome values.
const (
	// the instruction executed normally
	Success Outcome = iota

	// the opcode is not part of the instruction set. the program counter has
	// advanced past the opcode and execution can continue
	Unimplemented

	// execution could not complete. the error returned by the CPU will
	// describe the fault. execution can not continue without a reset
	Fault
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Unimplemented:
		return "unimplemented"
	case Fault:
		return "fault"
	}
	return "unknown outcome"
}

// Result records the state/result of the last executed instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read from Address. will be zero if the opcode could not be
	// read (Outcome will be Fault)
	Opcode uint16

	// the decoded instruction
	Instruction instructions.Instruction

	Outcome Outcome

	// the instruction is waiting for a key press (FX0A). the program counter
	// has been rewound and the same instruction will execute on the next step
	Waiting bool

	// the instruction caused a collision in the framebuffer (DXYN)
	Collision bool

	// whether this data has been finalised. the values of the other fields
	// are undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return "no instruction executed"
	}

	s := fmt.Sprintf("%#04x %04x %s", r.Address, r.Opcode, r.Instruction)
	switch r.Outcome {
	case Unimplemented:
		s = fmt.Sprintf("%s (unimplemented)", s)
	case Fault:
		s = fmt.Sprintf("%s (fault)", s)
	}
	if r.Waiting {
		s = fmt.Sprintf("%s (waiting for key)", s)
	}
	return s
}

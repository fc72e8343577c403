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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
)

// Entry is a single line of the disassembly.
type Entry struct {
	Address     uint16
	Instruction instructions.Instruction

	// the entry is a single trailing byte. the byte is stored in the upper
	// eight bits of Instruction.Opcode
	Partial bool

	// non-empty if the address is the target of a JP or CALL instruction
	Label string
}

// Mnemonic returns the instruction in assembly language form. Any address
// operand that has a label is replaced by the label.
func (e Entry) Mnemonic(labels map[uint16]string) string {
	if e.Partial {
		return fmt.Sprintf("DB %#02x", e.Instruction.Opcode>>8)
	}

	switch e.Instruction.Operator {
	case instructions.JP, instructions.CALL:
		if l, ok := labels[e.Instruction.NNN]; ok {
			return fmt.Sprintf("%s %s", e.Instruction.Operator.Definition().Mnemonic, l)
		}
	}

	return e.Instruction.String()
}

// Disassembly is the result of disassembling a program.
type Disassembly struct {
	Entries []Entry

	// labels indexed by address
	labels map[uint16]string
}

// FromProgram disassembles the program data. The data is assumed to be
// loaded at the program entry point.
func FromProgram(data []uint8) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(data)+1)/2),
		labels:  make(map[uint16]string),
	}

	for i := 0; i < len(data); i += 2 {
		e := Entry{
			Address: addresses.EntryPoint + uint16(i),
		}

		if i+1 < len(data) {
			e.Instruction = instructions.Decode(uint16(data[i])<<8 | uint16(data[i+1]))
		} else {
			e.Instruction = instructions.Decode(uint16(data[i]) << 8)
			e.Partial = true
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	top := addresses.EntryPoint + uint16(len(data))
	for _, e := range dsm.Entries {
		if e.Partial {
			continue
		}
		switch e.Instruction.Operator {
		case instructions.JP, instructions.CALL:
			a := e.Instruction.NNN
			if a >= addresses.EntryPoint && a < top && (a-addresses.EntryPoint)%2 == 0 {
				dsm.labels[a] = fmt.Sprintf("L%03x", a)
			}
		}
	}

	for i := range dsm.Entries {
		dsm.Entries[i].Label = dsm.labels[dsm.Entries[i].Address]
	}

	return dsm
}

// FromMemory disassembles the program most recently loaded into memory.
func FromMemory(mem *memory.Memory) *Disassembly {
	return FromProgram(mem.Program())
}

// Label returns the label for the address. Returns the empty string if the
// address is not the target of a JP or CALL instruction.
func (dsm *Disassembly) Label(address uint16) string {
	return dsm.labels[address]
}

// Lookup returns the entry for the address.
func (dsm *Disassembly) Lookup(address uint16) (Entry, bool) {
	if address < addresses.EntryPoint || address%2 != 0 {
		return Entry{}, false
	}
	i := int(address-addresses.EntryPoint) / 2
	if i >= len(dsm.Entries) {
		return Entry{}, false
	}
	return dsm.Entries[i], true
}

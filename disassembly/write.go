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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions
type WriteAttr struct {
	ByteCode    bool
	Description bool
}

// Write the entire disassembly to io.Writer
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		err := dsm.WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer. The label for the entry, if
// it has one, is written on a line of its own.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var err error

	if e.Label != "" {
		_, err = fmt.Fprintf(output, "%s:\n", e.Label)
		if err != nil {
			return err
		}
	}

	s := fmt.Sprintf("%03x ", e.Address)

	if attr.ByteCode {
		if e.Partial {
			s += fmt.Sprintf("%02x   ", e.Instruction.Opcode>>8)
		} else {
			s += fmt.Sprintf("%04x ", e.Instruction.Opcode)
		}
	}

	mnemonic := e.Mnemonic(dsm.labels)

	if attr.Description && !e.Partial {
		s += fmt.Sprintf("%-16s ; %s", mnemonic, Describe(e.Instruction))
	} else {
		s += mnemonic
	}

	_, err = fmt.Fprintln(output, s)
	return err
}

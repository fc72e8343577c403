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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
)

// Sentinal error patterns.
const (
	AddressError     = "memory: address out of range (%#04x)"
	ProtectedAddress = "memory: write to reserved address (%#04x)"
	ProgramTooBig    = "memory: program too big (%d bytes, max %d)"
)

// Memory is the 4096 bytes of CHIP-8 memory.
type Memory struct {
	data [addresses.MemorySize]uint8

	// the number of bytes in the most recently loaded program
	programSize int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font table is installed and all other bytes are zero.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.data[addresses.FontBase:], Font[:])
	return mem
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Reset clears program memory. The font table is left untouched.
func (mem *Memory) Reset() {
	for i := addresses.EntryPoint; i < addresses.MemorySize; i++ {
		mem.data[i] = 0
	}
	mem.programSize = 0
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > addresses.MemoryTop {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > addresses.MemoryTop {
		return curated.Errorf(AddressError, address)
	}
	if address < addresses.EntryPoint {
		return curated.Errorf(ProtectedAddress, address)
	}
	mem.data[address] = data
	return nil
}

// Peek returns the value at address without any of the restrictions of
// Read().
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address > addresses.MemoryTop {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Poke writes to any address, including the reserved area.
func (mem *Memory) Poke(address uint16, data uint8) error {
	if address > addresses.MemoryTop {
		return curated.Errorf(AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// LoadProgram copies the program data to memory starting at the entry point.
// Any previously loaded program is cleared first.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > addresses.MaxProgramSize {
		return curated.Errorf(ProgramTooBig, len(data), addresses.MaxProgramSize)
	}
	mem.Reset()
	copy(mem.data[addresses.EntryPoint:], data)
	mem.programSize = len(data)
	return nil
}

// ProgramSize returns the number of bytes in the most recently loaded
// program.
func (mem *Memory) ProgramSize() int {
	return mem.programSize
}

// Program returns a copy of the program area of memory, as far as the size
// of the most recently loaded program.
func (mem *Memory) Program() []uint8 {
	p := make([]uint8, mem.programSize)
	copy(p, mem.data[addresses.EntryPoint:])
	return p
}

// Data returns a copy of the entirety of memory.
func (mem *Memory) Data() []uint8 {
	d := make([]uint8, addresses.MemorySize)
	copy(d, mem.data[:])
	return d
}

// String returns a hex dump of memory from origin to memtop inclusive.
// Sixteen bytes per row with the address of the first byte at the start of the
// row.
func (mem *Memory) String() string {
	return mem.Dump(0, addresses.MemoryTop)
}

// Dump returns a hex dump of the memory between origin and memtop inclusive.
func (mem *Memory) Dump(origin uint16, memtop uint16) string {
	if memtop > addresses.MemoryTop {
		memtop = addresses.MemoryTop
	}

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	for row := origin &^ 0x0f; row <= memtop; row += 16 {
		s.WriteString(fmt.Sprintf("%03x- | ", row>>4))
		for col := uint16(0); col < 16; col++ {
			a := row + col
			if a < origin || a > memtop {
				s.WriteString(" ..")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
			}
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

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

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
)

// ProgramCounter represents the CPU's PC register. Storage is sixteen bits
// wide but only the lower twelve bits are significant.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns an identifying string for the PC
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// Subtract a value from the PC
func (pc *ProgramCounter) Subtract(val uint16) {
	pc.value -= val
}

// Significant returns the twelve significant bits of the PC.
func (pc ProgramCounter) Significant() uint16 {
	return pc.value & addresses.Mask
}

// Index represents the I register.
type Index struct {
	value uint16
}

// Label returns an identifying string for the index register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%#04x", i.value)
}

// Address returns the current value of the index register.
func (i Index) Address() uint16 {
	return i.value
}

// Load a value into the index register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add a value to the index register. The sum is not wrapped: a result that
// does not fit in sixteen bits saturates at 0xffff. Returns true if the sum is
// outside of the addressable range of memory.
func (i *Index) Add(val uint16) bool {
	sum := uint32(i.value) + uint32(val)
	if sum > 0xffff {
		i.value = 0xffff
	} else {
		i.value = uint16(sum)
	}
	return sum > addresses.MemoryTop
}

// Offset returns the address that is offset bytes beyond the index register.
// The bool is false if the address is outside of the addressable range of
// memory, in which case the address returned is not meaningful.
func (i Index) Offset(offset int) (uint16, bool) {
	a := int(i.value) + offset
	if a > addresses.MemoryTop {
		return 0, false
	}
	return uint16(a), true
}

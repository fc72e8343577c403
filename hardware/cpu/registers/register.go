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

import "fmt"

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the register used as the carry, borrow and collision
// flag.
const Flag = 0xf

// Register is an 8-bit general purpose register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. The result wraps at 256. Returns one if the addition
// carried and zero otherwise.
func (r *Register) Add(val uint8) uint8 {
	sum := uint16(r.value) + uint16(val)
	r.value = uint8(sum)
	if sum > 0xff {
		return 1
	}
	return 0
}

// Subtract value from register. The result wraps at 256. Returns one if there
// was no borrow (ie. the register value was greater than or equal to val) and
// zero otherwise.
func (r *Register) Subtract(val uint8) uint8 {
	var noBorrow uint8
	if r.value >= val {
		noBorrow = 1
	}
	r.value -= val
	return noBorrow
}

// ShiftLeft the register value by one bit. Returns the bit shifted out of the
// register.
func (r *Register) ShiftLeft() uint8 {
	out := r.value >> 7
	r.value <<= 1
	return out
}

// ShiftRight the register value by one bit. Returns the bit shifted out of the
// register.
func (r *Register) ShiftRight() uint8 {
	out := r.value & 0x01
	r.value >>= 1
	return out
}

// ORA performs a bitwise OR with the register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// AND performs a bitwise AND with the register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR performs a bitwise XOR with the register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// File is the set of sixteen general purpose registers. V0 to VF.
type File [NumRegisters]Register

// NewFile is the preferred method of initialisation for the File type.
func NewFile() File {
	var f File
	for i := range f {
		f[i] = NewRegister(0, fmt.Sprintf("V%X", i))
	}
	return f
}

func (f File) String() string {
	s := ""
	for i := range f {
		if i > 0 {
			s += " "
		}
		s += f[i].String()
	}
	return s
}

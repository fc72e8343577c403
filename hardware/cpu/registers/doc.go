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

// Package registers implements the CHIP-8 register file. The three register
// types are the 8-bit general purpose Register, the ProgramCounter and the
// 16-bit Index register. The Stack type holds return addresses for the
// subroutine instructions.
//
// The registers only implement the arithmetic. The effect of the arithmetic
// on the flag register (VF) is the responsibility of the CPU. For instance,
// the CPU implementation of 8XY4 looks something like this:
//
//	carry := v[x].Add(v[y].Value())
//	v[0xf].Load(carry)
//
// Note that when X is 0xf the flag is overwritten by the result of the
// operation. The CPU must write the result last if this is a concern.
package registers

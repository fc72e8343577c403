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

// Package addresses contains the fixed addresses and sizes of the CHIP-8
// memory map. The memory map is simple:
//
//	0x000 - 0x1ff	reserved for the interpreter. the font table lives here
//	0x200 - 0xfff	program memory. the program counter starts at 0x200
//
// There are no memory mapped registers.
package addresses

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

// Package memory implements the 4096 bytes of CHIP-8 memory. The CPU accesses
// memory through the cpubus.Memory interface, which the Memory type
// implements.
//
// The area below addresses.EntryPoint is reserved for the interpreter. The
// font table is placed there when the Memory type is created and the CPU is
// not allowed to write to the reserved area. The distinction between the CPU's
// view of memory and the view of other parts of the emulation is made by
// Peek() and Poke(). These functions are used by the program loader and
// debugging tools and are not restricted by the reserved area.
//
//	0x000 +-----------------+
//	      | reserved        |
//	0x050 |  font table     |
//	0x09f |                 |
//	0x200 +-----------------+
//	      | program         |
//	      |                 |
//	0xfff +-----------------+
package memory

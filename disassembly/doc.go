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

// Package disassembly creates a linear disassembly of a CHIP-8 program.
//
// The program is decoded two bytes at a time from the entry point. There is
// no attempt to distinguish code from data, so sprite data in particular will
// be disassembled as instructions (often as unknown instructions).
//
// Addresses that are the target of a JP or CALL instruction are given a label
// of the form "L206".
package disassembly

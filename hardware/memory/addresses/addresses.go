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

package addresses

// MemorySize is the number of bytes addressable by the CPU.
const MemorySize = 4096

// MemoryTop is the highest valid address.
const MemoryTop = MemorySize - 1

// FontBase is the address of the first byte of the font table.
const FontBase = 0x050

// GlyphSize is the number of bytes (rows) in a single font glyph.
const GlyphSize = 5

// NumGlyphs is the number of glyphs in the font table. One for each hex digit.
const NumGlyphs = 16

// FontTop is the address of the last byte of the font table.
const FontTop = FontBase + GlyphSize*NumGlyphs - 1

// EntryPoint is the address the program is loaded at and the initial value
// of the program counter.
const EntryPoint = 0x200

// MaxProgramSize is the largest program that will fit in memory.
const MaxProgramSize = MemorySize - EntryPoint

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 12

// Mask applied to the program counter to retrieve the twelve significant bits.
const Mask = 0x0fff

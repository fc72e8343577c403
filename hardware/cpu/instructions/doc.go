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

// Package instructions decodes CHIP-8 opcodes. Every opcode is sixteen bits
// wide and is decoded into an Instruction by the Decode() function. Decoding
// is pure and the same opcode always decodes to the same Instruction.
//
// The operator of the instruction is chosen from the closed set of Operator
// values. An opcode that does not match any pattern in the instruction set
// decodes to the Unknown operator.
//
// The fields of the opcode are named in the traditional manner:
//
//	NNN	lower twelve bits (address)
//	NN	lower eight bits (immediate value)
//	N	lower four bits (sprite height)
//	X	bits 8 to 11 (register index)
//	Y	bits 4 to 7 (register index)
package instructions

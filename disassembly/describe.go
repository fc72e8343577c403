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

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Describe returns a plain english description of what the instruction does.
func Describe(ins instructions.Instruction) string {
	switch ins.Operator {
	case instructions.CLS:
		return "Clear screen"
	case instructions.RET:
		return "Return from subroutine"
	case instructions.JP:
		return fmt.Sprintf("Jump to address %#03x", ins.NNN)
	case instructions.CALL:
		return fmt.Sprintf("Call subroutine at %#03x", ins.NNN)
	case instructions.SEImm:
		return fmt.Sprintf("Skip next instruction if V%X == %#02x", ins.X, ins.NN)
	case instructions.SNEImm:
		return fmt.Sprintf("Skip next instruction if V%X != %#02x", ins.X, ins.NN)
	case instructions.SEReg:
		return fmt.Sprintf("Skip next instruction if V%X == V%X", ins.X, ins.Y)
	case instructions.LDImm:
		return fmt.Sprintf("Set V%X to %#02x", ins.X, ins.NN)
	case instructions.ADDImm:
		return fmt.Sprintf("Add %#02x to V%X", ins.NN, ins.X)
	case instructions.LDReg:
		return fmt.Sprintf("Set V%X to V%X", ins.X, ins.Y)
	case instructions.OR:
		return fmt.Sprintf("Set V%X to V%X OR V%X", ins.X, ins.X, ins.Y)
	case instructions.AND:
		return fmt.Sprintf("Set V%X to V%X AND V%X", ins.X, ins.X, ins.Y)
	case instructions.XOR:
		return fmt.Sprintf("Set V%X to V%X XOR V%X", ins.X, ins.X, ins.Y)
	case instructions.ADDReg:
		return fmt.Sprintf("Add V%X to V%X. VF is set to the carry", ins.Y, ins.X)
	case instructions.SUB:
		return fmt.Sprintf("Set V%X to V%X - V%X. VF is set when there is no borrow", ins.X, ins.X, ins.Y)
	case instructions.SHL:
		return fmt.Sprintf("Set V%X to V%X shifted left. VF is set to the bit shifted out", ins.X, ins.Y)
	case instructions.SUBN:
		return fmt.Sprintf("Set V%X to V%X - V%X. VF is set when there is no borrow", ins.X, ins.Y, ins.X)
	case instructions.SHR:
		return fmt.Sprintf("Set V%X to V%X shifted right. VF is set to the bit shifted out", ins.X, ins.Y)
	case instructions.SNEReg:
		return fmt.Sprintf("Skip next instruction if V%X != V%X", ins.X, ins.Y)
	case instructions.LDI:
		return fmt.Sprintf("Set I to %#03x", ins.NNN)
	case instructions.RND:
		return fmt.Sprintf("Set V%X to a random number AND %#02x", ins.X, ins.NN)
	case instructions.DRW:
		return fmt.Sprintf("Draw %d byte sprite from I at V%X, V%X. VF is set on collision", ins.N, ins.X, ins.Y)
	case instructions.SKP:
		return fmt.Sprintf("Skip next instruction if the key in V%X is pressed", ins.X)
	case instructions.SKNP:
		return fmt.Sprintf("Skip next instruction if the key in V%X is not pressed", ins.X)
	case instructions.LDVxDT:
		return fmt.Sprintf("Set V%X to the delay timer", ins.X)
	case instructions.LDVxK:
		return fmt.Sprintf("Wait for a key press and store the key in V%X", ins.X)
	case instructions.LDDTVx:
		return fmt.Sprintf("Set the delay timer to V%X", ins.X)
	case instructions.LDSTVx:
		return fmt.Sprintf("Set the sound timer to V%X", ins.X)
	case instructions.ADDI:
		return fmt.Sprintf("Add V%X to I", ins.X)
	case instructions.LDF:
		return fmt.Sprintf("Set I to the font glyph for the digit in V%X", ins.X)
	case instructions.LDB:
		return fmt.Sprintf("Store the decimal digits of V%X at I, I+1 and I+2", ins.X)
	case instructions.LDStore:
		return fmt.Sprintf("Store V0 to V%X in memory starting at I", ins.X)
	case instructions.LDLoad:
		return fmt.Sprintf("Load V0 to V%X from memory starting at I", ins.X)
	}

	return "Unimplemented opcode"
}

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

package instructions

import "fmt"

// Operator identifies the operation an instruction performs.
type Operator int

// List of operators. The comment for each operator is the opcode pattern that
// decodes to it.
const (
	Unknown Operator = iota
	CLS              // 00E0
	RET              // 00EE
	JP               // 1NNN
	CALL             // 2NNN
	SEImm            // 3XNN
	SNEImm           // 4XNN
	SEReg            // 5XY0
	LDImm            // 6XNN
	ADDImm           // 7XNN
	LDReg            // 8XY0
	OR               // 8XY1
	AND              // 8XY2
	XOR              // 8XY3
	ADDReg           // 8XY4
	SUB              // 8XY5
	SHL              // 8XY6
	SUBN             // 8XY7
	SHR              // 8XYE
	SNEReg           // 9XY0
	LDI              // ANNN
	RND              // CXNN
	DRW              // DXYN
	SKP              // EX9E
	SKNP             // EXA1
	LDVxDT           // FX07
	LDVxK            // FX0A
	LDDTVx           // FX15
	LDSTVx           // FX18
	ADDI             // FX1E
	LDF              // FX29
	LDB              // FX33
	LDStore          // FX55
	LDLoad           // FX65
)

// Definition defines each operator in the instruction set; one per operator.
type Definition struct {
	Operator Operator
	Pattern  string
	Mnemonic string
	Effect   Category

	// format of the operands. fields of the instruction are referenced by the
	// verbs described by the Instruction.String() function
	operands string
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s %s [%s]", defn.Pattern, defn.Mnemonic, defn.Effect)
}

// definitions is indexed by Operator.
var definitions = [...]Definition{
	Unknown: {Unknown, "????", "???", Undefined, ""},
	CLS:     {CLS, "00E0", "CLS", Display, ""},
	RET:     {RET, "00EE", "RET", Subroutine, ""},
	JP:      {JP, "1NNN", "JP", Flow, "a"},
	CALL:    {CALL, "2NNN", "CALL", Subroutine, "a"},
	SEImm:   {SEImm, "3XNN", "SE", Skip, "x,b"},
	SNEImm:  {SNEImm, "4XNN", "SNE", Skip, "x,b"},
	SEReg:   {SEReg, "5XY0", "SE", Skip, "x,y"},
	LDImm:   {LDImm, "6XNN", "LD", Load, "x,b"},
	ADDImm:  {ADDImm, "7XNN", "ADD", Arithmetic, "x,b"},
	LDReg:   {LDReg, "8XY0", "LD", Load, "x,y"},
	OR:      {OR, "8XY1", "OR", Arithmetic, "x,y"},
	AND:     {AND, "8XY2", "AND", Arithmetic, "x,y"},
	XOR:     {XOR, "8XY3", "XOR", Arithmetic, "x,y"},
	ADDReg:  {ADDReg, "8XY4", "ADD", Arithmetic, "x,y"},
	SUB:     {SUB, "8XY5", "SUB", Arithmetic, "x,y"},
	SHL:     {SHL, "8XY6", "SHL", Arithmetic, "x,y"},
	SUBN:    {SUBN, "8XY7", "SUBN", Arithmetic, "x,y"},
	SHR:     {SHR, "8XYE", "SHR", Arithmetic, "x,y"},
	SNEReg:  {SNEReg, "9XY0", "SNE", Skip, "x,y"},
	LDI:     {LDI, "ANNN", "LD", Load, "I,a"},
	RND:     {RND, "CXNN", "RND", Arithmetic, "x,b"},
	DRW:     {DRW, "DXYN", "DRW", Display, "x,y,n"},
	SKP:     {SKP, "EX9E", "SKP", Keypad, "x"},
	SKNP:    {SKNP, "EXA1", "SKNP", Keypad, "x"},
	LDVxDT:  {LDVxDT, "FX07", "LD", Timer, "x,DT"},
	LDVxK:   {LDVxK, "FX0A", "LD", Keypad, "x,K"},
	LDDTVx:  {LDDTVx, "FX15", "LD", Timer, "DT,x"},
	LDSTVx:  {LDSTVx, "FX18", "LD", Timer, "ST,x"},
	ADDI:    {ADDI, "FX1E", "ADD", Arithmetic, "I,x"},
	LDF:     {LDF, "FX29", "LD", Memory, "F,x"},
	LDB:     {LDB, "FX33", "LD", Memory, "B,x"},
	LDStore: {LDStore, "FX55", "LD", Memory, "[I],x"},
	LDLoad:  {LDLoad, "FX65", "LD", Memory, "x,[I]"},
}

// GetDefinitions returns the table of instruction definitions, indexed by
// Operator. Index zero is the Unknown operator.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}

// Definition returns the definition for the operator.
func (op Operator) Definition() Definition {
	if op < 0 || int(op) >= len(definitions) {
		return definitions[Unknown]
	}
	return definitions[op]
}

func (op Operator) String() string {
	return op.Definition().Mnemonic
}

// Instruction is a decoded opcode.
type Instruction struct {
	Opcode   uint16
	Operator Operator

	NNN uint16
	NN  uint8
	N   uint8
	X   uint8
	Y   uint8
}

// Decode an opcode. Opcodes that do not match any instruction pattern decode
// to an Instruction with the Unknown operator. The operand fields are always
// filled in, regardless of whether the instruction uses them.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		NNN:    opcode & 0x0fff,
		NN:     uint8(opcode & 0x00ff),
		N:      uint8(opcode & 0x000f),
		X:      uint8((opcode >> 8) & 0x0f),
		Y:      uint8((opcode >> 4) & 0x0f),
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Operator = CLS
		case 0x00ee:
			ins.Operator = RET
		}
	case 0x1:
		ins.Operator = JP
	case 0x2:
		ins.Operator = CALL
	case 0x3:
		ins.Operator = SEImm
	case 0x4:
		ins.Operator = SNEImm
	case 0x5:
		if ins.N == 0x0 {
			ins.Operator = SEReg
		}
	case 0x6:
		ins.Operator = LDImm
	case 0x7:
		ins.Operator = ADDImm
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LDReg
		case 0x1:
			ins.Operator = OR
		case 0x2:
			ins.Operator = AND
		case 0x3:
			ins.Operator = XOR
		case 0x4:
			ins.Operator = ADDReg
		case 0x5:
			ins.Operator = SUB
		case 0x6:
			ins.Operator = SHL
		case 0x7:
			ins.Operator = SUBN
		case 0xe:
			ins.Operator = SHR
		}
	case 0x9:
		if ins.N == 0x0 {
			ins.Operator = SNEReg
		}
	case 0xa:
		ins.Operator = LDI
	case 0xc:
		ins.Operator = RND
	case 0xd:
		ins.Operator = DRW
	case 0xe:
		switch ins.NN {
		case 0x9e:
			ins.Operator = SKP
		case 0xa1:
			ins.Operator = SKNP
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			ins.Operator = LDVxDT
		case 0x0a:
			ins.Operator = LDVxK
		case 0x15:
			ins.Operator = LDDTVx
		case 0x18:
			ins.Operator = LDSTVx
		case 0x1e:
			ins.Operator = ADDI
		case 0x29:
			ins.Operator = LDF
		case 0x33:
			ins.Operator = LDB
		case 0x55:
			ins.Operator = LDStore
		case 0x65:
			ins.Operator = LDLoad
		}
	}

	return ins
}

// IsValid returns false if the instruction was decoded from an opcode that is
// not part of the instruction set.
func (ins Instruction) IsValid() bool {
	return ins.Operator != Unknown
}

// Definition returns the definition of the instruction's operator.
func (ins Instruction) Definition() Definition {
	return ins.Operator.Definition()
}

// String returns the instruction in the conventional assembly language form.
// For example, the opcode 0x6a12 is formatted as "LD VA, 0x12". Unknown
// instructions are formatted as a data word.
func (ins Instruction) String() string {
	defn := ins.Operator.Definition()

	if ins.Operator == Unknown {
		return fmt.Sprintf("DW %#04x", ins.Opcode)
	}

	if defn.operands == "" {
		return defn.Mnemonic
	}

	s := defn.Mnemonic + " "
	field := ""
	flush := func() {
		switch field {
		case "a":
			s += fmt.Sprintf("%#03x", ins.NNN)
		case "b":
			s += fmt.Sprintf("%#02x", ins.NN)
		case "n":
			s += fmt.Sprintf("%d", ins.N)
		case "x":
			s += fmt.Sprintf("V%X", ins.X)
		case "y":
			s += fmt.Sprintf("V%X", ins.Y)
		default:
			s += field
		}
		field = ""
	}

	for _, r := range defn.operands {
		if r == ',' {
			flush()
			s += ", "
			continue
		}
		field += string(r)
	}
	flush()

	return s
}

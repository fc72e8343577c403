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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	ExecutionFault = "cpu: %04x at %#04x: %v"
	Killed         = "cpu: not executing after fault at %#04x"
)

// CPU implements the CHIP-8 interpreter. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC    registers.ProgramCounter
	V     registers.File
	I     registers.Index
	Stack registers.Stack

	mem cpubus.Memory
	fb  *display.Framebuffer
	tmr *timers.Timers
	kp  *keypad.Keypad

	// last result. the address field is only valid if the Final field is
	// true
	LastResult execution.Result

	// the cpu has encountered a fault. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in the reset state.
func NewCPU(instance *instance.Instance, mem cpubus.Memory, fb *display.Framebuffer, tmr *timers.Timers, kp *keypad.Keypad) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		fb:       fb,
		tmr:      tmr,
		kp:       kp,
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.Stack)
}

// Reset reinitialises all registers. The PC is set to the program entry
// point.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.PC.Load(addresses.EntryPoint)
	mc.V = registers.NewFile()
	mc.I.Load(0)
	mc.Stack.Reset()
}

// fault finalises the LastResult and returns the wrapped error.
func (mc *CPU) fault(err error) error {
	mc.Killed = true
	mc.LastResult.Outcome = execution.Fault
	mc.LastResult.Final = true
	return curated.Errorf(ExecutionFault, mc.LastResult.Opcode, mc.LastResult.Address, err)
}

// read16Bit returns the big-endian sixteen bit value at address.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	hi, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// indexed returns the address offset bytes beyond the I register. addresses
// beyond the top of memory are an AddressError and are never wrapped.
func (mc *CPU) indexed(offset int) (uint16, error) {
	a, ok := mc.I.Offset(offset)
	if !ok {
		return 0, curated.Errorf(memory.AddressError, int(mc.I.Address())+offset)
	}
	return a, nil
}

// skip the next instruction if the condition is true.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(2)
	}
}

// writes the result of an arithmetic instruction to register X and the flag
// value to VF. the result is written last so that it takes precedence if X is
// the flag register.
func (mc *CPU) writeWithFlag(x uint8, result uint8, flag uint8) {
	mc.V[registers.Flag].Load(flag)
	mc.V[x].Load(result)
}

// ExecuteInstruction steps the CPU forward one instruction. Errors returned
// are always faults and the CPU must be reset before execution can continue.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Killed {
		return curated.Errorf(Killed, mc.LastResult.Address)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read16Bit(mc.PC.Address())
	if err != nil {
		return mc.fault(err)
	}
	mc.PC.Add(2)

	ins := instructions.Decode(opcode)
	mc.LastResult.Opcode = opcode
	mc.LastResult.Instruction = ins

	x := ins.X
	y := ins.Y
	vx := mc.V[x].Value()
	vy := mc.V[y].Value()

	switch ins.Operator {
	case instructions.CLS:
		mc.fb.Clear()

	case instructions.RET:
		address, err := mc.Stack.Pop()
		if err != nil {
			return mc.fault(err)
		}
		mc.PC.Load(address)

	case instructions.JP:
		mc.PC.Load(ins.NNN)

	case instructions.CALL:
		err := mc.Stack.Push(mc.PC.Address())
		if err != nil {
			return mc.fault(err)
		}
		mc.PC.Load(ins.NNN)

	case instructions.SEImm:
		mc.skip(vx == ins.NN)

	case instructions.SNEImm:
		mc.skip(vx != ins.NN)

	case instructions.SEReg:
		mc.skip(vx == vy)

	case instructions.LDImm:
		mc.V[x].Load(ins.NN)

	case instructions.ADDImm:
		// carry is ignored. VF is never affected by 7XNN
		_ = mc.V[x].Add(ins.NN)

	case instructions.LDReg:
		mc.V[x].Load(vy)

	case instructions.OR:
		mc.V[x].ORA(vy)

	case instructions.AND:
		mc.V[x].AND(vy)

	case instructions.XOR:
		mc.V[x].EOR(vy)

	case instructions.ADDReg:
		r := registers.NewRegister(vx, "")
		carry := r.Add(vy)
		mc.writeWithFlag(x, r.Value(), carry)

	case instructions.SUB:
		r := registers.NewRegister(vx, "")
		noBorrow := r.Subtract(vy)
		mc.writeWithFlag(x, r.Value(), noBorrow)

	case instructions.SHL:
		r := registers.NewRegister(vy, "")
		out := r.ShiftLeft()
		mc.writeWithFlag(x, r.Value(), out)

	case instructions.SUBN:
		r := registers.NewRegister(vy, "")
		noBorrow := r.Subtract(vx)
		mc.writeWithFlag(x, r.Value(), noBorrow)

	case instructions.SHR:
		r := registers.NewRegister(vy, "")
		out := r.ShiftRight()
		mc.writeWithFlag(x, r.Value(), out)

	case instructions.SNEReg:
		mc.skip(vx != vy)

	case instructions.LDI:
		mc.I.Load(ins.NNN)

	case instructions.RND:
		mc.V[x].Load(mc.instance.Random.Byte() & ins.NN)

	case instructions.DRW:
		collision, err := mc.draw(vx, vy, ins.N)
		if err != nil {
			return mc.fault(err)
		}
		mc.LastResult.Collision = collision

	case instructions.SKP:
		mc.skip(mc.kp.Pressed(vx))

	case instructions.SKNP:
		mc.skip(!mc.kp.Pressed(vx))

	case instructions.LDVxDT:
		mc.V[x].Load(mc.tmr.Delay)

	case instructions.LDVxK:
		if k, ok := mc.kp.FirstPressed(); ok {
			mc.V[x].Load(k)
		} else {
			// rewind so that this instruction is executed again on the next
			// step
			mc.PC.Subtract(2)
			mc.LastResult.Waiting = true
		}

	case instructions.LDDTVx:
		mc.tmr.Delay = vx

	case instructions.LDSTVx:
		mc.tmr.Sound = vx

	case instructions.ADDI:
		outside := mc.I.Add(uint16(vx))
		if mc.instance.Prefs.FX1EFlag.Get().(bool) {
			if outside {
				mc.V[registers.Flag].Load(1)
			} else {
				mc.V[registers.Flag].Load(0)
			}
		}

	case instructions.LDF:
		mc.I.Load(addresses.FontBase + uint16(vx)*addresses.GlyphSize)

	case instructions.LDB:
		bcd := [3]uint8{vx / 100, (vx / 10) % 10, vx % 10}
		for i, d := range bcd {
			a, err := mc.indexed(i)
			if err != nil {
				return mc.fault(err)
			}
			err = mc.mem.Write(a, d)
			if err != nil {
				return mc.fault(err)
			}
		}

	case instructions.LDStore:
		for i := uint8(0); i <= x; i++ {
			a, err := mc.indexed(int(i))
			if err != nil {
				return mc.fault(err)
			}
			err = mc.mem.Write(a, mc.V[i].Value())
			if err != nil {
				return mc.fault(err)
			}
		}

	case instructions.LDLoad:
		for i := uint8(0); i <= x; i++ {
			a, err := mc.indexed(int(i))
			if err != nil {
				return mc.fault(err)
			}
			v, err := mc.mem.Read(a)
			if err != nil {
				return mc.fault(err)
			}
			mc.V[i].Load(v)
		}

	default:
		mc.LastResult.Outcome = execution.Unimplemented
		logger.Logf(logger.Allow, "cpu", "unimplemented opcode %04x at %#04x", opcode, mc.LastResult.Address)
	}

	mc.LastResult.Final = true

	return nil
}

// draw the sprite at memory address I to the framebuffer. the starting
// coordinates wrap but the sprite itself is clipped at the edges of the
// framebuffer. every visible row of the sprite is read before the framebuffer
// or VF are changed so a fault leaves both untouched.
func (mc *CPU) draw(vx uint8, vy uint8, height uint8) (bool, error) {
	x0 := int(vx) % display.Width
	y0 := int(vy) % display.Height

	rows := int(height)
	if y0+rows > display.Height {
		rows = display.Height - y0
	}

	var sprite [15]uint8
	for r := 0; r < rows; r++ {
		a, err := mc.indexed(r)
		if err != nil {
			return false, err
		}
		sprite[r], err = mc.mem.Read(a)
		if err != nil {
			return false, err
		}
	}

	collision := false

	for r := 0; r < rows; r++ {
		y := y0 + r
		for b := 0; b < 8; b++ {
			x := x0 + b
			if x >= display.Width {
				break
			}
			if mc.fb.Toggle(x, y, sprite[r]&(0x80>>b) != 0) {
				collision = true
			}
		}
	}

	if collision {
		mc.V[registers.Flag].Load(1)
	} else {
		mc.V[registers.Flag].Load(0)
	}

	return collision, nil
}

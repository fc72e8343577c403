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

// Package cpu emulates the CHIP-8 interpreter. The interpreter executes
// instructions according to the sixteen bit opcode read from the address
// pointed to by the program counter. The opcode is decoded by the
// instructions package and the decoded instruction is then used to move
// execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface along
// with the framebuffer, timers and keypad it operates on. These are owned by
// the VM type in the hardware package. The CPU never advances the timers. That
// is the responsibility of the frame driver.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an instance of cpubus.Memory loaded with a program.
//
//	mc := cpu.NewCPU(ins, mem, fb, tmr, kp)
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			break
//		}
//		fmt.Println(mc.LastResult)
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. An error returned by ExecuteInstruction() is always
// accompanied by a LastResult with an Outcome of execution.Fault. Once a fault
// has occurred the CPU must be Reset() before any more instructions can be
// executed.
//
// Opcodes that are not part of the instruction set are not errors. They are
// logged and execution continues with the next instruction. The LastResult
// will have an Outcome of execution.Unimplemented.
package cpu

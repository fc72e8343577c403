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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func program(opcodes ...uint16) []uint8 {
	data := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		data = append(data, uint8(op>>8), uint8(op))
	}
	return data
}

func TestNoProgram(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	test.ExpectEquality(t, vm.State(), govern.Initialising)
	test.ExpectSuccess(t, curated.Is(vm.Reset(), hardware.NoProgram))

	// stepping does nothing
	r, err := vm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, r.Final)
}

func TestLoadProgram(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	err := vm.LoadProgram(make([]uint8, 4096))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooBig))
	test.ExpectEquality(t, vm.State(), govern.Initialising)

	test.DemandSuccess(t, vm.LoadProgram(program(0x6012)))
	test.ExpectEquality(t, vm.State(), govern.Running)

	r, err := vm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r.Final)
	test.ExpectEquality(t, vm.CPU.V[0].Value(), uint8(0x12))
}

func TestPause(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	test.DemandSuccess(t, vm.LoadProgram(program(0x6012, 0x6034)))
	vm.Timers.Delay = 5

	vm.SetState(govern.Paused)
	test.ExpectEquality(t, vm.State(), govern.Paused)

	// neither steps nor timer ticks have any effect while paused
	r, err := vm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, r.Final)
	test.ExpectEquality(t, vm.CPU.PC.Address(), uint16(0x200))
	test.ExpectFailure(t, vm.TickTimers())
	test.ExpectEquality(t, vm.Timers.Delay, uint8(5))

	// only running and paused states can be set
	vm.SetState(govern.Ending)
	test.ExpectEquality(t, vm.State(), govern.Paused)

	vm.SetState(govern.Running)
	_, err = vm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vm.CPU.V[0].Value(), uint8(0x12))
	vm.TickTimers()
	test.ExpectEquality(t, vm.Timers.Delay, uint8(4))
}

func TestFault(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	test.DemandSuccess(t, vm.LoadProgram(program(0x00ee)))

	r, err := vm.Step()
	test.ExpectSuccess(t, curated.Has(err, registers.StackUnderflow))
	test.ExpectEquality(t, r.Outcome, execution.Fault)
	test.ExpectEquality(t, r.Opcode, uint16(0x00ee))
	test.ExpectEquality(t, r.Address, uint16(0x200))
	test.ExpectEquality(t, vm.State(), govern.Ending)

	// ending state can not be left except by reset
	vm.SetState(govern.Running)
	test.ExpectEquality(t, vm.State(), govern.Ending)
	test.DemandSuccess(t, vm.Reset())
	test.ExpectEquality(t, vm.State(), govern.Running)
}

func TestReset(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())

	// program overwrites its own first instruction
	test.DemandSuccess(t, vm.LoadProgram(program(0xa200, 0x60ff, 0xf055, 0xd001)))
	test.DemandSuccess(t, vm.RunForInstructionCount(4, 0))

	d, err := vm.Mem.Read(0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0xff))
	test.ExpectFailure(t, vm.Display.IsClear())

	var st keypad.State
	st[1] = true
	vm.SetKeypad(st)
	vm.Timers.Sound = 10

	test.DemandSuccess(t, vm.Reset())
	d, err = vm.Mem.Read(0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0xa2))
	test.ExpectSuccess(t, vm.Display.IsClear())
	test.ExpectEquality(t, vm.Timers.Sound, uint8(0))
	test.ExpectFailure(t, vm.Keypad.Pressed(1))
	test.ExpectEquality(t, vm.CPU.PC.Address(), uint16(0x200))
}

func TestRun(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())

	// infinite loop incrementing V0
	test.DemandSuccess(t, vm.LoadProgram(program(0x7001, 0x1200)))

	count := 0
	err := vm.Run(func() (govern.State, error) {
		count++
		if count >= 20 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vm.CPU.V[0].Value(), uint8(10))

	// run until fault
	test.DemandSuccess(t, vm.LoadProgram(program(0x6001, 0x00ee)))
	err = vm.Run(nil)
	test.ExpectSuccess(t, curated.Has(err, registers.StackUnderflow))
}

func TestTimerInterval(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	test.DemandSuccess(t, vm.LoadProgram(program(0x6009, 0xf015, 0xf018, 0x1206)))

	// three instructions to set the timers then ten instructions of loop
	test.DemandSuccess(t, vm.RunForInstructionCount(13, 0))
	test.ExpectEquality(t, vm.Timers.Delay, uint8(9))

	test.DemandSuccess(t, vm.RunForInstructionCount(50, 5))
	test.ExpectEquality(t, vm.Timers.Delay, uint8(0))
	test.ExpectEquality(t, vm.Timers.Sound, uint8(0))
}

func TestSnapshot(t *testing.T) {
	vm := hardware.NewVM(instance.NewTestInstance())
	test.DemandSuccess(t, vm.LoadProgram(program(0x6012, 0x6034)))
	_, err := vm.Step()
	test.DemandSuccess(t, err)

	s := vm.Snapshot()
	_, err = vm.Step()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.CPU.PC.Address(), uint16(0x202))
	test.ExpectEquality(t, vm.CPU.PC.Address(), uint16(0x204))
	test.ExpectEquality(t, s.Govern, govern.Running)
}

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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

type testMachine struct {
	t   *testing.T
	ins *instance.Instance
	mem *memory.Memory
	fb  *display.Framebuffer
	tmr *timers.Timers
	kp  *keypad.Keypad
	mc  *cpu.CPU
}

func newTestMachine(t *testing.T) *testMachine {
	t.Helper()
	m := &testMachine{
		t:   t,
		ins: instance.NewTestInstance(),
		mem: memory.NewMemory(),
		fb:  display.NewFramebuffer(),
		tmr: timers.NewTimers(),
		kp:  keypad.NewKeypad(),
	}
	m.mc = cpu.NewCPU(m.ins, m.mem, m.fb, m.tmr, m.kp)
	return m
}

// putInstructions loads the opcodes into memory starting at the entry point
// and resets the CPU.
func (m *testMachine) putInstructions(opcodes ...uint16) {
	m.t.Helper()
	data := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		data = append(data, uint8(op>>8), uint8(op))
	}
	test.DemandSuccess(m.t, m.mem.LoadProgram(data))
	m.mc.Reset()
}

// step executes a single instruction and demands that it succeeds.
func (m *testMachine) step() {
	m.t.Helper()
	test.DemandSuccess(m.t, m.mc.ExecuteInstruction())
}

// steps executes n instructions.
func (m *testMachine) steps(n int) {
	m.t.Helper()
	for i := 0; i < n; i++ {
		m.step()
	}
}

// v returns the value of register x.
func (m *testMachine) v(x int) uint8 {
	return m.mc.V[x].Value()
}

// pc returns the value of the program counter.
func (m *testMachine) pc() uint16 {
	return m.mc.PC.Address()
}

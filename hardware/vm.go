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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	NoProgram = "vm: no program loaded"
)

// VM is the main container for the emulated components of the CHIP-8.
type VM struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Timers  *timers.Timers
	Keypad  *keypad.Keypad

	state govern.State

	// copy of the most recently loaded program. used to restore memory on
	// reset
	program []uint8
}

// NewVM creates a new VM and everything associated with the hardware. The
// instance argument must not be nil.
func NewVM(instance *instance.Instance) *VM {
	vm := &VM{
		Instance: instance,
		Mem:      memory.NewMemory(),
		Display:  display.NewFramebuffer(),
		Timers:   timers.NewTimers(),
		Keypad:   keypad.NewKeypad(),
		state:    govern.Initialising,
	}
	vm.CPU = cpu.NewCPU(instance, vm.Mem, vm.Display, vm.Timers, vm.Keypad)
	return vm
}

func (vm *VM) String() string {
	return vm.CPU.String()
}

// LoadProgram copies the program into memory and resets the VM. The VM will
// be in the Running state.
func (vm *VM) LoadProgram(data []uint8) error {
	err := vm.Mem.LoadProgram(data)
	if err != nil {
		return err
	}
	vm.program = make([]uint8, len(data))
	copy(vm.program, data)
	return vm.Reset()
}

// Reset the VM. Memory is restored to the state it was in immediately after
// the program was loaded, all registers are reset, the framebuffer is cleared
// and the timers are set to zero.
func (vm *VM) Reset() error {
	if vm.program == nil {
		vm.state = govern.Initialising
		return curated.Errorf(NoProgram)
	}

	err := vm.Mem.LoadProgram(vm.program)
	if err != nil {
		return err
	}

	vm.CPU.Reset()
	vm.Display.Clear()
	vm.Timers.Reset()
	vm.Keypad.Reset()
	vm.Instance.Random.Reset()
	vm.state = govern.Running

	return nil
}

// State returns the current state of the VM.
func (vm *VM) State() govern.State {
	return vm.state
}

// SetState changes the state of the VM. Only the Running and Paused states
// can be set and only if the VM is currently in one of those states. Use
// Reset() to leave the Ending or Initialising states.
func (vm *VM) SetState(state govern.State) {
	if vm.state != govern.Running && vm.state != govern.Paused {
		return
	}
	if state != govern.Running && state != govern.Paused {
		return
	}
	vm.state = state
}

// Step the VM forward one instruction. Nothing happens if the VM is not in
// the Running state and the returned Result will not be Final.
//
// A returned error is always a CPU fault. The VM will be put into the Ending
// state.
func (vm *VM) Step() (execution.Result, error) {
	if vm.state != govern.Running {
		return execution.Result{}, nil
	}

	err := vm.CPU.ExecuteInstruction()
	if err != nil {
		vm.state = govern.Ending
		logger.Log(logger.Allow, "vm", err)
	}

	return vm.CPU.LastResult, err
}

// TickTimers decrements the delay and sound timers. Returns true if the sound
// timer has reached zero on this tick. Timers are not affected if the VM is
// not in the Running state.
func (vm *VM) TickTimers() bool {
	if vm.state != govern.Running {
		return false
	}
	return vm.Timers.Tick()
}

// SetKeypad updates the state of the keypad.
func (vm *VM) SetKeypad(state keypad.State) {
	vm.Keypad.Set(state)
}

// Frame returns a copy of the current framebuffer.
func (vm *VM) Frame() display.Frame {
	return vm.Display.Snapshot()
}

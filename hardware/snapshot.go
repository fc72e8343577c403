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
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// State stores the VM at a single moment in time. It is a copy and changing
// any part of it will not change the running VM.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Frame  display.Frame
	Timers timers.Timers
	Keypad keypad.State
	Govern govern.State
}

// Snapshot creates a copy of the VM in its current state.
func (vm *VM) Snapshot() *State {
	return &State{
		CPU:    vm.CPU.Snapshot(),
		Mem:    vm.Mem.Snapshot(),
		Frame:  vm.Display.Snapshot(),
		Timers: *vm.Timers,
		Keypad: vm.Keypad.State(),
		Govern: vm.state,
	}
}

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
)

// Run sets the emulation running as quickly as possible. Timers are not
// ticked. Frame paced execution is provided by the television package.
//
// The continueCheck function is called after every instruction and can be
// used to stop the emulation by returning govern.Ending. A nil continueCheck
// means that the emulation will run until the CPU encounters a fault.
//
// Returns the error that caused the emulation to stop. A CPU fault is
// returned as an error.
func (vm *VM) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := vm.state

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err := vm.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("vm: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
		if state == govern.Running || state == govern.Paused {
			vm.SetState(state)
		}
	}

	return nil
}

// RunForInstructionCount executes the specified number of instructions, or
// until the CPU encounters a fault. Timers are ticked once for every
// timerInterval instructions. A timerInterval of zero means that the timers
// are never ticked.
func (vm *VM) RunForInstructionCount(numInstructions int, timerInterval int) error {
	for i := 1; i <= numInstructions; i++ {
		if vm.state != govern.Running {
			return nil
		}

		_, err := vm.Step()
		if err != nil {
			return err
		}

		if timerInterval > 0 && i%timerInterval == 0 {
			vm.TickTimers()
		}
	}
	return nil
}

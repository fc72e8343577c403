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

// Package timers implements the delay and sound timers. Both timers count
// down towards zero at a rate of one per Tick(). The CPU can read and write
// the timers but it never causes them to count down.
package timers

import "fmt"

// Timers contains the delay and sound timer values.
type Timers struct {
	Delay uint8
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements both timers if they are not already at zero. Returns true if
// the sound timer has changed from one to zero. This is the moment the tone
// should stop.
func (tmr *Timers) Tick() bool {
	if tmr.Delay > 0 {
		tmr.Delay--
	}

	if tmr.Sound > 0 {
		tmr.Sound--
		return tmr.Sound == 0
	}

	return false
}

// Sounding returns true if the tone should be audible.
func (tmr *Timers) Sounding() bool {
	return tmr.Sound > 0
}

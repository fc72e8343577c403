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

package userinput

import "github.com/jetsetilly/gopher8/hardware/keypad"

// Controls is the state of the user's input at a single moment. The
// TogglePause, Reset and Quit fields are requests that should be acted upon
// once.
type Controls struct {
	Keys        keypad.State
	TogglePause bool
	Reset       bool
	Quit        bool
}

// Source is implemented by anything that can supply user input.
type Source interface {
	// Poll is called once per frame by the frame driver.
	Poll() (Controls, error)
}

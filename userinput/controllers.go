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

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	keys keypad.State

	togglePause bool
	reset       bool
	quit        bool

	// whether or not the last HandleEvent() was for an event that was
	// consumed by the emulation
	LastKeyHandled bool
}

// HandleEvent updates the state of the controllers according to the event.
// Returns true if the event was handled.
func (c *Controllers) HandleEvent(ev Event) bool {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.quit = true
		c.LastKeyHandled = true
	case EventKeyboard:
		c.keyboard(ev)
	}

	return c.LastKeyHandled
}

func (c *Controllers) keyboard(ev EventKeyboard) {
	if ev.Repeat {
		return
	}

	if k, ok := KeypadKey(ev.Key); ok {
		c.keys[k] = ev.Down
		c.LastKeyHandled = true
		return
	}

	// emulation controls are acted upon when the key is pressed
	if !ev.Down {
		return
	}

	switch ev.Key {
	case KeyPause:
		c.togglePause = true
		c.LastKeyHandled = true
	case KeyReset:
		c.reset = true
		c.LastKeyHandled = true
	case KeyQuit:
		c.quit = true
		c.LastKeyHandled = true
	}
}

// SetKeys sets the state of every keypad key. Used by GUIs that poll the
// keyboard state rather than sending key events.
func (c *Controllers) SetKeys(keys keypad.State) {
	c.keys = keys
}

// ReleaseAll releases every keypad key.
func (c *Controllers) ReleaseAll() {
	c.keys = keypad.State{}
}

// Controls returns the current state of the controllers. Pause, reset and
// quit requests are cleared once they have been returned. The exception is
// quit, which once requested is returned by every subsequent call.
func (c *Controllers) Controls() Controls {
	ctrl := Controls{
		Keys:        c.keys,
		TogglePause: c.togglePause,
		Reset:       c.reset,
		Quit:        c.quit,
	}
	c.togglePause = false
	c.reset = false
	return ctrl
}

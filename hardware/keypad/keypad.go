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

// Package keypad represents the state of the sixteen key CHIP-8 keypad. The
// state is supplied by the input collaborator once per frame and read by the
// CPU.
package keypad

import "strings"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// State of every key on the keypad. True indicates that the key is pressed.
type State [NumKeys]bool

// Keypad holds the current keypad state.
type Keypad struct {
	state State
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k, p := range kp.state {
		if p {
			s.WriteByte("0123456789ABCDEF"[k])
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Set the state of every key.
func (kp *Keypad) Set(state State) {
	kp.state = state
}

// State returns the state of every key.
func (kp *Keypad) State() State {
	return kp.state
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.state = State{}
}

// Pressed returns true if the key is pressed. Only the low nibble of the key
// value is used.
func (kp *Keypad) Pressed(key uint8) bool {
	return kp.state[key&0x0f]
}

// FirstPressed returns the lowest numbered key that is pressed. The second
// return value is false if no key is pressed.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for k, p := range kp.state {
		if p {
			return uint8(k), true
		}
	}
	return 0, false
}

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

package termchip8

import (
	"github.com/jetsetilly/gopher8/gui/termchip8/easyterm"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/userinput"
)

// the number of frames a key is held for after being pressed
const holdFrames = 10

// decodeInput converts bytes read from the terminal into keyboard events.
// escape sequences, such as those sent by the cursor keys, are ignored
func decodeInput(b []byte) []userinput.EventKeyboard {
	var evs []userinput.EventKeyboard

	for i := 0; i < len(b); i++ {
		var key string

		switch b[i] {
		case easyterm.KeyEsc:
			if i+1 < len(b) && (b[i+1] == easyterm.EscCursor || b[i+1] == easyterm.EscSS3) {
				// skip to the final byte of the sequence
				i += 2
				for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
					i++
				}
				continue
			}
			key = userinput.KeyQuit
		case easyterm.KeySpace:
			key = userinput.KeyPause
		case easyterm.KeyBackspace, easyterm.KeyDelete:
			key = userinput.KeyReset
		default:
			key = string(rune(b[i]))
		}

		evs = append(evs, userinput.EventKeyboard{Key: key, Down: true})
	}

	return evs
}

// holder simulates key release for keys that are pressed in a terminal
type holder struct {
	frames [keypad.NumKeys]int
}

func (h *holder) press(k uint8) {
	h.frames[k&0x0f] = holdFrames
}

// tick should be called once per frame. it returns the state of the keypad
// before counting down the hold of every key
func (h *holder) tick() keypad.State {
	var state keypad.State
	for k := range h.frames {
		if h.frames[k] > 0 {
			state[k] = true
			h.frames[k]--
		}
	}
	return state
}

func (h *holder) releaseAll() {
	h.frames = [keypad.NumKeys]int{}
}

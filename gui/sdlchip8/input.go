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

package sdlchip8

import (
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Poll implements the userinput.Source interface. All pending SDL events are
// serviced before the keyboard state is read.
func (scr *SdlChip8) Poll() (userinput.Controls, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.ctrl.HandleEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.ctrl.HandleEvent(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				if err := scr.draw(); err != nil {
					return userinput.Controls{}, err
				}
			}
		}
	}

	// the keyboard state is more reliable than key events for the keypad. a
	// key released while the window does not have focus would otherwise
	// remain pressed
	state := sdl.GetKeyboardState()
	var keys keypad.State
	for k, sc := range scr.scancodes {
		if int(sc) < len(state) {
			keys[k] = state[sc] != 0
		}
	}
	scr.ctrl.SetKeys(keys)

	return scr.ctrl.Controls(), nil
}

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

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// EventQuit is sent when the GUI window is closed.
type EventQuit struct{}

// EventKeyboard is sent on a keyboard event.
type EventKeyboard struct {
	// key names follow the SDL convention. for example, "Q", "1", "Space",
	// "Escape"
	Key  string
	Down bool

	// the event is caused by the keyboard auto-repeat
	Repeat bool
}

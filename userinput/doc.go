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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated CHIP-8.
//
// It can be thought of as a translation layer between the GUI implementation
// and the keypad. The GUI sends EventKeyboard values to a Controllers
// instance, which keeps track of which keypad keys are held down and whether
// the user has requested that the emulation be paused, reset or stopped.
//
// The GUI implementation in use during development was SDL and so key names
// follow the SDL naming convention.
package userinput

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

// Package sdlchip8 is a simple front end for the CHIP-8 emulation using SDL.
// The SdlChip8 type implements both the television.PixelRenderer interface
// and the userinput.Source interface.
//
// SDL requires that window and event handling happen on the main thread of
// the program. The Television that SdlChip8 is attached to should therefore
// be run from the main goroutine, with the OS thread locked.
package sdlchip8

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

// Package termchip8 is a front end for the CHIP-8 emulation that runs in a
// POSIX terminal. Two rows of CHIP-8 pixels are drawn in every row of the
// terminal using the upper half block character, with the colour of the
// lower pixel as the background colour. A 24-bit colour capable terminal is
// required.
//
// Terminals do not report when a key has been released so a key press is
// treated as a key being held for a short number of frames. Keyboard
// auto-repeat will keep the key held for as long as the key is physically
// held down.
package termchip8

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

// Package display implements the 64x32 monochrome framebuffer. Pixels are
// toggled with an XOR operation and the framebuffer is only ever changed by
// the CPU's clear and draw instructions.
//
// Renderers do not access the framebuffer directly. Instead they are given a
// copy of the entire frame with the Snapshot() function.
package display

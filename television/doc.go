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

// Package television implements the frame driver for the CHIP-8 emulation.
// The Television type drives the VM forward one frame at a time. A frame is
// one sixtieth of a second, which is the rate at which the timers count down.
//
// The order of operations for every frame is as follows:
//
//  1. execute the per-frame budget of instructions (see below)
//  2. tick the delay and sound timers
//  3. send the framebuffer to every PixelRenderer
//  4. send the sound timer state to every AudioMixer
//  5. poll the userinput.Source and update the keypad
//  6. wait for the frame limiter
//
// Steps 1 and 2 only happen if the VM is in the Running state. The budget is
// derived from the instructions-per-second preference and is always at least
// one.
//
// The Television does not present any information itself, either visually or
// sonically. Instead, PixelRenderers and AudioMixers are added to perform
// those tasks.
package television

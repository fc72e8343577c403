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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The VM type is the root of the emulation and contains external references
// to all the CHIP-8 sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation); or it can be stepped instruction by instruction. Both
// methods are used by the frame driver in the television package.
//
// A fault in the CPU moves the VM into the govern.Ending state. Nothing more
// can happen until the VM is Reset().
package hardware

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

// Package dump writes human readable descriptions of the VM state. The
// functions are intended for diagnostic use and all work with a snapshot of
// the VM, as returned by the hardware.VM.Snapshot() function.
//
// The Graphviz() function writes the CPU state in the Graphviz dot format,
// suitable for rendering with the dot program.
package dump

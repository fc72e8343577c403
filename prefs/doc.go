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

// Package prefs facilitates the storage of preference values on disk.
//
// Values are represented by one of the types in the package (Bool, Int,
// String or Float) and are bound to a key with the Add() function of a Disk
// instance. The Disk then handles saving and loading of every bound value:
//
//	var ips prefs.Int
//
//	dsk, _ := prefs.NewDisk(filename)
//	_ = dsk.Add("cpu.ips", &ips)
//	_ = dsk.Load(true)
//
// The file format is plain text, one value per line, in the form:
//
//	key :: value
//
// Keys that are found in the file but which have not been added to the Disk
// instance are preserved when the file is saved. This allows more than one
// Disk instance to share the same file.
package prefs

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows each mode to have its own set
// of flags.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed
// with Parse(). Parsing happens one mode at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "HEADLESS", "DISASM")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "window scaling")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode, which is
// selected when the first argument after the flags is not a sub-mode. Mode
// comparisons are case insensitive.
//
// Flags can be bound directly to a preference value with AddPref(). The
// preference is only changed if the flag appears on the command line, so a
// value loaded from disk remains in effect otherwise. Preference hooks are
// honoured and an error from a hook is returned by Parse().
package modalflag

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

package modalflag

import (
	"github.com/jetsetilly/gopher8/prefs"
)

// Pref is implemented by the value types in the prefs package.
type Pref interface {
	Set(prefs.Value) error
	String() string
}

// AddPref binds a preference to a flag for the next call to Parse(). The
// preference is set only if the flag is present in the argument list.
func (md *Modes) AddPref(name string, p Pref, usage string) {
	if b, ok := p.(*prefs.Bool); ok {
		md.flags.Var(&boolPrefFlag{prefFlag{p: b}}, name, usage)
		return
	}
	md.flags.Var(&prefFlag{p: p}, name, usage)
}

// prefFlag implements the flag.Value interface.
type prefFlag struct {
	p Pref
}

func (f *prefFlag) String() string {
	// the flag package calls String() on a zero value of the type
	if f.p == nil {
		return ""
	}
	return f.p.String()
}

func (f *prefFlag) Set(s string) error {
	return f.p.Set(s)
}

// boolPrefFlag allows a boolean preference to be set with the flag name alone.
type boolPrefFlag struct {
	prefFlag
}

func (f *boolPrefFlag) IsBoolFlag() bool {
	return true
}

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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the VM type, but is not actually the VM itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel, for example when comparing the output of two executions.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main     Label = ""
	Headless Label = "headless"
	Test     Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the VM type, but is not actually the VM
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the prefrences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance will be
// created from the preferences file on disk. Providing a non-nil value allows
// the preferences of more than one VM instance to be synchronised.
//
// The random number generator is seeded with the RandSeed preference.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins := &Instance{
		Prefs:  prefs,
		Random: random.NewRandom(int64(prefs.RandSeed.Get().(int))),
	}

	return ins, nil
}

// NewTestInstance creates an Instance with default preferences that are not
// backed by disk. The random number generator always produces the same
// sequence of numbers.
func NewTestInstance() *Instance {
	ins := &Instance{
		Label:  Test,
		Prefs:  preferences.NewDefaultPreferences(),
		Random: random.NewRandom(0),
	}
	ins.Random.ZeroSeed = true
	ins.Random.Reset()
	return ins
}

// Normalise ensures the instance produces the same results every time it is
// used. This is useful for creating video digests that can be compared
// between runs.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Random.Reset()
}

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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// values survive a reload
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, x.Get().(bool), true)
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), 99)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")
}

func TestStringAndFloat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("colour", &s))
	test.ExpectSuccess(t, dsk.Add("ratio", &f))

	test.ExpectSuccess(t, s.Set("ffffffff"))
	test.ExpectSuccess(t, f.Set(1.5))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "colour :: ffffffff\nratio :: 1.5\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))

	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file has been created by the failed load
	cmpTmpFile(t, fn, "test :: true\n")
}

func TestUnknownKeysPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	a, _ := prefs.NewDisk(fn)
	var av prefs.Int
	test.ExpectSuccess(t, a.Add("a.value", &av))
	test.ExpectSuccess(t, av.Set(1))
	test.DemandSuccess(t, a.Save())

	b, _ := prefs.NewDisk(fn)
	var bv prefs.Int
	test.ExpectSuccess(t, b.Add("b.value", &bv))
	test.ExpectSuccess(t, bv.Set(2))
	test.DemandSuccess(t, b.Save())

	cmpTmpFile(t, fn, "a.value :: 1\nb.value :: 2\n")
}

func TestInvalidKeys(t *testing.T) {
	dsk, _ := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("with space", &v))
	test.ExpectSuccess(t, dsk.Add("ok", &v))
	test.ExpectFailure(t, dsk.Add("ok", &v))
}

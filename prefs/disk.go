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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key from the value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	DiskError     = "prefs: %v"
	NotPrefsFile  = "prefs: not a preferences file (%s)"
	ValueConflict = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file. Keys must not
// contain whitespace or the key separator.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their zero value. Default values should be applied by
// the owner of the Disk instance.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(ValueConflict, k, err)
		}
	}
	return nil
}

// read the preferences file into a map of raw strings. the returned map is
// empty if the file does not exist, in which case the error returned is
// NoPrefsFile.
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return raw, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return raw, curated.Errorf(NotPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		raw[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return raw, curated.Errorf(DiskError, err)
	}

	return raw, nil
}

// Save current preference values to disk. Entries in the existing file that
// are not known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, raw[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true then a missing
// preferences file is created with the current values. The NoPrefsFile error
// is still returned in that case.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ValueConflict, k, err)
			}
		}
	}

	return nil
}

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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a hash that will never match the test data
const testHash = "0000000000000000000000000000000000000000"

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	data := []byte{0x00, 0xe0, 0x12, 0x00}
	fn := writeROM(t, data)

	ld := romloader.NewLoader(fn, "")
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectSuccess(t, ld.IsRecognised())
	test.ExpectEquality(t, ld.ShortName(), "test")

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), len(data))
	test.ExpectEquality(t, len(ld.Hash), 40)

	// the same file loaded with the correct hash
	hash := ld.Hash
	ld = romloader.NewLoader(fn, hash)
	test.ExpectSuccess(t, ld.Load())

	// and with an incorrect hash
	ld = romloader.NewLoader(fn, testHash)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestBadROMs(t *testing.T) {
	ld := romloader.NewLoader(writeROM(t, []byte{}), "")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.EmptyROM))

	ld = romloader.NewLoader(writeROM(t, make([]byte, 4096-0x200+1)), "")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.ROMTooBig))

	ld = romloader.NewLoader(writeROM(t, make([]byte, 4096-0x200)), "")
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"), "")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))

	ld = romloader.NewLoader("ftp://example.com/test.ch8", "")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))
}

func TestLoadFromData(t *testing.T) {
	ld := romloader.NewLoader("embedded", "")
	test.ExpectFailure(t, ld.IsRecognised())
	test.ExpectSuccess(t, ld.LoadFromData([]byte{0x12, 0x00}))
	test.ExpectSuccess(t, ld.HasLoaded())
}

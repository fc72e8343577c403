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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	LoadError      = "romloader: %v"
	ROMTooBig      = "romloader: rom too big (%d bytes, max %d)"
	EmptyROM       = "romloader: rom is empty"
	UnexpectedHash = "romloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are recognised as CHIP-8
// programs. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program to load into the VM.
type Loader struct {
	// filename of program to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The hash argument can be empty.
func NewLoader(filename string, hash string) Loader {
	return Loader{
		Filename: filename,
		Hash:     strings.ToLower(strings.TrimSpace(hash)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// IsRecognised returns true if the filename has one of the recognised file
// extensions.
func (ld Loader) IsRecognised() bool {
	ext := strings.ToUpper(path.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	// a windows drive letter looks like a scheme to url.Parse() so only
	// accept schemes that are longer than one character
	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		// read one byte more than the maximum so that we can detect a rom
		// that is too big
		data, err = io.ReadAll(io.LimitReader(resp.Body, addresses.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	err = ld.check(data)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "romloader", "%s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// LoadFromData uses the data as though it had been loaded from the Filename.
// Useful for testing and for data that has been embedded in the executable.
func (ld *Loader) LoadFromData(data []byte) error {
	return ld.check(data)
}

// check the size and hash of the data. on success the Data and Hash fields of
// the Loader are updated
func (ld *Loader) check(data []byte) error {
	if len(data) == 0 {
		return curated.Errorf(EmptyROM)
	}
	if len(data) > addresses.MaxProgramSize {
		return curated.Errorf(ROMTooBig, len(data), addresses.MaxProgramSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8/curated"
)

// the name of the resource directory when it is found in the current working
// directory.
const localResourceDir = ".gopher8"

// the name of the resource directory when placed in the user's configuration
// directory.
const configResourceDir = "gopher8"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific base path. The subPth is
// created if it does not already exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", curated.Errorf("paths: %v", err)
		}
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(localResourceDir); err == nil && info.IsDir() {
		return localResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourceDir), nil
}

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

// Package paths contains functions to prepare paths for gopher8 resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory/file specified in the arguments. If a directory called ".gopher8"
// exists in the current working directory then that directory is used as the
// base path. This is useful during development. Otherwise the base path is a
// directory called "gopher8" in the user's configuration directory, as
// reported by os.UserConfigDir().
//
// The directory part of the resource path is created if it does not exist.
package paths

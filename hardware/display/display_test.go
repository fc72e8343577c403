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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestToggle(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectSuccess(t, fb.IsClear())

	// setting an unset pixel is not a collision
	test.ExpectFailure(t, fb.Toggle(10, 5, true))
	test.ExpectSuccess(t, fb.Pixel(10, 5))

	// toggling with a false value changes nothing
	test.ExpectFailure(t, fb.Toggle(10, 5, false))
	test.ExpectSuccess(t, fb.Pixel(10, 5))

	// toggling a set pixel is a collision and unsets the pixel
	test.ExpectSuccess(t, fb.Toggle(10, 5, true))
	test.ExpectFailure(t, fb.Pixel(10, 5))
	test.ExpectSuccess(t, fb.IsClear())

	// out of range coordinates are ignored
	test.ExpectFailure(t, fb.Toggle(display.Width, 0, true))
	test.ExpectFailure(t, fb.Toggle(0, display.Height, true))
	test.ExpectFailure(t, fb.Toggle(-1, 0, true))
	test.ExpectSuccess(t, fb.IsClear())
}

func TestClear(t *testing.T) {
	fb := display.NewFramebuffer()
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			fb.Toggle(x, y, true)
		}
	}
	test.ExpectFailure(t, fb.IsClear())
	fb.Clear()
	test.ExpectSuccess(t, fb.IsClear())
}

func TestSnapshot(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Toggle(0, 0, true)
	fb.Toggle(63, 31, true)

	frame := fb.Snapshot()
	test.ExpectSuccess(t, frame.Pixel(0, 0))
	test.ExpectSuccess(t, frame.Pixel(63, 31))

	// the snapshot is a copy
	fb.Clear()
	test.ExpectSuccess(t, frame.Pixel(0, 0))

	b := frame.Bytes()
	test.ExpectEquality(t, len(b), display.Width*display.Height/8)
	test.ExpectEquality(t, b[0], uint8(0x80))
	test.ExpectEquality(t, b[len(b)-1], uint8(0x01))

	s := frame.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	test.ExpectEquality(t, len(lines), display.Height)
	test.ExpectEquality(t, lines[0][0], uint8('#'))
	test.ExpectEquality(t, lines[0][1], uint8('.'))
	test.ExpectEquality(t, lines[31][63], uint8('#'))
}

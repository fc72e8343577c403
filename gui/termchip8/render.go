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

package termchip8

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// ansi control sequences
const (
	cursorHome  = "\033[H"
	clearScreen = "\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	normalPen   = "\033[0m"
)

const upperHalfBlock = '▀'

func penColour(c preferences.Colour) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func paperColour(c preferences.Colour) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

type renderer struct {
	fg preferences.Colour
	bg preferences.Colour
	sb strings.Builder
}

// render returns the frame as a string suitable for printing to the terminal.
// the cursor is moved to the home position before drawing
func (r *renderer) render(frame display.Frame) string {
	r.sb.Reset()
	r.sb.WriteString(cursorHome)

	colour := func(lit bool) preferences.Colour {
		if lit {
			return r.fg
		}
		return r.bg
	}

	for y := 0; y < display.Height; y += 2 {
		// colours are only changed when they differ from the previous
		// character in the same row
		var top, bottom bool
		for x := 0; x < display.Width; x++ {
			t := frame.Pixel(x, y)
			b := frame.Pixel(x, y+1)
			if x == 0 || t != top {
				r.sb.WriteString(penColour(colour(t)))
			}
			if x == 0 || b != bottom {
				r.sb.WriteString(paperColour(colour(b)))
			}
			top = t
			bottom = b
			r.sb.WriteRune(upperHalfBlock)
		}
		r.sb.WriteString(normalPen)
		r.sb.WriteString("\r\n")
	}

	return r.sb.String()
}

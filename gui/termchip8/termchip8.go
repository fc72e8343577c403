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
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui/termchip8/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// TermChip8 implements the television.PixelRenderer and userinput.Source
// interfaces for a POSIX terminal
type TermChip8 struct {
	term easyterm.Terminal
	rnd  renderer
	hold holder
	ctrl userinput.Controllers
}

// NewTermChip8 is the preferred method of initialisation for TermChip8. The
// terminal is put into cbreak mode and the screen is cleared.
func NewTermChip8(prefs *preferences.Preferences, input *os.File, output *os.File) (*TermChip8, error) {
	tc := &TermChip8{
		rnd: renderer{
			fg: prefs.ForegroundColour(),
			bg: prefs.BackgroundColour(),
		},
	}

	err := tc.term.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("termchip8: %v", err)
	}

	geom := tc.term.Geometry()
	if int(geom.Cols) < display.Width || int(geom.Rows) < display.Height/2 {
		logger.Logf(logger.Allow, "termchip8", "terminal is smaller than %dx%d", display.Width, display.Height/2)
	}

	tc.term.CBreakMode()
	tc.term.Print(clearScreen)
	tc.term.Print(hideCursor)

	return tc, nil
}

// NewFrame implements the television.PixelRenderer interface
func (tc *TermChip8) NewFrame(_ int, frame display.Frame) error {
	tc.term.Print(tc.rnd.render(frame))
	return nil
}

// EndRendering implements the television.PixelRenderer interface. The
// terminal is returned to canonical mode.
func (tc *TermChip8) EndRendering() error {
	tc.term.Print(normalPen)
	tc.term.Print(showCursor)
	tc.term.Print("\r\n")
	tc.term.CleanUp()
	return nil
}

// Poll implements the userinput.Source interface
func (tc *TermChip8) Poll() (userinput.Controls, error) {
	b, err := tc.term.ReadInput()
	if err != nil {
		return userinput.Controls{}, curated.Errorf("termchip8: %v", err)
	}

	for _, ev := range decodeInput(b) {
		if k, ok := userinput.KeypadKey(ev.Key); ok {
			tc.hold.press(k)
			continue
		}
		if ev.Key == userinput.KeyReset {
			tc.hold.releaseAll()
		}
		tc.ctrl.HandleEvent(ev)
	}

	tc.ctrl.SetKeys(tc.hold.tick())

	return tc.ctrl.Controls(), nil
}

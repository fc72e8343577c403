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

package sdlchip8

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SdlChip8 is a simple SDL implementation of the television.PixelRenderer
// and userinput.Source interfaces
type SdlChip8 struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// size of each CHIP-8 pixel in screen pixels
	scale int32

	fg       preferences.Colour
	bg       preferences.Colour
	outlines bool

	// the scancode for each keypad key
	scancodes [keypad.NumKeys]sdl.Scancode

	ctrl userinput.Controllers

	// the most recent frame. used to redraw the window when it is exposed
	// while the emulation is paused
	frame display.Frame
}

// NewSdlChip8 is the preferred method of initialisation for SdlChip8. SDL is
// initialised with the video and audio subsystems.
func NewSdlChip8(prefs *preferences.Preferences, title string) (*SdlChip8, error) {
	scr := &SdlChip8{
		scale:    int32(prefs.Scale.Get().(int)),
		fg:       prefs.ForegroundColour(),
		bg:       prefs.BackgroundColour(),
		outlines: prefs.Outlines.Get().(bool),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlchip8: %v", err)
	}

	w := int32(display.Width) * scr.scale
	h := int32(display.Height) * scr.scale

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s - %s", version.ApplicationName, title),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlchip8: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlchip8: %v", err)
	}

	for name, k := range userinput.Keymap {
		scr.scancodes[k] = sdl.GetScancodeFromName(name)
	}

	logger.Logf(logger.Allow, "sdlchip8", "window size: %dx%d", w, h)

	return scr, nil
}

// NewFrame implements the television.PixelRenderer interface
func (scr *SdlChip8) NewFrame(_ int, frame display.Frame) error {
	scr.frame = frame
	return scr.draw()
}

func (scr *SdlChip8) draw() error {
	err := scr.renderer.SetDrawColor(scr.bg.R, scr.bg.G, scr.bg.B, scr.bg.A)
	if err != nil {
		return curated.Errorf("sdlchip8: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlchip8: %v", err)
	}

	rects := make([]sdl.Rect, 0, display.Width*display.Height)
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if scr.frame.Pixel(x, y) {
				rects = append(rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	if len(rects) > 0 {
		err = scr.renderer.SetDrawColor(scr.fg.R, scr.fg.G, scr.fg.B, scr.fg.A)
		if err != nil {
			return curated.Errorf("sdlchip8: %v", err)
		}

		err = scr.renderer.FillRects(rects)
		if err != nil {
			return curated.Errorf("sdlchip8: %v", err)
		}

		// outlines are drawn in the background colour around every lit cell
		// and are only visible when the scale is large enough
		if scr.outlines && scr.scale > 2 {
			err = scr.renderer.SetDrawColor(scr.bg.R, scr.bg.G, scr.bg.B, scr.bg.A)
			if err != nil {
				return curated.Errorf("sdlchip8: %v", err)
			}

			err = scr.renderer.DrawRects(rects)
			if err != nil {
				return curated.Errorf("sdlchip8: %v", err)
			}
		}
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the television.PixelRenderer interface
func (scr *SdlChip8) EndRendering() error {
	var err error

	if scr.renderer != nil {
		err = scr.renderer.Destroy()
		if err != nil {
			return curated.Errorf("sdlchip8: %v", err)
		}
	}

	if scr.window != nil {
		err = scr.window.Destroy()
		if err != nil {
			return curated.Errorf("sdlchip8: %v", err)
		}
	}

	sdl.Quit()

	return nil
}

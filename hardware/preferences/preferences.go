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

package preferences

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Sentinal error patterns.
const (
	BadColour = "preferences: bad colour (%v)"
)

// Default preference values.
const (
	DefaultFX1EFlag      = true
	DefaultIPS           = 700
	DefaultRandSeed      = 0
	DefaultForeground    = "ffffffff"
	DefaultBackground    = "000000ff"
	DefaultScale         = 20
	DefaultOutlines      = true
	DefaultToneFrequency = 440
)

// Limits placed on the instructions per second preference.
const (
	MinIPS = 1
	MaxIPS = 100000
)

// Preferences defines and collates all the preference values used by the
// emulation.
type Preferences struct {
	dsk *prefs.Disk

	// whether FX1E sets VF when the result is outside of the addressable
	// range. if false VF is never touched by the instruction
	FX1EFlag prefs.Bool

	// the number of instructions executed per second. the number of
	// instructions executed per frame is derived from this
	IPS prefs.Int

	// seed for the random number generator used by CXNN. a value of zero means
	// that the generator is seeded with the current time
	RandSeed prefs.Int

	// colours of the set and unset pixels. hex encoded RGBA
	Foreground prefs.String
	Background prefs.String

	// the number of screen pixels for each side of a CHIP-8 pixel
	Scale prefs.Int

	// draw a thin border around set pixels
	Outlines prefs.Bool

	// frequency of the tone in Hz
	ToneFrequency prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default preferences file, which will
// be created if it does not exist.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.addToDisk()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
		logger.Logf(logger.Allow, "preferences", "created new preferences file (%s)", pth)
	}

	return p, nil
}

// NewDefaultPreferences creates a Preferences instance with the default values
// and no disk backing. Save() and Load() are no-ops.
func NewDefaultPreferences() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}

	p.IPS.SetHookPre(func(v prefs.Value) error {
		ips, ok := v.(int)
		if !ok {
			return fmt.Errorf("preferences: instructions per second must be an integer")
		}
		if ips < MinIPS || ips > MaxIPS {
			return fmt.Errorf("preferences: instructions per second must be between %d and %d", MinIPS, MaxIPS)
		}
		return nil
	})

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s, ok := v.(int); !ok || s < 1 {
			return fmt.Errorf("preferences: scale must be a positive integer")
		}
		return nil
	})

	colourCheck := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.Foreground.SetHookPre(colourCheck)
	p.Background.SetHookPre(colourCheck)

	p.SetDefaults()

	return p
}

func (p *Preferences) addToDisk() error {
	for _, e := range []struct {
		key string
		p   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"cpu.fx1e.flag", &p.FX1EFlag},
		{"cpu.ips", &p.IPS},
		{"hardware.randseed", &p.RandSeed},
		{"display.fg", &p.Foreground},
		{"display.bg", &p.Background},
		{"display.scale", &p.Scale},
		{"display.outlines", &p.Outlines},
		{"audio.freq", &p.ToneFrequency},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with default values
	_ = p.FX1EFlag.Set(DefaultFX1EFlag)
	_ = p.IPS.Set(DefaultIPS)
	_ = p.RandSeed.Set(DefaultRandSeed)
	_ = p.Foreground.Set(DefaultForeground)
	_ = p.Background.Set(DefaultBackground)
	_ = p.Scale.Set(DefaultScale)
	_ = p.Outlines.Set(DefaultOutlines)
	_ = p.ToneFrequency.Set(DefaultToneFrequency)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// ClampIPS forces the value into the range allowed by the IPS preference.
func ClampIPS(ips int) int {
	if ips < MinIPS {
		return MinIPS
	}
	if ips > MaxIPS {
		return MaxIPS
	}
	return ips
}

// Colour is an RGBA colour value.
type Colour struct {
	R, G, B, A uint8
}

// ParseColour converts a hex encoded string to a Colour value. The string
// must be either six (RGB) or eight (RGBA) hex digits long. An optional
// leading '#' is ignored. The alpha channel is opaque if it is not specified.
func ParseColour(s string) (Colour, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 6:
		s = s + "ff"
	case 8:
	default:
		return Colour{}, curated.Errorf(BadColour, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Colour{}, curated.Errorf(BadColour, s)
	}

	return Colour{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ForegroundColour returns the parsed value of the Foreground preference.
func (p *Preferences) ForegroundColour() Colour {
	c, _ := ParseColour(p.Foreground.String())
	return c
}

// BackgroundColour returns the parsed value of the Background preference.
func (p *Preferences) BackgroundColour() Colour {
	c, _ := ParseColour(p.Background.String())
	return c
}

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

package display

import "strings"

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a complete copy of the framebuffer. Pixels are stored in row-major
// order.
type Frame [Width * Height]bool

// Pixel returns the state of the pixel at x, y. Coordinates outside of the
// framebuffer are always unset.
func (f *Frame) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y*Width+x]
}

// Bytes packs the frame into a slice of bytes, eight pixels per byte with the
// leftmost pixel in the most significant bit.
func (f *Frame) Bytes() []uint8 {
	b := make([]uint8, len(f)/8)
	for i, p := range f {
		if p {
			b[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b
}

// String returns the frame drawn with one character per pixel.
func (f *Frame) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f[y*Width+x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Framebuffer is the CHIP-8 display.
type Framebuffer struct {
	pixels Frame
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear unsets every pixel.
func (fb *Framebuffer) Clear() {
	fb.pixels = Frame{}
}

// Toggle the pixel at x, y. The pixel is XORed with the value of set so a false
// value does not change the framebuffer. Returns true if the pixel was set
// before the toggle and is now unset. Coordinates outside of the framebuffer
// are ignored.
func (fb *Framebuffer) Toggle(x int, y int, set bool) bool {
	if !set || x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	i := y*Width + x
	collision := fb.pixels[i]
	fb.pixels[i] = !fb.pixels[i]
	return collision
}

// Pixel returns the state of the pixel at x, y.
func (fb *Framebuffer) Pixel(x int, y int) bool {
	return fb.pixels.Pixel(x, y)
}

// Snapshot returns a copy of the current frame.
func (fb *Framebuffer) Snapshot() Frame {
	return fb.pixels
}

// IsClear returns true if no pixels are set.
func (fb *Framebuffer) IsClear() bool {
	for _, p := range fb.pixels {
		if p {
			return false
		}
	}
	return true
}

func (fb *Framebuffer) String() string {
	return fb.pixels.String()
}

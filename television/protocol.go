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

package television

import "github.com/jetsetilly/gopher8/hardware/display"

// PixelRenderer implementations display, or otherwise work with, the visual
// output of the VM. For example digest.Video.
//
// Renderers are only ever given a complete frame. The frame is a copy and can
// be kept by the renderer if required.
type PixelRenderer interface {
	// NewFrame is called once per frame with the frame number and a copy of
	// the framebuffer
	NewFrame(frameNum int, frame display.Frame) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with the sound output of the VM. The only
// sound the CHIP-8 can make is a single tone, which is audible while the sound
// timer is not zero.
type AudioMixer interface {
	// SetAudio is called once per frame with the value of the sound timer. The
	// toneEnded argument is true on the frame the sound timer reached zero.
	SetAudio(sound uint8, toneEnded bool) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

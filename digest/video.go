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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the television.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. it does not display the
// image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// length of pixels array contains enough room for the previous frames
	// digest value
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height/8),
	}
}

// Hash implements digest.Digest interface
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the frame number of the most recent frame.
func (dig Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements television.PixelRenderer interface
func (dig *Video) NewFrame(frameNum int, frame display.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: %v", "digest error during new frame")
	}
	copy(dig.pixels[n:], frame.Bytes())
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements television.PixelRenderer interface
func (dig *Video) EndRendering() error {
	return nil
}

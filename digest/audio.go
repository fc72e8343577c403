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
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024

// the buffer start is the point at which the buffer has been sufficiently
// filled to create a new digest value. the first sha1.Size bytes
// of the buffer are reserved for the previous digest value
const audioBufferStart = sha1.Size

// Audio implements the television.AudioMixer interface
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements digest.Digest interface. Any unflushed audio data is
// included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		_ = dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the television.AudioMixer interface. The sound timer
// value and the tone edge are both recorded.
func (dig *Audio) SetAudio(sound uint8, toneEnded bool) error {
	dig.buffer[dig.bufferCt] = sound
	dig.bufferCt++

	var edge uint8
	if toneEnded {
		edge = 1
	}
	dig.buffer[dig.bufferCt] = edge
	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		return dig.flush()
	}

	return nil
}

func (dig *Audio) flush() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: audio: %v", "digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing implements the television.AudioMixer interface
func (dig *Audio) EndMixing() error {
	return nil
}

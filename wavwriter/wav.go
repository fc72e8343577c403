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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for short sessions
// and for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"
)

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename string
	tone     *tone.Tone
	buffer   []int

	// one frame of samples. reused every frame
	frame []uint8

	// the sound timer value in the previous frame
	prevSound uint8
}

// New is the preferred method of initialisation for the WavWriter type. The
// tone argument is the sound used when the sound timer is running.
func New(filename string, t *tone.Tone) (*WavWriter, error) {
	if t == nil {
		return nil, curated.Errorf("wavwriter: %v", "no tone specified")
	}

	aw := &WavWriter{
		filename: filename,
		tone:     t,
		buffer:   make([]int, 0),
		frame:    make([]uint8, tone.SamplesPerFrame),
	}

	return aw, nil
}

// SetAudio implements the television.AudioMixer interface. Each call adds
// one frame of samples to the recording.
func (aw *WavWriter) SetAudio(sound uint8, toneEnded bool) error {
	if sound > 0 {
		if aw.prevSound == 0 {
			aw.tone.Rewind()
		}
		aw.tone.Fill(aw.frame)
	} else {
		tone.FillSilence(aw.frame)
	}
	aw.prevSound = sound

	for _, v := range aw.frame {
		aw.buffer = append(aw.buffer, int(v))
	}

	return nil
}

// NumSamples returns the number of samples that will be written by
// EndMixing().
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, tone.SampleFreq, 8, 1, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  tone.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

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

// Package sdlaudio plays the CHIP-8 tone through an SDL audio device.
package sdlaudio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"

	"github.com/veandco/go-sdl2/sdl"
)

// the maximum number of frames of audio that can be queued. when the
// emulation is running faster than 60fps the queue would otherwise grow
// without limit and the tone would continue long after the sound timer has
// stopped
const maxQueuedFrames = 4

// Audio outputs sound using SDL
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	tone *tone.Tone

	// one frame of samples. reused every frame
	frame []uint8

	// the sound timer value in the previous frame
	prevSound uint8
}

// NewAudio is the preferred method of initialisation for the Audio Type. SDL
// should have been initialised with the audio subsystem before calling this
// function.
func NewAudio(t *tone.Tone) (*Audio, error) {
	if t == nil {
		return nil, curated.Errorf("sdlaudio: %v", "no tone specified")
	}

	aud := &Audio{
		tone:  t,
		frame: make([]uint8, tone.SamplesPerFrame),
	}

	spec := &sdl.AudioSpec{
		Freq:     tone.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(tone.SamplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %dHz", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)
	logger.Logf(logger.Allow, "sdlaudio", "tone: %s", aud.tone.Name)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface
func (aud *Audio) SetAudio(sound uint8, toneEnded bool) error {
	defer func() {
		aud.prevSound = sound
	}()

	if toneEnded {
		sdl.ClearQueuedAudio(aud.id)
		return nil
	}

	if sound == 0 {
		return nil
	}

	if aud.prevSound == 0 {
		aud.tone.Rewind()
	}

	if sdl.GetQueuedAudioSize(aud.id) >= uint32(len(aud.frame)*maxQueuedFrames) {
		return nil
	}

	aud.tone.Fill(aud.frame)

	err := sdl.QueueAudio(aud.id, aud.frame)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}

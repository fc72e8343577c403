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

package tone

// SampleFreq is the sample rate of all tone data.
const SampleFreq = 24000

// SamplesPerFrame is the number of samples required for one frame of
// emulation at 60Hz.
const SamplesPerFrame = SampleFreq / 60

// Silence is the value of a silent 8-bit unsigned sample.
const Silence = 0x80

// amplitude of the square wave either side of Silence
const amplitude = 0x40

// Tone is a repeating sequence of samples.
type Tone struct {
	// short description of the tone. suitable for logging
	Name string

	samples []uint8
	pos     int
}

// NewSquareWave creates a Tone for a square wave of the specified frequency.
// The period of the wave is rounded to a whole number of samples and is
// never shorter than two samples.
func NewSquareWave(freq int, sampleFreq int) *Tone {
	if freq < 1 {
		freq = 1
	}

	period := sampleFreq / freq
	if period < 2 {
		period = 2
	}

	t := &Tone{
		Name:    "square wave",
		samples: make([]uint8, period),
	}

	for i := range t.samples {
		if i < period/2 {
			t.samples[i] = Silence + amplitude
		} else {
			t.samples[i] = Silence - amplitude
		}
	}

	return t
}

// Len returns the number of samples in one repetition of the tone.
func (t *Tone) Len() int {
	return len(t.samples)
}

// Rewind the tone so that the next call to Fill() starts at the beginning.
func (t *Tone) Rewind() {
	t.pos = 0
}

// Fill the buffer with samples. The tone continues from where the previous
// call to Fill() ended, wrapping around to the beginning of the tone as
// required.
func (t *Tone) Fill(buf []uint8) {
	if len(t.samples) == 0 {
		FillSilence(buf)
		return
	}

	for i := range buf {
		buf[i] = t.samples[t.pos]
		t.pos++
		if t.pos >= len(t.samples) {
			t.pos = 0
		}
	}
}

// FillSilence fills the buffer with silent samples.
func FillSilence(buf []uint8) {
	for i := range buf {
		buf[i] = Silence
	}
}

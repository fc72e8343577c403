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

package tone_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/tone"
)

func TestSquareWave(t *testing.T) {
	sq := tone.NewSquareWave(1000, tone.SampleFreq)
	test.ExpectEquality(t, sq.Len(), 24)

	buf := make([]uint8, 24)
	sq.Fill(buf)
	for i := 0; i < 12; i++ {
		test.ExpectEquality(t, buf[i], uint8(0xc0))
	}
	for i := 12; i < 24; i++ {
		test.ExpectEquality(t, buf[i], uint8(0x40))
	}

	// the wave continues from where it left off
	buf = make([]uint8, 6)
	sq.Fill(buf[:3])
	sq.Fill(buf[3:])
	for _, v := range buf {
		test.ExpectEquality(t, v, uint8(0xc0))
	}

	// rewinding starts the wave again from the beginning of the high part
	sq.Rewind()
	buf = make([]uint8, 13)
	sq.Fill(buf)
	test.ExpectEquality(t, buf[11], uint8(0xc0))
	test.ExpectEquality(t, buf[12], uint8(0x40))
}

func TestSquareWaveLimits(t *testing.T) {
	sq := tone.NewSquareWave(0, tone.SampleFreq)
	test.ExpectEquality(t, sq.Len(), tone.SampleFreq)

	sq = tone.NewSquareWave(tone.SampleFreq*2, tone.SampleFreq)
	test.ExpectEquality(t, sq.Len(), 2)
}

func TestSilence(t *testing.T) {
	buf := []uint8{1, 2, 3}
	tone.FillSilence(buf)
	for _, v := range buf {
		test.ExpectEquality(t, v, uint8(tone.Silence))
	}
}

func TestUnsupportedSample(t *testing.T) {
	_, err := tone.LoadSample("beep.ogg")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, tone.UnsupportedFormat))
}

func TestMissingSample(t *testing.T) {
	_, err := tone.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, tone.SampleError))
}

func writeWAV(t *testing.T, filename string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 8, 1, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 8,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, filename, tone.SampleFreq, []int{0xc0, 0xc0, 0x40, 0x40, 0x80})

	smp, err := tone.LoadSample(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, smp.Name, "beep.wav")
	test.DemandEquality(t, smp.Len(), 5)

	buf := make([]uint8, 5)
	smp.Fill(buf)
	test.ExpectEquality(t, buf[0], uint8(0xc0))
	test.ExpectEquality(t, buf[1], uint8(0xc0))
	test.ExpectEquality(t, buf[2], uint8(0x40))
	test.ExpectEquality(t, buf[3], uint8(0x40))
	test.ExpectEquality(t, buf[4], uint8(0x80))
}

func TestLoadWAVResampled(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "beep.wav")

	// half the sample rate. every sample should appear twice
	writeWAV(t, filename, tone.SampleFreq/2, []int{0xc0, 0x40})

	smp, err := tone.LoadSample(filename)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, smp.Len(), 4)

	buf := make([]uint8, 4)
	smp.Fill(buf)
	test.ExpectEquality(t, buf[0], uint8(0xc0))
	test.ExpectEquality(t, buf[1], uint8(0xc0))
	test.ExpectEquality(t, buf[2], uint8(0x40))
	test.ExpectEquality(t, buf[3], uint8(0x40))
}

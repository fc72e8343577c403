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

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "tone: unsupported file format (%s)"
	SampleError       = "tone: %v"
)

const logTag = "tone"

// LoadSample creates a Tone from a WAV or MP3 file. Only the first channel of
// the file is used and the data is resampled to SampleFreq.
func LoadSample(filename string) (*Tone, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".mp3" {
		return nil, curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}
	defer f.Close()

	var data []float32
	var sampleRate int

	switch ext {
	case ".wav":
		data, sampleRate, err = decodeWAV(f)
	case ".mp3":
		data, sampleRate, err = decodeMP3(f)
	}
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}

	if len(data) == 0 || sampleRate == 0 {
		return nil, curated.Errorf(SampleError, "no sample data")
	}

	t := &Tone{
		Name:    filepath.Base(filename),
		samples: resample(data, sampleRate, SampleFreq),
	}

	logger.Logf(logger.Allow, logTag, "loaded %s (%dHz, %d samples)", t.Name, sampleRate, len(data))

	return t, nil
}

// data returned as floating point values in the range -1.0 to 1.0
func decodeWAV(r io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, 0, curated.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// 8-bit wav data is unsigned and the conversion to float leaves the
	// values in the range 0.0 to 2.0
	var bias float32
	if buf.SourceBitDepth == 8 {
		bias = 1.0
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// first channel only
	data := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		data = append(data, floatBuf.Data[i]-bias)
	}

	return data, int(dec.SampleRate), nil
}

// data returned as floating point values in the range -1.0 to 1.0
func decodeMP3(r io.Reader) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	// the decoded stream is always 16bit little-endian stereo, even if the
	// source is a single channel. four bytes per sample
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	// left channel only
	data := make([]float32, 0, len(raw)/4)
	for i := 0; i+1 < len(raw); i += 4 {
		v := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
		data = append(data, float32(v)/32768.0)
	}

	return data, dec.SampleRate(), nil
}

// nearest neighbour resampling and conversion to 8-bit unsigned
func resample(data []float32, from int, to int) []uint8 {
	n := int(int64(len(data)) * int64(to) / int64(from))
	if n < 1 {
		n = 1
	}

	out := make([]uint8, n)
	for i := range out {
		j := int(int64(i) * int64(from) / int64(to))
		if j >= len(data) {
			j = len(data) - 1
		}
		out[i] = toUnsigned(data[j])
	}

	return out
}

func toUnsigned(f float32) uint8 {
	v := int(f*128) + Silence
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

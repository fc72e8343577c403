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

// Package tone creates the sound the CHIP-8 makes while the sound timer is
// running. The sound is either a square wave of a given frequency or a sample
// loaded from a WAV or MP3 file.
//
// All tones are 8-bit unsigned mono PCM at SampleFreq, which is the format
// used by both the SDL audio mixer and the WAV writer.
package tone

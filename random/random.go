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

package random

import (
	"math/rand"
	"time"
)

// Random is a source of random numbers for the emulation.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// use zero seed rather than the seed supplied to NewRandom(). changes
	// to this field take effect on the next call to Reset()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed value of zero will cause the generator to be seeded with the current
// time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := &Random{seed: seed}
	rnd.Reset()
	return rnd
}

// Reset the sequence of random numbers to the beginning.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rnd = rand.New(rand.NewSource(0))
	} else {
		rnd.rnd = rand.New(rand.NewSource(rnd.seed))
	}
}

// Seed returns the seed used by the generator.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.seed
}

// Byte returns a random value in the range 0 to 255 inclusive.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rnd.Intn(256))
}

// Intn returns a random value in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}

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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := keypad.NewKeypad()

	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, kp.String(), "----------------")

	var st keypad.State
	st[0x3] = true
	st[0x7] = true
	kp.Set(st)

	k, ok := kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x3))

	test.ExpectSuccess(t, kp.Pressed(0x07))
	test.ExpectFailure(t, kp.Pressed(0x08))

	// only the low nibble is used
	test.ExpectSuccess(t, kp.Pressed(0x13))
	test.ExpectSuccess(t, kp.Pressed(0xf7))

	test.ExpectEquality(t, kp.String(), "---3---7--------")

	kp.Reset()
	test.ExpectFailure(t, kp.Pressed(0x3))
}

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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packages commonly wrap errors with their own prefix. the prefix should
	// not be repeated
	f := curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", e))
	test.ExpectEquality(t, f.Error(), "cpu: test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectFailure(t, curated.Is(f, testError))

	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Is(errors.New("plain"), testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
	test.ExpectFailure(t, curated.Has(e, testErrorB))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf(testError, "foo")))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("romloader: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectEquality(t, e.Error(), "romloader: unexpected EOF")
}

func TestSentinelChain(t *testing.T) {
	e := curated.Errorf(memory.AddressError, 0x1000)
	f := curated.Errorf("cpu: %04x at %#04x: %v", 0xf165, 0x20a, e)

	test.ExpectSuccess(t, curated.Has(f, memory.AddressError))
	test.ExpectFailure(t, curated.Is(f, memory.AddressError))
	test.ExpectEquality(t, f.Error(), "cpu: f165 at 0x020a: memory: address out of range (0x1000)")

	g := curated.Errorf("romloader: %v", curated.Errorf("romloader: rom is empty"))
	test.ExpectEquality(t, g.Error(), "romloader: rom is empty")
}

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later.
//
// The Is() function checks whether an error was created with a particular
// pattern:
//
//	e := curated.Errorf(memory.AddressError, 0x1000)
//
//	if curated.Is(e, memory.AddressError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the error chain:
//
//	e := curated.Errorf(memory.AddressError, 0x1000)
//	f := curated.Errorf(cpu.ExecutionFault, 0xf165, 0x20a, e)
//
//	if curated.Has(f, memory.AddressError) {
//		fmt.Println("true")
//	}
//
//	if curated.Is(f, memory.AddressError) {
//		fmt.Println("true")
//	}
//
// Only the first test prints 'true'. Error f was created with the
// cpu.ExecutionFault pattern and the AddressError is wrapped inside it.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. An uncurated error is an unexpected error.
//
// Curated errors implement Unwrap() so the Is() and As() functions in the
// standard errors package also work through the chain.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. A chain is composed of parts separated by the
// sub-string ": ". For example, wrapping an error twice with the same prefix:
//
//	e := curated.Errorf("romloader: %v", curated.Errorf("romloader: rom is empty"))
//
// prints as:
//
//	romloader: rom is empty
//
// and not:
//
//	romloader: romloader: rom is empty
//
// Sentinal patterns are stored as const strings in the package that raises
// them, suitably named and commented. For example, registers.StackOverflow
// and memory.ProtectedAddress.
package curated

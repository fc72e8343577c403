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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/addresses"
)

// Sentinal error patterns.
const (
	StackOverflow  = "stack: overflow (depth %d)"
	StackUnderflow = "stack: underflow"
)

// Stack of return addresses.
type Stack struct {
	entries [addresses.StackDepth]uint16
	depth   int
}

func (sp Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d", sp.depth))
	for i := 0; i < sp.depth; i++ {
		s.WriteString(fmt.Sprintf(" %#04x", sp.entries[i]))
	}
	return s.String()
}

// Depth returns the number of entries on the stack.
func (sp Stack) Depth() int {
	return sp.depth
}

// Entries returns a copy of the entries currently on the stack, bottom first.
func (sp Stack) Entries() []uint16 {
	e := make([]uint16, sp.depth)
	copy(e, sp.entries[:sp.depth])
	return e
}

// Reset empties the stack.
func (sp *Stack) Reset() {
	sp.entries = [addresses.StackDepth]uint16{}
	sp.depth = 0
}

// Push an address onto the stack.
func (sp *Stack) Push(address uint16) error {
	if sp.depth >= len(sp.entries) {
		return curated.Errorf(StackOverflow, sp.depth)
	}
	sp.entries[sp.depth] = address
	sp.depth++
	return nil
}

// Pop the most recently pushed address from the stack.
func (sp *Stack) Pop() (uint16, error) {
	if sp.depth == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	sp.depth--
	return sp.entries[sp.depth], nil
}

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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestResultString(t *testing.T) {
	var r execution.Result
	test.ExpectEquality(t, r.String(), "no instruction executed")

	r = execution.Result{
		Address:     0x200,
		Opcode:      0xf30a,
		Instruction: instructions.Decode(0xf30a),
		Waiting:     true,
		Final:       true,
	}
	test.ExpectEquality(t, r.String(), "0x0200 f30a LD V3, K (waiting for key)")

	r.Opcode = 0xb000
	r.Instruction = instructions.Decode(0xb000)
	r.Outcome = execution.Unimplemented
	r.Waiting = false
	test.ExpectEquality(t, r.String(), "0x0200 b000 DW 0xb000 (unimplemented)")

	r.Reset()
	test.ExpectFailure(t, r.Final)
	test.ExpectEquality(t, r.Outcome.String(), "success")
}

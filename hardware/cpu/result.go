// This file is part of PicoComputer.
//
// PicoComputer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PicoComputer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PicoComputer.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
)

// Result records the most recent call to ExecuteInstruction().
type Result struct {
	// the value of the program counter when the instruction was executed
	Address int

	Instruction instructions.Instruction

	// the program counter was changed by something other than advancing to
	// the next instruction
	Branched bool

	// the instruction was executed successfully
	Final bool
}

// Reset the result to the state it would be in after a CPU reset.
func (r *Result) Reset() {
	*r = Result{Address: -1}
}

func (r Result) String() string {
	if r.Address < 0 {
		return "no instruction executed"
	}
	s := fmt.Sprintf("%d: %s", r.Address, r.Instruction)
	if !r.Final {
		s = fmt.Sprintf("%s [not completed]", s)
	}
	return s
}

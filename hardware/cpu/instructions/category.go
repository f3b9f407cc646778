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

package instructions

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	// no effect other than advancing the program counter
	None EffectCategory = iota

	// the first operand is written to
	Write

	// the status flags are changed but no operand is written to
	Compare

	// the program counter is changed depending on the operands or the status
	// flags
	Flow

	// the stack and the program counter are changed
	Subroutine

	// the input tape or the output log are used
	IO

	// the machine is halted
	Halt
)

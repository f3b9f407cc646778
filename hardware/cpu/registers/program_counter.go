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

package registers

import (
	"fmt"
)

// ProgramCounter is the index of the next instruction to execute.
type ProgramCounter struct {
	value int
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter.
func NewProgramCounter(val int) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the canonical name of the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%d", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() int {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val int) {
	pc.value = val
}

// Add a value to the PC.
func (pc *ProgramCounter) Add(val int) {
	pc.value += val
}

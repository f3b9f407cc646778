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

// AddressingMode describes how the value of an operand is found.
type AddressingMode int

// List of supported addressing modes.
const (
	// the operand names a register
	Register AddressingMode = iota

	// the value is stored in the instruction. jump targets are always
	// immediate values
	Immediate

	// the value is stored in memory at the address given in the instruction
	Direct

	// the value is stored in memory at the address held in a register
	Indirect

	// the value is stored in memory at the address held in another memory
	// cell. the pointer is a single cell so it can address the first 256
	// cells only
	IndirectMemory
)

func (m AddressingMode) String() string {
	switch m {
	case Register:
		return "register"
	case Immediate:
		return "immediate"
	case Direct:
		return "direct"
	case Indirect:
		return "indirect"
	case IndirectMemory:
		return "indirect memory"
	}
	return "unknown addressing mode"
}

// IsMemory returns true if the addressing mode refers to a memory cell.
func (m AddressingMode) IsMemory() bool {
	return m == Direct || m == Indirect || m == IndirectMemory
}

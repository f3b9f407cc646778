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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// Operand of an instruction.
type Operand struct {
	Mode AddressingMode

	// the register for the Register and Indirect addressing modes
	Register registers.ID

	// the value for the Immediate mode, the address for the Direct mode or
	// the address of the pointer for the IndirectMemory mode
	Value int

	// the symbol or label used in the source, if any. for display only
	Symbol string
}

// Reg returns an operand that names a register.
func Reg(id registers.ID) Operand {
	return Operand{Mode: Register, Register: id}
}

// Imm returns an immediate operand.
func Imm(v int) Operand {
	return Operand{Mode: Immediate, Value: v}
}

// Dir returns an operand for the memory cell at address.
func Dir(address int) Operand {
	return Operand{Mode: Direct, Value: address}
}

// Ind returns an operand for the memory cell at the address held in the
// register.
func Ind(id registers.ID) Operand {
	return Operand{Mode: Indirect, Register: id}
}

// IndMem returns an operand for the memory cell at the address held in the
// memory cell at pointer.
func IndMem(pointer int) Operand {
	return Operand{Mode: IndirectMemory, Value: pointer}
}

func (o Operand) String() string {
	switch o.Mode {
	case Register:
		return o.Register.String()
	case Immediate:
		if o.Symbol != "" {
			return fmt.Sprintf("#%s", o.Symbol)
		}
		return fmt.Sprintf("#%d", o.Value)
	case Direct:
		if o.Symbol != "" {
			return o.Symbol
		}
		return fmt.Sprintf("[%d]", o.Value)
	case Indirect:
		return fmt.Sprintf("(%s)", o.Register)
	case IndirectMemory:
		if o.Symbol != "" {
			return fmt.Sprintf("(%s)", o.Symbol)
		}
		return fmt.Sprintf("(%d)", o.Value)
	}
	return "?"
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand

	// the line in the source file. zero if not known
	Line int
}

// New returns an instruction with the opcode and operands.
func New(op Opcode, operands ...Operand) Instruction {
	return Instruction{Opcode: op, Operands: operands}
}

func (ins Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(ins.Opcode.String())
	defn, _ := GetDefinition(ins.Opcode)
	for i, o := range ins.Operands {
		if i == 0 {
			s.WriteRune(' ')
		} else {
			s.WriteString(", ")
		}

		// jump targets are shown by label if possible
		if i == defn.Target && o.Mode == Immediate && o.Symbol != "" {
			s.WriteString(o.Symbol)
		} else {
			s.WriteString(o.String())
		}
	}
	return s.String()
}

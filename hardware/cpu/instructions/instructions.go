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
)

// Opcode identifies an instruction.
type Opcode int

// List of opcodes.
const (
	NOP Opcode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	AND
	OR
	XOR
	CMP
	JMP
	JEQ
	JNE
	JGT
	JLT
	BEQ
	BGT
	JSR
	RTS
	IN
	OUT
	HALT

	// the number of opcodes in the instruction set
	NumOpcodes int = iota
)

func (op Opcode) String() string {
	if defn, ok := GetDefinition(op); ok {
		return defn.Mnemonic
	}
	return fmt.Sprintf("unknown opcode (%d)", int(op))
}

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	Opcode      Opcode
	Mnemonic    string
	MinOperands int
	MaxOperands int
	Effect      EffectCategory

	// the operand, counting from zero, which is a jump target. -1 if there is
	// no jump target
	Target int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.MinOperands == defn.MaxOperands {
		return fmt.Sprintf("%s (%d operands)", defn.Mnemonic, defn.MinOperands)
	}
	return fmt.Sprintf("%s (%d to %d operands)", defn.Mnemonic, defn.MinOperands, defn.MaxOperands)
}

// IsBranch returns true if the instruction changes the program counter
// depending on a condition.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow && defn.Opcode != JMP
}

var definitions = [NumOpcodes]Definition{
	{Opcode: NOP, Mnemonic: "NOP", MinOperands: 0, MaxOperands: 0, Effect: None, Target: -1},
	{Opcode: MOV, Mnemonic: "MOV", MinOperands: 2, MaxOperands: 2, Effect: Write, Target: -1},
	{Opcode: ADD, Mnemonic: "ADD", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: SUB, Mnemonic: "SUB", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: MUL, Mnemonic: "MUL", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: DIV, Mnemonic: "DIV", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: AND, Mnemonic: "AND", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: OR, Mnemonic: "OR", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: XOR, Mnemonic: "XOR", MinOperands: 2, MaxOperands: 3, Effect: Write, Target: -1},
	{Opcode: CMP, Mnemonic: "CMP", MinOperands: 2, MaxOperands: 2, Effect: Compare, Target: -1},
	{Opcode: JMP, Mnemonic: "JMP", MinOperands: 1, MaxOperands: 1, Effect: Flow, Target: 0},
	{Opcode: JEQ, Mnemonic: "JEQ", MinOperands: 1, MaxOperands: 1, Effect: Flow, Target: 0},
	{Opcode: JNE, Mnemonic: "JNE", MinOperands: 1, MaxOperands: 1, Effect: Flow, Target: 0},
	{Opcode: JGT, Mnemonic: "JGT", MinOperands: 1, MaxOperands: 1, Effect: Flow, Target: 0},
	{Opcode: JLT, Mnemonic: "JLT", MinOperands: 1, MaxOperands: 1, Effect: Flow, Target: 0},
	{Opcode: BEQ, Mnemonic: "BEQ", MinOperands: 3, MaxOperands: 3, Effect: Flow, Target: 2},
	{Opcode: BGT, Mnemonic: "BGT", MinOperands: 3, MaxOperands: 3, Effect: Flow, Target: 2},
	{Opcode: JSR, Mnemonic: "JSR", MinOperands: 1, MaxOperands: 1, Effect: Subroutine, Target: 0},
	{Opcode: RTS, Mnemonic: "RTS", MinOperands: 0, MaxOperands: 0, Effect: Subroutine, Target: -1},
	{Opcode: IN, Mnemonic: "IN", MinOperands: 1, MaxOperands: 2, Effect: IO, Target: -1},
	{Opcode: OUT, Mnemonic: "OUT", MinOperands: 1, MaxOperands: 2, Effect: IO, Target: -1},
	{Opcode: HALT, Mnemonic: "HALT", MinOperands: 0, MaxOperands: 1, Effect: Halt, Target: -1},
}

// aliases are alternative mnemonics accepted by LookupMnemonic()
var aliases = map[string]Opcode{
	"STOP": HALT,
}

// GetDefinition returns the definition for the opcode. The boolean return
// value is false if the opcode is not in the instruction set.
func GetDefinition(op Opcode) (Definition, bool) {
	if op < 0 || int(op) >= NumOpcodes {
		return Definition{}, false
	}
	return definitions[op], true
}

// LookupMnemonic returns the opcode with the mnemonic. The mnemonic is not
// case sensitive.
func LookupMnemonic(mnemonic string) (Opcode, bool) {
	m := strings.ToUpper(mnemonic)
	if op, ok := aliases[m]; ok {
		return op, true
	}
	for _, defn := range definitions {
		if defn.Mnemonic == m {
			return defn.Opcode, true
		}
	}
	return 0, false
}

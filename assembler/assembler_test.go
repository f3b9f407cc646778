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

package assembler_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/picocomputer/assembler"
	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/test"
)

const euclid = `M = 1
N = 2
R = 3
ORG 8
IN M, 2      ; read M and N
LOOP:
DIV R, M, N  ; R = M / N
MUL R, R, N  ; R = int(M/N) * N
SUB R, M, R  ; R = M - R
MOV M, N     ; M = N
MOV N, R     ; N = R
BGT R, 0, LOOP
OUT M, 1     ; the greatest common divisor
STOP
`

func TestEuclid(t *testing.T) {
	prg, err := assembler.AssembleString(euclid)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, prg.Len(), 9)
	test.ExpectEquality(t, prg.Origin, 8)
	test.ExpectEquality(t, prg.Start, 0)
	test.ExpectEquality(t, prg.Symbols["M"], 1)
	test.ExpectEquality(t, prg.Symbols["N"], 2)
	test.ExpectEquality(t, prg.Symbols["R"], 3)
	test.ExpectEquality(t, prg.Labels["LOOP"], 1)

	// source line numbers are preserved
	test.ExpectEquality(t, prg.Instructions[0].Line, 5)
	test.ExpectEquality(t, prg.Instructions[8].Line, 14)
	test.ExpectEquality(t, prg.Instructions[8].Opcode, instructions.HALT)

	bgt := prg.Instructions[6]
	test.ExpectEquality(t, bgt.Opcode, instructions.BGT)
	test.ExpectEquality(t, bgt.Operands[0].Mode, instructions.Direct)
	test.ExpectEquality(t, bgt.Operands[0].Value, 3)
	test.ExpectEquality(t, bgt.Operands[1].Mode, instructions.Immediate)
	test.ExpectEquality(t, bgt.Operands[1].Value, 0)
	test.ExpectEquality(t, bgt.Operands[2].Mode, instructions.Immediate)
	test.ExpectEquality(t, bgt.Operands[2].Value, 1)
	test.ExpectEquality(t, bgt.String(), "BGT R, #0, LOOP")

	m, err := hardware.NewMachine(memory.DefaultSize)
	test.DemandSuccess(t, err)
	c, err := controller.NewController(m)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Load(prg))

	c.ProvideInput(25, 10)
	reason, err := c.RunUnpaced(context.Background(), 1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, controller.StopHalted)
	out := c.Output()
	test.DemandEquality(t, len(out), 1)
	test.ExpectEquality(t, out[0], uint16(5))
	test.ExpectSuccess(t, curated.Is(c.HaltReason(), cpu.HaltInstruction))
}

func TestOperands(t *testing.T) {
	prg, err := assembler.AssembleString(`
		A = 0x10
		mov r1, #a     ; address of A
		mov r2, a      ; contents of A
		mov r3, [20]
		mov (r1), -1
		mov sp, #-2
		jmp end
		end: halt r1
	`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, prg.Len(), 7)

	ops := prg.Instructions[0].Operands
	test.ExpectEquality(t, ops[0], instructions.Reg(registers.R1))
	test.ExpectEquality(t, ops[1].Mode, instructions.Immediate)
	test.ExpectEquality(t, ops[1].Value, 16)
	test.ExpectEquality(t, ops[1].Symbol, "A")

	ops = prg.Instructions[1].Operands
	test.ExpectEquality(t, ops[1].Mode, instructions.Direct)
	test.ExpectEquality(t, ops[1].Value, 16)

	ops = prg.Instructions[2].Operands
	test.ExpectEquality(t, ops[1], instructions.Dir(20))

	ops = prg.Instructions[3].Operands
	test.ExpectEquality(t, ops[0], instructions.Ind(registers.R1))
	test.ExpectEquality(t, ops[1], instructions.Imm(-1))

	ops = prg.Instructions[4].Operands
	test.ExpectEquality(t, ops[0], instructions.Reg(registers.SP))
	test.ExpectEquality(t, ops[1], instructions.Imm(-2))

	// a label on the same line as an instruction
	test.ExpectEquality(t, prg.Labels["END"], 6)
	test.ExpectEquality(t, prg.Instructions[5].Operands[0].Value, 6)
	test.ExpectEquality(t, prg.Instructions[6].Opcode, instructions.HALT)
	test.ExpectEquality(t, len(prg.Instructions[6].Operands), 1)
}

func TestIndirectMemory(t *testing.T) {
	prg, err := assembler.AssembleString(`
		A = 10
		P = 20
		MOV P, #A     ; P points to A
		IN (P), 2
		OUT (p), 2
		MOV R0, (20)
		STOP
	`)
	test.DemandSuccess(t, err)

	ops := prg.Instructions[1].Operands
	test.ExpectEquality(t, ops[0].Mode, instructions.IndirectMemory)
	test.ExpectEquality(t, ops[0].Value, 20)
	test.ExpectEquality(t, ops[0].Symbol, "P")
	test.ExpectEquality(t, prg.Instructions[2].String(), "OUT (P), #2")
	test.ExpectEquality(t, prg.Instructions[3].Operands[1], instructions.IndMem(20))

	m, err := hardware.NewMachine(memory.DefaultSize)
	test.DemandSuccess(t, err)
	c, err := controller.NewController(m)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Load(prg))

	c.ProvideInput(3, 4)
	reason, err := c.RunUnpaced(context.Background(), 100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, controller.StopHalted)

	out := c.Output()
	test.DemandEquality(t, len(out), 2)
	test.ExpectEquality(t, out[0], uint16(3))
	test.ExpectEquality(t, out[1], uint16(4))
	v, _ := c.Peek(11)
	test.ExpectEquality(t, v, uint8(4))
	test.ExpectEquality(t, c.Registers().Values()[registers.R0], uint16(3))
}

func TestIndirectMemoryOutOfBounds(t *testing.T) {
	prg, err := assembler.AssembleString(`
		P = 20
		MOV P, #200
		MOV R0, (P)
		STOP
	`)
	test.DemandSuccess(t, err)

	// the pointer refers to a cell beyond the end of a small memory
	m, err := hardware.NewMachine(64)
	test.DemandSuccess(t, err)
	c, err := controller.NewController(m)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Load(prg))

	test.ExpectSuccess(t, c.Step())
	err = c.Step()
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBoundsError))
	test.ExpectEquality(t, c.PC(), 1)
	test.ExpectEquality(t, c.Registers().Values()[registers.R0], uint16(0))
}

func TestForwardReference(t *testing.T) {
	prg, err := assembler.AssembleString(`
		JSR SUB1
		HALT
		SUB1: ADD R0, 1
		RTS
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Instructions[0].Operands[0].Value, 2)
	test.ExpectEquality(t, prg.LabelAt(2), "SUB1")
}

func TestSyntaxErrors(t *testing.T) {
	var tests = []struct {
		source string
		line   int
	}{
		{source: "FOO R0", line: 1},
		{source: "NOP\nMOV R0", line: 2},
		{source: "NOP\nNOP\nMOV R0, R1, R2", line: 3},
		{source: "JMP NOWHERE", line: 1},
		{source: "A = 1\nJMP A", line: 2},
		{source: "MOV R0, (A)", line: 1},
		{source: "L: MOV R0, (L)", line: 1},
		{source: "MOV R0, (-1)", line: 1},
		{source: "MOV R0, ([20])", line: 1},
		{source: "MOV R0, [10", line: 1},
		{source: "MOV R0, 70000", line: 1},
		{source: "A = 1\nA = 2\nNOP", line: 2},
		{source: "L: NOP\nL: NOP", line: 2},
		{source: "R1 = 10\nNOP", line: 1},
		{source: "A = -1\nNOP", line: 1},
		{source: "NOP\nORG 8", line: 2},
		{source: "1X: NOP", line: 1},
		{source: "MOV R0, ", line: 1},
	}

	for _, tt := range tests {
		_, err := assembler.AssembleString(tt.source)
		if !test.ExpectFailure(t, err, tt.source) {
			continue
		}
		test.ExpectSuccess(t, curated.Is(err, assembler.SyntaxError), tt.source)
		test.ExpectSuccess(t, strings.HasPrefix(err.Error(), fmt.Sprintf("assembler: line %d:", tt.line)), tt.source)
	}

	// the line number is part of the error message
	_, err := assembler.AssembleString("NOP\n\nFOO")
	test.DemandFailure(t, err)
	test.ExpectEquality(t, err.Error(), "assembler: line 3: unknown instruction (FOO)")
}

func TestEmptyProgram(t *testing.T) {
	_, err := assembler.AssembleString("; nothing here\nA = 1\n")
	test.ExpectFailure(t, err)
}

func TestCaseInsensitive(t *testing.T) {
	a, err := assembler.AssembleString("loop: Add r0, #1\njmp LOOP\n")
	test.DemandSuccess(t, err)
	b, err := assembler.AssembleString("LOOP: ADD R0, #1\nJMP loop\n")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Listing(), b.Listing())
}

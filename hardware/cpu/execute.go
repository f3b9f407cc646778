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

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// ExecuteInstruction decodes and executes the instruction and then advances
// the program counter. The instruction should be the one indexed by the
// current value of the program counter.
func (mc *CPU) ExecuteInstruction(ins instructions.Instruction) error {
	mc.LastResult = Result{
		Address:     mc.PC.Address(),
		Instruction: ins,
	}

	defn, ok := instructions.GetDefinition(ins.Opcode)
	if !ok {
		return mc.invalid(fmt.Sprintf("unknown opcode (%d)", ins.Opcode))
	}

	n := len(ins.Operands)
	if n < defn.MinOperands || n > defn.MaxOperands {
		return mc.invalid(fmt.Sprintf("%s takes %d to %d operands but has %d", defn.Mnemonic, defn.MinOperands, defn.MaxOperands, n))
	}

	var target int
	if defn.Target >= 0 {
		o := ins.Operands[defn.Target]
		if o.Mode != instructions.Immediate {
			return mc.invalid(fmt.Sprintf("%s target must be immediate", defn.Mnemonic))
		}
		target = o.Value
	}

	next := mc.PC.Address() + 1

	var err error

	switch ins.Opcode {
	case instructions.NOP:

	case instructions.MOV:
		var v uint16
		v, err = mc.read(ins.Operands[1])
		if err == nil {
			err = mc.write(ins.Operands[0], v)
		}

	case instructions.ADD, instructions.SUB, instructions.MUL, instructions.DIV,
		instructions.AND, instructions.OR, instructions.XOR:
		err = mc.arithmetic(ins)

	case instructions.CMP:
		var a, b uint16
		a, b, err = mc.pair(ins.Operands[0], ins.Operands[1])
		if err == nil {
			r := registers.NewRegister(a, "")
			borrow, overflow := r.Subtract(b)
			mc.setFlags(r, borrow, overflow)
		}

	case instructions.JMP:
		next = target

	case instructions.JEQ:
		if mc.Regs.Status.Zero {
			next = target
		}

	case instructions.JNE:
		if !mc.Regs.Status.Zero {
			next = target
		}

	case instructions.JGT:
		if mc.Regs.Status.Greater() {
			next = target
		}

	case instructions.JLT:
		if mc.Regs.Status.Less() {
			next = target
		}

	case instructions.BEQ:
		var a, b uint16
		a, b, err = mc.pair(ins.Operands[0], ins.Operands[1])
		if err == nil && a == b {
			next = target
		}

	case instructions.BGT:
		var a, b uint16
		a, b, err = mc.pair(ins.Operands[0], ins.Operands[1])
		if err == nil && int16(a) > int16(b) {
			next = target
		}

	case instructions.JSR:
		err = mc.push(uint16(next))
		next = target

	case instructions.RTS:
		var v uint16
		v, err = mc.pop()
		next = int(v)

	case instructions.IN:
		err = mc.input(ins)

	case instructions.OUT:
		err = mc.output(ins)

	case instructions.HALT:
		if n == 1 {
			var v uint16
			v, err = mc.read(ins.Operands[0])
			if err == nil {
				mc.io.WriteOutput(v)
			}
		}
		if err == nil {
			mc.Halt(curated.Errorf(HaltInstruction, mc.PC.Address()))

			// the program counter stays on the HALT instruction
			next = mc.PC.Address()
		}

	default:
		err = mc.invalid(fmt.Sprintf("unimplemented opcode (%s)", ins.Opcode))
	}

	if err != nil {
		return err
	}

	mc.LastResult.Branched = next != mc.PC.Address()+1 && ins.Opcode != instructions.HALT
	mc.LastResult.Final = true
	mc.PC.Load(next)

	return nil
}

// pair returns the values of two operands.
func (mc *CPU) pair(a, b instructions.Operand) (uint16, uint16, error) {
	va, err := mc.read(a)
	if err != nil {
		return 0, 0, err
	}
	vb, err := mc.read(b)
	if err != nil {
		return 0, 0, err
	}
	return va, vb, nil
}

// arithmetic handles both forms of the arithmetic and logical instructions:
//
//	OP dst, src       dst = dst OP src
//	OP dst, a, b      dst = a OP b
func (mc *CPU) arithmetic(ins instructions.Instruction) error {
	var a, b uint16
	var err error

	if len(ins.Operands) == 2 {
		a, b, err = mc.pair(ins.Operands[0], ins.Operands[1])
	} else {
		a, b, err = mc.pair(ins.Operands[1], ins.Operands[2])
	}
	if err != nil {
		return err
	}

	r := registers.NewRegister(a, "")

	var carry, overflow bool

	switch ins.Opcode {
	case instructions.ADD:
		carry, overflow = r.Add(b)
	case instructions.SUB:
		carry, overflow = r.Subtract(b)
	case instructions.MUL:
		carry = r.Multiply(b)
	case instructions.DIV:
		if b == 0 {
			return curated.Errorf(DivisionByZeroError, mc.PC.Address())
		}
		overflow = r.Divide(b)
	case instructions.AND:
		r.AND(b)
	case instructions.OR:
		r.ORA(b)
	case instructions.XOR:
		r.EOR(b)
	default:
		return mc.invalid(fmt.Sprintf("%s is not an arithmetic instruction", ins.Opcode))
	}

	mc.setFlags(r, carry, overflow)

	return mc.write(ins.Operands[0], r.Value())
}

// input reads values from the input tape into the destination operand.
// values are written to consecutive memory cells if the count is greater
// than one.
func (mc *CPU) input(ins instructions.Instruction) error {
	dst := ins.Operands[0]
	if dst.Mode == instructions.Immediate {
		return mc.invalid("cannot input to an immediate operand")
	}

	n, err := mc.count(ins)
	if err != nil {
		return err
	}

	v, ok := mc.io.ReadInput(n)
	if !ok {
		return curated.Errorf(InputRequiredError, mc.PC.Address(), n)
	}

	if n == 1 {
		return mc.write(dst, v[0])
	}

	a, err := mc.address(dst)
	if err != nil {
		return err
	}
	for i := range v {
		if err := mc.mem.Write(a+i, uint8(v[i])); err != nil {
			return err
		}
	}

	return nil
}

// output appends the value of the source operand to the output log. values
// are read from consecutive memory cells if the count is greater than one.
func (mc *CPU) output(ins instructions.Instruction) error {
	n, err := mc.count(ins)
	if err != nil {
		return err
	}

	if n == 1 {
		v, err := mc.read(ins.Operands[0])
		if err != nil {
			return err
		}
		mc.io.WriteOutput(v)
		return nil
	}

	a, err := mc.address(ins.Operands[0])
	if err != nil {
		return err
	}

	out := make([]uint16, n)
	for i := range out {
		v, err := mc.mem.Read(a + i)
		if err != nil {
			return err
		}
		out[i] = uint16(v)
	}
	mc.io.WriteOutput(out...)

	return nil
}

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

// Sentinal errors returned by ExecuteInstruction().
const (
	InvalidInstructionError = "cpu: invalid instruction at %d: %v"
	DivisionByZeroError     = "cpu: division by zero at %d"

	// InputRequiredError is not fatal. The instruction can be executed again
	// once more values are available on the input tape
	InputRequiredError = "cpu: input required at %d (%d values)"
)

// Reasons for the CPU halting. Used with the HaltReason field.
const (
	HaltInstruction = "cpu: halt instruction at %d"
	EndOfProgram    = "cpu: end of program at %d"
)

// Memory defines the memory functions required by the CPU.
type Memory interface {
	Read(address int) (uint8, error)
	Write(address int, value uint8) error
	Size() int
}

// IO defines the input tape and output log functions required by the CPU.
type IO interface {
	// ReadInput returns the next n values from the input tape. If fewer than
	// n values are available no values are consumed and the boolean return
	// value is false
	ReadInput(n int) ([]uint16, bool)

	// WriteOutput appends values to the output log
	WriteOutput(v ...uint16)
}

// CPU implements the PicoComputer processor.
type CPU struct {
	PC   registers.ProgramCounter
	Regs registers.File

	// the machine has stopped. ExecuteInstruction() should not be called
	// again until after a Reset()
	Halted bool

	// why the CPU halted. this is informational only and is nil if the
	// halted state has been restored from a snapshot
	HaltReason error

	LastResult Result

	mem Memory
	io  IO
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory, io IO) *CPU {
	mc := &CPU{
		mem: mem,
		io:  io,
	}
	mc.Reset(0)
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s", mc.PC.Label(), mc.PC, mc.Regs)
}

// Reset every register to zero and load the program counter with start.
func (mc *CPU) Reset(start int) {
	mc.Regs.Reset()
	mc.PC.Load(start)
	mc.Halted = false
	mc.HaltReason = nil
	mc.LastResult.Reset()
}

// Halt the CPU for the given reason.
func (mc *CPU) Halt(reason error) {
	mc.Halted = true
	mc.HaltReason = reason
}

func (mc *CPU) invalid(detail any) error {
	return curated.Errorf(InvalidInstructionError, mc.PC.Address(), detail)
}

// address returns the memory address referred to by a memory operand. the
// address is not checked. reading the pointer of an IndirectMemory operand can
// fail if the pointer is outside of memory.
func (mc *CPU) address(o instructions.Operand) (int, error) {
	switch o.Mode {
	case instructions.Direct:
		return o.Value, nil
	case instructions.Indirect:
		v, err := mc.Regs.Get(o.Register)
		if err != nil {
			return 0, mc.invalid(err)
		}
		return int(v), nil
	case instructions.IndirectMemory:
		p, err := mc.mem.Read(o.Value)
		if err != nil {
			return 0, err
		}
		return int(p), nil
	}
	return 0, mc.invalid(fmt.Sprintf("%s operand does not refer to memory", o.Mode))
}

// read returns the value of the operand. memory values are zero extended.
func (mc *CPU) read(o instructions.Operand) (uint16, error) {
	switch o.Mode {
	case instructions.Register:
		v, err := mc.Regs.Get(o.Register)
		if err != nil {
			return 0, mc.invalid(err)
		}
		return v, nil
	case instructions.Immediate:
		return uint16(o.Value), nil
	case instructions.Direct, instructions.Indirect, instructions.IndirectMemory:
		a, err := mc.address(o)
		if err != nil {
			return 0, err
		}
		v, err := mc.mem.Read(a)
		if err != nil {
			return 0, err
		}
		return uint16(v), nil
	}
	return 0, mc.invalid(fmt.Sprintf("unknown addressing mode (%d)", o.Mode))
}

// write the value to the operand. only the low byte is stored in memory.
func (mc *CPU) write(o instructions.Operand, v uint16) error {
	switch o.Mode {
	case instructions.Register:
		if err := mc.Regs.Set(o.Register, v); err != nil {
			return mc.invalid(err)
		}
		return nil
	case instructions.Direct, instructions.Indirect, instructions.IndirectMemory:
		a, err := mc.address(o)
		if err != nil {
			return err
		}
		return mc.mem.Write(a, uint8(v))
	}
	return mc.invalid(fmt.Sprintf("cannot write to %s operand", o.Mode))
}

// count returns the optional count operand of the IN and OUT instructions.
func (mc *CPU) count(ins instructions.Instruction) (int, error) {
	if len(ins.Operands) < 2 {
		return 1, nil
	}
	c, err := mc.read(ins.Operands[1])
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, mc.invalid("count must be greater than zero")
	}
	if c > 1 {
		if !ins.Operands[0].Mode.IsMemory() {
			return 0, mc.invalid("count greater than one requires a memory operand")
		}
	}
	return int(c), nil
}

func (mc *CPU) setFlags(r registers.Register, carry bool, overflow bool) {
	mc.Regs.Status.Zero = r.IsZero()
	mc.Regs.Status.Sign = r.IsNegative()
	mc.Regs.Status.Carry = carry
	mc.Regs.Status.Overflow = overflow
}

func (mc *CPU) stackPointer() (int, error) {
	sp, err := mc.Regs.Get(registers.SP)
	return int(sp), err
}

// push a 16 bit value onto the stack. the stack grows downwards and wraps
// around the end of memory. the low byte is stored first.
func (mc *CPU) push(v uint16) error {
	sp, err := mc.stackPointer()
	if err != nil {
		return err
	}
	sz := mc.mem.Size()
	sp = (sp%sz + sz - 2) % sz

	if err := mc.mem.Write(sp, uint8(v)); err != nil {
		return err
	}
	if err := mc.mem.Write((sp+1)%sz, uint8(v>>8)); err != nil {
		return err
	}
	return mc.Regs.Set(registers.SP, uint16(sp))
}

// pop a 16 bit value from the stack.
func (mc *CPU) pop() (uint16, error) {
	sp, err := mc.stackPointer()
	if err != nil {
		return 0, err
	}
	sz := mc.mem.Size()
	sp %= sz

	lo, err := mc.mem.Read(sp)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read((sp + 1) % sz)
	if err != nil {
		return 0, err
	}
	if err := mc.Regs.Set(registers.SP, uint16((sp+2)%sz)); err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cycles"
	"github.com/jetsetilly/picocomputer/hardware/memory"
)

// Sentinal errors returned by the hardware package.
const (
	MachineHaltedError = "hardware: machine halted"
	StartAddressError  = "hardware: start address (%d) is outside of the program (%d instructions)"
)

// Machine is the PicoComputer. It brings together the CPU, the memory, the
// cycle counter and the input and output tapes.
type Machine struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Cycles cycles.Counter

	program instructions.Program

	// values available to the IN instruction. the tape is not part of the
	// machine state but the cursor into it is
	tape        []uint16
	inputCursor int

	// values written by the OUT and HALT instructions
	output []uint16
}

// NewMachine creates a new machine with the given amount of memory. The
// machine has no program. Use Load() to provide one.
func NewMachine(memSize int) (*Machine, error) {
	var err error

	m := &Machine{}

	m.Mem, err = memory.NewMemory(memSize)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	m.CPU = cpu.NewCPU(m.Mem, m)

	// no program has been loaded so the machine can not be stepped
	m.CPU.Halt(curated.Errorf(cpu.EndOfProgram, 0))

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s %s", m.CPU, m.Cycles)
}

// Load a program into the machine. The machine is hard reset.
func (m *Machine) Load(program instructions.Program) error {
	if program.Start < 0 || program.Start >= program.Len() {
		return curated.Errorf(StartAddressError, program.Start, program.Len())
	}
	m.program = program
	m.HardReset()
	return nil
}

// Program returns the program loaded into the machine.
func (m *Machine) Program() instructions.Program {
	return m.program
}

// HardReset returns the machine to its power on state. Memory, registers,
// cycle count, input tape and output log are all cleared and the program
// counter is set to the start of the program.
func (m *Machine) HardReset() {
	m.Mem.Clear()
	m.CPU.Reset(m.program.Start)
	m.Cycles.Reset()
	m.tape = m.tape[:0]
	m.inputCursor = 0
	m.output = m.output[:0]
	if m.program.Len() == 0 {
		m.CPU.Halt(curated.Errorf(cpu.EndOfProgram, 0))
	}
}

// SoftReset sets the program counter to the start of the program and clears
// the halted state. Memory, registers and the cycle count are not changed.
func (m *Machine) SoftReset() {
	m.CPU.PC.Load(m.program.Start)
	m.CPU.Halted = false
	m.CPU.HaltReason = nil
	m.CPU.LastResult.Reset()
	if m.program.Len() == 0 {
		m.CPU.Halt(curated.Errorf(cpu.EndOfProgram, 0))
	}
}

// IsHalted returns true if the machine has stopped.
func (m *Machine) IsHalted() bool {
	return m.CPU.Halted
}

// Halt the machine for the given reason.
func (m *Machine) Halt(reason error) {
	m.CPU.Halt(reason)
}

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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/test"
)

func newMachine(t *testing.T, ins ...instructions.Instruction) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(256)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Load(instructions.NewProgram(ins...)))
	return m
}

// steps the machine until it halts
func run(t *testing.T, m *hardware.Machine) {
	t.Helper()
	for !m.IsHalted() {
		test.DemandSuccess(t, m.Step())
	}
}

func TestLoad(t *testing.T) {
	m, err := hardware.NewMachine(256)
	test.DemandSuccess(t, err)

	// no program loaded
	test.ExpectEquality(t, m.IsHalted(), true)
	err = m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineHaltedError))

	err = m.Load(instructions.NewProgram())
	test.ExpectSuccess(t, curated.Is(err, hardware.StartAddressError))

	p := instructions.NewProgram(instructions.New(instructions.NOP))
	p.Start = 1
	err = m.Load(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.StartAddressError))

	p.Start = 0
	test.ExpectSuccess(t, m.Load(p))
	test.ExpectEquality(t, m.IsHalted(), false)
	test.ExpectEquality(t, m.Program().Len(), 1)

	_, err = hardware.NewMachine(0)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	m := newMachine(t,
		instructions.New(instructions.MOV, instructions.Reg(registers.R0), instructions.Imm(5)),
		instructions.New(instructions.ADD, instructions.Reg(registers.R0), instructions.Imm(3)),
		instructions.New(instructions.HALT),
	)

	test.ExpectSuccess(t, m.Step())
	test.ExpectSuccess(t, m.Step())
	v, _ := m.CPU.Regs.Get(registers.R0)
	test.ExpectEquality(t, v, uint16(8))
	test.ExpectEquality(t, m.Cycles.Count(), uint64(2))
	test.ExpectEquality(t, m.CPU.PC.Address(), 2)

	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.IsHalted(), true)
	test.ExpectSuccess(t, curated.Is(m.CPU.HaltReason, cpu.HaltInstruction))

	// halting does not count a cycle
	test.ExpectEquality(t, m.Cycles.Count(), uint64(2))

	// a halted machine is not changed by Step()
	err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineHaltedError))
	test.ExpectEquality(t, m.Cycles.Count(), uint64(2))
}

func TestEndOfProgram(t *testing.T) {
	m := newMachine(t,
		instructions.New(instructions.NOP),
		instructions.New(instructions.JMP, instructions.Imm(100)),
	)

	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.IsHalted(), false)
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.IsHalted(), true)
	test.ExpectSuccess(t, curated.Is(m.CPU.HaltReason, cpu.EndOfProgram))

	m = newMachine(t, instructions.New(instructions.NOP))
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.IsHalted(), true)
}

func TestResets(t *testing.T) {
	m := newMachine(t,
		instructions.New(instructions.MOV, instructions.Dir(0), instructions.Imm(9)),
		instructions.New(instructions.OUT, instructions.Dir(0)),
		instructions.New(instructions.HALT),
	)
	m.ProvideInput(1, 2)

	run(t, m)
	test.ExpectEquality(t, m.IsHalted(), true)

	m.SoftReset()
	test.ExpectEquality(t, m.IsHalted(), false)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0)
	test.ExpectEquality(t, m.Cycles.Count(), uint64(2))
	v, _ := m.Mem.Peek(0)
	test.ExpectEquality(t, v, uint8(9))
	test.ExpectEquality(t, len(m.Output()), 1)
	test.ExpectEquality(t, m.InputRemaining(), 2)

	m.HardReset()
	test.ExpectEquality(t, m.IsHalted(), false)
	test.ExpectEquality(t, m.Cycles.Count(), uint64(0))
	v, _ = m.Mem.Peek(0)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, len(m.Output()), 0)
	test.ExpectEquality(t, m.InputRemaining(), 0)
	test.ExpectEquality(t, m.CPU.Regs == registers.NewFile(), true)
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t,
		instructions.New(instructions.IN, instructions.Dir(1)),
		instructions.New(instructions.OUT, instructions.Dir(1)),
		instructions.New(instructions.HALT),
	)
	m.ProvideInput(77)

	s := m.Snapshot()
	run(t, m)

	// running the machine does not change the snapshot
	test.ExpectEquality(t, s.Memory[1], uint8(0))
	test.ExpectEquality(t, len(s.Output), 0)
	test.ExpectEquality(t, s.InputCursor, 0)
	test.ExpectEquality(t, s.Equals(m.Snapshot()), false)

	after := m.Snapshot()
	test.ExpectSuccess(t, m.Plumb(s))
	test.ExpectEquality(t, s.Equals(m.Snapshot()), true)
	test.ExpectEquality(t, m.InputRemaining(), 1)

	// running the machine after plumbing does not change the plumbed state
	run(t, m)
	test.ExpectEquality(t, s.Memory[1], uint8(0))
	test.ExpectEquality(t, after.Equals(m.Snapshot()), true)

	// copies of a state are independent
	c := after.Snapshot()
	c.Memory[1] = 0
	c.Output[0] = 0
	test.ExpectEquality(t, after.Memory[1], uint8(77))
	test.ExpectEquality(t, after.Output[0], uint16(77))
}

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
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
)

// Step executes the instruction indexed by the program counter and counts the
// cycle. HALT stops the machine without counting a cycle.
//
// A step that fails may leave the machine partially changed. Use Snapshot()
// and Plumb() to make a step atomic.
//
// If the program counter is outside of the program once the instruction has
// executed, the machine halts with the cpu.EndOfProgram reason.
func (m *Machine) Step() error {
	if m.CPU.Halted {
		return curated.Errorf(MachineHaltedError)
	}

	pc := m.CPU.PC.Address()
	ins, ok := m.program.Fetch(pc)
	if !ok {
		return curated.Errorf(cpu.InvalidInstructionError, pc, "no instruction")
	}

	if err := m.CPU.ExecuteInstruction(ins); err != nil {
		return err
	}

	if ins.Opcode != instructions.HALT {
		m.Cycles.Tick()
	}

	if !m.CPU.Halted {
		if _, ok := m.program.Fetch(m.CPU.PC.Address()); !ok {
			m.CPU.Halt(curated.Errorf(cpu.EndOfProgram, m.CPU.PC.Address()))
		}
	}

	return nil
}

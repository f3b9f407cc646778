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
	"bytes"
	"slices"

	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// State is the complete state of the machine at an instruction boundary. It
// is produced by the Snapshot() function and can be restored with the Plumb()
// function.
//
// The loaded program and the input tape are not part of the state. The input
// cursor is, which means that stepping back over an IN instruction makes the
// value available to be read again.
type State struct {
	Memory      []uint8
	Registers   registers.File
	PC          int
	Cycles      uint64
	Halted      bool
	Output      []uint16
	InputCursor int
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := *s
	n.Memory = slices.Clone(s.Memory)
	n.Output = slices.Clone(s.Output)
	return &n
}

// Equals returns true if the two states are identical.
func (s *State) Equals(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Registers == o.Registers &&
		s.PC == o.PC &&
		s.Cycles == o.Cycles &&
		s.Halted == o.Halted &&
		s.InputCursor == o.InputCursor &&
		slices.Equal(s.Output, o.Output) &&
		bytes.Equal(s.Memory, o.Memory)
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		Memory:      m.Mem.Snapshot(),
		Registers:   m.CPU.Regs,
		PC:          m.CPU.PC.Address(),
		Cycles:      m.Cycles.Count(),
		Halted:      m.CPU.Halted,
		Output:      m.Output(),
		InputCursor: m.inputCursor,
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) error {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}

	// the live machine must never share memory with the state. the state may
	// be on the rewind history and will be needed again
	if err := m.Mem.Plumb(state.Memory); err != nil {
		return err
	}
	m.output = append(m.output[:0], state.Output...)

	m.CPU.Regs = state.Registers
	m.CPU.PC.Load(state.PC)
	m.CPU.Halted = state.Halted
	m.CPU.HaltReason = nil
	m.CPU.LastResult.Reset()
	m.Cycles.Load(state.Cycles)
	m.inputCursor = min(state.InputCursor, len(m.tape))

	return nil
}

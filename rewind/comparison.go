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

package rewind

import (
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// ComparisonState is returned by GetComparison().
type ComparisonState struct {
	State  *hardware.State
	Locked bool
}

// GetComparison returns a copy of the current comparison point.
func (r *Rewind) GetComparison() ComparisonState {
	cmp := ComparisonState{
		Locked: r.comparisonLocked,
	}
	if r.comparison != nil {
		cmp.State = r.comparison.Snapshot()
	}
	return cmp
}

// UpdateComparison points comparison to the current state.
func (r *Rewind) UpdateComparison() {
	if r.comparisonLocked {
		return
	}
	r.comparison = r.machine.Snapshot()
}

// SetComparison points comparison to the supplied state. The lock is ignored.
func (r *Rewind) SetComparison(s *hardware.State) {
	if s != nil {
		r.comparison = s.Snapshot()
	}
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}

// ChangedAddresses returns the memory addresses that have a different value
// in the current state than in the comparison state.
func (r *Rewind) ChangedAddresses(current *hardware.State) []int {
	if r.comparison == nil || current == nil {
		return nil
	}

	var changed []int
	n := min(len(current.Memory), len(r.comparison.Memory))
	for a := 0; a < n; a++ {
		if current.Memory[a] != r.comparison.Memory[a] {
			changed = append(changed, a)
		}
	}
	return changed
}

// ChangedRegisters returns the registers that have a different value in the
// current state than in the comparison state.
func (r *Rewind) ChangedRegisters(current *hardware.State) []registers.ID {
	if r.comparison == nil || current == nil {
		return nil
	}

	var changed []registers.ID
	cur := current.Registers.Values()
	cmp := r.comparison.Registers.Values()
	for i := range cur {
		if cur[i] != cmp[i] {
			changed = append(changed, registers.ID(i))
		}
	}
	return changed
}

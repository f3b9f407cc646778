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
	"slices"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware"
)

// Sentinal error returned by StepBack() and Peek().
const EmptyHistoryError = "rewind: history is empty"

// Machine defines the functions required by the rewind system.
type Machine interface {
	Snapshot() *hardware.State
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	machine Machine

	// Prefs for the rewind system. Set to their default values by NewRewind()
	Prefs *Preferences

	// most recent entry last
	entries []*hardware.State

	// the number of entries that have been forgotten because of the
	// maxEntries preference since the last Reset()
	dropped uint64

	// comparison point
	comparison       *hardware.State
	comparisonLocked bool
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(machine Machine) *Rewind {
	r := &Rewind{
		machine: machine,
	}
	r.Prefs = newPreferences(r)
	r.Reset()
	return r
}

// Reset rewind system removes all entries. The comparison point is set to
// the current machine state unless it is locked.
//
// This should be called whenever the machine is hard reset or a new program is
// loaded.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
	r.dropped = 0
	r.UpdateComparison()
}

// Snapshot returns a copy of the current machine state.
func (r *Rewind) Snapshot() *hardware.State {
	return r.machine.Snapshot()
}

// PushBeforeStep adds a snapshot of the current machine state to the
// history. It should be called immediately before an instruction is
// executed.
func (r *Rewind) PushBeforeStep() {
	r.append(r.machine.Snapshot())
}

func (r *Rewind) append(s *hardware.State) {
	r.entries = append(r.entries, s)
	r.trim()
}

// trim removes the oldest entries so that the history is no longer than the
// maxEntries preference. Ordering of the remaining entries is preserved.
func (r *Rewind) trim() {
	limit := r.Prefs.MaxEntries.Get().(int)
	if limit <= 0 || len(r.entries) <= limit {
		return
	}
	n := len(r.entries) - limit
	r.entries = slices.Delete(r.entries, 0, n)
	r.dropped += uint64(n)
}

// StepBack removes the most recent entry from the history and returns it. The
// caller should plumb the returned state into the machine.
func (r *Rewind) StepBack() (*hardware.State, error) {
	if len(r.entries) == 0 {
		return nil, curated.Errorf(EmptyHistoryError)
	}
	s := r.entries[len(r.entries)-1]
	r.entries[len(r.entries)-1] = nil
	r.entries = r.entries[:len(r.entries)-1]
	return s, nil
}

// Peek returns the most recent entry without removing it from the history.
// The returned state must not be modified.
func (r *Rewind) Peek() (*hardware.State, error) {
	if len(r.entries) == 0 {
		return nil, curated.Errorf(EmptyHistoryError)
	}
	return r.entries[len(r.entries)-1], nil
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return len(r.entries)
}

// SoftReset should be called when the machine is soft reset. The history is
// preserved unless the rewind.softResetClears preference is true.
func (r *Rewind) SoftReset() {
	if r.Prefs.SoftResetClears.Get().(bool) {
		r.Reset()
	}
}

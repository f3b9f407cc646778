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

// Timeline provides a summary of the current state of the rewind system.
//
// Useful for front ends, to present the range of instructions that can be
// stepped back through.
type Timeline struct {
	// the cycle count and program counter of every entry in the history,
	// oldest first
	Cycles []uint64
	PC     []int

	// the number of entries forgotten because of the maxEntries preference
	Dropped uint64
}

// Len returns the number of entries in the timeline.
func (tl Timeline) Len() int {
	return len(tl.Cycles)
}

// Earliest returns the cycle count of the oldest entry. The boolean return
// value is false if the timeline is empty.
func (tl Timeline) Earliest() (uint64, bool) {
	if len(tl.Cycles) == 0 {
		return 0, false
	}
	return tl.Cycles[0], true
}

// Latest returns the cycle count of the most recent entry. The boolean return
// value is false if the timeline is empty.
func (tl Timeline) Latest() (uint64, bool) {
	if len(tl.Cycles) == 0 {
		return 0, false
	}
	return tl.Cycles[len(tl.Cycles)-1], true
}

// GetTimeline returns a summary of the history.
func (r *Rewind) GetTimeline() Timeline {
	tl := Timeline{
		Cycles:  make([]uint64, len(r.entries)),
		PC:      make([]int, len(r.entries)),
		Dropped: r.dropped,
	}
	for i, s := range r.entries {
		tl.Cycles[i] = s.Cycles
		tl.PC[i] = s.PC
	}
	return tl
}

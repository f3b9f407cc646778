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

package rewind_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/rewind"
	"github.com/jetsetilly/picocomputer/test"
)

// counting program. R0 is incremented and written to memory address R0
func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(256)
	test.DemandSuccess(t, err)
	err = m.Load(instructions.NewProgram(
		instructions.New(instructions.ADD, instructions.Reg(registers.R0), instructions.Imm(1)),
		instructions.New(instructions.MOV, instructions.Ind(registers.R0), instructions.Reg(registers.R0)),
		instructions.New(instructions.JMP, instructions.Imm(0)),
	))
	test.DemandSuccess(t, err)
	return m
}

func TestStepBack(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	_, err := r.StepBack()
	test.ExpectSuccess(t, curated.Is(err, rewind.EmptyHistoryError))
	_, err = r.Peek()
	test.ExpectSuccess(t, curated.Is(err, rewind.EmptyHistoryError))

	var states []*hardware.State
	for loopIdx := 0; loopIdx < 5; loopIdx++ {
		states = append(states, m.Snapshot())
		r.PushBeforeStep()
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, r.Len(), 5)

	// entries are popped in reverse order and are identical to the state
	// before each step
	for i := 4; i >= 0; i-- {
		s, err := r.StepBack()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, s.Equals(states[i]), i)
		test.DemandSuccess(t, m.Plumb(s))
	}

	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, m.Cycles.Count(), uint64(0))
	_, err = r.StepBack()
	test.ExpectSuccess(t, curated.Is(err, rewind.EmptyHistoryError))
}

func TestIsolation(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	r.PushBeforeStep()
	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())

	// the pushed entry is not affected by the machine changing
	s, err := r.Peek()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Memory[1], uint8(0))
	test.ExpectEquality(t, s.Cycles, uint64(0))

	// and the snapshot is a copy
	snap := r.Snapshot()
	test.ExpectEquality(t, snap.Memory[1], uint8(1))
	snap.Memory[1] = 100
	v, _ := m.Mem.Peek(1)
	test.ExpectEquality(t, v, uint8(1))
}

func TestMaxEntries(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(3))

	for loopIdx := 0; loopIdx < 10; loopIdx++ {
		r.PushBeforeStep()
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, r.Len(), 3)

	// the oldest entries are forgotten and order is preserved
	tl := r.GetTimeline()
	test.DemandEquality(t, tl.Len(), 3)
	test.ExpectEquality(t, tl.Dropped, uint64(7))
	test.ExpectEquality(t, tl.Cycles[0], uint64(7))
	test.ExpectEquality(t, tl.Cycles[2], uint64(9))
	e, ok := tl.Earliest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, uint64(7))
	l, ok := tl.Latest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, uint64(9))

	// reducing the limit trims the history immediately
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(1))
	test.ExpectEquality(t, r.Len(), 1)
	s, err := r.StepBack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Cycles, uint64(9))

	test.ExpectFailure(t, r.Prefs.MaxEntries.Set(-1))
	test.ExpectEquality(t, r.Prefs.MaxEntries.Get().(int), 1)

	r.Reset()
	tl = r.GetTimeline()
	test.ExpectEquality(t, tl.Len(), 0)
	test.ExpectEquality(t, tl.Dropped, uint64(0))
	_, ok = tl.Earliest()
	test.ExpectFailure(t, ok)
}

func TestSoftReset(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	r.PushBeforeStep()
	r.SoftReset()
	test.ExpectEquality(t, r.Len(), 1)

	test.DemandSuccess(t, r.Prefs.SoftResetClears.Set(true))
	r.SoftReset()
	test.ExpectEquality(t, r.Len(), 0)
}

func TestComparison(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	// comparison point is the state at reset
	cmp := r.GetComparison()
	test.DemandSuccess(t, cmp.State != nil)
	test.ExpectEquality(t, cmp.Locked, false)

	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())

	changed := r.ChangedAddresses(m.Snapshot())
	test.DemandEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], 1)

	regs := r.ChangedRegisters(m.Snapshot())
	test.DemandEquality(t, len(regs), 1)
	test.ExpectEquality(t, regs[0], registers.R0)

	// locked comparison is not updated
	r.LockComparison(true)
	r.UpdateComparison()
	test.ExpectEquality(t, len(r.ChangedAddresses(m.Snapshot())), 1)

	r.LockComparison(false)
	r.UpdateComparison()
	test.ExpectEquality(t, len(r.ChangedAddresses(m.Snapshot())), 0)

	// the comparison state is a copy
	cmp = r.GetComparison()
	cmp.State.Memory[1] = 0
	test.ExpectEquality(t, len(r.ChangedAddresses(m.Snapshot())), 0)
}

func TestPreferencesFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	m := newMachine(t)
	r := rewind.NewRewind(m)
	test.ExpectFailure(t, r.Prefs.Save())

	test.DemandSuccess(t, r.Prefs.Attach(pth))
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(50))
	test.DemandSuccess(t, r.Prefs.SoftResetClears.Set(true))
	test.DemandSuccess(t, r.Prefs.Save())

	_, err := os.Stat(pth)
	test.DemandSuccess(t, err)

	q := rewind.NewRewind(m)
	test.ExpectEquality(t, q.Prefs.MaxEntries.Get().(int), 0)
	test.DemandSuccess(t, q.Prefs.Attach(pth))
	test.ExpectEquality(t, q.Prefs.MaxEntries.Get().(int), 50)
	test.ExpectEquality(t, q.Prefs.SoftResetClears.Get().(bool), true)
}

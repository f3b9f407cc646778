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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/test"
)

type recorder struct {
	events []memory.AccessEvent
}

func (r *recorder) OnAccess(ev memory.AccessEvent) {
	r.events = append(r.events, ev)
}

func TestReadWrite(t *testing.T) {
	mem, err := memory.NewMemory(memory.DefaultSize)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Size(), memory.DefaultSize)

	test.ExpectSuccess(t, mem.Write(0, 0x12))
	test.ExpectSuccess(t, mem.Write(memory.DefaultSize-1, 0x34))

	v, err := mem.Read(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	v, err = mem.Read(memory.DefaultSize - 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))
}

func TestBounds(t *testing.T) {
	mem, err := memory.NewMemory(16)
	test.DemandSuccess(t, err)

	_, err = mem.Read(16)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBoundsError))

	_, err = mem.Read(-1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBoundsError))

	err = mem.Write(16, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBoundsError))

	err = mem.Poke(100, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBoundsError))

	_, err = memory.NewMemory(0)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidSizeError))
}

func TestObservers(t *testing.T) {
	mem, err := memory.NewMemory(16)
	test.DemandSuccess(t, err)

	var rec recorder
	mem.AddObserver(&rec)

	test.ExpectSuccess(t, mem.Write(3, 99))
	v, err := mem.Read(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(99))

	// failed accesses are not reported
	_, _ = mem.Read(20)

	// peek and poke are never reported
	test.ExpectSuccess(t, mem.Poke(4, 1))
	_, _ = mem.Peek(4)

	test.DemandEquality(t, len(rec.events), 2)
	test.ExpectEquality(t, rec.events[0].Kind, memory.Write)
	test.ExpectEquality(t, rec.events[0].Address, 3)
	test.ExpectEquality(t, rec.events[0].Value, uint8(99))
	test.ExpectEquality(t, rec.events[1].Kind, memory.Read)
	test.ExpectEquality(t, rec.events[1].Address, 3)
}

func TestSnapshot(t *testing.T) {
	mem, err := memory.NewMemory(16)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Poke(0, 10))
	snapshot := mem.Snapshot()

	// changing the live memory does not change the snapshot
	test.ExpectSuccess(t, mem.Poke(0, 20))
	test.ExpectEquality(t, snapshot[0], uint8(10))

	test.ExpectSuccess(t, mem.Plumb(snapshot))
	v, _ := mem.Peek(0)
	test.ExpectEquality(t, v, uint8(10))

	// changing the snapshot after plumbing does not change the live memory
	snapshot[0] = 30
	v, _ = mem.Peek(0)
	test.ExpectEquality(t, v, uint8(10))

	err = mem.Plumb(make([]uint8, 8))
	test.ExpectSuccess(t, curated.Is(err, memory.SnapshotSizeError))

	mem.Clear()
	v, _ = mem.Peek(0)
	test.ExpectEquality(t, v, uint8(0))
}

func TestGrid(t *testing.T) {
	mem, err := memory.NewMemory(32)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mem.Poke(0x11, 0xff))

	test.ExpectEquality(t, mem.Dump(0x10, 2), "0010: 00 ff")

	pad := strings.Repeat("   ", 15)
	test.ExpectEquality(t, mem.Dump(0x0f, 2), "0000:"+pad+" 00\n0010: 00")

	// clipped to memory bounds
	test.ExpectEquality(t, mem.Dump(0x1f, 10), "0010:"+pad+" 00")
}

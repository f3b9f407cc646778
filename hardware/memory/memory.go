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

package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/picocomputer/curated"
)

// DefaultSize is the number of cells in a standard PicoComputer. The
// original machine had a 64K address space.
const DefaultSize = 65536

// Sentinal errors returned by the memory package.
const (
	OutOfBoundsError  = "memory: address out of bounds (%d)"
	InvalidSizeError  = "memory: invalid size (%d)"
	SnapshotSizeError = "memory: snapshot is %d cells but memory is %d cells"
)

// AccessKind distinguishes between reads and writes in an AccessEvent.
type AccessKind int

// List of valid AccessKind values.
const (
	Read AccessKind = iota
	Write
)

func (k AccessKind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "unknown access"
}

// AccessEvent is sent to observers for every successful Read() and Write().
// Events are ephemeral. They are never part of the machine state.
type AccessEvent struct {
	Address int
	Kind    AccessKind
	Value   uint8
	Time    time.Time
}

func (ev AccessEvent) String() string {
	return fmt.Sprintf("%s %#04x = %#02x", ev.Kind, ev.Address, ev.Value)
}

// Observer is implemented by anything that wants to know about memory
// accesses. OnAccess() must not call back into the Memory instance.
type Observer interface {
	OnAccess(AccessEvent)
}

// Memory is the array of cells.
type Memory struct {
	cells     []uint8
	observers []Observer
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidSizeError, size)
	}
	return &Memory{
		cells: make([]uint8, size),
	}, nil
}

// Size returns the number of cells.
func (mem *Memory) Size() int {
	return len(mem.cells)
}

// AddObserver adds an observer to the list of observers. Observers are
// notified in the order in which they were added.
func (mem *Memory) AddObserver(o Observer) {
	mem.observers = append(mem.observers, o)
}

func (mem *Memory) inBounds(address int) error {
	if address < 0 || address >= len(mem.cells) {
		return curated.Errorf(OutOfBoundsError, address)
	}
	return nil
}

func (mem *Memory) notify(address int, kind AccessKind, value uint8) {
	if len(mem.observers) == 0 {
		return
	}
	ev := AccessEvent{
		Address: address,
		Kind:    kind,
		Value:   value,
		Time:    time.Now(),
	}
	for _, o := range mem.observers {
		o.OnAccess(ev)
	}
}

// Read the value at address. Observers are notified of the access.
func (mem *Memory) Read(address int) (uint8, error) {
	if err := mem.inBounds(address); err != nil {
		return 0, err
	}
	v := mem.cells[address]
	mem.notify(address, Read, v)
	return v, nil
}

// Write value to address. Observers are notified of the access.
func (mem *Memory) Write(address int, value uint8) error {
	if err := mem.inBounds(address); err != nil {
		return err
	}
	mem.cells[address] = value
	mem.notify(address, Write, value)
	return nil
}

// Peek is the same as Read() except that observers are not notified.
func (mem *Memory) Peek(address int) (uint8, error) {
	if err := mem.inBounds(address); err != nil {
		return 0, err
	}
	return mem.cells[address], nil
}

// Poke is the same as Write() except that observers are not notified.
func (mem *Memory) Poke(address int, value uint8) error {
	if err := mem.inBounds(address); err != nil {
		return err
	}
	mem.cells[address] = value
	return nil
}

// Clear sets every cell to zero.
func (mem *Memory) Clear() {
	clear(mem.cells)
}

// Snapshot returns a copy of every cell.
func (mem *Memory) Snapshot() []uint8 {
	n := make([]uint8, len(mem.cells))
	copy(n, mem.cells)
	return n
}

// Plumb copies the cells of an earlier snapshot into memory. The snapshot
// must be the same size as the memory.
func (mem *Memory) Plumb(cells []uint8) error {
	if len(cells) != len(mem.cells) {
		return curated.Errorf(SnapshotSizeError, len(cells), len(mem.cells))
	}
	copy(mem.cells, cells)
	return nil
}

// Dump returns a hex grid of count cells starting at address. The grid is
// clipped to the bounds of memory.
func (mem *Memory) Dump(address int, count int) string {
	return Grid(mem.cells, address, count)
}

func (mem *Memory) String() string {
	return mem.Dump(0, 256)
}

// Grid renders cells as rows of sixteen hex values, each row prefixed with
// the address of the first value in the row.
func Grid(cells []uint8, address int, count int) string {
	if address < 0 {
		count += address
		address = 0
	}
	end := min(address+count, len(cells))

	s := strings.Builder{}
	for row := address &^ 0x0f; row < end; row += 16 {
		s.WriteString(fmt.Sprintf("%04x:", row))
		for a := row; a < row+16 && a < end; a++ {
			if a < address {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", cells[a]))
			}
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

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

// Package cycles counts the instructions executed by the PicoComputer. Every
// instruction takes exactly one cycle.
//
// The count is reset only by a hard reset. A soft reset does not change it
// and stepping back restores the count that was current before the step.
package cycles

import "fmt"

// Counter of executed instructions.
type Counter struct {
	count uint64
}

func (c Counter) String() string {
	return fmt.Sprintf("%d cycles", c.count)
}

// Count returns the number of cycles counted.
func (c Counter) Count() uint64 {
	return c.count
}

// Tick increases the count by one.
func (c *Counter) Tick() {
	c.count++
}

// Reset the count to zero.
func (c *Counter) Reset() {
	c.count = 0
}

// Load a count. Used when restoring a snapshot.
func (c *Counter) Load(count uint64) {
	c.count = count
}

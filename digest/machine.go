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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/memory"
)

// Machine is a chained digest of machine states. It implements the
// controller.Observer interface and updates the digest every time the state
// changes.
type Machine struct {
	snapshot func() *hardware.State
	digest   [sha1.Size]byte
	buf      []byte
	states   int
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The snapshot function is called whenever the state changes and should return
// the current state, for example controller.Controller.State.
func NewMachine(snapshot func() *hardware.State) *Machine {
	return &Machine{snapshot: snapshot}
}

// Hash implements the Digest interface.
func (dig *Machine) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Machine) ResetDigest() {
	clear(dig.digest[:])
	dig.states = 0
}

// States returns the number of states that have contributed to the digest
// since it was last reset.
func (dig *Machine) States() int {
	return dig.states
}

// Update the digest with the state.
func (dig *Machine) Update(s *hardware.State) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	dig.buf = append(dig.buf[:0], dig.digest[:]...)

	for _, v := range s.Registers.Values() {
		dig.buf = binary.BigEndian.AppendUint16(dig.buf, v)
	}
	dig.buf = binary.BigEndian.AppendUint64(dig.buf, uint64(s.PC))
	dig.buf = binary.BigEndian.AppendUint64(dig.buf, s.Cycles)
	if s.Halted {
		dig.buf = append(dig.buf, 1)
	} else {
		dig.buf = append(dig.buf, 0)
	}
	dig.buf = binary.BigEndian.AppendUint64(dig.buf, uint64(s.InputCursor))
	dig.buf = binary.BigEndian.AppendUint64(dig.buf, uint64(len(s.Output)))
	for _, v := range s.Output {
		dig.buf = binary.BigEndian.AppendUint16(dig.buf, v)
	}
	dig.buf = append(dig.buf, s.Memory...)

	dig.digest = sha1.Sum(dig.buf)
	dig.states++
}

// OnAccess implements the controller.Observer interface.
func (dig *Machine) OnAccess(_ memory.AccessEvent) {
}

// OnStateChanged implements the controller.Observer interface.
func (dig *Machine) OnStateChanged(_ uint64, _ int) {
	dig.Update(dig.snapshot())
}

// OnHalt implements the controller.Observer interface.
func (dig *Machine) OnHalt(_ error) {
}

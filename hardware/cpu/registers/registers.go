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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/picocomputer/curated"
)

// Sentinal error returned by Get(), Set() and ParseID().
const UnknownRegisterError = "registers: unknown register (%v)"

// ID identifies a register in the register file.
type ID int

// List of valid register IDs.
const (
	R0 ID = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	SP

	// the number of registers in the register file
	NumRegisters int = iota
)

func (id ID) String() string {
	switch {
	case id == SP:
		return "SP"
	case id >= R0 && id <= R7:
		return fmt.Sprintf("R%d", id)
	}
	return fmt.Sprintf("unknown register (%d)", int(id))
}

// Valid returns false if the ID does not refer to a register in the file.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < NumRegisters
}

// ParseID returns the ID for the named register. The name is not case
// sensitive.
func ParseID(name string) (ID, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "SP" {
		return SP, nil
	}
	if len(n) == 2 && n[0] == 'R' && n[1] >= '0' && n[1] <= '7' {
		return ID(n[1] - '0'), nil
	}
	return 0, curated.Errorf(UnknownRegisterError, name)
}

// File is the register file. It is a value type: assigning a File to another
// variable copies every register.
type File struct {
	regs   [NumRegisters]Register
	Status StatusRegister
}

// NewFile is the preferred method of initialisation for the register file.
// Every register is zero.
func NewFile() File {
	var f File
	for i := range f.regs {
		f.regs[i] = NewRegister(0, ID(i).String())
	}
	return f
}

// Reset every register and the status flags to zero.
func (f *File) Reset() {
	*f = NewFile()
}

// Get returns the value of the register.
func (f *File) Get(id ID) (uint16, error) {
	if !id.Valid() {
		return 0, curated.Errorf(UnknownRegisterError, id)
	}
	return f.regs[id].Value(), nil
}

// Set the value of the register.
func (f *File) Set(id ID, val uint16) error {
	if !id.Valid() {
		return curated.Errorf(UnknownRegisterError, id)
	}
	f.regs[id].Load(val)
	return nil
}

// Register returns a pointer to the register so that its arithmetic methods
// can be used.
func (f *File) Register(id ID) (*Register, error) {
	if !id.Valid() {
		return nil, curated.Errorf(UnknownRegisterError, id)
	}
	return &f.regs[id], nil
}

// Values returns the value of every register in ID order.
func (f File) Values() [NumRegisters]uint16 {
	var v [NumRegisters]uint16
	for i, r := range f.regs {
		v[i] = r.Value()
	}
	return v
}

func (f File) String() string {
	s := strings.Builder{}
	for _, r := range f.regs {
		s.WriteString(r.String())
		s.WriteRune(' ')
	}
	s.WriteString(f.Status.Label())
	s.WriteRune('=')
	s.WriteString(f.Status.String())
	return s.String()
}

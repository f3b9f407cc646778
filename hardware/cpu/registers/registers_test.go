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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r.IsZero(), true)

	// addition
	r.Load(0x7ffe)
	carry, overflow = r.Add(1)
	test.ExpectEquality(t, r.Value(), uint16(0x7fff))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, false)

	// signed overflow
	carry, overflow = r.Add(1)
	test.ExpectEquality(t, r.Value(), uint16(0x8000))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r.IsNegative(), true)
	test.ExpectEquality(t, r.Signed(), int16(-0x8000))

	// unsigned wraparound
	r.Load(0xffff)
	carry, overflow = r.Add(1)
	test.ExpectEquality(t, r.Value(), uint16(0))
	test.ExpectEquality(t, r.IsZero(), true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)

	// subtraction
	r.Load(10)
	carry, overflow = r.Subtract(3)
	test.ExpectEquality(t, r.Value(), uint16(7))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, false)

	// subtraction below zero
	r.Load(0)
	carry, overflow = r.Subtract(1)
	test.ExpectEquality(t, r.Value(), uint16(0xffff))
	test.ExpectEquality(t, r.Signed(), int16(-1))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)

	// signed overflow on subtraction
	r.Load(0x8000)
	carry, overflow = r.Subtract(1)
	test.ExpectEquality(t, r.Value(), uint16(0x7fff))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// multiplication
	r.Load(300)
	carry = r.Multiply(300)
	test.ExpectEquality(t, r.Value(), uint16(90000&0xffff))
	test.ExpectEquality(t, carry, true)

	r.Load(0xffff)
	r.Multiply(2)
	test.ExpectEquality(t, r.Signed(), int16(-2))

	// division
	r.Load(17)
	overflow = r.Divide(5)
	test.ExpectEquality(t, r.Value(), uint16(3))
	test.ExpectEquality(t, overflow, false)

	// signed division rounds towards negative infinity
	r.Load(uint16(0xfff9)) // -7
	r.Divide(2)
	test.ExpectEquality(t, r.Signed(), int16(-4))

	r.Load(7)
	r.Divide(uint16(0xfffe)) // -2
	test.ExpectEquality(t, r.Signed(), int16(-4))

	r.Load(uint16(0xfff9))
	r.Divide(uint16(0xfffe))
	test.ExpectEquality(t, r.Signed(), int16(3))

	r.Load(uint16(0xfff8)) // -8
	r.Divide(2)
	test.ExpectEquality(t, r.Signed(), int16(-4))

	r.Load(0x8000)
	r.Divide(3)
	test.ExpectEquality(t, r.Signed(), int16(-10923))

	r.Load(0x8000)
	overflow = r.Divide(0xffff)
	test.ExpectEquality(t, r.Value(), uint16(0x8000))
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r.Load(0x0f0f)
	r.AND(0x00ff)
	test.ExpectEquality(t, r.Value(), uint16(0x000f))
	r.ORA(0xf000)
	test.ExpectEquality(t, r.Value(), uint16(0xf00f))
	r.EOR(0xffff)
	test.ExpectEquality(t, r.Value(), uint16(0x0ff0))
}

func TestRegisterFile(t *testing.T) {
	f := registers.NewFile()
	for id := registers.R0; id <= registers.SP; id++ {
		v, err := f.Get(id)
		test.ExpectSuccess(t, err, id)
		test.ExpectEquality(t, v, uint16(0), id)
	}

	test.ExpectSuccess(t, f.Set(registers.R3, 42))
	v, err := f.Get(registers.R3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(42))

	_, err = f.Get(registers.ID(registers.NumRegisters))
	test.ExpectSuccess(t, curated.Is(err, registers.UnknownRegisterError))
	err = f.Set(registers.ID(-1), 1)
	test.ExpectSuccess(t, curated.Is(err, registers.UnknownRegisterError))

	// the file is a value type and copies are independent
	c := f
	test.ExpectSuccess(t, c.Set(registers.R3, 43))
	v, _ = f.Get(registers.R3)
	test.ExpectEquality(t, v, uint16(42))
	test.ExpectEquality(t, f == registers.NewFile(), false)

	f.Reset()
	test.ExpectEquality(t, f == registers.NewFile(), true)
}

func TestParseID(t *testing.T) {
	id, err := registers.ParseID("r5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, registers.R5)

	id, err = registers.ParseID("Sp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, registers.SP)

	_, err = registers.ParseID("R8")
	test.ExpectSuccess(t, curated.Is(err, registers.UnknownRegisterError))

	_, err = registers.ParseID("PC")
	test.ExpectSuccess(t, curated.Is(err, registers.UnknownRegisterError))

	test.ExpectEquality(t, registers.R7.String(), "R7")
	test.ExpectEquality(t, registers.SP.String(), "SP")
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.String(), "svzc")

	sr.Zero = true
	sr.Carry = true
	test.ExpectEquality(t, sr.String(), "svZC")
	test.ExpectEquality(t, sr.Value(), uint8(0x03))
	test.ExpectEquality(t, sr.Greater(), false)
	test.ExpectEquality(t, sr.Less(), false)

	sr.FromValue(0x08)
	test.ExpectEquality(t, sr.String(), "Svzc")
	test.ExpectEquality(t, sr.Less(), true)

	sr.Reset()
	test.ExpectEquality(t, sr.Greater(), true)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 1)
	pc.Load(10)
	test.ExpectEquality(t, pc.Address(), 10)
	test.ExpectEquality(t, pc.String(), "10")
}

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
)

// Register is a 16 bit register.
type Register struct {
	value uint16
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Signed returns the value of the register interpreted as a two's complement
// number.
func (r Register) Signed() int16 {
	return int16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Add value to register. Returns carry and overflow states.
func (r *Register) Add(val uint16) (carry bool, overflow bool) {
	v := r.value
	r.value += val

	// the sign of the result differs from the sign of both operands
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x8000) != 0
	carry = r.value < v

	return carry, overflow
}

// Subtract value from register. Returns borrow and overflow states. Unlike
// the 6502 the borrow is not inverted: it is true when val is larger than the
// register value when both are treated as unsigned.
func (r *Register) Subtract(val uint16) (borrow bool, overflow bool) {
	v := r.value
	r.value -= val

	// the operands have different signs and the sign of the result differs
	// from the sign of the register before subtraction
	overflow = ((v ^ val) & (v ^ r.value) & 0x8000) != 0
	borrow = val > v

	return borrow, overflow
}

// Multiply register by value. The result is the low 16 bits of the product.
// Returns true if any significant bits were lost.
func (r *Register) Multiply(val uint16) (carry bool) {
	p := uint32(r.value) * uint32(val)
	r.value = uint16(p)
	return p > 0xffff
}

// Divide register by value, treating both as two's complement numbers. The
// quotient is rounded towards negative infinity, so -7 divided by 2 is -4. The
// caller must check for a zero divisor.
//
// Dividing the most negative number by minus one overflows. The register is
// left unchanged in that case and overflow is returned.
func (r *Register) Divide(val uint16) (overflow bool) {
	a := int16(r.value)
	b := int16(val)
	if a == -0x8000 && b == -1 {
		return true
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	r.value = uint16(q)
	return false
}

// AND value with register.
func (r *Register) AND(val uint16) {
	r.value &= val
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint16) {
	r.value |= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint16) {
	r.value ^= val
}

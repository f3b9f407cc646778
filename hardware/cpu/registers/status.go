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
	"strings"
)

// StatusRegister stores the flags set by arithmetic, logical and comparison
// instructions.
type StatusRegister struct {
	Sign     bool
	Overflow bool
	Zero     bool
	Carry    bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. Upper case letters show
// that the flag is set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value packs the flags into the low nibble of an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x08
	}
	if sr.Overflow {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue is the inverse of Value().
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x08 == 0x08
	sr.Overflow = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

// Less is true if the most recent comparison found the first operand less
// than the second when treated as two's complement numbers.
func (sr StatusRegister) Less() bool {
	return sr.Sign != sr.Overflow
}

// Greater is true if the most recent comparison found the first operand
// greater than the second when treated as two's complement numbers.
func (sr StatusRegister) Greater() bool {
	return !sr.Zero && sr.Sign == sr.Overflow
}

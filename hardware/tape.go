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

package hardware

// ProvideInput appends values to the input tape.
func (m *Machine) ProvideInput(v ...uint16) {
	m.tape = append(m.tape, v...)
}

// InputRemaining returns the number of values on the input tape that have not
// yet been read.
func (m *Machine) InputRemaining() int {
	return max(len(m.tape)-m.inputCursor, 0)
}

// Output returns a copy of the output log.
func (m *Machine) Output() []uint16 {
	o := make([]uint16, len(m.output))
	copy(o, m.output)
	return o
}

// ReadInput implements the cpu.IO interface.
func (m *Machine) ReadInput(n int) ([]uint16, bool) {
	if n > m.InputRemaining() {
		return nil, false
	}
	v := make([]uint16, n)
	copy(v, m.tape[m.inputCursor:])
	m.inputCursor += n
	return v, true
}

// WriteOutput implements the cpu.IO interface.
func (m *Machine) WriteOutput(v ...uint16) {
	m.output = append(m.output, v...)
}

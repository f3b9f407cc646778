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

package debugger

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// machineDump is the structure rendered by the DUMP command. Memory is not
// included because the graph would be unreadable.
type machineDump struct {
	PC        int
	Cycles    uint64
	Halted    bool
	Registers registers.File
	Last      cpu.Result
	Variables map[string]int
	Input     int
	Output    []uint16
}

// dump writes a graphviz rendering of the machine state to w.
func (dbg *Debugger) dump(w io.Writer) {
	prg := dbg.ctrl.Program()

	d := &machineDump{
		PC:        dbg.ctrl.PC(),
		Cycles:    dbg.ctrl.Cycles(),
		Halted:    dbg.ctrl.IsHalted(),
		Registers: dbg.ctrl.Registers(),
		Last:      dbg.ctrl.LastResult(),
		Variables: make(map[string]int, len(prg.Symbols)),
		Input:     dbg.ctrl.InputRemaining(),
		Output:    dbg.ctrl.Output(),
	}

	for name, a := range prg.Symbols {
		v, err := dbg.ctrl.Peek(a)
		if err == nil {
			d.Variables[name] = int(v)
		}
	}

	memviz.Map(w, d)
}

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
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/hardware/memory"
)

// OnAccess implements the controller.Observer interface.
func (dbg *Debugger) OnAccess(ev memory.AccessEvent) {
	if !dbg.trace {
		return
	}
	dbg.printLine(terminal.StyleEvent, "%-5s %04x = %02x", ev.Kind, ev.Address, ev.Value)
}

// OnStateChanged implements the controller.Observer interface.
func (dbg *Debugger) OnStateChanged(_ uint64, _ int) {
	// the STEP command prints its own results
	if !dbg.running {
		return
	}
	dbg.printLine(terminal.StyleInstruction, "%s", dbg.ctrl.LastResult())
}

// OnHalt implements the controller.Observer interface.
func (dbg *Debugger) OnHalt(reason error) {
	dbg.printLine(terminal.StyleEvent, "halted: %v", reason)
}

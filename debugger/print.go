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
	"fmt"
	"strings"

	"github.com/jetsetilly/picocomputer/debugger/terminal"
)

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}

	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.printCrit.Lock()
	defer dbg.printCrit.Unlock()
	dbg.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. Useful when an io.Writer is
// required and the output should be directed to the terminal in a single
// style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		wrt.dbg.printLine(wrt.style, "%s", l)
	}
	return len(p), nil
}

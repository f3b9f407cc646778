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

//go:build !windows

// Package colorterm implements the Terminal interface for the PicoComputer
// debugger. It supports color output, a command history and tab completion.
//
// The package is not available on Windows.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the debugger's Terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory []string
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = ct.commandHistory[:0]
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

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

//go:build windows

// Package colorterm is not available under windows.
package colorterm

import (
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
)

// ColorTerminal is a placeholder on windows. Initialise() always fails.
type ColorTerminal struct{}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not available on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(terminal.TabCompletion) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(bool) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(terminal.Prompt, *terminal.ReadEvents) (string, error) {
	return "", curated.Errorf("colorterm: not available on windows")
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(terminal.Style, string) {}

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

// Package plainterm implements the Terminal interface for the PicoComputer
// debugger. It is as simple as possible and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the most basic terminal interface. It keeps the terminal
// in whatever mode it started, probably cooked mode. As such, it offers only
// rudimentary editing facilities and little control over output.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal creates a PlainTerminal that reads and writes using the
// specified reader and writer. A zero value PlainTerminal uses stdin and
// stdout after Initialise() is called.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = bufio.NewReader(os.Stdin)
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.output == nil {
		pt.output = os.Stdout
		pt.realOutput = term.IsTerminal(int(os.Stdout.Fd()))
	}
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// input is echoed by the user's own terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	// there's no need for a prompt if the input is not from a real terminal
	if pt.realInput {
		io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}

	// an interrupt may have arrived while we were waiting for input
	if events != nil {
		select {
		case <-events.IntEvents:
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}

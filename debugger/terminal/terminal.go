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

package terminal

import (
	"os"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the trailing newline.
	//
	// Implementations should check the IntEvents channel of the ReadEvents
	// argument, if they can, and return the UserInterrupt error if a signal
	// is found.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive should return true for implementations that are
	// controlled by a user as opposed to a script.
	IsInteractive() bool
}

// Sentinal errors returned by TermRead().
const (
	UserInterrupt = "terminal: user interrupt"
	UserAbort     = "terminal: user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// Not all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

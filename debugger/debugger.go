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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/govern"
	"github.com/jetsetilly/picocomputer/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	ctrl *controller.Controller
	term terminal.Terminal

	events terminal.ReadEvents

	// printLine() can be called from the observer callbacks while the
	// emulation is running
	printCrit sync.Mutex

	// print every memory access
	trace bool

	// the emulation is being run by the RUN command
	running bool

	// the number of output values that have been printed
	outputSeen int

	quit bool
}

// NewDebugger creates a new debugger for the controller. The terminal is
// initialised when Start() is called.
func NewDebugger(ctrl *controller.Controller, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		ctrl: ctrl,
		term: term,
		events: terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}
	ctrl.AddObserver(dbg)
	return dbg
}

// Start the debugger. Commands are read from the terminal until the QUIT
// command, the end of input, an interrupt at the prompt or the cancellation
// of the context.
func (dbg *Debugger) Start(ctx context.Context) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion(commandKeywords()))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	prg := dbg.ctrl.Program()
	dbg.printLine(terminal.StyleFeedback, "%d instructions, %d variables, %d labels", prg.Len(), len(prg.Symbols), len(prg.Labels))
	dbg.printLine(terminal.StyleHelp, "type HELP for a list of commands")

	logger.Log(logger.Allow, "debugger", "started")
	defer logger.Log(logger.Allow, "debugger", "ended")

	return dbg.inputLoop(ctx)
}

func (dbg *Debugger) inputLoop(ctx context.Context) error {
	for !dbg.quit {
		if ctx.Err() != nil {
			return nil
		}

		input, err := dbg.term.TermRead(dbg.prompt(), &dbg.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseInput(ctx, input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}

		dbg.printOutput()
	}

	return nil
}

// prompt shows the next instruction to be executed.
func (dbg *Debugger) prompt() terminal.Prompt {
	prg := dbg.ctrl.Program()
	pc := dbg.ctrl.PC()

	p := terminal.Prompt{Type: terminal.PromptTypeStep}

	if ins, ok := prg.Fetch(pc); ok {
		p.Content = fmt.Sprintf("%04x %s", prg.Origin+pc, ins)
	} else {
		p.Content = fmt.Sprintf("%04x", prg.Origin+pc)
	}

	if dbg.ctrl.IsHalted() {
		p.Type = terminal.PromptTypeHalted
	} else if _, sub := dbg.ctrl.Governor(); sub == govern.PausedForInput {
		p.Type = terminal.PromptTypeInput
	}

	return p
}

// printOutput prints any values added to the output log since the last call.
func (dbg *Debugger) printOutput() {
	out := dbg.ctrl.Output()

	// the output log shrinks on a step back or reset
	if len(out) < dbg.outputSeen {
		dbg.outputSeen = len(out)
		return
	}

	for _, v := range out[dbg.outputSeen:] {
		dbg.printLine(terminal.StyleProgramOutput, "OUT %d (%#04x)", int16(v), v)
	}
	dbg.outputSeen = len(out)
}

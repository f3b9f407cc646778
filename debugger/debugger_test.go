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

package debugger_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/picocomputer/assembler"
	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/debugger"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/test"
)

type line struct {
	style terminal.Style
	s     string
}

type mockTerm struct {
	input  []string
	output []line
	tab    terminal.TabCompletion
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(tc terminal.TabCompletion) {
	trm.tab = tc
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, line{style: sty, s: s})
}

// contains returns true if a line of output in the specified style contains
// the string.
func (trm *mockTerm) contains(sty terminal.Style, s string) bool {
	for _, l := range trm.output {
		if l.style == sty && strings.Contains(l.s, s) {
			return true
		}
	}
	return false
}

const euclid = `M = 1
N = 2
R = 3
ORG 8
IN M, 2
LOOP:
DIV R, M, N
MUL R, R, N
SUB R, M, R
MOV M, N
MOV N, R
BGT R, 0, LOOP
OUT M, 1
STOP
`

func run(t *testing.T, source string, input ...string) *mockTerm {
	t.Helper()

	prg, err := assembler.AssembleString(source)
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(memory.DefaultSize)
	test.DemandSuccess(t, err)
	c, err := controller.NewController(m, controller.WithInterval(controller.MinInterval))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Load(prg))

	trm := &mockTerm{input: input}
	dbg := debugger.NewDebugger(c, trm)
	test.DemandSuccess(t, dbg.Start(context.Background()))

	return trm
}

func TestEuclid(t *testing.T) {
	trm := run(t, euclid,
		"INPUT 25 10",
		"STEP",
		"VARS",
		"RUN",
		"OUTPUT",
		"QUIT",
		"STEP",
	)

	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "9 instructions, 3 variables, 1 labels"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "2 values waiting on input tape"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleInstruction, "0: IN M, #2"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "M        0001  25"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "N        0002  10"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleInstruction, "6: BGT R, #0, LOOP"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleEvent, "halted"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "run ended: halted"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleProgramOutput, "OUT 5"))

	// the final STEP is never read because of the QUIT
	test.ExpectSuccess(t, !trm.contains(terminal.StyleError, "halted"))
}

func TestEmptyLineSteps(t *testing.T) {
	trm := run(t, "MOV R0, 5\nADD R0, 3\nHALT R0\n", "", "", "REGS", "", "BACK", "REGS")

	test.ExpectSuccess(t, trm.contains(terminal.StyleInstruction, "0: MOV R0, #5"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleInstruction, "1: ADD R0, #3"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "PC=2 cycles=2"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleProgramOutput, "OUT 8"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "cycle 1"))

	// HALT leaves no history so the machine is back where it was before the
	// ADD instruction
	test.ExpectEquality(t, strings.Count(trm.output[len(trm.output)-2].s, "PC=1 cycles=1"), 1)
}

func TestErrors(t *testing.T) {
	trm := run(t, "IN R0\nHALT\n",
		"FOO",
		"BACK",
		"STEP",
		"MEM",
		"MEM 70000",
		"RESET SIDEWAYS",
		"STEP 0",
		"HELP NOTHING",
		"TRACE MAYBE",
	)

	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "FOO is not a debugger command"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "rewind"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "use the INPUT command"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "MEM requires an address"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "out of bounds"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "unknown reset type"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "count must be a positive number"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "no help for NOTHING"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleError, "TRACE takes ON or OFF"))
}

func TestTraceAndMemory(t *testing.T) {
	trm := run(t, "A = 32\nMOV A, 7\nMOV R1, A\nHALT\n",
		"TRACE ON",
		"STEP 2",
		"TRACE OFF",
		"MEM A 1",
		"COMPARISON",
		"HISTORY",
		"LIST",
	)

	test.ExpectSuccess(t, trm.contains(terminal.StyleEvent, "write 0020 = 07"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleEvent, "read  0020 = 07"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "0020: 07"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "R1"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleMachine, "0020 = 07"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "2 entries from cycle 0 to 1"))
	test.ExpectSuccess(t, trm.contains(terminal.StyleInstruction, "> 0002"))
}

func TestDump(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "machine.dot")
	trm := run(t, "A = 1\nMOV A, 7\nHALT\n", "STEP", "DUMP "+fn)

	test.ExpectSuccess(t, trm.contains(terminal.StyleFeedback, "machine state written to"))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestTabCompletion(t *testing.T) {
	trm := run(t, "HALT\n")
	test.DemandSuccess(t, trm.tab != nil)

	test.ExpectEquality(t, trm.tab.Complete("reg"), "REGS ")
	trm.tab.Reset()

	// RESET and REGS both match. repeated calls cycle through the matches
	test.ExpectEquality(t, trm.tab.Complete("re"), "REGS ")
	test.ExpectEquality(t, trm.tab.Complete("REGS "), "RESET ")
	test.ExpectEquality(t, trm.tab.Complete("RESET "), "REGS ")
	trm.tab.Reset()

	test.ExpectEquality(t, trm.tab.Complete("xyz"), "xyz")
	trm.tab.Reset()
	test.ExpectEquality(t, trm.tab.Complete("MEM 10"), "MEM 10")
}

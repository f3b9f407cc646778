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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/picocomputer/test"
)

const euclid = `M = 1
N = 2
R = 3
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

// launchArgs runs launch() with the arguments and returns the exit value it
// requests.
func launchArgs(t *testing.T, args ...string) int {
	t.Helper()

	sync := &mainSync{
		state: make(chan stateRequest),
	}

	go launch(context.Background(), sync, args)

	for {
		state := <-sync.state
		if state.req != reqQuit {
			continue
		}
		if state.args == nil {
			return 0
		}
		return state.args.(int)
	}
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.asm")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(src), 0o600))
	return fn
}

func TestModes(t *testing.T) {
	fn := writeProgram(t, euclid)

	test.ExpectEquality(t, launchArgs(t, "ASM", fn), 0, "asm")
	test.ExpectEquality(t, launchArgs(t, "ASM", "-symbols", fn), 0, "asm symbols")
	test.ExpectEquality(t, launchArgs(t, "RUN", "-prefs=false", "-fast", "-input", "25,10", fn), 0, "run")
	test.ExpectEquality(t, launchArgs(t, "RUN", "-prefs=false", "-fast", "-digest", "-input", "25,10", fn), 0, "run digest")
	test.ExpectEquality(t, launchArgs(t, "PERFORM", "-prefs=false", "-duration", "10ms", "-input", "25,10", fn), 0, "perform")
	test.ExpectEquality(t, launchArgs(t, "RUN", "-prefs=false", "-interval", "10ms", "-input", "25,10", fn), 0, "run paced")
	test.ExpectEquality(t, launchArgs(t, "VERSION"), 0, "version")
}

func TestModeErrors(t *testing.T) {
	fn := writeProgram(t, euclid)

	// not enough input
	test.ExpectEquality(t, launchArgs(t, "RUN", "-prefs=false", "-fast", "-input", "25", fn), 20, "input")

	// missing and too many arguments
	test.ExpectEquality(t, launchArgs(t, "ASM"), 20, "missing")
	test.ExpectEquality(t, launchArgs(t, "ASM", fn, fn), 20, "too many")

	// file does not exist
	test.ExpectEquality(t, launchArgs(t, "ASM", filepath.Join(t.TempDir(), "missing.asm")), 20, "no file")

	// assembly error
	test.ExpectEquality(t, launchArgs(t, "ASM", writeProgram(t, "FOO A\n")), 20, "syntax")

	// invalid profile type
	test.ExpectEquality(t, launchArgs(t, "PERFORM", "-prefs=false", "-profile", "bogus", fn), 20, "profile")
}

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

package performance_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/performance"
	"github.com/jetsetilly/picocomputer/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func newController(t *testing.T, prg instructions.Program) *controller.Controller {
	t.Helper()
	m, err := hardware.NewMachine(memory.DefaultSize)
	test.DemandSuccess(t, err)
	c, err := controller.NewController(m, controller.WithMaxHistory(10))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Load(prg))
	return c
}

func TestCheck(t *testing.T) {
	loop := instructions.NewProgram(
		instructions.New(instructions.ADD, instructions.Reg(registers.R0), instructions.Imm(1)),
		instructions.New(instructions.JMP, instructions.Imm(0)),
	)

	tw := &test.Writer{}
	res, err := performance.Check(context.Background(), tw, performance.ProfileNone, newController(t, loop), 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Reason, controller.StopCancelled)
	test.ExpectSuccess(t, res.Instructions > 0)
	test.ExpectSuccess(t, res.Elapsed >= 50*time.Millisecond)
	test.ExpectSuccess(t, tw.Compare(res.String()+"\n"), tw.String())
}

func TestCheckHalts(t *testing.T) {
	halts := instructions.NewProgram(
		instructions.New(instructions.NOP),
		instructions.New(instructions.HALT),
	)

	tw := &test.Writer{}
	res, err := performance.Check(context.Background(), tw, performance.ProfileNone, newController(t, halts), time.Second)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Reason, controller.StopHalted)

	// the HALT instruction is not counted
	test.ExpectEquality(t, res.Instructions, uint64(1))
}

func TestCheckDuration(t *testing.T) {
	_, err := performance.Check(context.Background(), &test.Writer{}, performance.ProfileNone, nil, 0)
	test.ExpectFailure(t, err)
}

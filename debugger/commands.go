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
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/logger"
)

// debugger keywords.
const (
	cmdStep       = "STEP"
	cmdBack       = "BACK"
	cmdRun        = "RUN"
	cmdReset      = "RESET"
	cmdRegs       = "REGS"
	cmdMem        = "MEM"
	cmdVars       = "VARS"
	cmdInput      = "INPUT"
	cmdOutput     = "OUTPUT"
	cmdList       = "LIST"
	cmdHistory    = "HISTORY"
	cmdComparison = "COMPARISON"
	cmdTrace      = "TRACE"
	cmdDump       = "DUMP"
	cmdLog        = "LOG"
	cmdPrefs      = "PREFS"
	cmdHelp       = "HELP"
	cmdQuit       = "QUIT"
)

var help = map[string]string{
	cmdStep:       "STEP [n]\n\tExecute the next instruction, or the next n instructions. An empty line is the same as STEP",
	cmdBack:       "BACK [n]\n\tUndo the most recent instruction, or the n most recent instructions",
	cmdRun:        "RUN [interval]\n\tRun the program until it halts or is interrupted with ctrl-c. The interval is\n\tthe time between instructions in milliseconds",
	cmdReset:      "RESET [SOFT|HARD]\n\tSOFT returns to the start of the program. HARD also clears memory, registers,\n\tinput, output and history. The default is SOFT",
	cmdRegs:       "REGS\n\tDisplay the register file. Registers changed since the comparison point are listed",
	cmdMem:        "MEM address [count]\n\tDisplay memory. The address can be a number or a variable name",
	cmdVars:       "VARS\n\tDisplay the address and value of every variable",
	cmdInput:      "INPUT [value...]\n\tAdd values to the input tape. With no values, display the number of unread values",
	cmdOutput:     "OUTPUT\n\tDisplay the output log",
	cmdList:       "LIST\n\tDisplay the program listing",
	cmdHistory:    "HISTORY [MAX n]\n\tSummarise the rewind history. MAX sets the maximum number of entries, zero for\n\tno limit",
	cmdComparison: "COMPARISON [LOCK|UNLOCK]\n\tDisplay the memory addresses and registers changed since the comparison point.\n\tThe comparison point moves before every STEP and RUN unless it is locked",
	cmdTrace:      "TRACE [ON|OFF]\n\tPrint every memory access",
	cmdDump:       "DUMP file\n\tWrite a graphviz rendering of the machine state to file",
	cmdLog:        "LOG [CLEAR]\n\tDisplay the log",
	cmdPrefs:      "PREFS [SAVE]\n\tDisplay the current preferences or save them to disk",
	cmdHelp:       "HELP [command]\n\tList commands or display help for a command",
	cmdQuit:       "QUIT\n\tEnd the debugger",
}

// commandKeywords returns every keyword in alphabetical order.
func commandKeywords() []string {
	k := make([]string, 0, len(help))
	for c := range help {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}

// parseInput executes the command in the input string.
func (dbg *Debugger) parseInput(ctx context.Context, input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		tokens = []string{cmdStep}
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	if _, ok := help[command]; !ok {
		return curated.Errorf("%s is not a debugger command", tokens[0])
	}

	switch command {
	case cmdHelp:
		if len(args) == 0 {
			dbg.printLine(terminal.StyleHelp, strings.Join(commandKeywords(), " "))
			return nil
		}
		h, ok := help[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf("no help for %s", args[0])
		}
		dbg.printLine(terminal.StyleHelp, h)

	case cmdQuit:
		dbg.quit = true

	case cmdStep:
		n, err := optionalCount(args)
		if err != nil {
			return err
		}
		dbg.ctrl.UpdateComparison()
		for loopIdx := 0; loopIdx < n; loopIdx++ {
			if err := dbg.ctrl.Step(); err != nil {
				return dbg.stepError(err)
			}
			dbg.printLine(terminal.StyleInstruction, "%s", dbg.ctrl.LastResult())
			if dbg.ctrl.IsHalted() {
				break // for loop
			}
		}

	case cmdBack:
		n, err := optionalCount(args)
		if err != nil {
			return err
		}
		for loopIdx := 0; loopIdx < n; loopIdx++ {
			if err := dbg.ctrl.StepBack(); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, "cycle %d", dbg.ctrl.Cycles())

	case cmdRun:
		interval := dbg.ctrl.Interval()
		if len(args) > 0 {
			ms, err := strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf("interval must be a number of milliseconds (%s)", args[0])
			}
			interval = time.Duration(ms) * time.Millisecond
		}
		return dbg.run(ctx, interval)

	case cmdReset:
		mode := "SOFT"
		if len(args) > 0 {
			mode = strings.ToUpper(args[0])
		}
		switch mode {
		case "SOFT":
			dbg.ctrl.SoftReset()
		case "HARD":
			dbg.ctrl.HardReset()
		default:
			return curated.Errorf("unknown reset type (%s)", args[0])
		}
		dbg.printLine(terminal.StyleFeedback, "%s reset", strings.ToLower(mode))

	case cmdRegs:
		regs := dbg.ctrl.Registers()
		dbg.printLine(terminal.StyleMachine, "PC=%d cycles=%d", dbg.ctrl.PC(), dbg.ctrl.Cycles())
		dbg.printLine(terminal.StyleMachine, "%s", regs)
		if _, changed := dbg.ctrl.Changes(); len(changed) > 0 {
			s := make([]string, len(changed))
			for i, id := range changed {
				s[i] = id.String()
			}
			dbg.printLine(terminal.StyleFeedback, "changed: %s", strings.Join(s, " "))
		}

	case cmdMem:
		if len(args) == 0 {
			return curated.Errorf("MEM requires an address")
		}
		address, err := dbg.resolveAddress(args[0])
		if err != nil {
			return err
		}
		count := 16
		if len(args) > 1 {
			count, err = strconv.Atoi(args[1])
			if err != nil || count <= 0 {
				return curated.Errorf("count must be a positive number (%s)", args[1])
			}
		}
		mem := dbg.ctrl.Memory()
		if address >= len(mem) {
			return curated.Errorf(memory.OutOfBoundsError, address)
		}
		dbg.printLine(terminal.StyleMachine, "%s", memory.Grid(mem, address, count))

	case cmdVars:
		prg := dbg.ctrl.Program()
		names := prg.SortedSymbols()
		if len(names) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no variables")
			return nil
		}
		for _, name := range names {
			a := prg.Symbols[name]
			v, err := dbg.ctrl.Peek(a)
			if err != nil {
				dbg.printLine(terminal.StyleMachine, "%-8s %04x  --", name, a)
				continue
			}
			dbg.printLine(terminal.StyleMachine, "%-8s %04x  %d", name, a, v)
		}

	case cmdInput:
		if len(args) == 0 {
			dbg.printLine(terminal.StyleFeedback, "%d values waiting on input tape", dbg.ctrl.InputRemaining())
			return nil
		}
		values := make([]uint16, 0, len(args))
		for _, a := range args {
			for _, f := range strings.Split(a, ",") {
				if f == "" {
					continue
				}
				v, err := strconv.ParseInt(f, 0, 32)
				if err != nil || v < -0x8000 || v > 0xffff {
					return curated.Errorf("input must be a 16 bit number (%s)", f)
				}
				values = append(values, uint16(v))
			}
		}
		dbg.ctrl.ProvideInput(values...)
		dbg.printLine(terminal.StyleFeedback, "%d values waiting on input tape", dbg.ctrl.InputRemaining())

	case cmdOutput:
		out := dbg.ctrl.Output()
		if len(out) == 0 {
			dbg.printLine(terminal.StyleFeedback, "output log is empty")
			return nil
		}
		s := make([]string, len(out))
		for i, v := range out {
			s[i] = strconv.Itoa(int(int16(v)))
		}
		dbg.printLine(terminal.StyleProgramOutput, "%s", strings.Join(s, " "))

	case cmdList:
		dbg.list()

	case cmdHistory:
		if len(args) > 0 {
			if strings.ToUpper(args[0]) != "MAX" || len(args) != 2 {
				return curated.Errorf("usage: %s", strings.SplitN(help[cmdHistory], "\n", 2)[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return curated.Errorf("maximum must be a number (%s)", args[1])
			}
			if err := dbg.ctrl.SetMaxHistory(n); err != nil {
				return err
			}
		}
		tl := dbg.ctrl.Timeline()
		if tl.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "history is empty (max %d, dropped %d)", dbg.ctrl.MaxHistory(), tl.Dropped)
			return nil
		}
		earliest, _ := tl.Earliest()
		latest, _ := tl.Latest()
		dbg.printLine(terminal.StyleFeedback, "%d entries from cycle %d to %d (max %d, dropped %d)",
			tl.Len(), earliest, latest, dbg.ctrl.MaxHistory(), tl.Dropped)

	case cmdComparison:
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "LOCK":
				dbg.ctrl.LockComparison(true)
				dbg.printLine(terminal.StyleFeedback, "comparison point locked")
			case "UNLOCK":
				dbg.ctrl.LockComparison(false)
				dbg.printLine(terminal.StyleFeedback, "comparison point unlocked")
			default:
				return curated.Errorf("unknown comparison option (%s)", args[0])
			}
			return nil
		}
		addresses, regs := dbg.ctrl.Changes()
		if len(addresses) == 0 && len(regs) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no changes")
			return nil
		}
		for _, id := range regs {
			dbg.printLine(terminal.StyleMachine, "%s", id)
		}
		for _, a := range addresses {
			v, _ := dbg.ctrl.Peek(a)
			dbg.printLine(terminal.StyleMachine, "%04x = %02x", a, v)
		}

	case cmdTrace:
		if len(args) == 0 {
			dbg.trace = !dbg.trace
		} else {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.trace = true
			case "OFF":
				dbg.trace = false
			default:
				return curated.Errorf("TRACE takes ON or OFF (%s)", args[0])
			}
		}
		if dbg.trace {
			dbg.printLine(terminal.StyleFeedback, "trace on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace off")
		}

	case cmdDump:
		if len(args) == 0 {
			return curated.Errorf("DUMP requires a filename")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.dump(f)
		if err := f.Close(); err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "machine state written to %s", args[0])

	case cmdLog:
		if len(args) > 0 && strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		logger.Write(dbg.printStyle(terminal.StyleFeedback))

	case cmdPrefs:
		if len(args) > 0 && strings.ToUpper(args[0]) == "SAVE" {
			if err := dbg.ctrl.SavePreferences(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "preferences saved")
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.ctrl.Prefs)
		dbg.printLine(terminal.StyleFeedback, "rewind.maxEntries: %d", dbg.ctrl.MaxHistory())

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

// run the emulation until it stops. an interrupt pauses the emulation.
func (dbg *Debugger) run(ctx context.Context, interval time.Duration) error {
	dbg.ctrl.UpdateComparison()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-dbg.events.IntEvents:
			dbg.ctrl.Pause()
		case <-done:
		}
	}()

	dbg.running = true
	reason, err := dbg.ctrl.Run(ctx, interval)
	dbg.running = false

	switch reason {
	case controller.StopFault, controller.StopInput:
		return dbg.stepError(err)
	case controller.StopRefused:
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "run ended: %s", reason)
	return nil
}

// stepError adds a hint to errors returned by Step() and Run().
func (dbg *Debugger) stepError(err error) error {
	if curated.Is(err, cpu.InputRequiredError) {
		return curated.Errorf("%v: use the INPUT command", err)
	}
	return err
}

// list prints the program listing with a marker next to the current
// instruction.
func (dbg *Debugger) list() {
	prg := dbg.ctrl.Program()
	pc := dbg.ctrl.PC()
	for i, l := range strings.Split(strings.TrimRight(prg.Listing(), "\n"), "\n") {
		if i == pc {
			dbg.printLine(terminal.StyleInstruction, "> %s", l)
		} else {
			dbg.printLine(terminal.StyleFeedback, "  %s", l)
		}
	}
}

// resolveAddress converts a number or a variable name to an address.
func (dbg *Debugger) resolveAddress(s string) (int, error) {
	if a, ok := dbg.ctrl.Program().Symbols[strings.ToUpper(s)]; ok {
		return a, nil
	}
	a, err := strconv.ParseInt(s, 0, 32)
	if err != nil || a < 0 {
		return 0, curated.Errorf("%s is not an address or a variable", s)
	}
	return int(a), nil
}

func optionalCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, curated.Errorf("count must be a positive number (%s)", args[0])
	}
	return n, nil
}

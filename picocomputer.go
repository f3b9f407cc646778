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
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/picocomputer/assembler"
	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/debugger"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/debugger/terminal/colorterm"
	"github.com/jetsetilly/picocomputer/debugger/terminal/plainterm"
	"github.com/jetsetilly/picocomputer/digest"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/memory"
	"github.com/jetsetilly/picocomputer/logger"
	"github.com/jetsetilly/picocomputer/modalflag"
	"github.com/jetsetilly/picocomputer/paths"
	"github.com/jetsetilly/picocomputer/performance"
	"github.com/jetsetilly/picocomputer/prefs"
	"github.com/jetsetilly/picocomputer/statsview"
	"github.com/jetsetilly/picocomputer/version"
	"golang.org/x/term"
)

// the number of history entries kept when running as quickly as possible and
// the number of entries has not been specified on the command line. every
// entry is a copy of the machine's memory.
const fastHistory = 100

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop listening for interrupt signals in the main thread. used when the
	// mode has its own handler. the debugger for example uses ctrl-c to pause
	// a running program.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the first interrupt cancels the context given to launch(). a second
	// interrupt quits immediately
	ctx, cancel := context.WithCancel(context.Background())

	go launch(ctx, sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if ctx.Err() != nil {
				done = true
				exitVal = 30
			}
			cancel()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	cancel()
	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(ctx context.Context, sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "ASM", "PERFORM", "VERSION")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if stats != nil && *stats {
		statsview.Launch(ctx, md.Output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "DEBUG":
		err = debug(ctx, md, sync)

	case "ASM":
		err = asm(md)

	case "PERFORM":
		err = perform(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// machineFlags are the flags common to every mode that creates a controller.
type machineFlags struct {
	memSize    *int
	interval   *time.Duration
	maxHistory *int
	input      *[]uint16
	log        *bool
	prefs      *bool
	setPrefs   *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		memSize:    md.AddInt("mem", memory.DefaultSize, "number of memory cells"),
		interval:   md.AddDuration("interval", controller.DefaultInterval, "time between instructions when running"),
		maxHistory: md.AddInt("history", 0, "maximum number of rewind history entries (zero is unlimited)"),
		input:      md.AddValues("input", "comma separated values for the input tape"),
		log:        md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:      md.AddBool("prefs", true, "load preferences from disk"),
		setPrefs:   md.AddString("setprefs", "", "preferences that take precedence over the preferences file (key::value; key::value)"),
	}
}

// loadProgram assembles the file named by the single remaining argument.
func loadProgram(md *modalflag.Modes) (instructions.Program, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return instructions.Program{}, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return instructions.Program{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return instructions.Program{}, err
	}
	defer f.Close()

	return assembler.Assemble(f)
}

// newController creates a machine and a controller for the program. command
// line flags take precedence over values in the preferences file.
func newController(md *modalflag.Modes, fl machineFlags, prog instructions.Program, opts ...controller.Option) (*controller.Controller, error) {
	if *fl.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	m, err := hardware.NewMachine(*fl.memSize)
	if err != nil {
		return nil, err
	}

	ctrl, err := controller.NewController(m, opts...)
	if err != nil {
		return nil, err
	}

	if *fl.prefs {
		// values on the command line stack are used in place of the values in
		// the preferences file while it is loaded
		if *fl.setPrefs != "" {
			prefs.PushCommandLineStack(*fl.setPrefs)
			defer prefs.PopCommandLineStack()
		}

		pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
		err = ctrl.AttachPreferences(pth)
		if err != nil {
			return nil, err
		}
	}

	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "interval":
			err = ctrl.SetInterval(*fl.interval)
		case "history":
			err = ctrl.SetMaxHistory(*fl.maxHistory)
		}
	})
	if err != nil {
		return nil, err
	}

	err = ctrl.Load(prog)
	if err != nil {
		return nil, err
	}

	ctrl.ProvideInput(*fl.input...)

	return ctrl, nil
}

// limitHistory sets the number of history entries to fastHistory unless the
// history flag has been used.
func limitHistory(md *modalflag.Modes, ctrl *controller.Controller) error {
	set := false
	md.Visit(func(flag string) {
		set = set || flag == "history"
	})
	if set {
		return nil
	}
	return ctrl.SetMaxHistory(fastHistory)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)
	fast := md.AddBool("fast", false, "run as quickly as possible. the interval is ignored")
	digestState := md.AddBool("digest", false, "print a fingerprint of every state the program passed through")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := loadProgram(md)
	if err != nil {
		return err
	}

	ctrl, err := newController(md, fl, prog)
	if err != nil {
		return err
	}

	var dig *digest.Machine
	if *digestState {
		dig = digest.NewMachine(ctrl.State)
		ctrl.AddObserver(dig)
	}

	var reason controller.StopReason
	if *fast {
		err = limitHistory(md, ctrl)
		if err != nil {
			return err
		}
		reason, err = ctrl.RunUnpaced(ctx, 0)
	} else {
		reason, err = ctrl.Run(ctx, ctrl.Interval())
	}

	writeSummary(md.Output, ctrl, reason)
	if dig != nil {
		fmt.Fprintf(md.Output, "digest: %s (%d states)\n", dig.Hash(), dig.States())
	}

	switch reason {
	case controller.StopHalted, controller.StopCancelled:
		return nil
	case controller.StopInput:
		return fmt.Errorf("program requires more input than was provided")
	}

	return err
}

// writeSummary writes the output tape and the state of the machine once the
// program has stopped.
func writeSummary(w io.Writer, ctrl *controller.Controller, reason controller.StopReason) {
	fmt.Fprintf(w, "stopped: %s\n", reason)
	if err := ctrl.HaltReason(); err != nil {
		fmt.Fprintf(w, "halt: %v\n", err)
	}

	out := ctrl.Output()
	s := make([]string, len(out))
	for i, v := range out {
		s[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(w, "output: %s\n", strings.Join(s, ", "))

	regs := ctrl.Registers()
	fmt.Fprintf(w, "cycles: %d  pc: %d\n%s\n", ctrl.Cycles(), ctrl.PC(), regs.String())
}

func debug(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	fl := addMachineFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddString("profile", "none", "run debugger through cpu/mem/trace profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prog, err := loadProgram(md)
	if err != nil {
		return err
	}

	ctrl, err := newController(md, fl, prog)
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "AUTO":
		if runtime.GOOS != "windows" && term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	}

	// the debugger handles ctrl-c itself. it is used to interrupt a running
	// program without quitting the debugger
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg := debugger.NewDebugger(ctrl, trm)

	return performance.RunProfiler(prof, "debugger", func() error {
		return dbg.Start(ctx)
	})
}

func asm(md *modalflag.Modes) error {
	md.NewMode()

	symbols := md.AddBool("symbols", false, "list variables and labels after the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := loadProgram(md)
	if err != nil {
		return err
	}

	fmt.Fprint(md.Output, prog.Listing())

	if *symbols {
		for _, s := range prog.SortedSymbols() {
			fmt.Fprintf(md.Output, "%-8s = [%d]\n", s, prog.Symbols[s])
		}

		labels := make([]string, 0, len(prog.Labels))
		for l := range prog.Labels {
			labels = append(labels, l)
		}
		slices.Sort(labels)
		for _, l := range labels {
			fmt.Fprintf(md.Output, "%-8s : %04x\n", l, prog.Origin+prog.Labels[l])
		}
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "produce cpu/mem/trace profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prog, err := loadProgram(md)
	if err != nil {
		return err
	}

	// the controller only logs during a performance check if the log is
	// being echoed
	ctrl, err := newController(md, fl, prog, controller.WithLogging(*fl.log))
	if err != nil {
		return err
	}

	err = limitHistory(md, ctrl)
	if err != nil {
		return err
	}

	_, err = performance.Check(ctx, md.Output, prof, ctrl, *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s\n%s\n", v, r)
	} else {
		fmt.Fprintln(md.Output, v)
	}

	return nil
}

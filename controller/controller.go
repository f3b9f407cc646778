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

package controller

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/govern"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
	"github.com/jetsetilly/picocomputer/logger"
	"github.com/jetsetilly/picocomputer/rewind"
)

// Sentinal errors returned by the controller package.
const (
	InvalidConfigurationError = "controller: invalid configuration: %v"
	AlreadyRunningError       = "controller: already running"
)

// Limits for the interval between steps when running.
const (
	MinInterval     = 10 * time.Millisecond
	MaxInterval     = 1000 * time.Millisecond
	DefaultInterval = 100 * time.Millisecond
)

// Controller coordinates the machine and the rewind history.
type Controller struct {
	crit sync.Mutex

	machine *hardware.Machine
	rewind  *rewind.Rewind

	// Prefs for the controller. The rewind preferences are attached to the
	// same file by AttachPreferences()
	Prefs *Preferences

	observers []Observer

	// notifications waiting for the controller to be unlocked
	pending []func()

	state    govern.State
	subState govern.SubState

	// interval between steps when running, in nanoseconds. atomic so that the
	// preferences hook can set it without the lock
	interval atomic.Int64

	// signals the run loop that it should end
	stop chan struct{}

	// log entries are not made by a quiet controller
	quiet bool
}

// Option configures a new Controller.
type Option func(c *Controller) error

// WithInterval sets the interval between steps when running.
func WithInterval(interval time.Duration) Option {
	return func(c *Controller) error {
		return c.setInterval(interval)
	}
}

// WithMaxHistory sets the maximum number of entries in the rewind history.
// Zero means no limit.
func WithMaxHistory(n int) Option {
	return func(c *Controller) error {
		if err := c.rewind.Prefs.MaxEntries.Set(n); err != nil {
			return curated.Errorf(InvalidConfigurationError, err)
		}
		return nil
	}
}

// WithSoftResetClearsHistory sets whether a soft reset clears the rewind
// history.
func WithSoftResetClearsHistory(clears bool) Option {
	return func(c *Controller) error {
		return c.rewind.Prefs.SoftResetClears.Set(clears)
	}
}

// WithObserver adds an observer to the controller.
func WithObserver(o Observer) Option {
	return func(c *Controller) error {
		c.observers = append(c.observers, o)
		return nil
	}
}

// WithLogging sets whether the controller makes entries in the central log.
// Logging is allowed by default.
func WithLogging(allow bool) Option {
	return func(c *Controller) error {
		c.quiet = !allow
		return nil
	}
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(m *hardware.Machine, opts ...Option) (*Controller, error) {
	c := &Controller{
		machine: m,
		rewind:  rewind.NewRewind(m),
		state:   govern.Initialising,
		stop:    make(chan struct{}, 1),
	}
	c.interval.Store(int64(DefaultInterval))
	c.Prefs = newPreferences(c)

	m.Mem.AddObserver(accessForwarder{c: c})

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	c.rest()

	return c, nil
}

// AllowLogging implements the logger.Permission interface.
func (c *Controller) AllowLogging() bool {
	return !c.quiet
}

// AddObserver adds an observer to the controller. Observers are notified in
// the order in which they were added.
func (c *Controller) AddObserver(o Observer) {
	c.crit.Lock()
	defer c.unlock()

	// the slice is copied because queued notifications refer to the old one
	obs := make([]Observer, len(c.observers), len(c.observers)+1)
	copy(obs, c.observers)
	c.observers = append(obs, o)
}

// must only be called while the controller is locked.
func (c *Controller) setState(state govern.State, subState govern.SubState) {
	if !govern.StateIntegrity(state, subState) {
		logger.Logf(c, "controller", "illegal sub-state (%s) for state (%s)", subState, state)
		subState = govern.Normal
	}
	c.state = state
	c.subState = subState
}

// the state the controller should be in when it is not running.
func (c *Controller) restingState() (govern.State, govern.SubState) {
	if c.machine.IsHalted() {
		r := c.machine.CPU.HaltReason
		if curated.Is(r, cpu.HaltInstruction) || curated.Is(r, cpu.EndOfProgram) {
			return govern.Halted, govern.HaltedByProgram
		}
		return govern.Halted, govern.HaltedByFault
	}
	if c.rewind.Len() == 0 {
		return govern.Paused, govern.PausedAtStart
	}
	return govern.Paused, govern.Normal
}

// must only be called while the controller is locked.
func (c *Controller) rest() {
	c.setState(c.restingState())
}

// must only be called while the controller is locked.
func (c *Controller) plumb(s *hardware.State) {
	if err := c.machine.Plumb(s); err != nil {
		logger.Log(c, "controller", err)
	}
}

// Load a program into the machine. The machine is hard reset and the history
// is cleared.
func (c *Controller) Load(program instructions.Program) error {
	c.crit.Lock()
	defer c.unlock()

	c.setState(govern.Initialising, govern.Normal)

	if err := c.machine.Load(program); err != nil {
		c.rest()
		return err
	}

	c.rewind.Reset()
	c.rest()
	c.queueStateChanged()

	logger.Logf(c, "controller", "loaded program (%d instructions)", program.Len())

	return nil
}

// Governor returns the current state of the emulation.
func (c *Controller) Governor() (govern.State, govern.SubState) {
	c.crit.Lock()
	defer c.unlock()
	return c.state, c.subState
}

// Cycles returns the number of instructions executed since the last hard
// reset.
func (c *Controller) Cycles() uint64 {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Cycles.Count()
}

// PC returns the program counter.
func (c *Controller) PC() int {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.CPU.PC.Address()
}

// Registers returns a copy of the register file.
func (c *Controller) Registers() registers.File {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.CPU.Regs
}

// Peek returns the value of a memory cell. Observers are not notified.
func (c *Controller) Peek(address int) (uint8, error) {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Mem.Peek(address)
}

// Memory returns a copy of every memory cell.
func (c *Controller) Memory() []uint8 {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Mem.Snapshot()
}

// Output returns a copy of the output log.
func (c *Controller) Output() []uint16 {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Output()
}

// State returns a copy of the complete machine state.
func (c *Controller) State() *hardware.State {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Snapshot()
}

// Program returns the loaded program.
func (c *Controller) Program() instructions.Program {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.Program()
}

// LastResult returns the result of the most recently executed instruction.
func (c *Controller) LastResult() cpu.Result {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.CPU.LastResult
}

// IsHalted returns true if the machine has halted.
func (c *Controller) IsHalted() bool {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.IsHalted()
}

// HaltReason returns the reason the machine halted. Returns nil if the machine
// is not halted.
func (c *Controller) HaltReason() error {
	c.crit.Lock()
	defer c.unlock()
	if !c.machine.IsHalted() {
		return nil
	}
	return c.machine.CPU.HaltReason
}

// ProvideInput appends values to the input tape.
func (c *Controller) ProvideInput(v ...uint16) {
	c.crit.Lock()
	defer c.unlock()
	c.machine.ProvideInput(v...)
	if c.state == govern.Paused && c.subState == govern.PausedForInput {
		c.rest()
	}
}

// InputRemaining returns the number of values on the input tape that have not
// been read.
func (c *Controller) InputRemaining() int {
	c.crit.Lock()
	defer c.unlock()
	return c.machine.InputRemaining()
}

// Timeline returns a summary of the rewind history.
func (c *Controller) Timeline() rewind.Timeline {
	c.crit.Lock()
	defer c.unlock()
	return c.rewind.GetTimeline()
}

// UpdateComparison sets the comparison point to the current state. Changes
// since the comparison point are returned by Changes().
func (c *Controller) UpdateComparison() {
	c.crit.Lock()
	defer c.unlock()
	c.rewind.UpdateComparison()
}

// LockComparison stops the comparison point from being updated.
func (c *Controller) LockComparison(locked bool) {
	c.crit.Lock()
	defer c.unlock()
	c.rewind.LockComparison(locked)
}

// Changes returns the memory addresses and registers that have changed since
// the comparison point.
func (c *Controller) Changes() ([]int, []registers.ID) {
	c.crit.Lock()
	defer c.unlock()
	s := c.machine.Snapshot()
	return c.rewind.ChangedAddresses(s), c.rewind.ChangedRegisters(s)
}

// Interval returns the interval between steps when running.
func (c *Controller) Interval() time.Duration {
	return time.Duration(c.interval.Load())
}

// SetInterval sets the interval between steps when running. The interval
// must be between MinInterval and MaxInterval. Values outside that range are
// rejected, not clamped.
func (c *Controller) SetInterval(interval time.Duration) error {
	return c.setInterval(interval)
}

func (c *Controller) setInterval(interval time.Duration) error {
	if err := validateInterval(interval); err != nil {
		return err
	}
	return c.Prefs.Interval.Set(int(interval / time.Millisecond))
}

func validateInterval(interval time.Duration) error {
	if interval < MinInterval || interval > MaxInterval {
		return curated.Errorf(InvalidConfigurationError,
			curated.Errorf("interval (%v) must be between %v and %v", interval, MinInterval, MaxInterval))
	}
	return nil
}

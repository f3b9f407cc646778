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
	"context"
	"time"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/govern"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
)

// StopReason explains why Run() returned.
type StopReason int

// List of valid StopReason values.
const (
	// Pause() was called or the emulation was otherwise stopped by the
	// front end
	StopPaused StopReason = iota

	// the machine halted normally
	StopHalted

	// the context was cancelled
	StopCancelled

	// an instruction failed and the machine is halted
	StopFault

	// the IN instruction needs more input. the machine is not halted
	StopInput

	// the run did not start
	StopRefused
)

func (r StopReason) String() string {
	switch r {
	case StopPaused:
		return "paused"
	case StopHalted:
		return "halted"
	case StopCancelled:
		return "cancelled"
	case StopFault:
		return "fault"
	case StopInput:
		return "input required"
	case StopRefused:
		return "refused"
	}
	return "unknown stop reason"
}

// Start puts the emulation into the running state. It is called by Run() and
// RunUnpaced() but can be used directly with Tick() when the caller wants to
// schedule steps itself.
func (c *Controller) Start() error {
	c.crit.Lock()
	defer c.unlock()

	if c.state == govern.Running {
		return curated.Errorf(AlreadyRunningError)
	}
	if c.machine.IsHalted() {
		return curated.Errorf(hardware.MachineHaltedError)
	}

	// drain any stop signal left over from a previous run
	select {
	case <-c.stop:
	default:
	}

	c.setState(govern.Running, govern.Normal)

	return nil
}

// Pause a running emulation. The pause takes effect before the next step.
// A step in progress is always completed.
func (c *Controller) Pause() {
	c.crit.Lock()
	defer c.unlock()

	if c.state == govern.Running {
		c.halt()
	}
}

// halt the run loop. must only be called while the controller is locked.
func (c *Controller) halt() {
	c.rest()
	select {
	case c.stop <- struct{}{}:
	default:
	}
}

// Tick performs a single step of a running emulation. It returns false when
// the emulation is no longer running, either because it has been paused or
// because the step has halted the machine.
func (c *Controller) Tick() (bool, error) {
	running, _, err := c.tick()
	return running, err
}

func (c *Controller) tick() (bool, StopReason, error) {
	c.crit.Lock()
	defer c.unlock()

	if c.state != govern.Running {
		return false, StopPaused, nil
	}

	// the machine may have been halted by a call to Step() since the last
	// tick
	if c.machine.IsHalted() {
		c.rest()
		return false, StopHalted, nil
	}

	err := c.step()
	if err != nil {
		if curated.Is(err, cpu.InputRequiredError) {
			c.setState(govern.Paused, govern.PausedForInput)
			return false, StopInput, err
		}
		c.rest()
		return false, StopFault, err
	}

	if c.machine.IsHalted() {
		c.rest()
		return false, StopHalted, nil
	}

	return true, StopPaused, nil
}

// stopped is called when the run loop ends for a reason other than a tick.
func (c *Controller) stopped() {
	c.crit.Lock()
	defer c.unlock()
	if c.state == govern.Running {
		c.rest()
	}
}

// Run the emulation, one step every interval, until it is paused, halts, an
// instruction fails or the context is cancelled.
//
// The interval must be between MinInterval and MaxInterval. Changes made to
// the interval with SetInterval() while running take effect from the next
// step.
func (c *Controller) Run(ctx context.Context, interval time.Duration) (StopReason, error) {
	if err := c.SetInterval(interval); err != nil {
		return StopRefused, err
	}
	if err := c.Start(); err != nil {
		return StopRefused, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.stopped()
			return StopCancelled, ctx.Err()
		case <-c.stop:
			c.stopped()
			return StopPaused, nil
		case <-ticker.C:
			running, reason, err := c.tick()
			if !running {
				return reason, err
			}
			if n := c.Interval(); n != interval {
				interval = n
				ticker.Reset(interval)
			}
		}
	}
}

// RunUnpaced runs the emulation as quickly as possible. It stops for the
// same reasons as Run() and also once limit steps have been taken. A limit of
// zero means no limit.
//
// The rewind history is recorded as normal. Consider setting the
// rewind.maxEntries preference for long running programs.
func (c *Controller) RunUnpaced(ctx context.Context, limit int) (StopReason, error) {
	if err := c.Start(); err != nil {
		return StopRefused, err
	}

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			c.stopped()
			return StopCancelled, ctx.Err()
		case <-c.stop:
			c.stopped()
			return StopPaused, nil
		default:
		}

		running, reason, err := c.tick()
		if !running {
			return reason, err
		}

		if limit > 0 && n >= limit {
			c.stopped()
			return StopPaused, nil
		}
	}
}

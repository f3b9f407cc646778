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
	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/govern"
	"github.com/jetsetilly/picocomputer/hardware"
	"github.com/jetsetilly/picocomputer/hardware/cpu"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/logger"
)

// Step executes a single instruction. The state before the instruction is
// added to the rewind history, except for a HALT instruction that succeeds.
//
// Stepping a halted machine returns hardware.MachineHaltedError and changes
// nothing.
//
// If the instruction fails the machine is returned to the state it was in
// before the step and is halted. The history entry remains so that StepBack()
// will clear the halted state. The exception is cpu.InputRequiredError, which
// does not halt the machine and does not leave a history entry. Provide input
// with ProvideInput() and step again.
func (c *Controller) Step() error {
	c.crit.Lock()
	defer c.unlock()

	err := c.step()
	if c.state != govern.Running {
		if curated.Is(err, cpu.InputRequiredError) {
			c.setState(govern.Paused, govern.PausedForInput)
		} else {
			c.rest()
		}
	}
	return err
}

// must only be called while the controller is locked.
func (c *Controller) step() error {
	if c.machine.IsHalted() {
		return curated.Errorf(hardware.MachineHaltedError)
	}

	// accesses made by a failed instruction are not reported
	mark := len(c.pending)

	// a successful HALT leaves no history entry. stepping back from a halted
	// machine returns to the state before the instruction that preceded it
	var pre *hardware.State
	if ins, ok := c.machine.Program().Fetch(c.machine.CPU.PC.Address()); ok && ins.Opcode == instructions.HALT {
		pre = c.machine.Snapshot()
	} else {
		c.rewind.PushBeforeStep()
	}

	err := c.machine.Step()
	if err == nil {
		c.queueStateChanged()
		if c.machine.IsHalted() {
			reason := c.machine.CPU.HaltReason
			logger.Log(c, "controller", reason)
			c.queueHalt(reason)
		}
		return nil
	}

	c.pending = c.pending[:mark]

	if pre != nil {
		c.plumb(pre)
		if curated.Is(err, cpu.InputRequiredError) {
			return err
		}
		c.rewind.PushBeforeStep()
	}

	if curated.Is(err, cpu.InputRequiredError) {
		prev, _ := c.rewind.StepBack()
		c.plumb(prev)
		return err
	}

	prev, _ := c.rewind.Peek()
	c.plumb(prev)
	c.machine.Halt(err)

	logger.Log(c, "controller", err)

	c.queueStateChanged()
	c.queueHalt(err)

	return err
}

// StepBack returns the machine to the state it was in before the most recent
// step. Returns rewind.EmptyHistoryError if there is nothing to step back to.
//
// If the emulation is running it is paused first.
func (c *Controller) StepBack() error {
	c.crit.Lock()
	defer c.unlock()

	if c.state == govern.Running {
		c.halt()
	}

	c.setState(govern.Rewinding, govern.Normal)

	s, err := c.rewind.StepBack()
	if err != nil {
		c.rest()
		return err
	}

	c.plumb(s)
	c.rest()
	c.queueStateChanged()

	return nil
}

// SoftReset sets the program counter to the start of the program and clears
// the halted state. Memory, registers and cycle count are unchanged. The
// rewind history is preserved unless the rewind.softResetClears preference is
// set.
func (c *Controller) SoftReset() {
	c.crit.Lock()
	defer c.unlock()

	c.machine.SoftReset()
	c.rewind.SoftReset()
	if c.state != govern.Running {
		c.rest()
	}
	c.queueStateChanged()

	logger.Log(c, "controller", "soft reset")
}

// HardReset returns the machine to its power on state. Memory, registers,
// cycle count, input tape, output log and rewind history are all cleared.
//
// If the emulation is running it is paused first.
func (c *Controller) HardReset() {
	c.crit.Lock()
	defer c.unlock()

	if c.state == govern.Running {
		c.halt()
	}

	c.machine.HardReset()
	c.rewind.Reset()
	c.rest()
	c.queueStateChanged()

	logger.Log(c, "controller", "hard reset")
}

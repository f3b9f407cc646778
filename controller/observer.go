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
	"github.com/jetsetilly/picocomputer/hardware/memory"
)

// Observer is implemented by front ends that want to be told about changes to
// the emulation.
type Observer interface {
	// a memory cell has been read or written by an instruction. accesses made
	// by an instruction that failed are not reported
	OnAccess(ev memory.AccessEvent)

	// the machine state has changed because of a step, a step back, a reset
	// or a program load
	OnStateChanged(cycles uint64, pc int)

	// the machine has halted. reason is never nil
	OnHalt(reason error)
}

// accessForwarder is added to the machine's memory and passes access events
// to the controller's observers.
type accessForwarder struct {
	c *Controller
}

// OnAccess implements the memory.Observer interface. It is only ever called
// while the controller is locked.
func (f accessForwarder) OnAccess(ev memory.AccessEvent) {
	f.c.queue(func(obs []Observer) {
		for _, o := range obs {
			o.OnAccess(ev)
		}
	})
}

// queue a notification. the notification is sent once the controller is
// unlocked. must only be called while the controller is locked.
func (c *Controller) queue(f func([]Observer)) {
	if len(c.observers) == 0 {
		return
	}
	obs := c.observers
	c.pending = append(c.pending, func() { f(obs) })
}

func (c *Controller) queueStateChanged() {
	cycles := c.machine.Cycles.Count()
	pc := c.machine.CPU.PC.Address()
	c.queue(func(obs []Observer) {
		for _, o := range obs {
			o.OnStateChanged(cycles, pc)
		}
	})
}

func (c *Controller) queueHalt(reason error) {
	c.queue(func(obs []Observer) {
		for _, o := range obs {
			o.OnHalt(reason)
		}
	})
}

// unlock the controller and send any pending notifications.
func (c *Controller) unlock() {
	p := c.pending
	c.pending = nil
	c.crit.Unlock()
	for _, f := range p {
		f()
	}
}

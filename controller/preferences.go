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
	"fmt"
	"time"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/prefs"
)

// Preferences for the controller.
type Preferences struct {
	c   *Controller
	dsk *prefs.Disk

	// interval between steps when running, in milliseconds
	Interval prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("controller.interval :: %s", &p.Interval)
	}
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(c *Controller) *Preferences {
	p := &Preferences{c: c}

	p.Interval.SetHookPre(func(v prefs.Value) error {
		return validateInterval(time.Duration(v.(int)) * time.Millisecond)
	})
	p.Interval.SetHookPost(func(v prefs.Value) error {
		c.interval.Store(int64(time.Duration(v.(int)) * time.Millisecond))
		return nil
	})

	_ = p.Interval.Set(int(DefaultInterval / time.Millisecond))

	return p
}

// AttachPreferences associates the controller and rewind preferences with the
// preferences file at pth. Values in the file are loaded immediately.
func (c *Controller) AttachPreferences(pth string) error {
	var err error

	c.Prefs.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return err
	}
	err = c.Prefs.dsk.Add("controller.interval", &c.Prefs.Interval)
	if err != nil {
		return err
	}
	err = c.Prefs.dsk.Load()
	if err != nil {
		return err
	}

	// the rewind preferences are not protected by the controller's lock.
	// attach them before the emulation starts
	return c.rewind.Prefs.Attach(pth)
}

// SavePreferences writes the controller and rewind preferences to the
// attached preferences file.
func (c *Controller) SavePreferences() error {
	if c.Prefs.dsk == nil {
		return curated.Errorf("controller: preferences are not attached to a file")
	}
	if err := c.Prefs.dsk.Save(); err != nil {
		return err
	}
	return c.rewind.Prefs.Save()
}

// SetMaxHistory sets the maximum number of entries in the rewind history. Zero
// means no limit. If the history is currently longer than the new limit the
// oldest entries are forgotten.
func (c *Controller) SetMaxHistory(n int) error {
	c.crit.Lock()
	defer c.unlock()
	if err := c.rewind.Prefs.MaxEntries.Set(n); err != nil {
		return curated.Errorf(InvalidConfigurationError, err)
	}
	return nil
}

// MaxHistory returns the maximum number of entries in the rewind history.
func (c *Controller) MaxHistory() int {
	c.crit.Lock()
	defer c.unlock()
	return c.rewind.Prefs.MaxEntries.Get().(int)
}

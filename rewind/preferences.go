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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	r   *Rewind
	dsk *prefs.Disk

	// the maximum number of entries to store before the earliest entries are
	// forgotten. zero means no limit
	MaxEntries prefs.Int

	// whether a soft reset clears the history
	SoftResetClears prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("rewind.maxEntries :: %s\nrewind.softResetClears :: %s", &p.MaxEntries, &p.SoftResetClears)
	}
	return p.dsk.String()
}

const (
	maxEntries      = 0
	softResetClears = false
)

// newPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are not associated with a file on disk
// until Attach() is called.
func newPreferences(r *Rewind) *Preferences {
	p := &Preferences{r: r}

	p.MaxEntries.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("rewind: maxEntries cannot be negative (%d)", v)
		}
		return nil
	})

	_ = p.MaxEntries.Set(maxEntries)
	_ = p.SoftResetClears.Set(softResetClears)

	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.trim()
		return nil
	})

	return p
}

// Attach the preferences to the preferences file at pth. Values in the file
// are loaded immediately.
func (p *Preferences) Attach(pth string) error {
	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return err
	}

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return err
	}
	err = p.dsk.Add("rewind.softResetClears", &p.SoftResetClears)
	if err != nil {
		return err
	}

	return p.dsk.Load()
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf("rewind: preferences are not attached to a file")
	}
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("rewind: preferences are not attached to a file")
	}
	return p.dsk.Save()
}

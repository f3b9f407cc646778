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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const prefsSeparator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, prefsSeparator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is the name that will be used in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, prefsSeparator) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk. Values in the existing preferences
// file that have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data := make(map[string]string)

	// preserve unrelated entries. not finding a file is fine
	err := dsk.read(func(key, value string) error {
		data[key] = value
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, prefsSeparator, data[k])
	}

	return w.Flush()
}

// Load preference values from disk. A missing preferences file is not an
// error. Values on the command line stack take precedence over values in the
// file.
func (dsk *Disk) Load() error {
	err := dsk.read(func(key, value string) error {
		if p, ok := dsk.entries[key]; ok {
			return p.Set(value)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// read the preferences file, calling f() for every key/value pair.
func (dsk *Disk) read(f func(key, value string) error) error {
	fd, err := os.Open(dsk.path)
	if err != nil {
		return err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)

	// the first line must be the warning boilerplate
	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), prefsSeparator, 2)
		if len(kv) != 2 {
			continue
		}
		if err := f(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])); err != nil {
			return err
		}
	}

	return scanner.Err()
}

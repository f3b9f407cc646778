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

// Package prefs facilitates the storing of preferential values in the
// PicoComputer system. A preference is a value that persists between
// sessions, for example the maximum depth of the rewind history.
//
// Preference values are typed. The Bool and Int types are supported. Values
// are added to a Disk instance with a key and the Disk type handles the
// loading and saving of values to a preferences file:
//
//	var maxEntries prefs.Int
//
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("rewind.maxEntries", &maxEntries)
//	_ = dsk.Load()
//
// Hooks can be registered with SetHookPost() that will be called whenever
// the value is changed. This is how the rewind package applies a change to
// the history depth as soon as it happens.
//
// Preferences can also be specified on the command line. The command line
// stack functions push a string of key/value pairs that will take precedence
// over the values stored in the preferences file. The format of the string
// is:
//
//	key::value; key::value
package prefs

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
	"strings"
)

var commandLineStack []map[string]string

// PushCommandLineStack parses a command line and adds it as a new group. The
// format of the string is "key::value; key::value".
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.SplitN(p, "::", 2)
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
func PopCommandLineStack() {
	if len(commandLineStack) == 0 {
		return
	}
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
}

// GetCommandLinePref returns the value of the preference from the most recent
// group on the command line stack.
func GetCommandLinePref(key string) (string, bool) {
	if len(commandLineStack) == 0 {
		return "", false
	}
	v, ok := commandLineStack[len(commandLineStack)-1][key]
	return v, ok
}

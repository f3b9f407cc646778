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

package debugger

import (
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface. Only the
// first word of the input is completed. Repeated calls to Complete() without
// an intervening Reset() cycle through the matching keywords.
type tabCompletion struct {
	keywords []string

	matches []string
	idx     int
}

func newTabCompletion(keywords []string) *tabCompletion {
	return &tabCompletion{keywords: keywords}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if tc.matches == nil {
		if strings.Contains(strings.TrimSpace(input), " ") {
			return input
		}
		word := strings.ToUpper(strings.TrimSpace(input))
		tc.matches = []string{}
		for _, k := range tc.keywords {
			if strings.HasPrefix(k, word) {
				tc.matches = append(tc.matches, k)
			}
		}
		tc.idx = 0
	} else {
		tc.idx++
	}

	if len(tc.matches) == 0 {
		return input
	}

	return tc.matches[tc.idx%len(tc.matches)] + " "
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = nil
	tc.idx = 0
}

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

package instructions

import (
	"fmt"
	"sort"
	"strings"
)

// Program is a list of instructions and the information needed to load and
// display it.
type Program struct {
	Instructions []Instruction

	// the index of the first instruction to execute
	Start int

	// variable names and the memory address assigned to them
	Symbols map[string]int

	// label names and the index of the instruction they refer to
	Labels map[string]int

	// the address of the first instruction. used by listings only. the
	// program counter always indexes the Instructions slice
	Origin int
}

// NewProgram returns a program with no symbols or labels.
func NewProgram(ins ...Instruction) Program {
	return Program{
		Instructions: ins,
		Symbols:      make(map[string]int),
		Labels:       make(map[string]int),
	}
}

// Len returns the number of instructions in the program.
func (p Program) Len() int {
	return len(p.Instructions)
}

// Fetch returns the instruction at index pc. The boolean return value is
// false if there is no instruction at that index.
func (p Program) Fetch(pc int) (Instruction, bool) {
	if pc < 0 || pc >= len(p.Instructions) {
		return Instruction{}, false
	}
	return p.Instructions[pc], true
}

// LabelAt returns the label for the instruction at index pc. The empty string
// is returned if there is no label.
func (p Program) LabelAt(pc int) string {
	for l, i := range p.Labels {
		if i == pc {
			return l
		}
	}
	return ""
}

// SortedSymbols returns the names of the variables in address order.
func (p Program) SortedSymbols() []string {
	s := make([]string, 0, len(p.Symbols))
	for k := range p.Symbols {
		s = append(s, k)
	}
	sort.Slice(s, func(i, j int) bool {
		if p.Symbols[s[i]] == p.Symbols[s[j]] {
			return s[i] < s[j]
		}
		return p.Symbols[s[i]] < p.Symbols[s[j]]
	})
	return s
}

// Listing returns the program as text with one instruction per line. Each
// line is prefixed with the address of the instruction.
func (p Program) Listing() string {
	s := strings.Builder{}
	for i, ins := range p.Instructions {
		l := p.LabelAt(i)
		if l != "" {
			l = fmt.Sprintf("%s:", l)
		}
		s.WriteString(fmt.Sprintf("%04x  %-8s %s\n", p.Origin+i, l, ins))
	}
	return s.String()
}

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

package terminal

import (
	"strings"
)

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can then
// choose to display the text in a way that suits the category.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input
	// has been normalised (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly of the most recently executed instruction
	StyleInstruction

	// register file and other machine state
	StyleMachine

	// notifications from the emulation that were not directly requested.
	// memory access events and halts for example
	StyleEvent

	// output from the program. values written by the OUT instruction
	StyleProgramOutput

	// an error has occurred
	StyleError
)

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	PromptTypeStep PromptType = iota
	PromptTypeHalted
	PromptTypeInput
)

// Prompt specifies the prompt text and the prompt type.
type Prompt struct {
	Type    PromptType
	Content string
}

// String returns the prompt with standard decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	switch p.Type {
	case PromptTypeStep:
		s.WriteString(" >> ")
	case PromptTypeHalted:
		s.WriteString(" !! ")
	case PromptTypeInput:
		s.WriteString(" ?? ")
	}

	return s.String()
}

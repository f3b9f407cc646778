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

//go:build !windows

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/debugger/terminal"
	"github.com/jetsetilly/picocomputer/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/picocomputer/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the input being edited before the user started moving through the
	// history
	var pending []rune

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	for {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		// an interrupt may have arrived while we were waiting for input
		if events != nil {
			select {
			case <-events.IntEvents:
				ct.EasyTerm.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return "", io.EOF
			}

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}

		case easyterm.KeyCarriageReturn:
			ct.EasyTerm.TermPrint("\r\n")
			s := string(input)
			if s != "" && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						pending = append(pending[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append([]rune{}, pending...)
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}

			case easyterm.EscHome:
				cursor = 0

			case easyterm.EscEnd:
				cursor = len(input)

			case easyterm.EscDelete:
				// delete key sends a trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

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

package easyterm

// Control keys read from a terminal in raw mode.
const (
	KeyInterrupt      = 3 // ctrl-c
	KeyEndOfFile      = 4 // ctrl-d
	KeyBackspace      = 8
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyDelete         = 127
)

// Bytes following KeyEsc.
const (
	EscCursor = '['
	EscDelete = '3'
	EscHome   = 'H'
	EscEnd    = 'F'
)

// Bytes following EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

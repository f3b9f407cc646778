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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

var attributes = map[string]int{
	"bold":      1,
	"dim":       2,
	"underline": 4,
	"inverse":   7,
	"strike":    8,
}

// Pens is the table of bright colors to be used for text.
var Pens = make(map[string]string)

// DimPens is the table of pastel colors to be used for text.
var DimPens = make(map[string]string)

// PenStyles is the table of styles to be used for text.
var PenStyles = make(map[string]string)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	for c := range colors {
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}
	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false)
	}
}

// ColorBuild creates the CSI sequence for the pen with the foreground color,
// background color and attribute. Any of the three can be left empty.
func ColorBuild(pen, paper, attribute string, bright bool) (string, error) {
	var parts []string

	if pen != "" {
		c, ok := colors[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		target := 3
		if bright && c != colors["normal"] {
			target = 9
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		parts = append(parts, fmt.Sprintf("4%d", c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\0337"

// CursorRestore is the CSI sequence to move the cursor to the most recently
// stored position.
const CursorRestore = "\0338"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

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

// Package modalflag wraps the flag package from the standard library and
// adds the idea of program modes. Each mode can have its own set of flags.
//
// Arguments are supplied once with NewArgs() and then consumed with one or
// more calls to Parse(). Flags for the current mode are added before the
// call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "ASM")
//	p, err := md.Parse()
//
// If the first argument after the flags is one of the sub-modes then it is
// consumed and becomes the result of Mode(). Otherwise the first sub-mode in
// the list is selected. Mode names are not case sensitive.
//
// Flags for the selected mode are then added after a call to NewMode() and
// the remaining arguments parsed:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		interval := md.AddDuration("interval", 100*time.Millisecond, "time between steps")
//		p, err := md.Parse()
//		...
//	}
//
// Help is printed to the Output writer automatically when the -help flag is
// seen. Parse() returns ParseHelp in that case and the program should exit
// quietly.
package modalflag

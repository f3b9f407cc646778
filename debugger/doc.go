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

// Package debugger is the interactive front end for the PicoComputer. It
// reads commands from a terminal and uses them to drive a
// controller.Controller.
//
// The debugger is itself an observer of the controller. Halts are always
// reported. Memory accesses are reported when tracing is turned on with the
// TRACE command. Values written to the output log by the program are printed
// after every command.
//
// Pressing return on an empty line steps the emulation by one instruction.
// An interrupt (ctrl-c) while the emulation is running pauses it. An
// interrupt at the prompt ends the debugger.
package debugger

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

// Package hardware is the base package for the PicoComputer emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// stepped one instruction at a time with Step() or run until it halts with
// Run().
//
// The complete state of the machine can be captured with Snapshot() and
// restored with Plumb(). The rewind package uses these functions to provide
// reversible execution.
package hardware

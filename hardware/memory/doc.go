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

// Package memory implements the flat, byte addressable memory of the
// PicoComputer. Every cell is eight bits wide and addresses run from zero to
// one less than the size of the memory.
//
// Read() and Write() are the accesses made by the CPU. Each successful access
// is reported to any observers that have been added with AddObserver(). Peek()
// and Poke() are for the debugger and for loading, and are never reported.
package memory

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

// Package statsview serves runtime statistics for the emulator process over
// HTTP. The server is only included in builds made with the statsview build
// tag. Without the tag Available() returns false and Launch() does nothing.
//
// Once launched, charts of memory usage and goroutine counts are viewable at:
//
//	localhost:12600/debug/statsview
//
// The standard Go pprof pages are also available:
//
//	localhost:12600/debug/pprof/
//
// This is useful when running long programs with a large rewind history.
package statsview

// Address of the statistics server.
const Address = "localhost:12600"

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

package logger

// Permission is implemented by anything that makes log requests and wants a
// say in whether the entry is made. The controller is a Permission so that a
// quiet controller can be created for benchmarking.
type Permission interface {
	AllowLogging() bool
}

type allow bool

func (a allow) AllowLogging() bool {
	return bool(a)
}

// Allow always permits logging.
var Allow Permission = allow(true)

// Deny never permits logging.
var Deny Permission = allow(false)

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

// Package logger is the central log repository for PicoComputer. There is a
// single central log which is accessed through the package level functions
// Log() and Logf(). Separate logs can be created with NewLogger() which is
// useful for testing.
//
// Log entries are made with a tag and some detail. The tag is usually the
// name of the package or sub-system making the entry. Entries that are
// identical to the previous entry are not added, the previous entry is marked
// as being repeated instead.
//
// Whether an entry is added at all is decided by the Permission argument.
// Use logger.Allow if the entry should always be made.
package logger

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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particularly useful in conjunction with the standard go test
// harness.
//
// The Expect*() functions test for failure, success and equality under
// generic conditions. The Demand*() functions are the same except that a
// failed test is fatal. Use the Demand*() functions when the value being
// tested is used in further tests and so must be correct.
//
// It is worth describing how the success and failure functions handle the
// nil type because it is not obvious. The nil type is considered a success
// and consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This may not be how we want to interpret nil in all situations but
// because of how errors usually work (nil to indicate no error) we *need* to
// interpret nil in this way.
//
// The Writer type meanwhile, implements the io.Writer interface and should be
// used to capture output. The Writer.Compare() function can then be used to
// test for equality.
package test

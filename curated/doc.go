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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what distinguishes
// one curated error from another and packages in PicoComputer export the
// patterns they use as constants. For example:
//
//	const OutOfBoundsError = "memory: address out of bounds (%d)"
//
//	e := curated.Errorf(OutOfBoundsError, 65536)
//
//	if curated.Is(e, OutOfBoundsError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("controller: %v", e)
//
//	if curated.Has(f, OutOfBoundsError) {
//		fmt.Println("true")
//	}
//
//	if curated.Is(f, OutOfBoundsError) {
//		fmt.Println("true")
//	}
//
// Note that in this example, the call to Is() will not print 'true' because
// error f does not match that pattern - it is "wrapped" inside the pattern
// "controller: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'curated' (expected) and false if the error is 'uncurated' (unexpected).
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means that a function can wrap an error with
// its own prefix without worrying whether the error it received has already
// been given that prefix. For example, the following prints "cpu: division by
// zero" and not "cpu: cpu: division by zero":
//
//	e := curated.Errorf("cpu: division by zero")
//	f := curated.Errorf("cpu: %v", e)
//	fmt.Println(f)
package curated

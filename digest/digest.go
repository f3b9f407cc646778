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

// Package digest produces fingerprints of the machine state. The fingerprint
// is chained, meaning that each fingerprint depends on every state the machine
// has passed through since the digest was last reset. Two runs of the same
// program with the same input produce the same fingerprint.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
package digest

// Digest implementations compute a fingerprint that can be compared against a
// previously recorded value.
type Digest interface {
	Hash() string
	ResetDigest()
}

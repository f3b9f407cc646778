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

// Package rewind keeps a history of machine states so that execution can be
// reversed one instruction at a time.
//
// The history is a stack. PushBeforeStep() should be called immediately
// before every instruction is executed and StepBack() pops the most recent
// state so that it can be plumbed back into the machine. Every entry is
// captured at an instruction boundary, never mid-instruction.
//
// By default the history grows without limit. The rewind.maxEntries
// preference sets a limit, after which the oldest entries are forgotten.
//
// The Rewind type is not safe for concurrent use. The controller package
// serialises access to it.
package rewind

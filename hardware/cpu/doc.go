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

// Package cpu executes PicoComputer instructions. Register logic is
// implemented by the registers sub-package and the instruction set is
// defined in the instructions sub-package.
//
// The CPU does not fetch instructions itself. The caller fetches the
// instruction indexed by the program counter and passes it to
// ExecuteInstruction(), which decodes it, executes it and advances the
// program counter.
//
// Errors from ExecuteInstruction() may leave the CPU and memory partially
// changed. The caller is responsible for restoring an earlier state if that
// matters. The controller package does this by restoring the snapshot taken
// before the step.
package cpu

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

// Package registers implements the register file of the PicoComputer CPU.
//
// There are eight general purpose registers (R0 to R7) and the stack pointer
// (SP). All of them are 16 bits wide and arithmetic wraps around modulo 2^16.
// Nothing saturates and nothing faults. Carry and overflow conditions are
// reported to the caller, which records them in the StatusRegister.
//
// The program counter is not part of the general register file. It indexes
// the instruction stream rather than memory and so it has its own type,
// ProgramCounter.
package registers

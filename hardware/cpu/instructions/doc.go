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

// Package instructions defines the instruction set of the PicoComputer and
// the types used to describe a loaded program.
//
// An Instruction is an Opcode and a list of Operands. How an operand is
// interpreted depends on its AddressingMode. The table of Definitions gives
// the mnemonic, the permitted number of operands and the effect of every
// opcode.
//
// Instructions are produced by the assembler package, or by hand when
// testing, and are immutable once loaded into a machine.
package instructions

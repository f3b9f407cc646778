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

// Package assembler converts PicoComputer assembly language into an
// instructions.Program.
//
// The language is line based. Everything after a semicolon is a comment.
// Mnemonics, registers, variables and labels are not case sensitive.
//
//	M = 1           ; the variable M is the memory cell at address 1
//	ORG 8           ; the first instruction is at address 8
//	LOOP:           ; a label for the next instruction
//	ADD M, #1       ; M = M + 1
//	BGT M, 10, END  ; compare and branch
//	JMP LOOP
//	END: STOP
//
// Operands take one of the following forms:
//
//	R0 to R7, SP    register
//	(R0)            the memory cell at the address held in the register
//	(NAME), (n)     the memory cell at the address held in the variable, or
//	                in the memory cell at address n
//	#n, #NAME       immediate. the value of a number, the address of a
//	                variable or the index of a label
//	n               immediate number
//	[n]             the memory cell at address n
//	NAME            the memory cell of a variable, or the index of a label
//
// ORG may only appear before the first instruction. It does not change how
// instructions are numbered, only the addresses shown in listings.
package assembler

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

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jetsetilly/picocomputer/curated"
	"github.com/jetsetilly/picocomputer/hardware/cpu/instructions"
	"github.com/jetsetilly/picocomputer/hardware/cpu/registers"
)

// SyntaxError is returned for all errors in the source. The first value is
// the line number, counting from one.
const SyntaxError = "assembler: line %d: %v"

// sourceLine is an instruction that has been found in the first pass but not
// yet decoded.
type sourceLine struct {
	text string
	line int
}

type assembly struct {
	program instructions.Program
	pending []sourceLine
}

// AssembleString is a convenience function for Assemble().
func AssembleString(source string) (instructions.Program, error) {
	return Assemble(strings.NewReader(source))
}

// Assemble reads source from r and returns the assembled program.
func Assemble(r io.Reader) (instructions.Program, error) {
	asm := assembly{
		program: instructions.NewProgram(),
	}

	// first pass finds variables, labels and the text of every instruction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := asm.scan(scanner.Text(), line); err != nil {
			return instructions.Program{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return instructions.Program{}, curated.Errorf("assembler: %v", err)
	}

	// second pass decodes instructions now that every label is known
	for _, src := range asm.pending {
		ins, err := asm.decode(src)
		if err != nil {
			return instructions.Program{}, err
		}
		asm.program.Instructions = append(asm.program.Instructions, ins)
	}

	if asm.program.Len() == 0 {
		return instructions.Program{}, curated.Errorf(SyntaxError, line, "program has no instructions")
	}

	return asm.program, nil
}

func (asm *assembly) scan(text string, line int) error {
	if i := strings.IndexRune(text, ';'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// variable definition
	if name, value, ok := strings.Cut(text, "="); ok {
		name = strings.ToUpper(strings.TrimSpace(name))
		if err := asm.checkName(name); err != nil {
			return curated.Errorf(SyntaxError, line, err)
		}
		v, err := parseNumber(value)
		if err != nil {
			return curated.Errorf(SyntaxError, line, err)
		}
		if v < 0 {
			return curated.Errorf(SyntaxError, line, fmt.Sprintf("address of %s cannot be negative", name))
		}
		asm.program.Symbols[name] = v
		return nil
	}

	// origin directive
	if f := strings.Fields(text); strings.EqualFold(f[0], "ORG") {
		if len(asm.pending) > 0 {
			return curated.Errorf(SyntaxError, line, "ORG must come before the first instruction")
		}
		if len(f) != 2 {
			return curated.Errorf(SyntaxError, line, "ORG requires an address")
		}
		v, err := parseNumber(f[1])
		if err != nil {
			return curated.Errorf(SyntaxError, line, err)
		}
		if v < 0 {
			return curated.Errorf(SyntaxError, line, "ORG address cannot be negative")
		}
		asm.program.Origin = v
		return nil
	}

	// label. the label refers to the next instruction, which may be on the
	// same line
	if label, rest, ok := strings.Cut(text, ":"); ok {
		label = strings.ToUpper(strings.TrimSpace(label))
		if err := asm.checkName(label); err != nil {
			return curated.Errorf(SyntaxError, line, err)
		}
		asm.program.Labels[label] = len(asm.pending)
		text = strings.TrimSpace(rest)
	}

	if text != "" {
		asm.pending = append(asm.pending, sourceLine{text: text, line: line})
	}

	return nil
}

// checkName makes sure that name can be used for a variable or label.
func (asm *assembly) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("missing name")
	}
	for i, r := range name {
		if !(unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))) {
			return fmt.Errorf("%s is not a valid name", name)
		}
	}
	if _, err := registers.ParseID(name); err == nil {
		return fmt.Errorf("%s is a register", name)
	}
	if _, ok := asm.program.Symbols[name]; ok {
		return fmt.Errorf("%s is already defined", name)
	}
	if _, ok := asm.program.Labels[name]; ok {
		return fmt.Errorf("%s is already defined", name)
	}
	return nil
}

func (asm *assembly) decode(src sourceLine) (instructions.Instruction, error) {
	mnemonic, rest := src.text, ""
	if i := strings.IndexFunc(src.text, unicode.IsSpace); i >= 0 {
		mnemonic, rest = src.text[:i], src.text[i+1:]
	}

	op, ok := instructions.LookupMnemonic(mnemonic)
	if !ok {
		return instructions.Instruction{}, curated.Errorf(SyntaxError, src.line, fmt.Sprintf("unknown instruction (%s)", mnemonic))
	}
	defn, _ := instructions.GetDefinition(op)

	ins := instructions.Instruction{
		Opcode: op,
		Line:   src.line,
	}

	rest = strings.TrimSpace(rest)
	if rest != "" {
		for i, arg := range strings.Split(rest, ",") {
			o, err := asm.operand(arg)
			if err != nil {
				return instructions.Instruction{}, curated.Errorf(SyntaxError, src.line, err)
			}
			if i == defn.Target && o.Mode != instructions.Immediate {
				return instructions.Instruction{}, curated.Errorf(SyntaxError, src.line,
					fmt.Sprintf("%s target must be a label or a number", defn.Mnemonic))
			}
			ins.Operands = append(ins.Operands, o)
		}
	}

	n := len(ins.Operands)
	if n < defn.MinOperands || n > defn.MaxOperands {
		return instructions.Instruction{}, curated.Errorf(SyntaxError, src.line,
			fmt.Sprintf("%s takes %d to %d operands but has %d", defn.Mnemonic, defn.MinOperands, defn.MaxOperands, n))
	}

	return ins, nil
}

func (asm *assembly) operand(arg string) (instructions.Operand, error) {
	arg = strings.ToUpper(strings.TrimSpace(arg))
	if arg == "" {
		return instructions.Operand{}, fmt.Errorf("missing operand")
	}

	switch {
	case strings.HasPrefix(arg, "(") && strings.HasSuffix(arg, ")"):
		inner := strings.TrimSpace(arg[1 : len(arg)-1])
		if id, err := registers.ParseID(inner); err == nil {
			return instructions.Ind(id), nil
		}
		if v, err := parseNumber(inner); err == nil {
			if v < 0 {
				return instructions.Operand{}, fmt.Errorf("address cannot be negative (%s)", arg)
			}
			return instructions.IndMem(v), nil
		}
		if v, ok := asm.program.Symbols[inner]; ok {
			return instructions.Operand{Mode: instructions.IndirectMemory, Value: v, Symbol: inner}, nil
		}
		return instructions.Operand{}, fmt.Errorf("indirect addressing requires a register or a variable (%s)", arg)

	case strings.HasPrefix(arg, "["):
		if !strings.HasSuffix(arg, "]") {
			return instructions.Operand{}, fmt.Errorf("unterminated address (%s)", arg)
		}
		inner := strings.TrimSpace(arg[1 : len(arg)-1])
		if v, err := parseNumber(inner); err == nil {
			if v < 0 {
				return instructions.Operand{}, fmt.Errorf("address cannot be negative (%s)", arg)
			}
			return instructions.Dir(v), nil
		}
		if v, ok := asm.program.Symbols[inner]; ok {
			return instructions.Operand{Mode: instructions.Direct, Value: v, Symbol: inner}, nil
		}
		return instructions.Operand{}, fmt.Errorf("unknown variable (%s)", inner)

	case strings.HasPrefix(arg, "#"):
		inner := strings.TrimSpace(arg[1:])
		if v, err := parseImmediate(inner); err == nil {
			return instructions.Imm(v), nil
		}
		if v, ok := asm.program.Symbols[inner]; ok {
			return instructions.Operand{Mode: instructions.Immediate, Value: v, Symbol: inner}, nil
		}
		if v, ok := asm.program.Labels[inner]; ok {
			return instructions.Operand{Mode: instructions.Immediate, Value: v, Symbol: inner}, nil
		}
		return instructions.Operand{}, fmt.Errorf("unknown symbol (%s)", inner)
	}

	if id, err := registers.ParseID(arg); err == nil {
		return instructions.Reg(id), nil
	}

	if isNumber(arg) {
		v, err := parseImmediate(arg)
		if err != nil {
			return instructions.Operand{}, err
		}
		return instructions.Imm(v), nil
	}

	if v, ok := asm.program.Symbols[arg]; ok {
		return instructions.Operand{Mode: instructions.Direct, Value: v, Symbol: arg}, nil
	}
	if v, ok := asm.program.Labels[arg]; ok {
		return instructions.Operand{Mode: instructions.Immediate, Value: v, Symbol: arg}, nil
	}

	return instructions.Operand{}, fmt.Errorf("unknown symbol (%s)", arg)
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return s != "" && unicode.IsDigit(rune(s[0]))
}

// parseNumber accepts decimal, hexadecimal (0x), octal (0o) and binary (0b)
// numbers with an optional minus sign.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("not a number (%s)", s)
	}
	return int(v), nil
}

// parseImmediate is the same as parseNumber() but the value must fit in 16
// bits, signed or unsigned.
func parseImmediate(s string) (int, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v < -0x8000 || v > 0xffff {
		return 0, fmt.Errorf("value does not fit in 16 bits (%s)", s)
	}
	return v, nil
}

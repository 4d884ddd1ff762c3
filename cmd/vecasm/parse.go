package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xyproto/vecasm"
)

// call is one parsed portable instruction: the encoder method name and
// its already-typed arguments.
type call struct {
	Name string
	Args []reflect.Value
}

// apply invokes the named encoder method on out. Panics from the
// encoders (bad register for the target, unbalanced FCTRL and the
// like) surface as errors with the instruction name attached.
func (c *call) apply(out *vecasm.Out) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", c.Name, r)
		}
	}()
	m := reflect.ValueOf(out).MethodByName(c.Name)
	if !m.IsValid() {
		return fmt.Errorf("%s: unknown instruction", c.Name)
	}
	mt := m.Type()
	if mt.NumIn() != len(c.Args) {
		return fmt.Errorf("%s: want %d operands, got %d", c.Name, mt.NumIn(), len(c.Args))
	}
	in := make([]reflect.Value, len(c.Args))
	for i, a := range c.Args {
		if !a.Type().ConvertibleTo(mt.In(i)) {
			return fmt.Errorf("%s: operand %d: have %s, want %s", c.Name, i+1, a.Type(), mt.In(i))
		}
		in[i] = a.Convert(mt.In(i))
	}
	m.Call(in)
	return nil
}

// parseProgram splits src on semicolons and newlines and parses each
// instruction.
func parseProgram(src string) ([]*call, error) {
	var calls []*call
	for _, line := range strings.FieldsFunc(src, func(r rune) bool { return r == ';' || r == '\n' }) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}

// parseLine parses "Mnemonic op, op, ..." into a call.
func parseLine(line string) (*call, error) {
	name := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	c := &call{Name: name}
	for _, tok := range splitOperands(rest) {
		v, err := parseOperand(tok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		c.Args = append(c.Args, v)
	}
	return c, nil
}

// splitOperands splits on commas outside parentheses, so IX(Reax,
// Recx, 4) stays one token.
func splitOperands(s string) []string {
	var toks []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				toks = append(toks, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if t := strings.TrimSpace(s[start:]); t != "" {
		toks = append(toks, t)
	}
	return toks
}

var immCtors = map[string]func(int64) vecasm.Imm{
	"IC": vecasm.IC, "IB": vecasm.IB, "IM": vecasm.IM,
	"IG": vecasm.IG, "IH": vecasm.IH, "IV": vecasm.IV, "IW": vecasm.IW,
}

var dspCtors = map[string]func(int32) vecasm.Dsp{
	"DP": vecasm.DP, "DF": vecasm.DF, "DG": vecasm.DG,
	"DH": vecasm.DH, "DV": vecasm.DV,
}

var condNames = map[string]vecasm.Cond{
	"eq": vecasm.CondEQ, "ne": vecasm.CondNE,
	"lt": vecasm.CondLT, "le": vecasm.CondLE,
	"gt": vecasm.CondGT, "ge": vecasm.CondGE,
	"lo": vecasm.CondLO, "ls": vecasm.CondLS,
	"hi": vecasm.CondHI, "hs": vecasm.CondHS,
}

var roundNames = map[string]vecasm.RoundMode{
	"n": vecasm.RoundNearest, "m": vecasm.RoundMinus,
	"p": vecasm.RoundPlus, "z": vecasm.RoundZero,
}

// parseOperand turns one operand token into a typed value.
func parseOperand(tok string) (reflect.Value, error) {
	// bare number -> int32 (branch offsets)
	if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return reflect.ValueOf(int32(n)), nil
	}
	if r, ok := vecasm.ParseReg(tok); ok {
		return reflect.ValueOf(r), nil
	}
	if x, ok := vecasm.ParseVReg(tok); ok {
		return reflect.ValueOf(x), nil
	}
	if tok == "PLAIN" {
		return reflect.ValueOf(vecasm.PLAIN), nil
	}
	if c, ok := condNames[tok]; ok {
		return reflect.ValueOf(c), nil
	}
	if m, ok := roundNames[tok]; ok {
		return reflect.ValueOf(m), nil
	}
	switch tok {
	case "none":
		return reflect.ValueOf(vecasm.MaskNone), nil
	case "full":
		return reflect.ValueOf(vecasm.MaskFull), nil
	case "add":
		return reflect.ValueOf(vecasm.ArjAdd), nil
	case "sub":
		return reflect.ValueOf(vecasm.ArjSub), nil
	}

	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return reflect.Value{}, fmt.Errorf("cannot parse operand %q", tok)
	}
	ctor, inner := tok[:open], tok[open+1:len(tok)-1]

	if f, ok := immCtors[ctor]; ok {
		n, err := strconv.ParseInt(strings.TrimSpace(inner), 0, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("bad immediate %q: %w", tok, err)
		}
		return reflect.ValueOf(f(n)), nil
	}
	if f, ok := dspCtors[ctor]; ok {
		n, err := strconv.ParseInt(strings.TrimSpace(inner), 0, 32)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("bad displacement %q: %w", tok, err)
		}
		return reflect.ValueOf(f(int32(n))), nil
	}

	switch ctor {
	case "O", "M":
		r, ok := vecasm.ParseReg(strings.TrimSpace(inner))
		if !ok {
			return reflect.Value{}, fmt.Errorf("bad base register in %q", tok)
		}
		if ctor == "O" {
			return reflect.ValueOf(vecasm.O(r)), nil
		}
		return reflect.ValueOf(vecasm.M(r)), nil
	case "IX":
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return reflect.Value{}, fmt.Errorf("IX wants base, index, scale: %q", tok)
		}
		base, ok1 := vecasm.ParseReg(strings.TrimSpace(parts[0]))
		index, ok2 := vecasm.ParseReg(strings.TrimSpace(parts[1]))
		scale, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 0, 8)
		if !ok1 || !ok2 || err != nil {
			return reflect.Value{}, fmt.Errorf("bad IX operand %q", tok)
		}
		return reflect.ValueOf(vecasm.IX(base, index, uint8(scale))), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot parse operand %q", tok)
}

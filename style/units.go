package style

import (
	"errors"
	"fmt"
	"strings"
)

// This file holds the scalar extractors used by every property handler.

// Unit represents the unit suffix of a length value in a declaration.
type Unit int

const (
	UnitPx      Unit = iota // pixels or no suffix, multiplied by the caller's scale
	UnitPt                  // points
	UnitEm                  // multiples of the current em size
	UnitPercent             // percentage of the parent
)

// PtToPx converts points to pixels.
const PtToPx = 1.3333

// UnitToString returns the suffix for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPt:
		return "pt"
	case UnitEm:
		return "em"
	case UnitPercent:
		return "%"
	default:
		return "px"
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Resolve converts the length to pixels. The second result reports whether
// the value is relative to the parent.
func (l Length) Resolve(ems, parent, scale float64) (float64, bool) {
	switch l.Unit {
	case UnitPt:
		return l.Value * PtToPx, false
	case UnitEm:
		return l.Value * ems, false
	case UnitPercent:
		return l.Value * parent * 0.01, true
	default:
		return l.Value * scale, false
	}
}

// ParseLength splits a token such as "12px", "1.5em" or "50%" into number and
// unit. The second result is false when the token carries no digits.
func ParseLength(token string) (Length, bool) {
	v := strings.TrimRight(strings.TrimSpace(token), "; \t")
	end := len(v)
	for end > 0 && !isDigit(v[end-1]) {
		end--
	}
	if end == 0 {
		return Length{}, false
	}
	unit := UnitPx
	switch suffix := strings.ToLower(strings.TrimSpace(v[end:])); suffix {
	case "pt":
		unit = UnitPt
	case "em":
		unit = UnitEm
	case "%":
		unit = UnitPercent
	}
	num, _ := ExtractNumber(v[:end])
	return Length{Value: num, Unit: unit}, true
}

// ExtractInt parses the rightmost run of decimal digits in input. A trailing
// unit suffix is skipped. Without digits def is returned.
func ExtractInt(input string, def int) int {
	idx := len(input) - 1
	for idx >= 0 && !isDigit(input[idx]) {
		idx--
	}
	if idx < 0 {
		return def
	}
	result, base := 0, 1
	for ; idx >= 0 && isDigit(input[idx]); idx-- {
		result += int(input[idx]-'0') * base
		base *= 10
	}
	return result
}

// ExtractIntFromHex is ExtractInt for base 16 digits.
func ExtractIntFromHex(input string, def int) int {
	idx := len(input) - 1
	for idx >= 0 && hexValue(input[idx]) < 0 {
		idx--
	}
	if idx < 0 {
		return def
	}
	result, base := 0, 1
	for ; idx >= 0; idx-- {
		d := hexValue(input[idx])
		if d < 0 {
			break
		}
		result += d * base
		base *= 16
	}
	return result
}

// ExtractNumber parses a decimal number with an optional fraction. The second
// result reports whether the text contained a decimal point.
func ExtractNumber(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	decimal := strings.LastIndexByte(s, '.')
	intPart, fracPart := s, ""
	if decimal >= 0 {
		intPart, fracPart = s[:decimal], s[decimal+1:]
	}

	result, base := 0.0, 1.0
	for idx := len(intPart) - 1; idx >= 0; idx-- {
		if !isDigit(intPart[idx]) {
			continue
		}
		result += float64(intPart[idx]-'0') * base
		base *= 10
	}
	base = 0.1
	for idx := 0; idx < len(fracPart); idx++ {
		if !isDigit(fracPart[idx]) {
			break
		}
		result += float64(fracPart[idx]-'0') * base
		base *= 0.1
	}
	return sign * result, decimal >= 0
}

// ExtractFloatWithUnit parses a length and converts it to pixels: pt is
// multiplied by 1.3333, em by ems, % by parent*0.01 and anything else by
// scale. The second result reports a percentage.
func ExtractFloatWithUnit(input string, def, ems, parent, scale float64) (float64, bool) {
	l, ok := ParseLength(input)
	if !ok {
		return def, false
	}
	return l.Resolve(ems, parent, scale)
}

// ExtractWithUnit parses a one to four value shorthand in CSS box order
// (top, right, bottom, left).
func ExtractWithUnit(input string, def, ems, parent, scale float64) Sides {
	tokens := strings.Fields(strings.TrimRight(strings.TrimSpace(input), ";"))
	values := make([]float64, 0, 4)
	for _, tok := range tokens {
		if len(values) == 4 {
			break
		}
		v, _ := ExtractFloatWithUnit(tok, def, ems, parent, scale)
		values = append(values, v)
	}
	return boxOrder(values, def)
}

func boxOrder(values []float64, def float64) Sides {
	switch len(values) {
	case 0:
		return Sides{Top: def, Right: def, Bottom: def, Left: def}
	case 1:
		v := values[0]
		return Sides{Top: v, Right: v, Bottom: v, Left: v}
	case 2:
		return Sides{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}
	case 3:
		return Sides{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}
	default:
		return Sides{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}
	}
}

// ErrGrammar reports a missing delimiter in a functional value such as
// rgb(...). Callers receive the partially parsed result alongside it.
var ErrGrammar = errors.New("malformed functional value")

// Number is a parsed numeric component of a functional value.
type Number struct {
	Value   float64
	IsFloat bool
}

// CommaSeparatedNumbers parses "(n, n, n[, n])" starting at pos. count is 3
// or 4. It returns the numbers, the position after the last number and
// ErrGrammar when a delimiter is missing.
func CommaSeparatedNumbers(input string, pos, count int) ([4]Number, int, error) {
	var res [4]Number
	var err error
	expect := func(c byte) {
		pos = skipSpace(input, pos)
		if pos < len(input) && input[pos] == c {
			pos++
		} else if err == nil {
			err = fmt.Errorf("%w: expected %q at %d in %q", ErrGrammar, c, pos, input)
		}
		pos = skipSpace(input, pos)
	}

	expect('(')
	for i := 0; i < count; i++ {
		if i > 0 {
			expect(',')
		}
		start := pos
		if pos < len(input) && (input[pos] == '-' || input[pos] == '+') {
			pos++
		}
		pos = skipFDigits(input, pos)
		res[i].Value, res[i].IsFloat = ExtractNumber(input[start:pos])
	}
	pos = skipSpace(input, pos)
	return res, pos, err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func skipSpace(s string, idx int) int {
	for idx < len(s) && isSpace(s[idx]) {
		idx++
	}
	return idx
}

func skipFDigits(s string, idx int) int {
	for idx < len(s) && (isDigit(s[idx]) || s[idx] == '.') {
		idx++
	}
	return idx
}

func wholeWord(s string, idx int) int {
	for idx < len(s) && !isSpace(s[idx]) {
		idx++
	}
	return idx
}

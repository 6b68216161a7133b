package style

import (
	"fmt"
	"strings"
)

// ExtractBorder parses "thickness [solid|dashed|dotted] [color]" or "none".
func ExtractBorder(input string, ems, parent float64, named NamedColors) (Edge, error) {
	var edge Edge
	fields := strings.Fields(strings.TrimRight(strings.TrimSpace(input), ";"))
	if len(fields) == 0 {
		return edge, fmt.Errorf("%w: empty border", ErrMalformedValue)
	}
	if fold(fields[0]) == "none" {
		return edge, nil
	}

	var err error
	edge.Thickness, _ = ExtractFloatWithUnit(fields[0], 1, ems, parent, 1)
	rest := fields[1:]
	if len(rest) > 0 {
		switch fold(rest[0]) {
		case "solid":
			edge.Line, rest = LineSolid, rest[1:]
		case "dashed":
			edge.Line, rest = LineDashed, rest[1:]
		case "dotted":
			edge.Line, rest = LineDotted, rest[1:]
		}
	}
	if len(rest) > 0 {
		edge.Color, err = ParseColor(strings.Join(rest, " "), named)
	} else {
		edge.Color = Black
	}
	return edge, err
}

// looksLikeColor reports whether a box-shadow token is a color rather than
// a length.
func looksLikeColor(tok string) bool {
	return tok != "" && tok[0] != '-' && tok[0] != '+' && tok[0] != '.' && !isDigit(tok[0])
}

// ExtractBoxShadow parses "offsetX [offsetY [blur [spread]]] color" or "none".
func ExtractBoxShadow(input string, ems, parent float64, named NamedColors) (Shadow, error) {
	var shadow Shadow
	v := strings.TrimRight(strings.TrimSpace(input), ";")
	if v == "" {
		return shadow, fmt.Errorf("%w: empty box-shadow", ErrMalformedValue)
	}
	if fold(v) == "none" {
		return shadow, nil
	}

	lengths := []*float64{&shadow.OffsetX, &shadow.OffsetY, &shadow.Blur, &shadow.Spread}
	idx, n := 0, 0
	for idx < len(v) {
		idx = skipSpace(v, idx)
		if idx >= len(v) {
			break
		}
		if looksLikeColor(v[idx:]) || n == len(lengths) {
			var err error
			shadow.Color, err = ParseColor(v[idx:], named)
			return shadow, err
		}
		end := wholeWord(v, idx)
		*lengths[n], _ = ExtractFloatWithUnit(v[idx:end], 0, ems, parent, 1)
		n++
		idx = end
	}
	shadow.Color = Black
	return shadow, nil
}

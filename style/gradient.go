package style

import (
	"fmt"
	"strings"
)

// MaxColorStops caps the number of stop pairs kept in a Gradient.
const MaxColorStops = 4

// Direction of a linear gradient.
type Direction int

const (
	DirDown Direction = iota
	DirRight
	DirLeft
	DirUp
	DirAngle
)

// ColorStop is a gradient segment from one color to the next. Pos is the
// fraction (0..1) of the gradient covered by the segment.
type ColorStop struct {
	From Color   `json:"from"`
	To   Color   `json:"to"`
	Pos  float64 `json:"pos"`
}

// Gradient is a parsed linear-gradient().
type Gradient struct {
	Dir   Direction   `json:"dir"`
	Angle float64     `json:"angle,omitempty"`
	Stops []ColorStop `json:"stops,omitempty"`
}

// IsZero reports whether the gradient has no stops.
func (g Gradient) IsZero() bool { return len(g.Stops) == 0 }

const gradientPrefix = "linear-gradient"

// ExtractLinearGradient parses "linear-gradient(dir?, color [pct]?, ...)".
// Malformed input yields whatever was parsed so far.
func ExtractLinearGradient(text string, named NamedColors) Gradient {
	g, _ := ParseLinearGradient(text, named)
	return g
}

type gradientStop struct {
	color Color
	pos   float64 // -1 when unspecified
}

// ParseLinearGradient is ExtractLinearGradient that also reports errors.
func ParseLinearGradient(text string, named NamedColors) (Gradient, error) {
	var g Gradient
	v := strings.TrimSpace(text)
	if len(v) < len(gradientPrefix) || fold(v[:len(gradientPrefix)]) != gradientPrefix {
		return g, fmt.Errorf("%w: not a linear-gradient %q", ErrMalformedValue, text)
	}
	idx := skipSpace(v, len(gradientPrefix))
	if idx >= len(v) || v[idx] != '(' {
		return g, fmt.Errorf("%w: expected '(' in %q", ErrGrammar, text)
	}
	body := v[idx+1:]
	var err error
	if end := strings.LastIndexByte(body, ')'); end >= 0 {
		body = body[:end]
	} else {
		err = fmt.Errorf("%w: missing ')' in %q", ErrGrammar, text)
	}

	parts := splitTopLevel(body, ',')
	var stops []gradientStop
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i == 0 && parseDirection(&g, part) {
			continue
		}
		c, pct := splitColorStop(part)
		col, cerr := ParseColor(c, named)
		if cerr != nil && err == nil {
			err = cerr
		}
		stop := gradientStop{color: col, pos: -1}
		if pct != "" {
			stop.pos, _ = ExtractNumber(strings.TrimSuffix(pct, "%"))
		}
		stops = append(stops, stop)
	}

	// Every stop after the first owns one segment. Segments without an
	// explicit percentage share what the explicit ones leave of 100%.
	total, unspecified := 0.0, 0
	for _, s := range stops[min(1, len(stops)):] {
		if s.pos < 0 {
			unspecified++
		} else {
			total += s.pos
		}
	}
	share := 0.0
	if unspecified > 0 {
		share = max(100-total, 0) / (100 * float64(unspecified))
	}
	for i := 1; i < len(stops) && len(g.Stops) < MaxColorStops; i++ {
		pos := share
		if stops[i].pos >= 0 {
			pos = stops[i].pos / 100
		}
		g.Stops = append(g.Stops, ColorStop{From: stops[i-1].color, To: stops[i].color, Pos: pos})
	}
	return g, err
}

func parseDirection(g *Gradient, part string) bool {
	switch fold(strings.Join(strings.Fields(part), " ")) {
	case "to right":
		g.Dir = DirRight
		return true
	case "to left":
		g.Dir = DirLeft
		return true
	case "to top":
		g.Dir = DirUp
		return true
	case "to bottom":
		g.Dir = DirDown
		return true
	}
	if l := fold(part); strings.HasSuffix(l, "deg") {
		g.Dir = DirAngle
		g.Angle, _ = ExtractNumber(strings.TrimSuffix(l, "deg"))
		return true
	}
	return false
}

// splitColorStop separates "rgb(1, 2, 3) 40%" into its color and position.
func splitColorStop(part string) (string, string) {
	depth, end := 0, len(part)
	for i := 0; i < len(part); i++ {
		switch c := part[i]; {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case isSpace(c) && depth == 0:
			end = i
		}
		if end != len(part) {
			break
		}
	}
	return strings.TrimSpace(part[:end]), strings.TrimSpace(part[end:])
}

// splitTopLevel splits s on sep outside of parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

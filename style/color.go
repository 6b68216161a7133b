package style

import (
	"fmt"
	"math"
	"strings"
)

// Color is a packed RGBA value laid out as a<<24 | b<<16 | g<<8 | r.
type Color uint32

const (
	Transparent Color = 0
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// ToRGBA packs 0..255 channels.
func ToRGBA(r, g, b, a int) Color {
	return Color(uint32(clampByte(a))<<24 | uint32(clampByte(b))<<16 | uint32(clampByte(g))<<8 | uint32(clampByte(r)))
}

// ToRGBAF packs 0..1 channels.
func ToRGBAF(r, g, b, a float64) Color {
	return ToRGBA(int(r*255), int(g*255), int(b*255), int(a*255))
}

// Channels unpacks the color into 0..255 channels.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	a = uint32(ca) * 0x101
	r = uint32(cr) * 0x101 * a / 0xffff
	g = uint32(cg) * 0x101 * a / 0xffff
	b = uint32(cb) * 0x101 * a / 0xffff
	return
}

// String renders the color as #rrggbbaa.
func (c Color) String() string {
	r, g, b, a := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// NamedColors resolves a color name. A nil resolver means the built-in CSS
// table (see CSSColor).
type NamedColors func(name string) (Color, bool)

// ExtractColor parses rgb(), rgba(), hsv(), hsl(), #hex, "transparent" or a
// named color. Anything unresolved becomes opaque black.
func ExtractColor(text string, named NamedColors) Color {
	c, _ := ParseColor(text, named)
	return c
}

// ParseColor is ExtractColor that also reports grammar violations and
// unresolved names. The returned color is usable even when err is non-nil.
func ParseColor(text string, named NamedColors) (Color, error) {
	v := strings.TrimSpace(text)
	lower := strings.ToLower(v)

	switch {
	case strings.HasPrefix(lower, "rgb"):
		hasAlpha := len(lower) > 3 && lower[3] == 'a'
		pos, count := 3, 3
		if hasAlpha {
			pos, count = 4, 4
		}
		nums, next, err := CommaSeparatedNumbers(v, pos, count)
		if err == nil && (next >= len(v) || v[next] != ')') {
			err = fmt.Errorf("%w: missing ')' in %q", ErrGrammar, v)
		}
		r, g, b, a := nums[0], nums[1], nums[2], nums[3]
		if r.IsFloat && g.IsFloat && b.IsFloat {
			alpha := 1.0
			if hasAlpha {
				alpha = a.Value
			}
			return ToRGBAF(r.Value, g.Value, b.Value, alpha), err
		}
		alpha := 255
		if hasAlpha {
			// a fractional alpha with integer channels is a CSS 0..1 opacity
			if a.IsFloat || a.Value <= 1 {
				alpha = int(a.Value * 255)
			} else {
				alpha = int(a.Value)
			}
		}
		return ToRGBA(int(r.Value), int(g.Value), int(b.Value), alpha), err

	case lower == "transparent":
		return Transparent, nil

	case strings.HasPrefix(lower, "hsv"):
		nums, next, err := CommaSeparatedNumbers(v, 3, 3)
		if err == nil && (next >= len(v) || v[next] != ')') {
			err = fmt.Errorf("%w: missing ')' in %q", ErrGrammar, v)
		}
		return hsvColor(nums[0].Value, nums[1].Value, nums[2].Value), err

	case strings.HasPrefix(lower, "hsl"):
		nums, next, err := CommaSeparatedNumbers(v, 3, 3)
		if err == nil && (next >= len(v) || v[next] != ')') {
			err = fmt.Errorf("%w: missing ')' in %q", ErrGrammar, v)
		}
		h, s, l := nums[0].Value, nums[1].Value, nums[2].Value
		val := l + s*math.Min(l, 1-l)
		sat := 0.0
		if val != 0 {
			sat = 2 * (1 - l/val)
		}
		return hsvColor(h, sat, val), err

	case strings.HasPrefix(v, "#"):
		return hexColor(v[1:])
	}

	if named == nil {
		named = CSSColor
	}
	if c, ok := named(v); ok {
		return c, nil
	}
	return Black, fmt.Errorf("%w: unknown color %q", ErrMalformedValue, v)
}

func hexColor(digits string) (Color, error) {
	for i := 0; i < len(digits); i++ {
		if hexValue(digits[i]) < 0 {
			return Black, fmt.Errorf("%w: invalid hex color %q", ErrMalformedValue, "#"+digits)
		}
	}
	channel := func(s string) int { return ExtractIntFromHex(s, 0) }
	switch len(digits) {
	case 3, 4:
		r := channel(digits[0:1]) * 17
		g := channel(digits[1:2]) * 17
		b := channel(digits[2:3]) * 17
		a := 255
		if len(digits) == 4 {
			a = channel(digits[3:4]) * 17
		}
		return ToRGBA(r, g, b, a), nil
	case 6, 8:
		a := 255
		if len(digits) == 8 {
			a = channel(digits[6:8])
		}
		return ToRGBA(channel(digits[0:2]), channel(digits[2:4]), channel(digits[4:6]), a), nil
	}
	return Black, fmt.Errorf("%w: invalid hex color %q", ErrMalformedValue, "#"+digits)
}

// hsvColor converts hue, saturation and value in 0..1 to an opaque color.
func hsvColor(h, s, v float64) Color {
	if s == 0 {
		return ToRGBAF(v, v, v, 1)
	}
	h = math.Mod(h, 1) / (60.0 / 360.0)
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return ToRGBAF(r, g, b, 1)
}

package style

import (
	"fmt"
	"strings"
)

type propertyHandler func(p *Parser, rec *Record, val string) (Property, error)

// properties maps folded declaration names to their handlers.
var properties map[string]propertyHandler

func init() {
	properties = map[string]propertyHandler{
		"font-size":        fontSize,
		"font-weight":      fontWeight,
		"font-style":       fontStyle,
		"font-family":      fontFamily,
		"text-decoration":  textDecoration,
		"text-wrap":        textWrap,
		"text-overflow":    textOverflow,
		"background":       background,
		"background-color": background,
		"color":            foreground,
		"width":            dimension(PropWidth, RelWidth, func(r *Record) *float64 { return &r.Dimension.W }),
		"height":           dimension(PropHeight, RelHeight, func(r *Record) *float64 { return &r.Dimension.H }),
		"min-width":        dimension(PropMinWidth, RelMinWidth, func(r *Record) *float64 { return &r.MinDim.W }),
		"min-height":       dimension(PropMinHeight, RelMinHeight, func(r *Record) *float64 { return &r.MinDim.H }),
		"max-width":        dimension(PropMaxWidth, RelMaxWidth, func(r *Record) *float64 { return &r.MaxDim.W }),
		"max-height":       dimension(PropMaxHeight, RelMaxHeight, func(r *Record) *float64 { return &r.MaxDim.H }),
		"text-align":       horizontalAlign,
		"alignment":        horizontalAlign,
		"vertical-align":   verticalAlign,
		"padding":          sides(PropPadding, func(r *Record) *Sides { return &r.Padding }),
		"padding-top":      side(PropPadding, func(r *Record) *float64 { return &r.Padding.Top }),
		"padding-right":    side(PropPadding, func(r *Record) *float64 { return &r.Padding.Right }),
		"padding-bottom":   side(PropPadding, func(r *Record) *float64 { return &r.Padding.Bottom }),
		"padding-left":     side(PropPadding, func(r *Record) *float64 { return &r.Padding.Left }),
		"margin":           sides(PropMargin, func(r *Record) *Sides { return &r.Margin }),
		"margin-top":       side(PropMargin, func(r *Record) *float64 { return &r.Margin.Top }),
		"margin-right":     side(PropMargin, func(r *Record) *float64 { return &r.Margin.Right }),
		"margin-bottom":    side(PropMargin, func(r *Record) *float64 { return &r.Margin.Bottom }),
		"margin-left":      side(PropMargin, func(r *Record) *float64 { return &r.Margin.Left }),
		"border":           border,
		"border-top":       borderEdge(func(r *Record) *Edge { return &r.Border.Top }),
		"border-right":     borderEdge(func(r *Record) *Edge { return &r.Border.Right }),
		"border-bottom":    borderEdge(func(r *Record) *Edge { return &r.Border.Bottom }),
		"border-left":      borderEdge(func(r *Record) *Edge { return &r.Border.Left }),
		"border-color":     borderColor,
		"border-width":     borderWidth,
		"border-radius":    borderRadius,

		"border-top-left-radius":     cornerRadius(TopLeft, RelTopLeftRadius),
		"border-top-right-radius":    cornerRadius(TopRight, RelTopRightRadius),
		"border-bottom-right-radius": cornerRadius(BottomRight, RelBottomRightRadius),
		"border-bottom-left-radius":  cornerRadius(BottomLeft, RelBottomLeftRadius),

		"box-shadow":    boxShadow,
		"thumb-color":   toggleColor(PropThumbColor, func(r *Record) (*Color, *Gradient) { return &r.Toggle.Thumb, &r.Toggle.ThumbGradient }),
		"track-color":   toggleColor(PropTrackColor, func(r *Record) (*Color, *Gradient) { return &r.Toggle.Track, &r.Toggle.TrackGradient }),
		"track-outline": trackOutline,
		"thumb-offset":  thumbOffset,
	}
}

// fontSizeKeywords are multipliers of the base font size.
var fontSizeKeywords = map[string]float64{
	"xx-small":  0.6,
	"x-small":   0.75,
	"small":     0.89,
	"medium":    1,
	"large":     1.2,
	"x-large":   1.5,
	"xx-large":  2,
	"xxx-large": 3,
}

func malformed(val string) error { return fmt.Errorf("%w: %q", ErrMalformedValue, val) }

func fontSize(p *Parser, rec *Record, val string) (Property, error) {
	em := p.metrics.FontSize()
	if mul, ok := fontSizeKeywords[fold(val)]; ok {
		rec.Font.Size = em * mul
		return PropFontSize, nil
	}
	l, ok := ParseLength(val)
	if !ok {
		return PropNone, malformed(val)
	}
	rec.Font.Size, _ = l.Resolve(em, em, p.metrics.FontScaling)
	return PropFontSize, nil
}

func fontWeight(_ *Parser, rec *Record, val string) (Property, error) {
	v := strings.TrimSpace(val)
	if v != "" && isDigit(v[0]) {
		weight := ExtractInt(v, 400)
		rec.Font.Flags &^= fontWeightFlags
		switch {
		case weight >= 600:
			rec.Font.Flags |= FontBold
		case weight < 400:
			rec.Font.Flags |= FontLight
		default:
			rec.Font.Flags |= FontNormal
		}
		return PropFontWeight, nil
	}
	switch fold(v) {
	case "bold", "bolder":
		rec.Font.Flags = rec.Font.Flags&^fontWeightFlags | FontBold
	case "light", "lighter":
		rec.Font.Flags = rec.Font.Flags&^fontWeightFlags | FontLight
	case "normal":
		rec.Font.Flags = rec.Font.Flags&^fontWeightFlags | FontNormal
	default:
		return PropNone, malformed(val)
	}
	return PropFontWeight, nil
}

func fontStyle(_ *Parser, rec *Record, val string) (Property, error) {
	switch fold(strings.TrimSpace(val)) {
	case "normal":
		rec.Font.Flags &^= FontItalic
	case "italic", "oblique":
		rec.Font.Flags |= FontItalic
	default:
		return PropNone, malformed(val)
	}
	return PropFontStyle, nil
}

func textDecoration(_ *Parser, rec *Record, val string) (Property, error) {
	var flags FontFlags
	for _, tok := range strings.Fields(val) {
		switch fold(tok) {
		case "underline":
			flags |= FontUnderline
		case "line-through":
			flags |= FontStrikethrough
		case "none":
		default:
			return PropNone, malformed(val)
		}
	}
	rec.Font.Flags = rec.Font.Flags&^(FontUnderline|FontStrikethrough) | flags
	return PropFontStyle, nil
}

func fontFamily(_ *Parser, rec *Record, val string) (Property, error) {
	v := strings.Trim(strings.TrimSpace(val), `"'`)
	if v == "" {
		return PropNone, malformed(val)
	}
	rec.Font.Family = v
	return PropFontFamily, nil
}

func textWrap(_ *Parser, rec *Record, val string) (Property, error) {
	switch fold(strings.TrimSpace(val)) {
	case "nowrap":
		rec.Font.Flags |= FontNoWrap
	case "wrap":
		rec.Font.Flags &^= FontNoWrap
	default:
		return PropNone, malformed(val)
	}
	return PropTextWrap, nil
}

func textOverflow(_ *Parser, rec *Record, val string) (Property, error) {
	switch fold(strings.TrimSpace(val)) {
	case "ellipsis":
		rec.Font.Flags |= FontOverflowEllipsis
	case "clip":
		rec.Font.Flags &^= FontOverflowEllipsis
	default:
		return PropNone, malformed(val)
	}
	return PropTextOverflow, nil
}

func isGradient(val string) bool {
	v := strings.TrimSpace(val)
	return len(v) >= len(gradientPrefix) && fold(v[:len(gradientPrefix)]) == gradientPrefix
}

func background(p *Parser, rec *Record, val string) (Property, error) {
	if isGradient(val) {
		g, err := ParseLinearGradient(val, p.named)
		rec.Gradient = g
		return PropBackground, err
	}
	c, err := ParseColor(val, p.named)
	rec.Background = c
	rec.Gradient = Gradient{}
	return PropBackground, err
}

func foreground(p *Parser, rec *Record, val string) (Property, error) {
	c, err := ParseColor(val, p.named)
	rec.Foreground = c
	return PropFgColor, err
}

func dimension(prop Property, rel Relative, field func(*Record) *float64) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		l, ok := ParseLength(val)
		if !ok {
			return PropNone, malformed(val)
		}
		v, relative := l.Resolve(p.metrics.FontSize(), 1, p.metrics.Scaling)
		*field(rec) = v
		if relative {
			rec.Relative |= rel
		} else {
			rec.Relative &^= rel
		}
		return prop, nil
	}
}

func horizontalAlign(_ *Parser, rec *Record, val string) (Property, error) {
	var a Alignment
	switch fold(strings.TrimSpace(val)) {
	case "justify":
		a = AlignJustify
	case "right", "end":
		a = AlignRight
	case "center":
		a = AlignHCenter
	case "left", "start":
		a = AlignLeft
	default:
		return PropNone, malformed(val)
	}
	rec.Alignment = rec.Alignment&^alignHorizontal | a
	return PropHAlignment, nil
}

func verticalAlign(_ *Parser, rec *Record, val string) (Property, error) {
	var a Alignment
	switch fold(strings.TrimSpace(val)) {
	case "top":
		a = AlignTop
	case "bottom":
		a = AlignBottom
	case "center", "middle":
		a = AlignVCenter
	default:
		return PropNone, malformed(val)
	}
	rec.Alignment = rec.Alignment&^alignVertical | a
	return PropVAlignment, nil
}

func sides(prop Property, field func(*Record) *Sides) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		if strings.TrimSpace(val) == "" {
			return PropNone, malformed(val)
		}
		*field(rec) = ExtractWithUnit(val, 0, p.metrics.FontSize(), 1, p.metrics.Scaling)
		return prop, nil
	}
}

func side(prop Property, field func(*Record) *float64) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		l, ok := ParseLength(val)
		if !ok {
			return PropNone, malformed(val)
		}
		*field(rec), _ = l.Resolve(p.metrics.FontSize(), 1, p.metrics.Scaling)
		return prop, nil
	}
}

func border(p *Parser, rec *Record, val string) (Property, error) {
	edge, err := ExtractBorder(val, p.metrics.FontSize(), 1, p.named)
	rec.Border.Top, rec.Border.Right, rec.Border.Bottom, rec.Border.Left = edge, edge, edge, edge
	rec.Border.Uniform = true
	return PropBorder, err
}

func borderEdge(field func(*Record) *Edge) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		edge, err := ExtractBorder(val, p.metrics.FontSize(), 1, p.named)
		*field(rec) = edge
		rec.Border.Uniform = false
		return PropBorder, err
	}
}

func borderColor(p *Parser, rec *Record, val string) (Property, error) {
	c, err := ParseColor(val, p.named)
	rec.Border.SetColor(c)
	return PropBorder, err
}

func borderWidth(p *Parser, rec *Record, val string) (Property, error) {
	if strings.TrimSpace(val) == "" {
		return PropNone, malformed(val)
	}
	w := ExtractWithUnit(val, 0, p.metrics.FontSize(), 1, 1)
	rec.Border.Top.Thickness, rec.Border.Right.Thickness = w.Top, w.Right
	rec.Border.Bottom.Thickness, rec.Border.Left.Thickness = w.Bottom, w.Left
	return PropBorder, nil
}

func borderRadius(p *Parser, rec *Record, val string) (Property, error) {
	l, ok := ParseLength(val)
	if !ok {
		return PropNone, malformed(val)
	}
	r, relative := l.Resolve(p.metrics.FontSize(), 1, 1)
	rec.Border.SetRadius(r)
	if relative {
		rec.Relative |= relRadiusAll
	} else {
		rec.Relative &^= relRadiusAll
	}
	return PropBorderRadius, nil
}

func cornerRadius(corner Corner, rel Relative) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		l, ok := ParseLength(val)
		if !ok {
			return PropNone, malformed(val)
		}
		r, relative := l.Resolve(p.metrics.FontSize(), 1, 1)
		rec.Border.Radius[corner] = r
		if relative {
			rec.Relative |= rel
		} else {
			rec.Relative &^= rel
		}
		return PropBorderRadius, nil
	}
}

func boxShadow(p *Parser, rec *Record, val string) (Property, error) {
	s, err := ExtractBoxShadow(val, p.metrics.FontSize(), 1, p.named)
	rec.Shadow = s
	return PropBoxShadow, err
}

func toggleColor(prop Property, field func(*Record) (*Color, *Gradient)) propertyHandler {
	return func(p *Parser, rec *Record, val string) (Property, error) {
		c, g := field(rec)
		if isGradient(val) {
			var err error
			*g, err = ParseLinearGradient(val, p.named)
			return prop, err
		}
		var err error
		*c, err = ParseColor(val, p.named)
		return prop, err
	}
}

func trackOutline(p *Parser, rec *Record, val string) (Property, error) {
	edge, err := ExtractBorder(val, p.metrics.FontSize(), 1, p.named)
	rec.Toggle.TrackOutline = edge.Color
	rec.Toggle.TrackOutlineWidth = edge.Thickness
	return PropTrackOutlineColor, err
}

func thumbOffset(p *Parser, rec *Record, val string) (Property, error) {
	l, ok := ParseLength(val)
	if !ok {
		return PropNone, malformed(val)
	}
	rec.Toggle.ThumbOffset, _ = l.Resolve(p.metrics.FontSize(), 1, 1)
	return PropThumbOffset, nil
}

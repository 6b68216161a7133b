package style

import "math"

// Property identifies one settable style property. Values are bit flags so a
// set of properties fits in one mask.
type Property int64

const (
	PropNone              Property = 0
	PropBackground        Property = 1
	PropFgColor           Property = 1 << 1
	PropFontSize          Property = 1 << 2
	PropFontFamily        Property = 1 << 3
	PropFontWeight        Property = 1 << 4
	PropFontStyle         Property = 1 << 5
	PropHeight            Property = 1 << 6
	PropWidth             Property = 1 << 7
	PropHAlignment        Property = 1 << 9
	PropVAlignment        Property = 1 << 10
	PropPadding           Property = 1 << 11
	PropMargin            Property = 1 << 12
	PropBorder            Property = 1 << 13
	PropBorderRadius      Property = 1 << 16
	PropTextWrap          Property = 1 << 19
	PropBoxShadow         Property = 1 << 20
	PropTextOverflow      Property = 1 << 24
	PropMinWidth          Property = 1 << 25
	PropMaxWidth          Property = 1 << 26
	PropMinHeight         Property = 1 << 27
	PropMaxHeight         Property = 1 << 28
	PropThumbColor        Property = 1 << 29
	PropTrackColor        Property = 1 << 30
	PropTrackOutlineColor Property = 1 << 31
	PropThumbOffset       Property = 1 << 32

	// PropUpdatedFromBase marks a record whose unspecified properties were
	// already filled by a cascade. It is only ever stored in Record.Inherited.
	PropUpdatedFromBase Property = 1 << 62
)

// allProperties lists every settable property in bit order.
var allProperties = []Property{
	PropBackground, PropFgColor, PropFontSize, PropFontFamily, PropFontWeight,
	PropFontStyle, PropHeight, PropWidth, PropHAlignment, PropVAlignment,
	PropPadding, PropMargin, PropBorder, PropBorderRadius, PropTextWrap,
	PropBoxShadow, PropTextOverflow, PropMinWidth, PropMaxWidth, PropMinHeight,
	PropMaxHeight, PropThumbColor, PropTrackColor, PropTrackOutlineColor,
	PropThumbOffset,
}

// Has reports whether every bit of q is set in p.
func (p Property) Has(q Property) bool { return p&q == q && q != 0 }

var propertyNames = map[string]Property{
	"background":     PropBackground,
	"color":          PropFgColor,
	"font-size":      PropFontSize,
	"font-family":    PropFontFamily,
	"font-weight":    PropFontWeight,
	"font-style":     PropFontStyle,
	"height":         PropHeight,
	"width":          PropWidth,
	"text-align":     PropHAlignment,
	"vertical-align": PropVAlignment,
	"padding":        PropPadding,
	"margin":         PropMargin,
	"border":         PropBorder,
	"border-radius":  PropBorderRadius,
	"text-wrap":      PropTextWrap,
	"box-shadow":     PropBoxShadow,
	"text-overflow":  PropTextOverflow,
	"min-width":      PropMinWidth,
	"max-width":      PropMaxWidth,
	"min-height":     PropMinHeight,
	"max-height":     PropMaxHeight,
	"thumb-color":    PropThumbColor,
	"track-color":    PropTrackColor,
	"track-outline":  PropTrackOutlineColor,
	"thumb-offset":   PropThumbOffset,
}

// ParseProperty resolves a property name as written in declarations.
func ParseProperty(name string) (Property, bool) {
	p, ok := propertyNames[fold(name)]
	return p, ok
}

// Relative marks dimensions given as a percentage of the parent.
type Relative uint32

const (
	RelWidth Relative = 1 << iota
	RelHeight
	RelMinHeight
	RelMaxHeight
	RelMinWidth
	RelMaxWidth
	RelTopRightRadius
	RelTopLeftRadius
	RelBottomLeftRadius
	RelBottomRightRadius
)

const relRadiusAll = RelTopRightRadius | RelTopLeftRadius | RelBottomLeftRadius | RelBottomRightRadius

// Alignment is a bitmask of horizontal and vertical alignment flags.
type Alignment int32

const (
	AlignLeft    Alignment = 1
	AlignRight   Alignment = 1 << 1
	AlignHCenter Alignment = 1 << 2
	AlignTop     Alignment = 1 << 3
	AlignBottom  Alignment = 1 << 4
	AlignVCenter Alignment = 1 << 5
	AlignJustify Alignment = 1 << 6

	AlignCenter  = AlignHCenter | AlignVCenter
	AlignLeading = AlignLeft | AlignVCenter

	alignHorizontal = AlignLeft | AlignRight | AlignHCenter | AlignJustify
	alignVertical   = AlignTop | AlignBottom | AlignVCenter
)

// FontFlags describe weight, slant and decoration of a font.
type FontFlags int32

const (
	FontNormal           FontFlags = 1
	FontBold             FontFlags = 1 << 1
	FontItalic           FontFlags = 1 << 2
	FontLight            FontFlags = 1 << 3
	FontStrikethrough    FontFlags = 1 << 4
	FontUnderline        FontFlags = 1 << 5
	FontOverflowEllipsis FontFlags = 1 << 6
	FontNoWrap           FontFlags = 1 << 7

	fontWeightFlags = FontNormal | FontBold | FontLight
	fontStyleFlags  = FontItalic | FontUnderline | FontStrikethrough
)

// DefaultFontFamily is used when no font-family was declared.
const DefaultFontFamily = "default"

// Font describes the font of a record.
type Font struct {
	Family string    `json:"family"`
	Size   float64   `json:"size"`
	Flags  FontFlags `json:"flags"`
}

// Sides holds a four-sided measure such as padding or margin.
type Sides struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Horizontal returns left + right.
func (s Sides) Horizontal() float64 { return s.Left + s.Right }

// Vertical returns top + bottom.
func (s Sides) Vertical() float64 { return s.Top + s.Bottom }

// LineType is the stroke pattern of a border edge.
type LineType int

const (
	LineSolid LineType = iota
	LineDashed
	LineDotted
)

// Edge is one side of a border.
type Edge struct {
	Color     Color    `json:"color"`
	Thickness float64  `json:"thickness"`
	Line      LineType `json:"line"`
}

// Corner indexes Border.Radius.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Border is a four-sided border with independent corner radii.
type Border struct {
	Top     Edge       `json:"top"`
	Right   Edge       `json:"right"`
	Bottom  Edge       `json:"bottom"`
	Left    Edge       `json:"left"`
	Radius  [4]float64 `json:"radius"`
	Uniform bool       `json:"uniform"`
}

// Exists reports whether any edge has a thickness.
func (b Border) Exists() bool {
	return b.Top.Thickness > 0 || b.Right.Thickness > 0 || b.Bottom.Thickness > 0 || b.Left.Thickness > 0
}

// Rounded reports whether any corner has a radius.
func (b Border) Rounded() bool {
	return b.Radius[0] > 0 || b.Radius[1] > 0 || b.Radius[2] > 0 || b.Radius[3] > 0
}

// SetColor sets the color of all four edges.
func (b *Border) SetColor(c Color) {
	b.Top.Color, b.Right.Color, b.Bottom.Color, b.Left.Color = c, c, c, c
}

// SetThickness sets the thickness of all four edges.
func (b *Border) SetThickness(t float64) {
	b.Top.Thickness, b.Right.Thickness, b.Bottom.Thickness, b.Left.Thickness = t, t, t, t
}

// SetRadius sets all four corner radii.
func (b *Border) SetRadius(r float64) {
	b.Radius = [4]float64{r, r, r, r}
}

// Shadow is a box shadow.
type Shadow struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Color   Color   `json:"color"`
}

// Size is a width/height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Toggle carries the properties specific to toggle-style widgets.
type Toggle struct {
	Thumb             Color    `json:"thumb"`
	Track             Color    `json:"track"`
	TrackOutline      Color    `json:"trackOutline"`
	TrackOutlineWidth float64  `json:"trackOutlineWidth"`
	ThumbOffset       float64  `json:"thumbOffset"`
	ThumbGradient     Gradient `json:"thumbGradient"`
	TrackGradient     Gradient `json:"trackGradient"`
}

// Record is a fully materialized style.
//
// Specified holds the properties that were assigned by a parse or a setter.
// Inherited holds the properties that a cascade copied into the record. The
// two never overlap.
type Record struct {
	Specified  Property  `json:"specified"`
	Inherited  Property  `json:"inherited"`
	Relative   Relative  `json:"relative"`
	Background Color     `json:"background"`
	Foreground Color     `json:"foreground"`
	Gradient   Gradient  `json:"gradient"`
	Font       Font      `json:"font"`
	Padding    Sides     `json:"padding"`
	Margin     Sides     `json:"margin"`
	Border     Border    `json:"border"`
	Shadow     Shadow    `json:"shadow"`
	Alignment  Alignment `json:"alignment"`
	Dimension  Size      `json:"dimension"`
	MinDim     Size      `json:"minDim"`
	MaxDim     Size      `json:"maxDim"`
	Toggle     Toggle    `json:"toggle"`
}

// NewRecord returns a record holding default values for every property.
// fontSize is the resolved default font size.
func NewRecord(fontSize float64) Record {
	return Record{
		Background: Transparent,
		Foreground: Black,
		Font:       Font{Family: DefaultFontFamily, Size: fontSize, Flags: FontNormal},
		Alignment:  AlignLeading,
		Dimension:  Size{W: -1, H: -1},
		MaxDim:     Size{W: math.MaxFloat64, H: math.MaxFloat64},
		Toggle:     Toggle{ThumbOffset: -2},
	}
}

func (r *Record) mark(p Property) {
	r.Specified |= p
	r.Inherited &^= p
}

// SetBackground sets an explicit background color.
func (r *Record) SetBackground(c Color) *Record {
	r.Background = c
	r.mark(PropBackground)
	return r
}

// SetForeground sets an explicit text color.
func (r *Record) SetForeground(c Color) *Record {
	r.Foreground = c
	r.mark(PropFgColor)
	return r
}

// SetSize sets the preferred width and height.
func (r *Record) SetSize(w, h float64) *Record {
	r.Dimension = Size{W: w, H: h}
	r.Relative &^= RelWidth | RelHeight
	r.mark(PropWidth | PropHeight)
	return r
}

// SetAlignment replaces the alignment flags.
func (r *Record) SetAlignment(a Alignment) *Record {
	r.Alignment = a
	r.mark(PropHAlignment | PropVAlignment)
	return r
}

// SetPadding sets the same padding on all sides.
func (r *Record) SetPadding(p float64) *Record {
	r.Padding = Sides{Top: p, Right: p, Bottom: p, Left: p}
	r.mark(PropPadding)
	return r
}

// SetMargin sets the same margin on all sides.
func (r *Record) SetMargin(m float64) *Record {
	r.Margin = Sides{Top: m, Right: m, Bottom: m, Left: m}
	r.mark(PropMargin)
	return r
}

// SetBorder sets a uniform solid border.
func (r *Record) SetBorder(thickness float64, c Color) *Record {
	r.Border.SetThickness(thickness)
	r.Border.SetColor(c)
	r.Border.Top.Line, r.Border.Right.Line, r.Border.Bottom.Line, r.Border.Left.Line = LineSolid, LineSolid, LineSolid, LineSolid
	r.Border.Uniform = true
	r.mark(PropBorder)
	return r
}

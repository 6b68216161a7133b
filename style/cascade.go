package style

// InheritMode selects what InheritFrom copies.
type InheritMode int

const (
	// CopyEverything overwrites every property of dst with src.
	CopyEverything InheritMode = iota
	// CopyOnlyDestinationUnspecified keeps what dst specified itself.
	CopyOnlyDestinationUnspecified
	// CopyOnlySourceSpecified copies only what src specified itself.
	CopyOnlySourceSpecified
)

// InheritFrom copies properties from src into dst. Copied properties are
// recorded in dst.Inherited and removed from dst.Specified.
func InheritFrom(dst, src *Record, mode InheritMode) {
	if dst == src {
		return
	}
	for _, p := range allProperties {
		switch mode {
		case CopyOnlyDestinationUnspecified:
			if dst.Specified.Has(p) {
				continue
			}
		case CopyOnlySourceSpecified:
			if !src.Specified.Has(p) {
				continue
			}
		}
		copyProperty(dst, src, p)
		dst.Specified &^= p
		dst.Inherited |= p
	}
}

// CopyStyle fills every property dst did not specify from src and marks dst
// as complete. A complete record is left alone, so applying it twice is the
// same as applying it once.
func CopyStyle(src, dst *Record) {
	if src == dst || dst.Inherited&PropUpdatedFromBase != 0 {
		return
	}
	for _, p := range allProperties {
		if dst.Specified.Has(p) {
			continue
		}
		copyProperty(dst, src, p)
		dst.Inherited |= p
	}
	dst.Inherited |= PropUpdatedFromBase
}

// ResetNonInheritable restores every property outside keep to its default
// value. fontSize is the default font size.
func ResetNonInheritable(rec *Record, keep Property, fontSize float64) {
	def := NewRecord(fontSize)
	for _, p := range allProperties {
		if keep&p != 0 {
			continue
		}
		copyProperty(rec, &def, p)
		rec.Specified &^= p
		rec.Inherited &^= p
	}
}

// copyProperty copies the fields that belong to a single property bit.
func copyProperty(dst, src *Record, p Property) {
	switch p {
	case PropBackground:
		dst.Background = src.Background
		dst.Gradient = src.Gradient
	case PropFgColor:
		dst.Foreground = src.Foreground
	case PropFontSize:
		dst.Font.Size = src.Font.Size
	case PropFontFamily:
		dst.Font.Family = src.Font.Family
	case PropFontWeight:
		dst.Font.Flags = dst.Font.Flags&^fontWeightFlags | src.Font.Flags&fontWeightFlags
	case PropFontStyle:
		dst.Font.Flags = dst.Font.Flags&^fontStyleFlags | src.Font.Flags&fontStyleFlags
	case PropTextWrap:
		dst.Font.Flags = dst.Font.Flags&^FontNoWrap | src.Font.Flags&FontNoWrap
	case PropTextOverflow:
		dst.Font.Flags = dst.Font.Flags&^FontOverflowEllipsis | src.Font.Flags&FontOverflowEllipsis
	case PropHeight:
		dst.Dimension.H = src.Dimension.H
		copyRelative(dst, src, RelHeight)
	case PropWidth:
		dst.Dimension.W = src.Dimension.W
		copyRelative(dst, src, RelWidth)
	case PropMinWidth:
		dst.MinDim.W = src.MinDim.W
		copyRelative(dst, src, RelMinWidth)
	case PropMinHeight:
		dst.MinDim.H = src.MinDim.H
		copyRelative(dst, src, RelMinHeight)
	case PropMaxWidth:
		dst.MaxDim.W = src.MaxDim.W
		copyRelative(dst, src, RelMaxWidth)
	case PropMaxHeight:
		dst.MaxDim.H = src.MaxDim.H
		copyRelative(dst, src, RelMaxHeight)
	case PropHAlignment:
		dst.Alignment = dst.Alignment&^alignHorizontal | src.Alignment&alignHorizontal
	case PropVAlignment:
		dst.Alignment = dst.Alignment&^alignVertical | src.Alignment&alignVertical
	case PropPadding:
		dst.Padding = src.Padding
	case PropMargin:
		dst.Margin = src.Margin
	case PropBorder:
		dst.Border.Top, dst.Border.Right = src.Border.Top, src.Border.Right
		dst.Border.Bottom, dst.Border.Left = src.Border.Bottom, src.Border.Left
		dst.Border.Uniform = src.Border.Uniform
	case PropBorderRadius:
		dst.Border.Radius = src.Border.Radius
		copyRelative(dst, src, relRadiusAll)
	case PropBoxShadow:
		dst.Shadow = src.Shadow
	case PropThumbColor:
		dst.Toggle.Thumb = src.Toggle.Thumb
		dst.Toggle.ThumbGradient = src.Toggle.ThumbGradient
	case PropTrackColor:
		dst.Toggle.Track = src.Toggle.Track
		dst.Toggle.TrackGradient = src.Toggle.TrackGradient
	case PropTrackOutlineColor:
		dst.Toggle.TrackOutline = src.Toggle.TrackOutline
		dst.Toggle.TrackOutlineWidth = src.Toggle.TrackOutlineWidth
	case PropThumbOffset:
		dst.Toggle.ThumbOffset = src.Toggle.ThumbOffset
	}
}

func copyRelative(dst, src *Record, rel Relative) {
	dst.Relative = dst.Relative&^rel | src.Relative&rel
}

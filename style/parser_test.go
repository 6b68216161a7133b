package style

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedParser(opts ...Option) (*Parser, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewParser(zap.New(core), opts...), logs
}

func TestParseDeclarations(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse("color: #ff0000; font-size: 14px; border: 2px solid rgb(0,0,255);")

	require.Equal(t, PropFgColor|PropFontSize|PropBorder, prop)
	require.Equal(t, prop, rec.Specified)
	require.Zero(t, rec.Inherited)
	require.Equal(t, red, rec.Foreground)
	require.InDelta(t, 14, rec.Font.Size, 1e-9)
	require.InDelta(t, 2, rec.Border.Left.Thickness, 1e-9)
	require.Equal(t, LineSolid, rec.Border.Top.Line)
	require.Equal(t, blue, rec.Border.Bottom.Color)
	require.True(t, rec.Border.Uniform)
}

func TestParseUnknownPropertyContinues(t *testing.T) {
	p, logs := observedParser()
	rec, prop := p.Parse("colour: red; color: blue")

	require.Equal(t, PropFgColor, prop)
	require.Equal(t, blue, rec.Foreground)
	warnings := logs.FilterMessage("Skipping style declaration").All()
	require.Len(t, warnings, 1)
	require.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	require.Equal(t, "style-parser", warnings[0].LoggerName)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	p := NewParser(nil)
	err := p.Validate("colour: red; width: auto; color: rgb(1 2 3); height: 10px")
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 3)
	require.True(t, errors.Is(err, ErrUnknownProperty))
	require.True(t, errors.Is(err, ErrMalformedValue))
	require.True(t, errors.Is(err, ErrGrammar))

	require.NoError(t, p.Validate("color: red; padding: 1px 2px"))
}

func TestMalformedValueKeepsField(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse("width: auto; height: 20px")
	require.Equal(t, PropHeight, prop)
	require.Equal(t, -1.0, rec.Dimension.W)
	require.InDelta(t, 20, rec.Dimension.H, 1e-9)
}

func TestFontSizeKeywords(t *testing.T) {
	p := NewParser(nil, WithMetrics(Metrics{BaseFontSize: 10, FontScaling: 2}))
	cases := map[string]float64{
		"xx-small":  12,
		"medium":    20,
		"x-large":   30,
		"xxx-large": 60,
		"2em":       40,
		"50%":       10,
		"12px":      24,
	}
	for val, want := range cases {
		rec, _ := p.Parse("font-size: " + val)
		if math.Abs(rec.Font.Size-want) > 1e-9 {
			t.Fatalf("font-size %s = %g, want %g", val, rec.Font.Size, want)
		}
	}
}

func TestQuotedValues(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse(`font-family: "Go Mono"; color: red;`)
	require.Equal(t, PropFontFamily|PropFgColor, prop)
	require.Equal(t, "Go Mono", rec.Font.Family)
	require.Equal(t, red, rec.Foreground)

	rec, _ = p.Parse(`font-family: 'a \'b\' c'`)
	require.Equal(t, `a \'b\' c`, rec.Font.Family)
}

func TestBoxAndDimensionProperties(t *testing.T) {
	p := NewParser(nil)
	rec, _ := p.Parse("padding: 4px 8px; margin-left: 3px; width: 50%; max-height: 2em; border-radius: 25%")

	require.Equal(t, Sides{Top: 4, Right: 8, Bottom: 4, Left: 8}, rec.Padding)
	require.InDelta(t, 3, rec.Margin.Left, 1e-9)
	require.InDelta(t, 0.5, rec.Dimension.W, 1e-9)
	require.NotZero(t, rec.Relative&RelWidth)
	require.InDelta(t, 32, rec.MaxDim.H, 1e-9)
	require.Zero(t, rec.Relative&RelMaxHeight)
	require.InDelta(t, 0.25, rec.Border.Radius[TopLeft], 1e-9)
	require.Equal(t, relRadiusAll, rec.Relative&relRadiusAll)
}

func TestFontFlags(t *testing.T) {
	p := NewParser(nil)
	rec, _ := p.Parse("font-weight: bold; font-style: italic; text-decoration: underline; text-overflow: ellipsis; text-wrap: nowrap")
	flags := rec.Font.Flags
	require.NotZero(t, flags&FontBold)
	require.Zero(t, flags&FontNormal)
	require.NotZero(t, flags&FontItalic)
	require.NotZero(t, flags&FontUnderline)
	require.NotZero(t, flags&FontOverflowEllipsis)
	require.NotZero(t, flags&FontNoWrap)

	rec, _ = p.Parse("font-weight: 300")
	require.NotZero(t, rec.Font.Flags&FontLight)
}

func TestAlignment(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse("text-align: center")
	require.Equal(t, PropHAlignment, prop)
	require.Equal(t, AlignHCenter|AlignVCenter, rec.Alignment)

	rec, _ = p.Parse("text-align: right; vertical-align: bottom")
	require.Equal(t, AlignRight|AlignBottom, rec.Alignment)
}

func TestBoxShadowAndToggle(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse("box-shadow: -1px 3px 4px red; thumb-color: blue; track-color: linear-gradient(to right, red, blue); track-outline: 2px green; thumb-offset: 3px")
	require.Equal(t, PropBoxShadow|PropThumbColor|PropTrackColor|PropTrackOutlineColor|PropThumbOffset, prop)
	require.Equal(t, Shadow{OffsetX: -1, OffsetY: 3, Blur: 4, Color: red}, rec.Shadow)
	require.Equal(t, blue, rec.Toggle.Thumb)
	require.Len(t, rec.Toggle.TrackGradient.Stops, 1)
	require.Equal(t, green, rec.Toggle.TrackOutline)
	require.InDelta(t, 2, rec.Toggle.TrackOutlineWidth, 1e-9)
	require.InDelta(t, 3, rec.Toggle.ThumbOffset, 1e-9)

	rec, _ = p.Parse("box-shadow: none")
	require.Equal(t, Shadow{}, rec.Shadow)

	// em resolves against the scaled font size
	p = NewParser(nil, WithMetrics(Metrics{BaseFontSize: 16, FontScaling: 2, Scaling: 1}))
	rec, _ = p.Parse("box-shadow: 1em 0.5em red; track-outline: 0.25em solid green")
	require.InDelta(t, 32, rec.Shadow.OffsetX, 1e-9)
	require.InDelta(t, 16, rec.Shadow.OffsetY, 1e-9)
	require.InDelta(t, 8, rec.Toggle.TrackOutlineWidth, 1e-9)
}

func TestBackgroundGradient(t *testing.T) {
	p := NewParser(nil)
	rec, prop := p.Parse("background: linear-gradient(to right, red, blue)")
	require.Equal(t, PropBackground, prop)
	require.False(t, rec.Gradient.IsZero())
	require.Equal(t, Transparent, rec.Background)
}

func TestParseCache(t *testing.T) {
	p, logs := observedParser(WithCache(0))
	first, _ := p.Parse("color: red")
	second, _ := p.Parse("color: red")
	require.Equal(t, first, second)
	require.Equal(t, 1, logs.FilterMessage("Parsed declarations").Len())
}

func TestParseProperty(t *testing.T) {
	p, ok := ParseProperty("Font-Size")
	require.True(t, ok)
	require.Equal(t, PropFontSize, p)
	p, ok = ParseProperty("track-outline")
	require.True(t, ok)
	require.Equal(t, PropTrackOutlineColor, p)
	_, ok = ParseProperty("colour")
	require.False(t, ok)
}

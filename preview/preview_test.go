package preview

import (
	"bytes"
	"testing"

	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/measure"
	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

func paragraph(t *testing.T, fonts *measure.Canvas, rec style.Record, text string) *layout.Paragraph {
	t.Helper()
	engine := layout.NewTypesetter(richtext.NewShaper(richtext.CharsetUTF8), fonts, layout.Options{})
	p, err := engine.Layout(text, 200, rec, richtext.PreserveBreaks, richtext.BreakWord)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return p
}

func TestRenderProducesPDF(t *testing.T) {
	fonts := measure.NewCanvas(nil)
	parser := style.NewParser(nil)
	cases := []string{
		"color: white; background: #0F62FE; padding: 8px; border: 2px solid black",
		"background: linear-gradient(to right, red, blue 30%, green); text-decoration: underline",
		"border: 1px solid red; border-radius: 6px; text-align: center; box-shadow: 2px 2px 0 gray",
		"text-align: right; text-decoration: line-through; margin: 4px",
	}
	for _, css := range cases {
		rec, _ := parser.Parse(css)
		p := paragraph(t, fonts, rec, "Hello preview &amp; friends\nsecond line")
		data, err := NewRenderer(fonts, nil).Render(p, rec)
		if err != nil {
			t.Fatalf("%s: render failed: %v", css, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("%s: output is not a PDF", css)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(nil, nil)
	if _, err := r.Render(nil, style.NewRecord(16)); err == nil {
		t.Fatalf("expected error for nil paragraph")
	}
	if _, err := r.Render(layout.NewParagraph(0, nil), style.NewRecord(16)); err == nil {
		t.Fatalf("expected error for empty preview")
	}
}

func TestLayoutBox(t *testing.T) {
	rec := style.NewRecord(16)
	rec.SetPadding(10).SetMargin(5).SetBorder(2, style.Black)
	p := layout.NewParagraph(100, []layout.TextLine{{Content: "x", Width: 10, Height: 20}})
	bx := layoutBox(p, rec)
	wantW := (100 + 20 + 4 + 10) * measure.PxToMm
	if diff := bx.pageW - wantW; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("page width = %g, want %g", bx.pageW, wantW)
	}
	wantX := (5 + 2 + 10) * measure.PxToMm
	if diff := bx.contentX - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("content x = %g, want %g", bx.contentX, wantX)
	}
}

func TestGradientAxis(t *testing.T) {
	cases := []struct {
		g                   style.Gradient
		horizontal, reverse bool
	}{
		{style.Gradient{Dir: style.DirDown}, false, false},
		{style.Gradient{Dir: style.DirUp}, false, true},
		{style.Gradient{Dir: style.DirRight}, true, false},
		{style.Gradient{Dir: style.DirLeft}, true, true},
		{style.Gradient{Dir: style.DirAngle, Angle: 90}, true, false},
		{style.Gradient{Dir: style.DirAngle, Angle: -90}, true, true},
		{style.Gradient{Dir: style.DirAngle, Angle: 180}, false, false},
		{style.Gradient{Dir: style.DirAngle, Angle: 0}, false, true},
	}
	for _, tc := range cases {
		h, r := gradientAxis(tc.g)
		if h != tc.horizontal || r != tc.reverse {
			t.Fatalf("gradientAxis(%+v) = %v,%v", tc.g, h, r)
		}
	}
}

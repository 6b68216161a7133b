package measure

import (
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/ByLCY/quill/fonts"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

var body = style.Font{Family: style.DefaultFontFamily, Size: 16, Flags: style.FontNormal}

func TestCellsCount(t *testing.T) {
	c := Cells{}
	if n := c.CellCount("ab"); n != 2 {
		t.Fatalf("ascii cells = %d", n)
	}
	if n := c.CellCount("日本"); n != 4 {
		t.Fatalf("wide cells = %d", n)
	}
	if n := c.CellCount("a\tb"); n != 6 {
		t.Fatalf("tab cells = %d", n)
	}
	if n := (Cells{TabCells: 8}).CellCount("\t"); n != 8 {
		t.Fatalf("custom tab cells = %d", n)
	}
}

func TestCellsMeasure(t *testing.T) {
	sz := Cells{}.Measure("abc", body, 10, 0)
	if sz.W != 15 || math.Abs(sz.H-12) > 1e-9 {
		t.Fatalf("unexpected size %+v", sz)
	}
	// size 为 0 时使用字体字号
	if sz := (Cells{}).Measure("ab", body, 0, 0); sz.W != 16 {
		t.Fatalf("fallback to font size: %+v", sz)
	}
	wrapped := Cells{}.Measure("abcdefgh", body, 10, 15)
	if wrapped.W != 15 || math.Abs(wrapped.H-12*3) > 1e-9 {
		t.Fatalf("wrapped size %+v", wrapped)
	}
}

func TestCanvasMeasure(t *testing.T) {
	c := NewCanvas(nil)
	one := c.Measure("hello", body, 16, 0)
	if one.W <= 0 || one.H <= 0 {
		t.Fatalf("expected positive size, got %+v", one)
	}
	two := c.Measure("hello hello", body, 16, 0)
	if two.W <= one.W {
		t.Fatalf("longer text should be wider: %g <= %g", two.W, one.W)
	}
	double := c.Measure("hello", body, 32, 0)
	if math.Abs(double.W-2*one.W) > 1e-6*one.W {
		t.Fatalf("width should scale with size: %g vs %g", double.W, one.W)
	}
	if empty := c.Measure("", body, 16, 0); empty.W != 0 {
		t.Fatalf("empty text width = %g", empty.W)
	}
}

func TestCanvasUnknownFamilyFallsBack(t *testing.T) {
	c := NewCanvas(nil)
	want := c.Measure("fallback", body, 16, 0)
	font := body
	font.Family = "no-such-family"
	if got := c.Measure("fallback", font, 16, 0); got != want {
		t.Fatalf("unknown family should use the fallback font: %+v vs %+v", got, want)
	}
}

func TestCanvasMonospaceFamily(t *testing.T) {
	c := NewCanvas(nil, WithFallbackFamily(fonts.Mono))
	narrow := c.Measure("iiii", body, 16, 0)
	wide := c.Measure("mmmm", body, 16, 0)
	if math.Abs(narrow.W-wide.W) > 1e-6 {
		t.Fatalf("monospace widths differ: %g vs %g", narrow.W, wide.W)
	}
	sans := NewCanvas(nil)
	if w := sans.Measure("iiii", body, 16, 0).W; w >= sans.Measure("mmmm", body, 16, 0).W {
		t.Fatalf("proportional font should make i narrower than m")
	}
}

func TestCanvasRegisteredFont(t *testing.T) {
	c := NewCanvas(nil, WithFont("Custom", false, false, gomono.TTF))
	font := body
	font.Family = "custom"
	// 未注册的粗体变体回退到 regular 数据
	font.Flags |= style.FontBold
	a := c.Measure("iiii", font, 16, 0)
	b := c.Measure("mmmm", font, 16, 0)
	if a.W <= 0 || math.Abs(a.W-b.W) > 1e-6 {
		t.Fatalf("registered monospace font not used: %g vs %g", a.W, b.W)
	}
}

func TestCanvasWrapWidth(t *testing.T) {
	c := NewCanvas(nil)
	full := c.Measure("a fairly long sentence", body, 16, 0)
	limit := full.W / 2.5
	wrapped := c.Measure("a fairly long sentence", body, 16, limit)
	if wrapped.W != limit || math.Abs(wrapped.H-3*full.H) > 1e-6 {
		t.Fatalf("wrapped size %+v (full %+v)", wrapped, full)
	}
}

func TestCanvasConcurrentUse(t *testing.T) {
	c := NewCanvas(nil)
	want := c.Measure("shared", body, 16, 0)
	var wg sync.WaitGroup
	errs := make(chan style.Size, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			font := body
			if i%2 == 1 {
				font.Flags |= style.FontItalic
			}
			got := c.Measure("shared", font, 16, 0)
			if i%2 == 0 && got != want {
				errs <- got
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent measure mismatch: %+v vs %+v", got, want)
	}
}

// 当第一行宽度与容器宽度恰好相等且后面紧跟一个显式换行时，不应产生额外的空行。
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	c := NewCanvas(nil)
	first := "SAMPLE-A"
	limit := c.Measure(first, body, body.Size, 0).W

	engine := layout.NewTypesetter(richtext.NewShaper(richtext.CharsetASCII), c, layout.Options{})
	lines, err := engine.LayoutLines(first+"\nSAMPLE-B", limit, body, 0, richtext.PreserveBreaks, richtext.BreakNormal)
	if err != nil {
		t.Fatalf("LayoutLines error: %v", err)
	}
	if got := len(lines); got != 2 {
		t.Fatalf("expected 2 lines without blank, got %d", got)
	}
	if lines[0].Content != first || lines[1].Content != "SAMPLE-B" {
		t.Fatalf("line mismatch: %q / %q", lines[0].Content, lines[1].Content)
	}
}

func TestNew(t *testing.T) {
	if m, err := New("cells", "", nil); err != nil {
		t.Fatalf("cells: %v", err)
	} else if _, ok := m.(Cells); !ok {
		t.Fatalf("expected Cells, got %T", m)
	}
	if m, err := New("", fonts.Mono, nil); err != nil {
		t.Fatalf("canvas: %v", err)
	} else if _, ok := m.(*Canvas); !ok {
		t.Fatalf("expected *Canvas, got %T", m)
	}
	if _, err := New("pixels", "", nil); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

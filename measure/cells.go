package measure

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

// Cells 是等宽终端风格的测量器：每个单元格宽 size*Aspect，东亚宽字符占两格。
type Cells struct {
	Aspect      float64 // 单元格宽高比，默认 0.5
	LineSpacing float64 // 行高倍数，默认 1.2
	TabCells    int     // 制表符占用的格数，默认 4
}

var _ richtext.Measurer = Cells{}

// CellCount 返回文本占用的单元格数。
func (c Cells) CellCount(text string) int {
	tab := c.TabCells
	if tab <= 0 {
		tab = 4
	}
	if !strings.ContainsRune(text, '\t') {
		return runewidth.StringWidth(text)
	}
	n := 0
	for _, r := range text {
		if r == '\t' {
			n += tab
			continue
		}
		n += runewidth.RuneWidth(r)
	}
	return n
}

// Measure 实现 richtext.Measurer。
func (c Cells) Measure(text string, font style.Font, size, wrapWidth float64) style.Size {
	if size <= 0 {
		size = font.Size
	}
	aspect, spacing := c.Aspect, c.LineSpacing
	if aspect <= 0 {
		aspect = 0.5
	}
	if spacing <= 0 {
		spacing = 1.2
	}
	cells := c.CellCount(text)
	w := float64(cells) * size * aspect
	h := size * spacing
	if wrapWidth > 0 && w > wrapWidth {
		return style.Size{W: wrapWidth, H: h * math.Ceil(w/wrapWidth)}
	}
	return style.Size{W: w, H: h}
}

package layout

import "github.com/ByLCY/quill/richtext"

// 该文件定义断行结果，供排版、预览与调试 JSON 共用。

// TextLine 表示排版后的一行文本内容、组成它的词片段及其宽高。
type TextLine struct {
	Content   string          `json:"content"`
	Words     []richtext.Word `json:"words,omitempty"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	GapBefore float64         `json:"gapBefore,omitempty"` // 行高大于测量高度时补在行前的间距
}

// Paragraph 是一段文本在给定宽度下的排版结果。
type Paragraph struct {
	Width  float64    `json:"width"` // 可用宽度，<=0 表示不限
	Lines  []TextLine `json:"lines"`
	Height float64    `json:"height"`
}

// NewParagraph 汇总各行高度（含 GapBefore）。
func NewParagraph(width float64, lines []TextLine) *Paragraph {
	p := &Paragraph{Width: width, Lines: lines}
	for _, l := range lines {
		p.Height += l.GapBefore + l.Height
	}
	return p
}

// MaxLineWidth 返回最宽一行的宽度。
func (p *Paragraph) MaxLineWidth() float64 {
	w := 0.0
	for _, l := range p.Lines {
		w = max(w, l.Width)
	}
	return w
}

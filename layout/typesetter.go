package layout

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

// Engine 串联分词与断行，实现 Typesetter。
type Engine struct {
	shaper  *richtext.Shaper
	measure richtext.Measurer
	segment richtext.SegmentOptions
	log     *zap.Logger
}

var _ Typesetter = (*Engine)(nil)

// NewTypesetter 使用给定的分词器与测量后端创建排版引擎。
func NewTypesetter(shaper *richtext.Shaper, m richtext.Measurer, opts Options) *Engine {
	if shaper == nil {
		shaper = richtext.NewShaper(richtext.CharsetASCII)
	}
	seg := opts.Segment
	if seg.EscapeStart == 0 && seg.EscapeEnd == 0 {
		def := richtext.DefaultSegmentOptions()
		seg.EscapeStart, seg.EscapeEnd = def.EscapeStart, def.EscapeEnd
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{shaper: shaper, measure: m, segment: seg, log: log.Named("typesetter")}
}

// Shaper 返回引擎使用的分词器。
func (e *Engine) Shaper() *richtext.Shaper { return e.shaper }

// LayoutLines 实现 Typesetter 接口，使用贪心换行算法。
// 带 nowrap 标记的字体只按显式换行拆分。
func (e *Engine) LayoutLines(content string, width float64, font style.Font, lineHeight float64, ws richtext.WhitespaceCollapse, brk richtext.WordBreak) ([]TextLine, error) {
	if e.measure == nil {
		return nil, errors.New("typesetter has no measurer")
	}
	if font.Size <= 0 {
		return nil, errors.New("font size must be positive")
	}
	limit := width
	if limit <= 0 || font.Flags&style.FontNoWrap != 0 {
		limit = math.MaxFloat64
	}

	opts := e.segment
	opts.Whitespace = ws
	tokens := e.shaper.Segment(content, opts)

	// 源文本中的词按出现顺序编号，合成内容保持 -1
	index := 0
	for i := range tokens {
		if tokens[i].Kind == richtext.TokenWord && !tokens[i].Synthesized {
			tokens[i].Word.Index = index
			index++
		}
	}

	if ws == richtext.Collapse || ws == richtext.PreserveBreaks {
		tokens = withSeparators(tokens)
	}

	space := e.measure.Measure(" ", font, font.Size, -1)
	recorder := &Lines{}

	styles := func(int, richtext.Word) richtext.WordStyle {
		return richtext.WordStyle{Font: font, Break: brk}
	}
	e.shaper.ShapeText(limit, tokens, styles, recorder, e.measure)

	lines := recorder.Result()
	for i := range lines {
		if lines[i].Height == 0 {
			lines[i].Height = space.H
		}
		if i > 0 && lineHeight > lines[i].Height {
			lines[i].GapBefore = lineHeight - lines[i].Height
		}
	}
	e.log.Debug("Laid out text",
		zap.Int("tokens", len(tokens)),
		zap.Int("lines", len(lines)),
		zap.Float64("width", width),
		zap.Stringer("whitespace", ws),
		zap.Stringer("break", brk))
	return lines, nil
}

// withSeparators 在被折叠空白隔开的相邻词之间插入一个空格分隔符，
// 让断行时的宽度计算包含词间空白。
func withSeparators(tokens []richtext.Token) []richtext.Token {
	out := make([]richtext.Token, 0, 2*len(tokens))
	for i, tok := range tokens {
		if tok.SpaceBefore && i > 0 && tokens[i-1].Kind == richtext.TokenWord {
			out = append(out, richtext.Token{
				Kind:        richtext.TokenWord,
				Word:        richtext.Word{Index: -1, Text: " ", Separator: true},
				Synthesized: true,
			})
		}
		out = append(out, tok)
	}
	return out
}

// Layout 按记录中的字体与尺寸排版一段文本。可用宽度为记录宽度减去内边距，
// 记录未指定宽度时使用 width。
func (e *Engine) Layout(content string, width float64, rec style.Record, ws richtext.WhitespaceCollapse, brk richtext.WordBreak) (*Paragraph, error) {
	avail := width
	if rec.Specified.Has(style.PropWidth) && rec.Relative&style.RelWidth == 0 && rec.Dimension.W > 0 {
		avail = rec.Dimension.W
	}
	if avail > 0 {
		avail = max(avail-rec.Padding.Horizontal(), 0)
	}
	lines, err := e.LayoutLines(content, avail, rec.Font, 0, ws, brk)
	if err != nil {
		return nil, err
	}
	return NewParagraph(avail, lines), nil
}

package richtext

// Shaper 负责分词与贪心断行。字符集在创建时确定一次，之后不再按字符分派。
// Shaper 不持有可变状态，可在多个 goroutine 间共享。
type Shaper struct {
	charset Charset
	step    func(s string, i int) int
	escapes escapeTable
}

// NewShaper 按字符集创建分词器：ASCII 每字节一个字形，UTF8 按首字节步进。
func NewShaper(cs Charset) *Shaper {
	if cs == CharsetUTF8 {
		return &Shaper{charset: cs, step: utf8Step, escapes: newEscapeTable(SymbolEscapes)}
	}
	return &Shaper{charset: CharsetASCII, step: asciiStep, escapes: newEscapeTable(ASCIIEscapes)}
}

// NewShaperWithEscapes 使用自定义转义表。
func NewShaperWithEscapes(cs Charset, escapes []Escape) *Shaper {
	s := NewShaper(cs)
	s.escapes = newEscapeTable(escapes)
	return s
}

// Charset 返回创建时选定的字符集。
func (s *Shaper) Charset() Charset { return s.charset }

func asciiStep(string, int) int { return 1 }

func utf8Step(s string, i int) int {
	return min(UTF8CharSize(s[i]), len(s)-i)
}

// SegmentOptions 控制分词行为。
type SegmentOptions struct {
	Whitespace        WhitespaceCollapse
	IgnoreLineBreaks  bool
	IgnoreEscapeCodes bool
	EscapeStart       byte // 默认 '&'
	EscapeEnd         byte // 默认 ';'
}

// DefaultSegmentOptions 折叠空白，识别 &name; 形式的转义。
func DefaultSegmentOptions() SegmentOptions {
	return SegmentOptions{Whitespace: Collapse, EscapeStart: '&', EscapeEnd: ';'}
}

func (o SegmentOptions) delimiters() (byte, byte) {
	start, end := o.EscapeStart, o.EscapeEnd
	if start == 0 {
		start = '&'
	}
	if end == 0 {
		end = ';'
	}
	return start, end
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// keepsSpaces 报告空白是否以合成词的形式保留。
func (o SegmentOptions) keepsSpaces() bool {
	switch o.Whitespace {
	case Preserve, PreserveSpaces, BreakSpaces:
		return true
	}
	return false
}

// keepsBreaks 报告换行是否逐个产生断行事件。
func (o SegmentOptions) keepsBreaks() bool {
	return o.Whitespace == Preserve || o.Whitespace == PreserveBreaks
}

// SegmentText 从左到右扫描 content，产生词与断行事件。
// 断行事件的参数是此前已产生的词数。
func (s *Shaper) SegmentText(content string, opts SegmentOptions, rec Recorder) {
	s.segment(content, opts, func(w Word, _, _ bool) {
		rec.RecordWord(w)
	}, rec.RecordLineBreak)
}

// Segment 收集 SegmentText 的全部事件。
func (s *Shaper) Segment(content string, opts SegmentOptions) []Token {
	var tokens []Token
	s.segment(content, opts, func(w Word, synthesized, spaced bool) {
		tokens = append(tokens, Token{Kind: TokenWord, Word: w, Synthesized: synthesized, SpaceBefore: spaced})
	}, func(next int) {
		tokens = append(tokens, Token{Kind: TokenLineBreak, Next: next})
	})
	return tokens
}

func (s *Shaper) segment(content string, opts SegmentOptions, word func(w Word, synthesized, spaced bool), lineBreak func(int)) {
	start, end := opts.delimiters()
	escapes := !opts.IgnoreEscapeCodes
	words := 0
	gap := false // 自上一个词以来丢弃过空白
	emit := func(text string, synthesized bool) {
		word(Word{Index: -1, Text: text}, synthesized, gap)
		words++
		gap = false
	}

	i := 0
	for i < len(content) {
		c := content[i]
		switch {
		case c == '\n':
			if opts.IgnoreLineBreaks {
				gap = true
				i++
				continue
			}
			if opts.keepsBreaks() {
				lineBreak(words)
				gap = false
				i++
				continue
			}
			for i < len(content) && content[i] == '\n' {
				i++
			}
			gap = true

		case isBlank(c):
			from := i
			for i < len(content) && isBlank(content[i]) {
				i++
			}
			if opts.keepsSpaces() {
				emit(content[from:i], true)
			} else {
				gap = true
			}

		default:
			if escapes && c == start {
				if esc, n, ok := s.escapes.match(content[i+1:], end); ok {
					i += 1 + n
					switch {
					case !esc.LineBreak:
						emit(esc.Value, true)
					case !opts.IgnoreLineBreaks:
						lineBreak(words)
						gap = false
					}
					continue
				}
			}
			// 词：连续的非空白字符，遇到转义起始符即结束。
			// 未匹配的起始符作为下一个词的首字符。
			from := i
			i += s.step(content, i)
			for i < len(content) {
				c := content[i]
				if c == '\n' || isBlank(c) || escapes && c == start {
					break
				}
				i += s.step(content, i)
			}
			emit(content[from:i], false)
		}
	}
}

package richtext

// 该文件定义分词与断行共用的枚举、事件与回调接口。

import (
	"fmt"
	"strings"

	"github.com/ByLCY/quill/style"
)

// WhitespaceCollapse 决定空白与换行如何变成事件。
type WhitespaceCollapse int

const (
	Collapse       WhitespaceCollapse = iota // 空白与换行都被吞掉
	Preserve                                 // 空白成词，换行逐个成为断行
	PreserveBreaks                           // 吞掉空白，换行逐个成为断行
	PreserveSpaces                           // 空白成词，连续换行被吞掉
	BreakSpaces                              // 同 PreserveSpaces
)

var whitespaceNames = []string{"collapse", "preserve", "preserve-breaks", "preserve-spaces", "break-spaces"}

func (w WhitespaceCollapse) String() string {
	if int(w) < len(whitespaceNames) && w >= 0 {
		return whitespaceNames[w]
	}
	return fmt.Sprintf("WhitespaceCollapse(%d)", int(w))
}

// ParseWhitespace 解析 collapse/preserve/preserve-breaks/preserve-spaces/break-spaces。
func ParseWhitespace(name string) (WhitespaceCollapse, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range whitespaceNames {
		if s == n {
			return WhitespaceCollapse(i), nil
		}
	}
	return Collapse, fmt.Errorf("unknown whitespace mode %q", name)
}

// WordBreak 是单词级别的断词策略。
type WordBreak int

const (
	BreakNormal WordBreak = iota
	BreakAll
	KeepAll
	AutoPhrase
	BreakWord
)

var wordBreakNames = []string{"normal", "break-all", "keep-all", "auto-phrase", "break-word"}

func (b WordBreak) String() string {
	if int(b) < len(wordBreakNames) && b >= 0 {
		return wordBreakNames[b]
	}
	return fmt.Sprintf("WordBreak(%d)", int(b))
}

// ParseWordBreak 解析 normal/break-all/keep-all/auto-phrase/break-word。
func ParseWordBreak(name string) (WordBreak, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range wordBreakNames {
		if s == n {
			return WordBreak(i), nil
		}
	}
	return BreakNormal, fmt.Errorf("unknown word break %q", name)
}

// splitsWords 报告该策略是否允许在词内断开超宽的词。
func (b WordBreak) splitsWords() bool { return b == BreakWord || b == BreakAll }

// Charset 选择分词器的字符步进方式。
type Charset int

const (
	CharsetASCII Charset = iota // 每个字节是一个字形
	CharsetUTF8                 // 按 UTF-8 首字节计算码点长度
)

func (c Charset) String() string {
	if c == CharsetUTF8 {
		return "utf8"
	}
	return "ascii"
}

// ParseCharset 解析 ascii 或 utf8（也接受 utf-8 / symbol）。
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "":
		return CharsetASCII, nil
	case "utf8", "utf-8", "symbol":
		return CharsetUTF8, nil
	}
	return CharsetASCII, fmt.Errorf("unknown charset %q", name)
}

// Word 是一个已放置（或待测量）的词或词片段。
// Index 为源词序号，-1 表示合成内容（空白、转义替换）。
type Word struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Separator 标记折叠空白留下的词间分隔符。ShapeText 只在它两侧的词
	// 位于同一行时放置它。
	Separator bool `json:"separator,omitempty"`
}

// TokenKind 区分分词结果中的词与断行。
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenLineBreak
)

// Token 是 Segment 收集的一个事件。
type Token struct {
	Kind TokenKind `json:"kind"`
	Word Word      `json:"word"`
	// Next 仅对断行有效：断行前已产生的词数。
	Next int `json:"next,omitempty"`
	// Synthesized 标记由空白或转义序列生成的词。
	Synthesized bool `json:"synthesized,omitempty"`
	// SpaceBefore 表示词前有被丢弃的空白（折叠的空格或换行）。
	SpaceBefore bool `json:"spaceBefore,omitempty"`
}

// Recorder 接收分词与断行事件。
type Recorder interface {
	RecordWord(w Word)
	// RecordLineBreak 的参数为下一行第一个词的序号。
	RecordLineBreak(next int)
}

// RecorderFuncs 用闭包实现 Recorder，nil 字段会被忽略。
type RecorderFuncs struct {
	Word      func(Word)
	LineBreak func(next int)
}

func (r RecorderFuncs) RecordWord(w Word) {
	if r.Word != nil {
		r.Word(w)
	}
}

func (r RecorderFuncs) RecordLineBreak(next int) {
	if r.LineBreak != nil {
		r.LineBreak(next)
	}
}

// Measurer 测量一段文本。wrapWidth <= 0 表示不折行。
type Measurer interface {
	Measure(text string, font style.Font, size, wrapWidth float64) style.Size
}

// MeasureFunc 让普通函数满足 Measurer。
type MeasureFunc func(text string, font style.Font, size, wrapWidth float64) style.Size

func (f MeasureFunc) Measure(text string, font style.Font, size, wrapWidth float64) style.Size {
	return f(text, font, size, wrapWidth)
}

// WordStyle 是单个词的字体与断词策略。
type WordStyle struct {
	Font  style.Font
	Break WordBreak
}

// StyleAccessor 返回第 i 个 token 的样式。
type StyleAccessor func(i int, w Word) WordStyle

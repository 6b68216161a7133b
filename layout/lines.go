package layout

import (
	"strings"

	"github.com/ByLCY/quill/richtext"
)

// Lines 实现 richtext.Recorder，把词与断行事件拼成 TextLine。
// 分隔符词计入内容与宽度，但不出现在 Words 中。
type Lines struct {
	lines   []TextLine
	current TextLine
	content strings.Builder
	broken  bool // 最近一次事件是断行
}

var _ richtext.Recorder = (*Lines)(nil)

// RecordWord 把词追加到当前行。
func (l *Lines) RecordWord(w richtext.Word) {
	l.content.WriteString(w.Text)
	l.current.Width += w.Width
	l.broken = false
	if w.Separator {
		return
	}
	l.current.Words = append(l.current.Words, w)
	l.current.Height = max(l.current.Height, w.Height)
}

// RecordLineBreak 结束当前行；连续断行会产生空行。
func (l *Lines) RecordLineBreak(int) {
	l.flush()
	l.broken = true
}

func (l *Lines) flush() {
	l.current.Content = l.content.String()
	l.lines = append(l.lines, l.current)
	l.current = TextLine{}
	l.content.Reset()
}

// Result 返回全部行。末尾的断行会留下一个空行。
func (l *Lines) Result() []TextLine {
	if len(l.current.Words) > 0 || l.broken {
		l.flush()
		l.broken = false
	}
	out := l.lines
	l.lines = nil
	return out
}

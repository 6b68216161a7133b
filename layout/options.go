package layout

import (
	"go.uber.org/zap"

	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

// Options 配置排版阶段所需的依赖。
type Options struct {
	Segment richtext.SegmentOptions // Whitespace 字段会被 LayoutLines 的参数覆盖
	Logger  *zap.Logger
}

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行。
// lineHeight <= 0 时使用测量得到的高度。
type Typesetter interface {
	LayoutLines(content string, width float64, font style.Font, lineHeight float64, ws richtext.WhitespaceCollapse, brk richtext.WordBreak) ([]TextLine, error)
}

package richtext

import "golang.org/x/text/cases"

// Escape 是一条转义序列，例如 "&Tab;"。LineBreak 为真时产生断行而不是文本。
type Escape struct {
	Name      string
	Value     string
	LineBreak bool
}

// ASCIIEscapes 是 ASCII 分词器的转义表，按声明顺序匹配。
var ASCIIEscapes = []Escape{
	{Name: "Tab", Value: "\t"},
	{Name: "NewLine", LineBreak: true},
	{Name: "nbsp", Value: " "},
	{Name: "gt", Value: ">"},
	{Name: "lt", Value: "<"},
	{Name: "amp", Value: "&"},
}

// SymbolEscapes 在 ASCII 表之外增加常用符号。
var SymbolEscapes = []Escape{
	{Name: "Tab", Value: "\t"},
	{Name: "NewLine", LineBreak: true},
	{Name: "nbsp", Value: " "},
	{Name: "gt", Value: ">"},
	{Name: "lt", Value: "<"},
	{Name: "amp", Value: "&"},
	{Name: "copy", Value: "©"},
	{Name: "reg", Value: "®"},
	{Name: "deg", Value: "°"},
	{Name: "micro", Value: "μ"},
	{Name: "trade", Value: "™"},
}

type escapeTable struct {
	entries []Escape
	folded  []string
}

func newEscapeTable(entries []Escape) escapeTable {
	t := escapeTable{entries: entries, folded: make([]string, len(entries))}
	for i, e := range entries {
		t.folded[i] = cases.Fold().String(e.Name)
	}
	return t
}

// match 在 rest（转义起始符之后的文本）开头查找第一条匹配的转义，
// 名称之后必须紧跟 end。返回匹配项与消耗的字节数（含 end）。
func (t escapeTable) match(rest string, end byte) (Escape, int, bool) {
	for i, e := range t.entries {
		n := len(e.Name)
		if len(rest) <= n || rest[n] != end {
			continue
		}
		if cases.Fold().String(rest[:n]) == t.folded[i] {
			return e, n + 1, true
		}
	}
	return Escape{}, 0, false
}

// UTF8CharSize 根据 UTF-8 首字节返回码点的字节数。
func UTF8CharSize(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xF0 == 0xF0:
		return 4
	case b&0xE0 == 0xE0:
		return 3
	default:
		return 2
	}
}

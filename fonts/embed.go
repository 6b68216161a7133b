package fonts

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体族名。
const (
	Sans = "go"
	Mono = "go-mono"
)

// 字体变体名。
const (
	Regular    = "regular"
	Bold       = "bold"
	Italic     = "italic"
	BoldItalic = "bold-italic"
)

var builtin = map[string][]byte{
	Sans + "/" + Regular:    goregular.TTF,
	Sans + "/" + Bold:       gobold.TTF,
	Sans + "/" + Italic:     goitalic.TTF,
	Sans + "/" + BoldItalic: gobolditalic.TTF,
	Mono + "/" + Regular:    gomono.TTF,
	Mono + "/" + Bold:       gomonobold.TTF,
	Mono + "/" + Italic:     gomonoitalic.TTF,
	Mono + "/" + BoldItalic: gomonobolditalic.TTF,
}

// Variant 返回粗体/斜体组合对应的变体名。
func Variant(bold, italic bool) string {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	}
	return Regular
}

// Load 返回内置字体的字节数据，path 可写为 "embed:go/bold" 或直接 "go/bold"；
// 只写族名时返回 regular 变体。
func Load(path string) ([]byte, error) {
	target := strings.ToLower(strings.TrimPrefix(path, "embed:"))
	if !strings.Contains(target, "/") {
		target += "/" + Regular
	}
	data, ok := builtin[target]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 不存在", target)
	}
	return data, nil
}

// Has 报告 family 是否为内置字体族。
func Has(family string) bool {
	_, ok := builtin[strings.ToLower(family)+"/"+Regular]
	return ok
}

// Families 列出内置字体族。
func Families() []string {
	var out []string
	for key := range builtin {
		family, _, _ := strings.Cut(key, "/")
		if !slices.Contains(out, family) {
			out = append(out, family)
		}
	}
	slices.Sort(out)
	return out
}

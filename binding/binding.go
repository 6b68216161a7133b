// Package binding resolves ${path} placeholders in declaration text
// against theme data before the text reaches the style parser.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// placeholder 是文本中的一个 ${path|fallback}。
type placeholder struct {
	start, end  int
	path        string
	fallback    string
	hasFallback bool
}

func scan(text string) []placeholder {
	if !strings.Contains(text, "${") {
		return nil
	}
	var out []placeholder
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		path, fallback, ok := strings.Cut(text[m[2]:m[3]], "|")
		out = append(out, placeholder{
			start:       m[0],
			end:         m[1],
			path:        strings.TrimSpace(path),
			fallback:    strings.TrimSpace(fallback),
			hasFallback: ok,
		})
	}
	return out
}

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 可写作 ${path|fallback}：路径不存在时使用 fallback。
// 若路径不存在且没有 fallback，则保留原占位符。
func Interpolate(text string, data any) string {
	found := scan(text)
	if len(found) == 0 {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, p := range found {
		sb.WriteString(text[last:p.start])
		last = p.end
		if val, ok := Lookup(data, p.path); ok {
			sb.WriteString(format(val))
			continue
		}
		if p.hasFallback {
			sb.WriteString(p.fallback)
			continue
		}
		sb.WriteString(text[p.start:p.end])
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// Unresolved 返回文本中没有数据也没有 fallback 的占位符路径。
func Unresolved(text string, data any) []string {
	var out []string
	for _, p := range scan(text) {
		if p.hasFallback {
			continue
		}
		if _, ok := Lookup(data, p.path); !ok {
			out = append(out, p.path)
		}
	}
	return out
}

// step 是路径中的一步：键名或数组下标。
type step struct {
	key   string
	index int
}

func (s step) isIndex() bool { return s.key == "" }

// parsePath 把 a.b[0][1].c 拆成若干步；括号不完整或下标不是整数时返回错误。
func parsePath(path string) ([]step, error) {
	var steps []step
	for _, part := range strings.Split(path, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			steps = append(steps, step{key: name})
		}
		if rest == "" {
			if strings.HasSuffix(part, "[") {
				return nil, fmt.Errorf("路径 %q 的下标不完整", path)
			}
			continue
		}
		for _, idx := range strings.Split("["+rest, "[")[1:] {
			num, ok := strings.CutSuffix(idx, "]")
			if !ok {
				return nil, fmt.Errorf("路径 %q 的下标不完整", path)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return nil, fmt.Errorf("路径 %q 的下标 %q 不是整数: %w", path, num, err)
			}
			steps = append(steps, step{index: n})
		}
	}
	return steps, nil
}

// Lookup 按 a.b[0].c 形式的路径在 map/slice 数据中取值。
func Lookup(data any, path string) (any, bool) {
	if data == nil || path == "" {
		return nil, false
	}
	steps, err := parsePath(path)
	if err != nil {
		return nil, false
	}
	current := data
	for _, s := range steps {
		var ok bool
		if s.isIndex() {
			current, ok = at(current, s.index)
		} else {
			current, ok = field(current, s.key)
		}
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func field(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case map[string]string:
		val, ok := c[key]
		return val, ok
	}
	return nil, false
}

func at(current any, idx int) (any, bool) {
	switch c := current.(type) {
	case []any:
		if idx >= 0 && idx < len(c) {
			return c[idx], true
		}
	case []string:
		if idx >= 0 && idx < len(c) {
			return c[idx], true
		}
	}
	return nil, false
}

// format 把取到的值写成声明文本；JSON 解出的整数值不带小数部分。
func format(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(val)
}

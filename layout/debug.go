package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// debugDump 是调试 JSON 的顶层结构。
type debugDump struct {
	Paragraph    *Paragraph `json:"paragraph"`
	MaxLineWidth float64    `json:"maxLineWidth"`
	Overflow     []int      `json:"overflow,omitempty"` // 宽度超出可用宽度的行号
}

// WriteDebugJSON 将段落排版结果输出为 JSON，便于调试或可视化；目录不存在时自动创建。
func WriteDebugJSON(p *Paragraph, path string) error {
	if p == nil {
		return nil
	}
	dump := debugDump{Paragraph: p, MaxLineWidth: p.MaxLineWidth()}
	if p.Width > 0 {
		for i, l := range p.Lines {
			if l.Width > p.Width {
				dump.Overflow = append(dump.Overflow, i)
			}
		}
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("编码调试 JSON 失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

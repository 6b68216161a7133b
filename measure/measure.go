// Package measure 提供 richtext.Measurer 的具体实现：基于字体度量的 Canvas 与等宽单元格的 Cells。
package measure

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ByLCY/quill/richtext"
)

// 测量器类型名。
const (
	KindCanvas = "canvas"
	KindCells  = "cells"
)

// New 按名称创建测量器，family 仅对 canvas 生效。
func New(kind, family string, log *zap.Logger) (richtext.Measurer, error) {
	switch strings.ToLower(kind) {
	case "", KindCanvas:
		return NewCanvas(log, WithFallbackFamily(family)), nil
	case KindCells:
		return Cells{}, nil
	}
	return nil, fmt.Errorf("未知的测量器类型 %q", kind)
}

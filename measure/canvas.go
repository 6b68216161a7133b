package measure

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/fonts"
	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

// 尺寸换算：样式使用 px，canvas 的字号使用 pt、坐标使用 mm。
const (
	PxToPt = 0.75
	PxToMm = 25.4 / 96
	MmToPx = 96 / 25.4
)

// Canvas 使用 github.com/tdewolff/canvas 的字体度量测量文本。
// 字体族按名称缓存；所有字体操作都在 fontMu 下进行，可在多个 goroutine 间共享。
type Canvas struct {
	log      *zap.Logger
	fallback string

	fontMu       sync.Mutex
	fontBlobs    map[string][]byte // family/variant
	fontFamilies map[string]*fontFamilyEntry
}

var _ richtext.Measurer = (*Canvas)(nil)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	loaded map[canvas.FontStyle]bool
}

// CanvasOption configures the canvas measurer.
type CanvasOption func(*Canvas)

// WithFallbackFamily 设置未知或默认字体族时使用的内置字体族。
func WithFallbackFamily(family string) CanvasOption {
	return func(c *Canvas) {
		if family != "" {
			c.fallback = family
		}
	}
}

// WithFont 注入字体文件数据。
func WithFont(family string, bold, italic bool, data []byte) CanvasOption {
	return func(c *Canvas) { c.Register(family, bold, italic, data) }
}

// NewCanvas 创建测量器，默认回退到内置的 Go 字体。
func NewCanvas(log *zap.Logger, opts ...CanvasOption) *Canvas {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Canvas{
		log:          log.Named("canvas-measure"),
		fallback:     fonts.Sans,
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*fontFamilyEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register 为字体族的一个变体注册 TTF/OTF 数据。已缓存的同名字体族会被丢弃。
func (c *Canvas) Register(family string, bold, italic bool, data []byte) {
	name := strings.ToLower(family)
	c.fontMu.Lock()
	defer c.fontMu.Unlock()
	c.fontBlobs[name+"/"+fonts.Variant(bold, italic)] = data
	delete(c.fontFamilies, name)
}

// Measure 实现 richtext.Measurer。缺失字体时返回零尺寸。
func (c *Canvas) Measure(text string, font style.Font, size, wrapWidth float64) style.Size {
	c.fontMu.Lock()
	defer c.fontMu.Unlock()
	face, err := c.face(font, size, canvas.Black)
	if err != nil {
		c.log.Warn("Unable to measure text", zap.String("family", font.Family), zap.Error(err))
		return style.Size{}
	}
	w := face.TextWidth(text) * MmToPx
	h := face.Metrics().LineHeight * MmToPx
	if wrapWidth > 0 && w > wrapWidth {
		lines := math.Ceil(w / wrapWidth)
		return style.Size{W: wrapWidth, H: h * lines}
	}
	return style.Size{W: w, H: h}
}

// Face 返回 size（px）大小的字体面。
func (c *Canvas) Face(font style.Font, size float64, col color.Color) (*canvas.FontFace, error) {
	c.fontMu.Lock()
	defer c.fontMu.Unlock()
	return c.face(font, size, col)
}

func (c *Canvas) face(font style.Font, size float64, col color.Color) (*canvas.FontFace, error) {
	if size <= 0 {
		size = font.Size
	}
	family, fontStyle, err := c.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return family.Face(size*PxToPt, col, fontStyle, canvas.FontNormal), nil
}

// ensureFontFamily 调用方需持有 fontMu。
func (c *Canvas) ensureFontFamily(font style.Font) (*canvas.FontFamily, canvas.FontStyle, error) {
	name := strings.ToLower(font.Family)
	if name == "" || name == style.DefaultFontFamily {
		name = c.fallback
	}
	fontStyle := parseFontStyle(font.Flags)

	entry, ok := c.fontFamilies[name]
	if !ok {
		entry = &fontFamilyEntry{family: canvas.NewFontFamily(name), loaded: map[canvas.FontStyle]bool{}}
		c.fontFamilies[name] = entry
	}
	if entry.loaded[fontStyle] {
		return entry.family, fontStyle, nil
	}

	data, err := c.loadFontBytes(name, font.Flags)
	if err != nil && name != c.fallback {
		c.log.Debug("Falling back to built-in font", zap.String("family", name), zap.Error(err))
		data, err = c.loadFontBytes(c.fallback, font.Flags)
	}
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	if err := entry.family.LoadFont(data, 0, fontStyle); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	entry.loaded[fontStyle] = true
	return entry.family, fontStyle, nil
}

// loadFontBytes 依次查找注册数据的对应变体、注册数据的 regular 变体与内置字体。
func (c *Canvas) loadFontBytes(family string, flags style.FontFlags) ([]byte, error) {
	variant := fonts.Variant(flags&style.FontBold != 0, flags&style.FontItalic != 0)
	if blob, ok := c.fontBlobs[family+"/"+variant]; ok {
		return blob, nil
	}
	if blob, ok := c.fontBlobs[family+"/"+fonts.Regular]; ok {
		return blob, nil
	}
	if fonts.Has(family) {
		return fonts.Load(family + "/" + variant)
	}
	return nil, fmt.Errorf("找不到字体 %s", family)
}

func parseFontStyle(flags style.FontFlags) canvas.FontStyle {
	result := canvas.FontRegular
	switch {
	case flags&style.FontBold != 0:
		result = canvas.FontBold
	case flags&style.FontLight != 0:
		result = canvas.FontLight
	}
	if flags&style.FontItalic != 0 {
		result |= canvas.FontItalic
	}
	return result
}

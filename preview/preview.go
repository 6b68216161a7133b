// Package preview 将排版结果与样式记录绘制为单页 PDF，便于目视检查。
package preview

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/measure"
	"github.com/ByLCY/quill/style"
)

// gradientSteps 是每个渐变片段拆分的色带数。
const gradientSteps = 16

// Renderer 使用 github.com/tdewolff/canvas 绘制预览。
type Renderer struct {
	log   *zap.Logger
	fonts *measure.Canvas
}

// NewRenderer 创建预览渲染器，fonts 同时用于排版测量与绘制，保证两者使用同一字体。
func NewRenderer(fonts *measure.Canvas, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if fonts == nil {
		fonts = measure.NewCanvas(log)
	}
	return &Renderer{log: log.Named("preview"), fonts: fonts}
}

// box 是以 mm 表示的盒模型各层矩形。
type box struct {
	pageW, pageH       float64
	borderX, borderY   float64
	borderW, borderH   float64
	contentX, contentY float64
	contentW           float64
}

func layoutBox(p *layout.Paragraph, rec style.Record) box {
	contentW := p.Width
	if contentW <= 0 || contentW == math.MaxFloat64 {
		contentW = p.MaxLineWidth()
	}
	b := rec.Border
	borderW := contentW + rec.Padding.Horizontal() + b.Left.Thickness + b.Right.Thickness
	borderH := p.Height + rec.Padding.Vertical() + b.Top.Thickness + b.Bottom.Thickness
	return box{
		pageW:    (borderW + rec.Margin.Horizontal()) * measure.PxToMm,
		pageH:    (borderH + rec.Margin.Vertical()) * measure.PxToMm,
		borderX:  rec.Margin.Left * measure.PxToMm,
		borderY:  rec.Margin.Top * measure.PxToMm,
		borderW:  borderW * measure.PxToMm,
		borderH:  borderH * measure.PxToMm,
		contentX: (rec.Margin.Left + b.Left.Thickness + rec.Padding.Left) * measure.PxToMm,
		contentY: (rec.Margin.Top + b.Top.Thickness + rec.Padding.Top) * measure.PxToMm,
		contentW: contentW * measure.PxToMm,
	}
}

// Render 绘制段落：阴影、背景（纯色或渐变）、边框，最后按前景色逐行绘制文本。
// 段落与记录中的尺寸均为 px。
func (r *Renderer) Render(p *layout.Paragraph, rec style.Record) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("段落为空")
	}
	bx := layoutBox(p, rec)
	if bx.pageW <= 0 || bx.pageH <= 0 {
		return nil, fmt.Errorf("预览尺寸无效: %gx%g mm", bx.pageW, bx.pageH)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, bx.pageW, bx.pageH, nil)
	c := canvas.New(bx.pageW, bx.pageH)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与排版保持左上角为原点

	drawShadow(ctx, bx, rec)
	drawBackground(ctx, bx, rec)
	drawBorder(ctx, bx, rec.Border)
	if err := r.drawLines(ctx, bx, p, rec); err != nil {
		return nil, err
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	r.log.Debug("Rendered preview",
		zap.Int("lines", len(p.Lines)),
		zap.Float64("width_mm", bx.pageW),
		zap.Float64("height_mm", bx.pageH))
	return buf.Bytes(), nil
}

func drawShadow(ctx *canvas.Context, bx box, rec style.Record) {
	sh := rec.Shadow
	if sh.Color>>24 == 0 {
		return
	}
	// 不做模糊，只按偏移与扩展绘制一个实心矩形
	spread := sh.Spread * measure.PxToMm
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(sh.Color)
	ctx.DrawPath(bx.borderX+sh.OffsetX*measure.PxToMm-spread, bx.borderY+sh.OffsetY*measure.PxToMm-spread,
		canvas.Rectangle(bx.borderW+2*spread, bx.borderH+2*spread))
}

func outline(bx box, radius float64) *canvas.Path {
	if radius > 0 {
		return canvas.RoundedRectangle(bx.borderW, bx.borderH, radius*measure.PxToMm)
	}
	return canvas.Rectangle(bx.borderW, bx.borderH)
}

func drawBackground(ctx *canvas.Context, bx box, rec style.Record) {
	ctx.SetStrokeColor(canvas.Transparent)
	if !rec.Gradient.IsZero() {
		drawGradient(ctx, bx, rec.Gradient)
		return
	}
	if rec.Background>>24 == 0 {
		return
	}
	ctx.SetFillColor(rec.Background)
	ctx.DrawPath(bx.borderX, bx.borderY, outline(bx, rec.Border.Radius[style.TopLeft]))
}

// drawGradient 把每个渐变片段拆成若干色带，色带沿渐变方向排列。
func drawGradient(ctx *canvas.Context, bx box, g style.Gradient) {
	horizontal, reverse := gradientAxis(g)
	length := bx.borderH
	if horizontal {
		length = bx.borderW
	}
	offset := 0.0
	for _, stop := range g.Stops {
		seg := stop.Pos * length
		step := seg / gradientSteps
		for i := 0; i < gradientSteps; i++ {
			t := (float64(i) + 0.5) / gradientSteps
			ctx.SetFillColor(mix(stop.From, stop.To, t))
			pos := offset + float64(i)*step
			if reverse {
				pos = length - pos - step
			}
			if horizontal {
				ctx.DrawPath(bx.borderX+pos, bx.borderY, canvas.Rectangle(step, bx.borderH))
			} else {
				ctx.DrawPath(bx.borderX, bx.borderY+pos, canvas.Rectangle(bx.borderW, step))
			}
		}
		offset += seg
	}
}

// gradientAxis 返回渐变是否沿水平方向以及是否反向；角度取最接近的轴。
func gradientAxis(g style.Gradient) (horizontal, reverse bool) {
	switch g.Dir {
	case style.DirRight:
		return true, false
	case style.DirLeft:
		return true, true
	case style.DirUp:
		return false, true
	case style.DirAngle:
		a := math.Mod(math.Mod(g.Angle, 360)+360, 360)
		switch {
		case a >= 45 && a < 135:
			return true, false
		case a >= 135 && a < 225:
			return false, false
		case a >= 225 && a < 315:
			return true, true
		}
		return false, true
	}
	return false, false
}

func mix(from, to style.Color, t float64) color.Color {
	fr, fg, fb, fa := from.Channels()
	tr, tg, tb, ta := to.Channels()
	lerp := func(a, b uint8) int { return int(math.Round(float64(a) + (float64(b)-float64(a))*t)) }
	return style.ToRGBA(lerp(fr, tr), lerp(fg, tg), lerp(fb, tb), lerp(fa, ta))
}

func drawBorder(ctx *canvas.Context, bx box, b style.Border) {
	if !b.Exists() {
		return
	}
	if b.Rounded() {
		// 圆角边框按上边框的颜色与粗细描边
		w := b.Top.Thickness * measure.PxToMm
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(b.Top.Color)
		ctx.SetStrokeWidth(w)
		inner := bx
		inner.borderW -= w
		inner.borderH -= w
		ctx.DrawPath(bx.borderX+w/2, bx.borderY+w/2, outline(inner, b.Radius[style.TopLeft]))
		return
	}
	ctx.SetStrokeColor(canvas.Transparent)
	edges := []struct {
		edge       style.Edge
		x, y, w, h float64
	}{
		{b.Top, 0, 0, bx.borderW, b.Top.Thickness * measure.PxToMm},
		{b.Bottom, 0, bx.borderH - b.Bottom.Thickness*measure.PxToMm, bx.borderW, b.Bottom.Thickness * measure.PxToMm},
		{b.Left, 0, 0, b.Left.Thickness * measure.PxToMm, bx.borderH},
		{b.Right, bx.borderW - b.Right.Thickness*measure.PxToMm, 0, b.Right.Thickness * measure.PxToMm, bx.borderH},
	}
	for _, e := range edges {
		if e.edge.Thickness <= 0 {
			continue
		}
		ctx.SetFillColor(e.edge.Color)
		ctx.DrawPath(bx.borderX+e.x, bx.borderY+e.y, canvas.Rectangle(e.w, e.h))
	}
}

func (r *Renderer) drawLines(ctx *canvas.Context, bx box, p *layout.Paragraph, rec style.Record) error {
	face, err := r.fonts.Face(rec.Font, rec.Font.Size, rec.Foreground)
	if err != nil {
		return fmt.Errorf("创建字体失败: %w", err)
	}
	metrics := face.Metrics()

	var textAlign canvas.TextAlign
	anchorX := bx.contentX
	switch {
	case rec.Alignment&style.AlignHCenter != 0:
		textAlign = canvas.Center
		anchorX += bx.contentW / 2
	case rec.Alignment&style.AlignRight != 0:
		textAlign = canvas.Right
		anchorX += bx.contentW
	default:
		textAlign = canvas.Left
	}

	cursorY := bx.contentY
	for _, line := range p.Lines {
		cursorY += line.GapBefore * measure.PxToMm
		if line.Content != "" {
			// 基线位置：行顶部加上字体上升部
			baseline := cursorY + metrics.Ascent
			ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line.Content, textAlign))
			r.decorate(ctx, rec, anchorX, baseline, line.Width*measure.PxToMm, textAlign, metrics.Ascent)
		}
		cursorY += line.Height * measure.PxToMm
	}
	return nil
}

// decorate 绘制下划线与删除线。
func (r *Renderer) decorate(ctx *canvas.Context, rec style.Record, anchorX, baseline, width float64, align canvas.TextAlign, ascent float64) {
	flags := rec.Font.Flags
	if flags&(style.FontUnderline|style.FontStrikethrough) == 0 || width <= 0 {
		return
	}
	x := anchorX
	switch align {
	case canvas.Center:
		x -= width / 2
	case canvas.Right:
		x -= width
	}
	thickness := math.Max(ascent/15, 0.1)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(rec.Foreground)
	if flags&style.FontUnderline != 0 {
		ctx.DrawPath(x, baseline+thickness, canvas.Rectangle(width, thickness))
	}
	if flags&style.FontStrikethrough != 0 {
		ctx.DrawPath(x, baseline-ascent/3, canvas.Rectangle(width, thickness))
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/config"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/measure"
	"github.com/ByLCY/quill/preview"
	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/sheet"
	"github.com/ByLCY/quill/style"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseStateFlag(name string) (style.State, error) {
	s, ok := style.ParseState(name)
	if !ok {
		return style.StateDefault, fmt.Errorf("未知的状态 %q", name)
	}
	return s, nil
}

// runStyle 把每个参数作为一次 Default 压栈，然后输出查询状态下的记录。
func runStyle(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.NArg() == 0 {
		return errors.New("缺少样式声明")
	}
	state, err := parseStateFlag(cmd.String("state"))
	if err != nil {
		return err
	}

	parser := env.cfg.NewParser(env.log)
	sc := env.cfg.NewContext(parser, env.log)
	for _, css := range cmd.Args().Slice() {
		if err := parser.Validate(css); err != nil {
			env.log.Warn("Problems in declarations", zap.String("css", css), zap.Error(err))
		}
		sc.PushState(style.StateDefault, css)
	}
	if css := cmd.String("state-css"); css != "" && state != style.StateDefault {
		sc.PushState(state, css)
	}
	return writeJSON(cmd.Root().Writer, sc.GetStyle(state))
}

// textSettings 合并命令行与配置中的文本选项。
type textSettings struct {
	shaper *richtext.Shaper
	ws     richtext.WhitespaceCollapse
	brk    richtext.WordBreak
	rec    style.Record
	width  float64
}

func readTextSettings(env *localEnv, cmd *cli.Command) (textSettings, error) {
	ts := textSettings{
		shaper: env.cfg.NewShaper(),
		ws:     env.cfg.SegmentOptions().Whitespace,
		brk:    env.cfg.WordBreak(),
		width:  cmd.Float("width"),
	}
	if name := cmd.String("charset"); name != "" {
		cs, err := richtext.ParseCharset(name)
		if err != nil {
			return ts, err
		}
		ts.shaper = richtext.NewShaper(cs)
	}
	if name := cmd.String("whitespace"); name != "" {
		ws, err := richtext.ParseWhitespace(name)
		if err != nil {
			return ts, err
		}
		ts.ws = ws
	}
	if name := cmd.String("break"); name != "" {
		brk, err := richtext.ParseWordBreak(name)
		if err != nil {
			return ts, err
		}
		ts.brk = brk
	}
	ts.rec, _ = env.cfg.NewParser(env.log).Parse(cmd.String("css"))
	return ts, nil
}

func (ts textSettings) typeset(env *localEnv, m richtext.Measurer, text string) (*layout.Paragraph, error) {
	engine := layout.NewTypesetter(ts.shaper, m, layout.Options{Segment: env.cfg.SegmentOptions(), Logger: env.log})
	return engine.Layout(text, ts.width, ts.rec, ts.ws, ts.brk)
}

// runShape 输出每一行的宽度与内容。
func runShape(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.NArg() == 0 {
		return errors.New("缺少文本")
	}
	ts, err := readTextSettings(env, cmd)
	if err != nil {
		return err
	}
	m, err := env.cfg.NewMeasurer(env.log)
	if err != nil {
		return err
	}
	p, err := ts.typeset(env, m, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}
	out := cmd.Root().Writer
	if cmd.Bool("json") {
		return writeJSON(out, p)
	}
	for _, line := range p.Lines {
		if _, err := fmt.Fprintf(out, "%8.2f\t%s\n", line.Width, line.Content); err != nil {
			return err
		}
	}
	return nil
}

// runSheet 加载样式表并输出一个 id 的记录。
func runSheet(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	path := cmd.Args().First()
	if path == "" {
		return errors.New("缺少样式表文件")
	}
	state, err := parseStateFlag(cmd.String("state"))
	if err != nil {
		return err
	}

	var opts []sheet.RegistryOption
	if raw := cmd.String("data"); raw != "" {
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
		opts = append(opts, sheet.WithData(data))
	}
	reg := sheet.NewRegistry(env.cfg.NewParser(env.log), env.log, opts...)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("无法读取样式表 %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".css") {
		err = reg.LoadCSS(path, data)
	} else {
		err = reg.LoadQSS(path, bytes.NewReader(data))
	}
	if err != nil {
		env.log.Warn("Problems in style sheet", zap.String("file", path), zap.Error(err))
	}

	id := cmd.String("id")
	rec, ok := reg.Get(id, state)
	if !ok {
		return fmt.Errorf("样式表中没有 id %q（已有：%s）", id, strings.Join(reg.Ids(), ", "))
	}
	return writeJSON(cmd.Root().Writer, rec)
}

// runPreview 使用字体度量排版，并把结果绘制为 PDF。
func runPreview(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.NArg() == 0 {
		return errors.New("缺少文本")
	}
	ts, err := readTextSettings(env, cmd)
	if err != nil {
		return err
	}
	fonts := measure.NewCanvas(env.log, measure.WithFallbackFamily(env.cfg.Measure.FontFamily))
	p, err := ts.typeset(env, fonts, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}
	if path := cmd.String("debug-json"); path != "" {
		if err := layout.WriteDebugJSON(p, path); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	pdfBytes, err := preview.NewRenderer(fonts, env.log).Render(p, ts.rec)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	outputPath := cmd.String("out")
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	env.log.Info("Preview written", zap.String("file", outputPath), zap.Int("lines", len(p.Lines)))
	return nil
}

// outputConfiguration 输出配置，DESTINATION 缺省时写到标准输出。
func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = config.Prepare()
	} else if data, err = env.cfg.Dump(); err != nil {
		return err
	}

	if dest := cmd.Args().First(); dest != "" {
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("写入配置失败: %w", err)
		}
		return nil
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}

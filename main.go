package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/config"
)

// initializeAppContext 在命令行解析之后、命令执行之前加载配置并准备日志。
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)

	cfg, err := config.LoadConfiguration(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	env.cfg = cfg
	if env.log, err = cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	env := envFromContext(ctx)
	env.log.Debug("Program ended", zap.Duration("elapsed", time.Since(env.start)))
	_ = env.log.Sync()
	return nil
}

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	envFromContext(ctx).log.Error("Program ended with error", zap.Error(err))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            config.AppName,
		Usage:           "样式声明解析与文本断行工具",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "从 `FILE` 加载配置（YAML）"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "输出调试日志"},
		},
		Commands: []*cli.Command{
			{
				Name:      "style",
				Usage:     "依次压入样式声明并输出最终记录（JSON）",
				ArgsUsage: "CSS...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "state", Value: "default", Usage: "查询的交互状态，例如 hover"},
					&cli.StringFlag{Name: "state-css", Usage: "--state 对应平面上的声明"},
				},
				Action: runStyle,
			},
			{
				Name:      "shape",
				Usage:     "按宽度断行并输出各行",
				ArgsUsage: "TEXT",
				Flags: append(textFlags(),
					&cli.BoolFlag{Name: "json", Usage: "以 JSON 输出排版结果"},
				),
				Action: runShape,
			},
			{
				Name:      "sheet",
				Usage:     "加载样式表（.qss 或 .css）并输出某个 id 在某个状态下的记录",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "元素 `ID`"},
					&cli.StringFlag{Name: "state", Value: "default", Usage: "交互状态"},
					&cli.StringFlag{Name: "data", Usage: "绑定到 ${path} 占位符的 JSON 数据"},
				},
				Action: runSheet,
			},
			{
				Name:      "preview",
				Usage:     "排版文本并输出单页 PDF 预览",
				ArgsUsage: "TEXT",
				Flags: append(textFlags(),
					&cli.StringFlag{Name: "out", Value: "preview.pdf", Usage: "PDF 输出路径"},
					&cli.StringFlag{Name: "debug-json", Usage: "排版调试 JSON 输出路径"},
				),
				Action: runPreview,
			},
			{
				Name:  "dumpconfig",
				Usage: "输出默认或实际生效的配置（YAML）",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "输出内置的默认配置"},
				},
				ArgsUsage: "DESTINATION",
				Action:    outputConfiguration,
			},
		},
	}
}

func textFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "width", Aliases: []string{"w"}, Usage: "可用宽度（px），<=0 表示不限"},
		&cli.StringFlag{Name: "css", Usage: "应用于文本的样式声明"},
		&cli.StringFlag{Name: "charset", Usage: "ascii 或 utf8，默认取配置"},
		&cli.StringFlag{Name: "whitespace", Usage: "空白处理方式，默认取配置"},
		&cli.StringFlag{Name: "break", Usage: "断词策略，默认取配置"},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByLCY/quill/style"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(contextWithEnv(context.Background()), append([]string{"quill"}, args...))
	return out.String(), err
}

func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quill.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  console:\n    level: none\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStyleCommand(t *testing.T) {
	out, err := run(t, "-c", quietConfig(t), "style", "--state", "hover", "--state-css", "color: blue",
		"font-size: 20px; color: red", "padding: 2px")
	if err != nil {
		t.Fatalf("style failed: %v", err)
	}
	var rec style.Record
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if rec.Font.Size != 20 || rec.Foreground != style.ExtractColor("blue", nil) || rec.Padding.Left != 2 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if _, err := run(t, "-c", quietConfig(t), "style", "--state", "sleepy", "color: red"); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestShapeCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cells.yaml")
	body := "measure:\n  kind: cells\nlogging:\n  console:\n    level: none\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	// cells 测量：16px 字号下每个字符宽 8
	out, err := run(t, "-c", cfg, "shape", "--width", "90", "hello world again")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[0], "hello world") || !strings.HasSuffix(lines[1], "again") {
		t.Fatalf("unexpected lines: %q", out)
	}

	out, err = run(t, "-c", cfg, "shape", "--json", "--whitespace", "preserve-breaks", "a\nb")
	if err != nil {
		t.Fatalf("shape --json failed: %v", err)
	}
	if !strings.Contains(out, `"content": "a"`) || !strings.Contains(out, `"content": "b"`) {
		t.Fatalf("unexpected JSON: %s", out)
	}

	if _, err := run(t, "-c", cfg, "shape", "--break", "sometimes", "x"); err == nil {
		t.Fatalf("expected error for unknown break mode")
	}
}

func TestSheetCommand(t *testing.T) {
	dir := t.TempDir()
	qss := filepath.Join(dir, "theme.qss")
	src := "button {\n  default: \"color: ${accent}; padding: 3px\"\n  hover: \"background: red\"\n}\n"
	if err := os.WriteFile(qss, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "-c", quietConfig(t), "sheet", "--id", "button", "--state", "hover", "--data", `{"accent": "white"}`, qss)
	if err != nil {
		t.Fatalf("sheet failed: %v", err)
	}
	var rec style.Record
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec.Foreground != style.White || rec.Background != style.ExtractColor("red", nil) || rec.Padding.Top != 3 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	css := filepath.Join(dir, "theme.css")
	if err := os.WriteFile(css, []byte("label { font-size: 30px }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "-c", quietConfig(t), "sheet", "--id", "button", css); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "preview.pdf")
	debug := filepath.Join(dir, "lines.json")
	if _, err := run(t, "-c", quietConfig(t), "preview", "--width", "120", "--css", "background: #eee; padding: 4px",
		"--out", out, "--debug-json", debug, "Hello preview"); err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("preview output is not a PDF: %v", err)
	}
	if _, err := os.Stat(debug); err != nil {
		t.Fatalf("debug JSON missing: %v", err)
	}
}

func TestDumpConfigCommand(t *testing.T) {
	out, err := run(t, "-c", quietConfig(t), "dumpconfig")
	if err != nil {
		t.Fatalf("dumpconfig failed: %v", err)
	}
	if !strings.Contains(out, "level: none") || !strings.Contains(out, "base_font_size: 16") {
		t.Fatalf("unexpected config dump: %s", out)
	}
	out, err = run(t, "-c", quietConfig(t), "dumpconfig", "--default")
	if err != nil {
		t.Fatalf("dumpconfig --default failed: %v", err)
	}
	if !strings.Contains(out, "level: normal") {
		t.Fatalf("default config expected: %s", out)
	}
}

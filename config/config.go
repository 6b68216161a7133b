// Package config loads program configuration: an embedded default document
// with an optional user file superimposed on top of it.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/ByLCY/quill/measure"
	"github.com/ByLCY/quill/richtext"
	"github.com/ByLCY/quill/style"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	StyleConfig struct {
		BaseFontSize float64           `yaml:"base_font_size" validate:"gt=0"`
		FontScaling  float64           `yaml:"font_scaling" validate:"gt=0"`
		Scaling      float64           `yaml:"scaling" validate:"gt=0"`
		Cache        bool              `yaml:"cache"`
		CacheTTL     time.Duration     `yaml:"cache_ttl" validate:"gte=0"`
		Inherit      []string          `yaml:"inherit" validate:"dive,required"`
		Colors       map[string]string `yaml:"colors" validate:"dive,keys,required,endkeys,required"`
	}

	TextConfig struct {
		Charset     string `yaml:"charset" validate:"oneof=ascii utf8 utf-8 symbol"`
		Whitespace  string `yaml:"whitespace" validate:"oneof=collapse preserve preserve-breaks preserve-spaces break-spaces"`
		WordBreak   string `yaml:"word_break" validate:"oneof=normal break-all keep-all auto-phrase break-word"`
		EscapeStart string `yaml:"escape_start" validate:"len=1"`
		EscapeEnd   string `yaml:"escape_end" validate:"len=1"`
	}

	MeasureConfig struct {
		Kind       string `yaml:"kind" validate:"oneof=canvas cells"`
		FontFamily string `yaml:"font_family"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Style   StyleConfig   `yaml:"style"`
		Text    TextConfig    `yaml:"text"`
		Measure MeasureConfig `yaml:"measure"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and performs
// validation. An empty path loads the defaults only.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the values only the domain
// packages can interpret.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, name := range c.Style.Inherit {
		if _, ok := style.ParseProperty(name); !ok {
			return fmt.Errorf("invalid configuration: unknown property %q in style.inherit", name)
		}
	}
	for name, value := range c.Style.Colors {
		if _, err := style.ParseColor(value, style.CSSColor); err != nil {
			return fmt.Errorf("invalid configuration: color %q: %w", name, err)
		}
	}
	return nil
}

// Prepare returns the default configuration document.
func Prepare() []byte {
	return bytes.Clone(defaultConfig)
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Metrics returns the sizes declarations are resolved against.
func (c *Config) Metrics() style.Metrics {
	return style.Metrics{
		BaseFontSize: c.Style.BaseFontSize,
		FontScaling:  c.Style.FontScaling,
		Scaling:      c.Style.Scaling,
	}
}

// NamedColors resolves the configured color names, then the CSS table.
func (c *Config) NamedColors() style.NamedColors {
	if len(c.Style.Colors) == 0 {
		return style.CSSColor
	}
	extra := make(map[string]style.Color, len(c.Style.Colors))
	for name, value := range c.Style.Colors {
		extra[strings.ToLower(name)] = style.ExtractColor(value, style.CSSColor)
	}
	return func(name string) (style.Color, bool) {
		if col, ok := extra[strings.ToLower(name)]; ok {
			return col, true
		}
		return style.CSSColor(name)
	}
}

// NewParser builds the declaration parser described by the configuration.
func (c *Config) NewParser(log *zap.Logger) *style.Parser {
	opts := []style.Option{style.WithMetrics(c.Metrics()), style.WithNamedColors(c.NamedColors())}
	if c.Style.Cache {
		opts = append(opts, style.WithCache(c.Style.CacheTTL))
	}
	return style.NewParser(log, opts...)
}

// InheritMask returns the configured implicit inheritance mask and whether
// one was configured at all.
func (c *Config) InheritMask() (style.Property, bool) {
	if len(c.Style.Inherit) == 0 {
		return style.PropNone, false
	}
	var mask style.Property
	for _, name := range c.Style.Inherit {
		p, _ := style.ParseProperty(name)
		mask |= p
	}
	return mask, true
}

// NewContext builds a style context on top of p.
func (c *Config) NewContext(p *style.Parser, log *zap.Logger) *style.Context {
	var opts []style.ContextOption
	if mask, ok := c.InheritMask(); ok {
		opts = append(opts, style.WithInheritMask(mask))
	}
	return style.NewContext(p, log, opts...)
}

// SegmentOptions returns the segmenter options of the text section.
func (c *Config) SegmentOptions() richtext.SegmentOptions {
	opts := richtext.DefaultSegmentOptions()
	opts.Whitespace, _ = richtext.ParseWhitespace(c.Text.Whitespace)
	opts.EscapeStart = c.Text.EscapeStart[0]
	opts.EscapeEnd = c.Text.EscapeEnd[0]
	return opts
}

// WordBreak returns the configured word break mode.
func (c *Config) WordBreak() richtext.WordBreak {
	brk, _ := richtext.ParseWordBreak(c.Text.WordBreak)
	return brk
}

// NewShaper builds the segmenter for the configured charset.
func (c *Config) NewShaper() *richtext.Shaper {
	cs, _ := richtext.ParseCharset(c.Text.Charset)
	return richtext.NewShaper(cs)
}

// NewMeasurer builds the configured measurement back end.
func (c *Config) NewMeasurer(log *zap.Logger) (richtext.Measurer, error) {
	return measure.New(c.Measure.Kind, c.Measure.FontFamily, log)
}

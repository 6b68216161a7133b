package style

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrUnknownProperty reports a declaration name missing from the
	// property table. The declaration is skipped.
	ErrUnknownProperty = errors.New("unknown style property")
	// ErrMalformedValue reports a value a recognized property could not use.
	// The field keeps its previous value.
	ErrMalformedValue = errors.New("malformed style value")
)

// Metrics are the sizes declarations are resolved against.
type Metrics struct {
	BaseFontSize float64 // default font size in px
	FontScaling  float64 // multiplier applied to font sizes
	Scaling      float64 // multiplier applied to px lengths
}

// DefaultMetrics matches a 16px base font without scaling.
var DefaultMetrics = Metrics{BaseFontSize: 16, FontScaling: 1, Scaling: 1}

// FontSize is the resolved default font size.
func (m Metrics) FontSize() float64 { return m.BaseFontSize * m.FontScaling }

// Parser turns declaration strings into records.
type Parser struct {
	log     *zap.Logger
	metrics Metrics
	named   NamedColors
	cache   *cache.Cache
}

// Option configures a Parser.
type Option func(*Parser)

// WithMetrics sets the sizes used to resolve relative values.
func WithMetrics(m Metrics) Option {
	return func(p *Parser) {
		if m.BaseFontSize > 0 {
			p.metrics.BaseFontSize = m.BaseFontSize
		}
		if m.FontScaling > 0 {
			p.metrics.FontScaling = m.FontScaling
		}
		if m.Scaling > 0 {
			p.metrics.Scaling = m.Scaling
		}
	}
}

// WithNamedColors replaces the built-in color name table.
func WithNamedColors(fn NamedColors) Option {
	return func(p *Parser) { p.named = fn }
}

// WithCache keeps parsed declaration strings for ttl. A zero ttl never
// expires entries.
func WithCache(ttl time.Duration) Option {
	return func(p *Parser) {
		if ttl <= 0 {
			p.cache = cache.New(cache.NoExpiration, 0)
			return
		}
		p.cache = cache.New(ttl, 2*ttl)
	}
}

// NewParser creates a declaration parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("style-parser"), metrics: DefaultMetrics}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Metrics returns the sizes the parser resolves against.
func (p *Parser) Metrics() Metrics { return p.metrics }

// NewRecord returns a default record sized for this parser.
func (p *Parser) NewRecord() Record { return NewRecord(p.metrics.FontSize()) }

type parsed struct {
	rec  Record
	prop Property
}

// Parse builds a fresh record from css and returns it with the mask of
// properties it set.
func (p *Parser) Parse(css string) (Record, Property) {
	if p.cache != nil {
		if v, ok := p.cache.Get(css); ok {
			hit := v.(parsed)
			return hit.rec, hit.prop
		}
	}
	rec := p.NewRecord()
	prop := p.Apply(&rec, css)
	if p.cache != nil {
		p.cache.Set(css, parsed{rec: rec, prop: prop}, cache.DefaultExpiration)
	}
	return rec, prop
}

// Apply parses css on top of rec. Problems are logged and the offending
// declaration is skipped.
func (p *Parser) Apply(rec *Record, css string) Property {
	return p.apply(rec, css, func(err error) {
		p.log.Warn("Skipping style declaration", zap.Error(err))
	})
}

// Validate parses css into a scratch record and returns every problem found,
// combined with multierr.
func (p *Parser) Validate(css string) error {
	var errs error
	rec := p.NewRecord()
	p.apply(&rec, css, func(err error) { errs = multierr.Append(errs, err) })
	return errs
}

func (p *Parser) apply(rec *Record, css string, report func(error)) Property {
	var prop Property
	for _, d := range splitDeclarations(css) {
		handler, ok := properties[fold(d.name)]
		if !ok {
			report(fmt.Errorf("%w: %q", ErrUnknownProperty, d.name))
			continue
		}
		set, err := handler(p, rec, d.value)
		if err != nil {
			report(fmt.Errorf("%s: %w", d.name, err))
		}
		prop |= set
	}
	rec.Specified |= prop
	rec.Inherited &^= prop
	p.log.Debug("Parsed declarations", zap.String("css", css), zap.Int64("properties", int64(prop)))
	return prop
}

type declaration struct {
	name, value string
}

// splitDeclarations tokenizes "name: value; name: 'quoted value';".
func splitDeclarations(css string) []declaration {
	var out []declaration
	idx := 0
	for idx < len(css) {
		idx = skipSpace(css, idx)
		start := idx
		for idx < len(css) && css[idx] != ':' && css[idx] != ';' && !isSpace(css[idx]) {
			idx++
		}
		name := css[start:idx]

		idx = skipSpace(css, idx)
		if idx < len(css) && css[idx] == ':' {
			idx++
		}
		idx = skipSpace(css, idx)

		value, ok := quotedString(css, &idx)
		if !ok || value == "" {
			start = idx
			for idx < len(css) && css[idx] != ';' {
				idx++
			}
			value = trimRightSpace(css[start:idx])
		}
		idx = skipSpace(css, idx)
		if idx < len(css) && css[idx] == ';' {
			idx++
		}
		if name != "" {
			out = append(out, declaration{name: name, value: value})
		}
	}
	return out
}

// quotedString reads a '...' or "..." value at *idx. A backslash before the
// matching quote toggles an embedded quoted section.
func quotedString(s string, idx *int) (string, bool) {
	begin := *idx
	if begin >= len(s) || (s[begin] != '\'' && s[begin] != '"') {
		return "", false
	}
	quote := s[begin]
	inside := false
	i := begin + 1
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == quote {
			inside = !inside
			i++
		} else if !inside && s[i] == quote {
			break
		}
		i++
	}
	if i >= len(s) {
		return "", false
	}
	*idx = i + 1
	return s[begin+1 : i], true
}

func trimRightSpace(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

// Package sheet keeps named style sheets: one declaration string per
// interaction state for every element id.
package sheet

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/binding"
	"github.com/ByLCY/quill/style"
)

// Registry maps element ids to per-state declarations. It is safe for
// concurrent use.
type Registry struct {
	log    *zap.Logger
	parser *style.Parser
	data   any

	mu      sync.RWMutex
	entries map[string]*style.Declarations
	order   []string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithData sets the values ${path} placeholders resolve against.
func WithData(data any) RegistryOption {
	return func(r *Registry) { r.data = data }
}

// NewRegistry creates an empty registry that parses with p.
func NewRegistry(p *style.Parser, log *zap.Logger, opts ...RegistryOption) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	if p == nil {
		p = style.NewParser(log)
	}
	r := &Registry{
		log:     log.Named("style-sheet"),
		parser:  p,
		entries: map[string]*style.Declarations{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set stores the declarations of id, replacing those of the states present
// in decls. Placeholders are resolved first. Problems found in the
// declarations are returned but do not prevent storing them.
func (r *Registry) Set(id string, decls map[style.State]string) error {
	if id == "" {
		return fmt.Errorf("style sheet id is empty")
	}
	var errs error
	resolved := make(map[style.State]string, len(decls))
	for s, css := range decls {
		css = binding.Interpolate(css, r.data)
		for _, path := range binding.Unresolved(css, r.data) {
			errs = multierr.Append(errs, fmt.Errorf("%s:%s: unresolved placeholder %q", id, s, path))
		}
		if err := r.parser.Validate(css); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s:%s: %w", id, s, err))
		}
		resolved[s] = css
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		entry = &style.Declarations{}
		r.entries[id] = entry
		r.order = append(r.order, id)
	}
	for s, css := range resolved {
		entry.Set(s, css)
	}
	r.log.Debug("Stored style sheet", zap.String("id", id), zap.Int("states", len(resolved)))
	return errs
}

// Get resolves the record of id in state s. A non-default state is parsed
// on its own and completed from the id's default record. When s combines
// several states the highest one with declarations wins.
func (r *Registry) Get(id string, s style.State) (style.Record, bool) {
	decls, ok := r.Declarations(id)
	if !ok {
		return r.parser.NewRecord(), false
	}
	def, _ := r.parser.Parse(decls[0])
	for plane := style.NumPlanes - 1; plane > 0; plane-- {
		if s&(1<<plane) == 0 || decls[plane] == "" {
			continue
		}
		rec, _ := r.parser.Parse(decls[plane])
		style.CopyStyle(&def, &rec)
		return rec, true
	}
	return def, true
}

// Declarations returns a copy of the declarations of id, ready for
// style.Context.Push.
func (r *Registry) Declarations(id string) (style.Declarations, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return style.Declarations{}, false
	}
	return *entry, true
}

// Ids lists the registered ids in insertion order.
func (r *Registry) Ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

package style

import (
	"math/bits"
	"strings"

	"go.uber.org/zap"
)

// State is an interaction state bit. A runtime state combines several bits.
type State int32

const (
	StateDefault          State = 0
	StateFocused          State = 1 << 1
	StateHovered          State = 1 << 2
	StatePressed          State = 1 << 3
	StateChecked          State = 1 << 4
	StatePartiallyChecked State = 1 << 5
	StateSelected         State = 1 << 6
	StateDragged          State = 1 << 7
	StateDisabled         State = 1 << 8
)

// NumPlanes is the number of state planes, Default included.
const NumPlanes = 9

var stateNames = [NumPlanes]string{
	"default", "focused", "hovered", "pressed", "checked",
	"partially-checked", "selected", "dragged", "disabled",
}

var stateAliases = map[string]State{
	"hover":         StateHovered,
	"focus":         StateFocused,
	"active":        StatePressed,
	"indeterminate": StatePartiallyChecked,
	"drag":          StateDragged,
}

// Plane returns the plane index of the highest bit of s. StateDefault maps
// to plane 0.
func (s State) Plane() int {
	if s <= 0 {
		return 0
	}
	return bits.Len32(uint32(s)) - 1
}

func (s State) String() string {
	var names []string
	for i := NumPlanes - 1; i > 0; i-- {
		if s&(1<<i) != 0 {
			names = append(names, stateNames[i])
		}
	}
	if len(names) == 0 {
		return stateNames[0]
	}
	return strings.Join(names, "|")
}

// ParseState resolves a state name such as "hovered" or "hover".
func ParseState(name string) (State, bool) {
	n := fold(strings.TrimSpace(name))
	for i, s := range stateNames {
		if s == n {
			if i == 0 {
				return StateDefault, true
			}
			return State(1 << i), true
		}
	}
	s, ok := stateAliases[n]
	return s, ok
}

// PlaneMask has bit i set for every plane i touched by a push.
type PlaneMask uint32

// Mask returns the plane mask of a single state.
func (s State) Mask() PlaneMask { return 1 << s.Plane() }

// Declarations holds one declaration string per plane. Empty strings are
// skipped by Push.
type Declarations [NumPlanes]string

// Set stores css for the plane of state s.
func (d *Declarations) Set(s State, css string) *Declarations {
	d[s.Plane()] = css
	return d
}

// Context is the style stack set of one UI session. It is not safe for
// concurrent use.
type Context struct {
	log     *zap.Logger
	parser  *Parser
	planes  [NumPlanes][]Record
	outer   *Record
	inherit *Property
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithOuterDefault supplies the record the Default plane starts from.
func WithOuterDefault(rec Record) ContextOption {
	return func(c *Context) { c.outer = &rec }
}

// WithInheritMask limits what a Default push carries over from the entry
// beneath it. Properties outside keep are reset to their defaults.
func WithInheritMask(keep Property) ContextOption {
	return func(c *Context) { c.inherit = &keep }
}

// NewContext creates an empty stack set parsing with p.
func NewContext(p *Parser, log *zap.Logger, opts ...ContextOption) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	if p == nil {
		p = NewParser(log)
	}
	c := &Context{log: log.Named("style-context"), parser: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parser returns the declaration parser of the context.
func (c *Context) Parser() *Parser { return c.parser }

func (c *Context) base() Record {
	if c.outer != nil {
		return *c.outer
	}
	return c.parser.NewRecord()
}

// Push parses every non-empty declaration string onto its plane and returns
// the planes that grew.
func (c *Context) Push(decls Declarations) PlaneMask {
	var mask PlaneMask
	for i, css := range decls {
		if css == "" {
			continue
		}
		if i == 0 {
			c.pushDefault(css)
		} else {
			c.pushState(i, css)
		}
		mask |= 1 << i
	}
	return mask
}

// PushState pushes css onto the plane of a single state.
func (c *Context) PushState(s State, css string) PlaneMask {
	var d Declarations
	d.Set(s, css)
	return c.Push(d)
}

func (c *Context) pushDefault(css string) {
	if len(c.planes[0]) == 0 {
		c.planes[0] = append(c.planes[0], c.base())
	}
	top := c.planes[0][len(c.planes[0])-1]
	top.Inherited |= top.Specified
	top.Inherited &^= PropUpdatedFromBase
	top.Specified = 0
	if c.inherit != nil {
		ResetNonInheritable(&top, *c.inherit, c.parser.Metrics().FontSize())
	}

	// the entry beneath is already painted
	top.Background = Transparent
	top.Gradient = Gradient{}
	top.Inherited &^= PropBackground

	c.parser.Apply(&top, css)
	c.planes[0] = append(c.planes[0], top)
}

func (c *Context) pushState(plane int, css string) {
	if len(c.planes[plane]) == 0 {
		c.planes[plane] = append(c.planes[plane], c.parser.NewRecord())
	}
	rec, _ := c.parser.Parse(css)
	c.planes[plane] = append(c.planes[plane], rec)
}

// Pop removes up to depth entries from every plane in mask. The base entry
// of a plane is never removed.
func (c *Context) Pop(depth int, mask PlaneMask) {
	for i := range c.planes {
		if mask&(1<<i) == 0 {
			continue
		}
		n := len(c.planes[i])
		count := min(depth, n-1)
		if count < depth {
			c.log.Debug("Pop depth clamped", zap.Int("plane", i), zap.Int("requested", depth), zap.Int("popped", max(count, 0)))
		}
		if count <= 0 {
			continue
		}
		clear(c.planes[i][n-count:])
		c.planes[i] = c.planes[i][:n-count]
	}
}

// Depth returns the number of entries on the plane of s, base included.
func (c *Context) Depth(s State) int { return len(c.planes[s.Plane()]) }

// activePlane returns the highest plane set in s that holds overrides.
func (c *Context) activePlane(s State) int {
	for i := NumPlanes - 1; i > 0; i-- {
		if s&(1<<i) != 0 && len(c.planes[i]) > 1 {
			return i
		}
	}
	return 0
}

// GetStyle returns the record for a combined state. Properties the winning
// plane left unspecified come from the Default plane.
func (c *Context) GetStyle(s State) Record {
	def := c.base()
	if n := len(c.planes[0]); n > 0 {
		def = c.planes[0][n-1]
	}
	plane := c.activePlane(s)
	if plane == 0 {
		return def
	}
	planeStack := c.planes[plane]
	res := planeStack[len(planeStack)-1]
	CopyStyle(&def, &res)
	return res
}

// Scope pops what its push created. Pop may be called more than once.
type Scope struct {
	ctx  *Context
	mask PlaneMask
	done bool
}

// Enter pushes decls and returns a scope to pop them, usually deferred.
func (c *Context) Enter(decls Declarations) *Scope {
	return &Scope{ctx: c, mask: c.Push(decls)}
}

// Planes returns the planes the scope pushed to.
func (s *Scope) Planes() PlaneMask { return s.mask }

// Pop undoes the push of the scope.
func (s *Scope) Pop() {
	if s == nil || s.done {
		return
	}
	s.done = true
	s.ctx.Pop(1, s.mask)
}

package sheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/multierr"

	"github.com/ByLCY/quill/style"
)

var (
	qssLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"|` + "`[^`]*`"},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:;,]`},
	})

	qssParser = participle.MustBuild[Document](
		participle.Lexer(qssLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a native style sheet file.
//
//	button {
//	  default: "color: white; background: ${theme.accent};"
//	  hover, focus: "background: rgb(10, 10, 10);"
//	}
type Document struct {
	Rules []*Rule `parser:"@@*"`
}

// Rule groups the declarations of one element id.
type Rule struct {
	Pos     lexer.Position `parser:"" json:"-"`
	ID      string         `parser:"@Ident '{'"`
	Entries []*Entry       `parser:"( @@ ';'? )* '}'"`
}

// Entry assigns one declaration string to one or more states.
type Entry struct {
	Pos    lexer.Position `parser:"" json:"-"`
	States []string       `parser:"@Ident ( ',' @Ident )* ':'"`
	CSS    StringLiteral  `parser:"@String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a native style sheet. name is used in error positions.
func Parse(name string, r io.Reader) (*Document, error) {
	return qssParser.Parse(name, r)
}

// ParseString parses a native style sheet from a string.
func ParseString(name, input string) (*Document, error) {
	return qssParser.ParseString(name, input)
}

// Declarations groups the entries of every rule by id and state. Entries
// repeated for the same id and state are concatenated in file order.
func (d *Document) Declarations() (map[string]map[style.State]string, []string, error) {
	var errs error
	out := map[string]map[style.State]string{}
	var order []string
	for _, rule := range d.Rules {
		decls, ok := out[rule.ID]
		if !ok {
			decls = map[style.State]string{}
			out[rule.ID] = decls
			order = append(order, rule.ID)
		}
		for _, entry := range rule.Entries {
			for _, name := range entry.States {
				s, ok := style.ParseState(name)
				if !ok {
					errs = multierr.Append(errs, fmt.Errorf("%s: unknown state %q", entry.Pos, name))
					continue
				}
				decls[s] = joinDeclarations(decls[s], string(entry.CSS))
			}
		}
	}
	return out, order, errs
}

func joinDeclarations(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + ";" + b
}

// LoadQSS parses a native style sheet and stores every rule in r.
func (r *Registry) LoadQSS(name string, src io.Reader) error {
	doc, err := Parse(name, src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return r.load(doc.Declarations())
}

func (r *Registry) load(decls map[string]map[style.State]string, order []string, errs error) error {
	for _, id := range order {
		errs = multierr.Append(errs, r.Set(id, decls[id]))
	}
	return errs
}

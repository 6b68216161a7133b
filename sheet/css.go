package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/ByLCY/quill/style"
)

// LoadCSS imports a plain CSS file. Only `id` and `id:state` selectors are
// understood; rules with other selectors and at-rules are skipped.
func (r *Registry) LoadCSS(name string, data []byte) error {
	decls, order, err := r.parseCSS(name, data)
	if err != nil {
		return err
	}
	return r.load(decls, order, nil)
}

func (r *Registry) parseCSS(name string, data []byte) (map[string]map[style.State]string, []string, error) {
	r.log.Debug("Parsing CSS", zap.String("source", name), zap.Int("bytes", len(data)))

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	out := map[string]map[style.State]string{}
	var order []string

	for {
		gt, _, raw := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, nil, fmt.Errorf("parse %s: %w", name, err)
			}
			return out, order, nil

		case css.BeginAtRuleGrammar:
			r.log.Debug("Skipping @-rule", zap.String("rule", string(raw)))
			skipBlock(parser)

		case css.AtRuleGrammar:
			r.log.Debug("Skipping @-rule", zap.String("rule", string(raw)))

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(raw, parser.Values())
			body := readDeclarations(parser)
			for _, sel := range selectors {
				id, state, ok := parseSelector(sel)
				if !ok {
					r.log.Debug("Skipping selector", zap.String("selector", sel))
					continue
				}
				decls, seen := out[id]
				if !seen {
					decls = map[style.State]string{}
					out[id] = decls
					order = append(order, id)
				}
				decls[state] = joinDeclarations(decls[state], body)
			}
		}
	}
}

// skipBlock consumes grammar items up to the end of the current block.
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// readDeclarations renders the declarations of a ruleset back into a
// "name: value;" string for the style parser.
func readDeclarations(parser *css.Parser) string {
	var sb strings.Builder
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return sb.String()
		case css.DeclarationGrammar:
			value := joinTokens(parser.Values())
			if value == "" {
				continue
			}
			sb.WriteString(strings.ToLower(string(data)))
			sb.WriteString(": ")
			sb.WriteString(value)
			sb.WriteString(";")
		}
	}
}

// joinTokens builds the raw value text, collapsing whitespace and dropping
// a trailing !important.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(parts, ""))
	if i := strings.LastIndex(raw, "!"); i >= 0 && strings.EqualFold(strings.TrimSpace(raw[i+1:]), "important") {
		raw = strings.TrimSpace(raw[:i])
	}
	return raw
}

func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseSelector accepts "id" and "id:state".
func parseSelector(sel string) (string, style.State, bool) {
	id, stateName, hasState := strings.Cut(sel, ":")
	if !isIdent(id) {
		return "", 0, false
	}
	if !hasState {
		return id, style.StateDefault, true
	}
	state, ok := style.ParseState(stateName)
	if !ok || !isIdent(stateName) {
		return "", 0, false
	}
	return id, state, true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c == '-' || c >= '0' && c <= '9'):
		default:
			return false
		}
	}
	return true
}

// Package selparse is Casper's stand-in for the external parser
// collaborator's selector-group entry point (spec §6.1). The evaluator
// only needs this hook for one job: turning the serialized text of an
// evaluated selector_schema back into a selector tree. It is grounded
// on the teacher's hand-written recursive-descent shape
// (pkg/expr/lexer.go + pkg/expr/parser.go: a small scanner feeding a
// small grammar, no parser-generator) adapted to CSS selector syntax —
// comma-separated groups of whitespace-separated compound selectors,
// with "&" recognized as a parent back-reference wherever it appears in
// a compound.
package selparse

import (
	"strings"

	"github.com/caspercss/casper/pkg/node"
)

// Parser implements eval.Reparser. It needs a non-nil Factory; use
// NewCachingParser for the LRU-cached variant exposed to the evaluator.
type Parser struct {
	Factory *node.Factory
}

// NewParser creates a bare, uncached selector parser.
func NewParser(f *node.Factory) *Parser {
	return &Parser{Factory: f}
}

// ParseSelectorGroup implements eval.Reparser (spec §6.1). source is the
// null-terminator-free assembly the evaluator built from a
// selector_schema's evaluated children, terminated by " {" — the lbrace
// sentinel the lexer would otherwise use to end a selector, which this
// parser strips before lexing.
func (p *Parser) ParseSelectorGroup(source, path string, line int) (*node.Node, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(source), "{"))
	groups := splitTopLevel(trimmed, ',')
	selectors := make([]*node.Node, 0, len(groups))
	for _, g := range groups {
		sel := p.parseSelector(strings.TrimSpace(g), path, line)
		if sel != nil {
			selectors = append(selectors, sel)
		}
	}
	if len(selectors) == 1 {
		return selectors[0], nil
	}
	group := p.Factory.New(path, line, node.SelectorGroup)
	group.Append(selectors...)
	return group, nil
}

func (p *Parser) parseSelector(s string, path string, line int) *node.Node {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return p.Factory.New(path, line, node.SimpleSelectorSequence)
	}
	sequences := make([]*node.Node, len(fields))
	for i, f := range fields {
		sequences[i] = p.parseCompound(f, path, line)
	}
	if len(sequences) == 1 {
		return sequences[0]
	}
	sel := p.Factory.New(path, line, node.Selector)
	sel.Append(sequences...)
	return sel
}

// parseCompound splits a single compound selector (e.g. "&:hover",
// ".a&.b") into a simple_selector_sequence whose children alternate
// between backref nodes and raw-text leaves, so expand_backref (spec
// §4.4.1) can substitute the outer selector in place without disturbing
// surrounding text.
func (p *Parser) parseCompound(s string, path string, line int) *node.Node {
	seq := p.Factory.New(path, line, node.SimpleSelectorSequence)
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			seq.Append(p.Factory.NewString(path, line, node.NewToken(buf.String())))
			buf.Reset()
		}
	}
	for _, r := range s {
		if r == '&' {
			flush()
			seq.Append(p.Factory.New(path, line, node.Backref))
			continue
		}
		buf.WriteRune(r)
	}
	flush()
	if len(seq.Children) == 0 {
		seq.Append(p.Factory.NewString(path, line, node.NewToken("")))
	}
	return seq
}

// splitTopLevel splits s on sep, ignoring occurrences inside [] or ()
// (attribute selectors, :nth-child(...) arguments).
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

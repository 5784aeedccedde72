// Package fixture decodes the node-tree fixture format Casper's tests
// and CLI use in place of the out-of-scope external parser (spec §1):
// a YAML document whose shape mirrors node.Node directly. It is
// grounded on the teacher's pkg/parser (a hand-written YAML-to-AST
// walk with a dedicated ParseError type and a source-size ceiling)
// adapted from workflow-step YAML to node-tree YAML.
package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/caspercss/casper/pkg/node"
)

// MaxSourceSize bounds a fixture document the way the teacher's parser
// bounds a workflow source file.
const MaxSourceSize = 256 * 1024

// ParseError reports a fixture document that cannot be decoded into a
// node tree, naming the offending path when known.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("fixture parse error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("fixture parse error: %s", e.Message)
}

// rawNode is the YAML shape of one fixture node. Only the fields that
// apply to a node's variant need be present; extras are ignored.
type rawNode struct {
	Variant    string    `yaml:"variant"`
	Line       int       `yaml:"line"`
	Token      *string   `yaml:"token"`
	Number     *float64  `yaml:"number"`
	Bool       *bool     `yaml:"bool"`
	Unit       string    `yaml:"unit"`
	ShouldEval bool      `yaml:"should_eval"`
	Children   []rawNode `yaml:"children"`
}

// Decode parses source as a fixture document rooted at a single node
// and builds the corresponding node.Node tree using f. path is recorded
// on every constructed node and reported in decode errors.
func Decode(source []byte, path string, f *node.Factory) (*node.Node, error) {
	if len(source) > MaxSourceSize {
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("fixture size %d exceeds maximum %d bytes", len(source), MaxSourceSize)}
	}
	var raw rawNode
	if err := yaml.Unmarshal(source, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	return build(&raw, path, f)
}

// DecodeGroup parses source as a sequence of top-level fixture nodes,
// wrapping them in a root node — the shape tests most often want
// (several rulesets/mixins/assignments evaluated together).
func DecodeGroup(source []byte, path string, f *node.Factory) (*node.Node, error) {
	if len(source) > MaxSourceSize {
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("fixture size %d exceeds maximum %d bytes", len(source), MaxSourceSize)}
	}
	var raws []rawNode
	if err := yaml.Unmarshal(source, &raws); err != nil {
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	root := f.New(path, 0, node.Root)
	for i := range raws {
		child, err := build(&raws[i], path, f)
		if err != nil {
			return nil, err
		}
		root.Append(child)
	}
	return root, nil
}

func build(raw *rawNode, path string, f *node.Factory) (*node.Node, error) {
	variant, ok := node.ParseVariant(raw.Variant)
	if !ok {
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("unknown variant %q", raw.Variant)}
	}

	n := f.New(path, raw.Line, variant)
	n.Unit = raw.Unit
	n.ShouldEval = raw.ShouldEval
	if raw.Token != nil {
		tok := node.NewToken(*raw.Token)
		n.Token = &tok
	}
	if raw.Number != nil {
		n.NumberValue = *raw.Number
	}
	if raw.Bool != nil {
		n.BoolValue = *raw.Bool
	}

	for i := range raw.Children {
		child, err := build(&raw.Children[i], path, f)
		if err != nil {
			return nil, err
		}
		n.Append(child)
	}
	return n, nil
}

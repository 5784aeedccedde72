// Package node defines the polymorphic tree value that the evaluator
// rewrites in place, along with its source-text tokens and the arena
// that allocates and clones them.
package node

// Variant tags a Node with the kind of tree element it represents. The
// set is closed: the evaluator's dispatch switches over it exhaustively
// and falls through to a default case for anything it does not know.
type Variant int

const (
	// Structural
	Root Variant = iota
	Block
	Ruleset
	Propset
	Rule
	CSSImport

	// Selectors
	SelectorGroup
	Selector
	SimpleSelectorSequence
	SelectorSchema
	Backref

	// Bindings
	Assignment
	VariableRef
	Mixin
	Expansion
	FunctionCall

	// Expressions
	Expression
	Term
	Disjunction
	Conjunction
	Relation
	UnaryPlus
	UnaryMinus

	// Literals (post-lex, textual)
	TextualNumber
	TextualPercentage
	TextualDimension
	TextualHex

	// Literals (post-eval, reduced)
	Number
	NumericPercentage
	NumericDimension
	NumericColor
	Boolean
	StringConstant

	// Composite literals
	CommaList
	SpaceList
	ValueSchema
	StringSchema

	// Operators
	Add
	Sub
	Mul
	Div
	Eq
	Neq
	Gt
	Gte
	Lt
	Lte

	// Sentinel
	None
)

var variantNames = map[Variant]string{
	Root:                   "root",
	Block:                  "block",
	Ruleset:                "ruleset",
	Propset:                "propset",
	Rule:                   "rule",
	CSSImport:              "css_import",
	SelectorGroup:          "selector_group",
	Selector:               "selector",
	SimpleSelectorSequence: "simple_selector_sequence",
	SelectorSchema:         "selector_schema",
	Backref:                "backref",
	Assignment:             "assignment",
	VariableRef:            "variable",
	Mixin:                  "mixin",
	Expansion:              "expansion",
	FunctionCall:           "function_call",
	Expression:             "expression",
	Term:                   "term",
	Disjunction:            "disjunction",
	Conjunction:            "conjunction",
	Relation:               "relation",
	UnaryPlus:              "unary_plus",
	UnaryMinus:             "unary_minus",
	TextualNumber:          "textual_number",
	TextualPercentage:      "textual_percentage",
	TextualDimension:       "textual_dimension",
	TextualHex:             "textual_hex",
	Number:                 "number",
	NumericPercentage:      "numeric_percentage",
	NumericDimension:       "numeric_dimension",
	NumericColor:           "numeric_color",
	Boolean:                "boolean",
	StringConstant:         "string_constant",
	CommaList:              "comma_list",
	SpaceList:              "space_list",
	ValueSchema:            "value_schema",
	StringSchema:           "string_schema",
	Add:                    "add",
	Sub:                    "sub",
	Mul:                    "mul",
	Div:                    "div",
	Eq:                     "eq",
	Neq:                    "neq",
	Gt:                     "gt",
	Gte:                    "gte",
	Lt:                     "lt",
	Lte:                    "lte",
	None:                   "none",
}

// String returns the variant's canonical lowercase tag, used in fixture
// files and in debug output.
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return "unknown"
}

var variantsByName map[string]Variant

func init() {
	variantsByName = make(map[string]Variant, len(variantNames))
	for v, s := range variantNames {
		variantsByName[s] = v
	}
}

// ParseVariant resolves a canonical tag back to its Variant, for fixture
// decoding. Reports ok=false for an unrecognized tag.
func ParseVariant(s string) (Variant, bool) {
	v, ok := variantsByName[s]
	return v, ok
}

// IsNumeric reports whether v is a single-valued reduced numeric variant
// that the unary operators and the arithmetic engine's scalar path treat
// as a number. numeric_color is deliberately excluded: it has no single
// numeric_value and is combined channel-wise instead (spec §4.3).
func (v Variant) IsNumeric() bool {
	switch v {
	case Number, NumericPercentage, NumericDimension:
		return true
	default:
		return false
	}
}

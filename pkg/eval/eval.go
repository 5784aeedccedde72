// Package eval implements the evaluator core: the recursive dispatch
// over node variants (spec §4.1), the arithmetic engine (§4.3), the
// selector expander (§4.4), and the mixin/function applicator (§4.5).
// It is modeled on the teacher's pkg/expr.Evaluate dispatch shape
// (switch on node kind, one function per case) but walks Casper's
// single polymorphic node.Node tree instead of a typed expression AST,
// because spec §3.1 specifies exactly one tree type shared by selectors,
// bindings, and expressions alike.
package eval

import (
	"strconv"
	"strings"

	"github.com/caspercss/casper/pkg/env"
	"github.com/caspercss/casper/pkg/evalerr"
	"github.com/caspercss/casper/pkg/function"
	"github.com/caspercss/casper/pkg/node"
)

// Reparser is the parser collaborator's reparse hook (spec §6.1),
// invoked on selector_schema nodes once their interpolated children
// have been evaluated and serialized.
type Reparser interface {
	ParseSelectorGroup(source, path string, line int) (*node.Node, error)
}

// Context bundles the collaborators eval needs beyond the node tree and
// environment: the node factory (spec §3.4), the built-in function
// registry (spec §3.5, §6.3), and the parser reparse hook (spec §6.1).
type Context struct {
	Factory   *node.Factory
	Functions *function.Registry
	Reparser  Reparser
}

// Eval rewrites expr in place and returns the (possibly new) node that
// replaces it in the tree, per the variant dispatch in spec §4.1.
func Eval(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	switch expr.Variant {
	case node.Mixin:
		return evalMixinDecl(expr, e)
	case node.Expansion:
		return evalExpansion(expr, outer, e, ctx)
	case node.Propset:
		return evalPropset(expr, outer, e, ctx)
	case node.Ruleset:
		return evalRuleset(expr, outer, e, ctx)
	case node.SelectorSchema:
		return evalSelectorSchema(expr, outer, e, ctx)
	case node.Root:
		return evalSeqInPlace(expr, outer, e, ctx)
	case node.Block:
		return evalBlock(expr, outer, e, ctx)
	case node.Assignment:
		return evalAssignment(expr, outer, e, ctx)
	case node.Rule:
		return evalRule(expr, outer, e, ctx)
	case node.CommaList, node.SpaceList:
		return evalList(expr, outer, e, ctx)
	case node.Disjunction:
		return evalDisjunction(expr, outer, e, ctx)
	case node.Conjunction:
		return evalConjunction(expr, outer, e, ctx)
	case node.Relation:
		return evalRelation(expr, outer, e, ctx)
	case node.Expression, node.Term:
		return evalExpressionLike(expr, outer, e, ctx)
	case node.TextualNumber:
		return evalTextualNumber(expr, ctx)
	case node.TextualPercentage:
		return evalTextualPercentage(expr, ctx)
	case node.TextualDimension:
		return evalTextualDimension(expr, ctx)
	case node.TextualHex:
		return evalTextualHex(expr, ctx)
	case node.VariableRef:
		return evalVariable(expr, e)
	case node.FunctionCall:
		return evalFunctionCall(expr, outer, e, ctx)
	case node.UnaryPlus:
		return evalUnaryPlus(expr, outer, e, ctx)
	case node.UnaryMinus:
		return evalUnaryMinus(expr, outer, e, ctx)
	case node.ValueSchema, node.StringSchema:
		return evalSchema(expr, outer, e, ctx)
	case node.CSSImport:
		return evalCSSImport(expr, outer, e, ctx)
	default:
		return expr, nil
	}
}

func evalMixinDecl(expr *node.Node, e *env.Environment) (*node.Node, error) {
	e.Write(expr.Children[0].Token.Text, expr)
	return expr, nil
}

func evalExpansion(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	name := expr.Children[0].Token.Text
	args := expr.Children[1]
	if !e.Query(name) {
		return nil, evalerr.New(evalerr.KindUndefinedMixin, expr.Path, expr.Line,
			"mixin "+name+" is undefined")
	}
	mixin, _ := e.Read(name)
	body, err := ApplyMixin(mixin, args, outer, e, ctx)
	if err != nil {
		return nil, err
	}
	expr.PopBack()
	expr.PopBack()
	expr.SetChildren(append(expr.Children, body.Children...))
	return expr, nil
}

func evalPropset(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	if _, err := Eval(expr.Children[1], outer, e, ctx); err != nil {
		return nil, err
	}
	return expr, nil
}

func evalRuleset(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	if expr.Children[0].Variant == node.SelectorSchema {
		reparsed, err := Eval(expr.Children[0], outer, e, ctx)
		if err != nil {
			return nil, err
		}
		expr.Children[0] = reparsed
	}
	expanded, err := ExpandSelector(expr.Children[0], outer, ctx.Factory)
	if err != nil {
		return nil, err
	}
	expr.Append(expanded)
	if _, err := Eval(expr.Children[1], expr.Back(), e, ctx); err != nil {
		return nil, err
	}
	return expr, nil
}

func evalSelectorSchema(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	var buf strings.Builder
	for i, child := range expr.Children {
		evaluated, err := Eval(child, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		expr.Children[i] = evaluated
		if evaluated.Variant == node.StringConstant {
			buf.WriteString(evaluated.Token.Unquote().Text)
		} else {
			buf.WriteString(evaluated.String())
		}
	}
	buf.WriteString(" {")
	sel, err := ctx.Reparser.ParseSelectorGroup(buf.String(), expr.Path, expr.Line)
	if err != nil {
		return nil, err
	}
	sel.Line = expr.Line
	return sel, nil
}

func evalSeqInPlace(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	for i, child := range expr.Children {
		evaluated, err := Eval(child, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		expr.Children[i] = evaluated
	}
	return expr, nil
}

func evalBlock(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	frame := e.Link()
	for _, child := range expr.Children {
		if _, err := Eval(child, outer, frame, ctx); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func evalAssignment(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	val := expr.Children[1]
	var evaluated *node.Node
	var err error
	if val.Variant == node.CommaList || val.Variant == node.SpaceList {
		evaluated, err = evalListElementwise(val, outer, e, ctx)
	} else {
		evaluated, err = Eval(val, outer, e, ctx)
	}
	if err != nil {
		return nil, err
	}
	expr.Children[1] = evaluated
	name := expr.Children[0].Token.Text
	e.Write(name, evaluated)
	return expr, nil
}

func evalRule(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	rhs := expr.Children[1]
	switch {
	case rhs.Variant == node.CommaList || rhs.Variant == node.SpaceList:
		evaluated, err := evalListElementwise(rhs, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		expr.Children[1] = evaluated
	case rhs.Variant == node.ValueSchema || rhs.Variant == node.StringSchema:
		if _, err := Eval(rhs, outer, e, ctx); err != nil {
			return nil, err
		}
	default:
		if rhs.ShouldEval {
			evaluated, err := Eval(rhs, outer, e, ctx)
			if err != nil {
				return nil, err
			}
			expr.Children[1] = evaluated
		}
	}
	return expr, nil
}

// evalListElementwise evaluates each should_eval element of a
// comma_list/space_list in place, used only from assignment and rule
// (spec §9, "strict vs lazy evaluation of lists"): the list node's own
// eval case ("comma_list"/"space_list") only ever looks at child 0.
func evalListElementwise(val *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	for i, elem := range val.Children {
		if !elem.ShouldEval {
			continue
		}
		evaluated, err := Eval(elem, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		val.Children[i] = evaluated
	}
	return val, nil
}

func evalList(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	if !expr.ShouldEval {
		return expr, nil
	}
	evaluated, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	expr.Children[0] = evaluated
	return expr, nil
}

func evalDisjunction(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	var result *node.Node
	for _, child := range expr.Children {
		evaluated, err := Eval(child, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		result = evaluated
		if result.Variant == node.Boolean && !result.BoolValue {
			continue
		}
		return result, nil
	}
	return result, nil
}

func evalConjunction(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	var result *node.Node
	for _, child := range expr.Children {
		evaluated, err := Eval(child, outer, e, ctx)
		if err != nil {
			return nil, err
		}
		result = evaluated
		if result.Variant == node.Boolean && !result.BoolValue {
			return result, nil
		}
	}
	return result, nil
}

func evalRelation(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	lhs, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	op := expr.Children[1]
	rhs, err := Eval(expr.Children[2], outer, e, ctx)
	if err != nil {
		return nil, err
	}

	var result bool
	switch op.Variant {
	case node.Eq:
		result = node.Equal(lhs, rhs)
	case node.Neq:
		result = !node.Equal(lhs, rhs)
	case node.Gt:
		result = node.Less(rhs, lhs)
	case node.Gte:
		result = !node.Less(lhs, rhs)
	case node.Lt:
		result = node.Less(lhs, rhs)
	case node.Lte:
		result = !node.Less(rhs, lhs)
	default:
		return nil, evalerr.New(evalerr.KindUnknownOperator, expr.Path, expr.Line,
			"unknown comparison operator "+op.Variant.String())
	}
	return ctx.Factory.NewBoolean(lhs.Path, lhs.Line, result), nil
}

// evalExpressionLike implements both `expression` and `term`: a
// left-fold over (operand, operator, operand, ...) via the arithmetic
// accumulator (spec §4.1, §4.3). Casper's parser always sets ShouldEval
// on term nodes it emits, so unlike the original's `term` case there is
// no unevaluated short-circuit to preserve separately; both variants
// share one implementation.
func evalExpressionLike(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	first, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	acc := ctx.Factory.NewWithChildren(expr.Path, expr.Line, node.Expression, first)

	for i := 1; i+1 < len(expr.Children); i += 2 {
		op := expr.Children[i]
		rhs, err := Eval(expr.Children[i+1], outer, e, ctx)
		if err != nil {
			return nil, err
		}
		if err := Accumulate(op.Variant, acc, rhs, ctx.Factory); err != nil {
			return nil, err
		}
	}
	if len(acc.Children) == 1 {
		return acc.Children[0], nil
	}
	return acc, nil
}

func evalTextualNumber(expr *node.Node, ctx *Context) (*node.Node, error) {
	v, _ := strconv.ParseFloat(expr.Token.Text, 64)
	return ctx.Factory.NewNumber(expr.Path, expr.Line, v), nil
}

func evalTextualPercentage(expr *node.Node, ctx *Context) (*node.Node, error) {
	numeric, _ := node.NumericPrefix(expr.Token.Text)
	v, _ := strconv.ParseFloat(numeric, 64)
	return ctx.Factory.NewPercentage(expr.Path, expr.Line, v), nil
}

func evalTextualDimension(expr *node.Node, ctx *Context) (*node.Node, error) {
	numeric, unit := node.NumericPrefix(expr.Token.Text)
	v, _ := strconv.ParseFloat(numeric, 64)
	return ctx.Factory.NewDimension(expr.Path, expr.Line, v, unit), nil
}

func evalTextualHex(expr *node.Node, ctx *Context) (*node.Node, error) {
	hex := strings.TrimPrefix(expr.Token.Text, "#")
	var r, g, b int64
	if len(hex) == 6 {
		r, _ = strconv.ParseInt(hex[0:2], 16, 32)
		g, _ = strconv.ParseInt(hex[2:4], 16, 32)
		b, _ = strconv.ParseInt(hex[4:6], 16, 32)
	} else {
		for i, ch := range hex[:3] {
			doubled, _ := strconv.ParseInt(string(ch)+string(ch), 16, 32)
			switch i {
			case 0:
				r = doubled
			case 1:
				g = doubled
			case 2:
				b = doubled
			}
		}
	}
	return ctx.Factory.NewColor(expr.Path, expr.Line, float64(r), float64(g), float64(b), 1.0), nil
}

func evalVariable(expr *node.Node, e *env.Environment) (*node.Node, error) {
	v, ok := e.Read(expr.Token.Text)
	if !ok {
		return nil, evalerr.New(evalerr.KindUnboundVariable, expr.Path, expr.Line,
			"reference to unbound variable "+expr.Token.Text)
	}
	return v, nil
}

func evalFunctionCall(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	name := expr.Children[0].Token.Text
	args := expr.Children[1]
	fn, ok := ctx.Functions.Lookup(name, len(args.Children))
	if !ok {
		return expr, nil
	}
	return ApplyFunction(fn, args, outer, e, ctx)
}

func evalUnaryPlus(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	arg, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	if arg.IsNumeric() {
		return arg, nil
	}
	expr.Children[0] = arg
	return expr, nil
}

func evalUnaryMinus(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	arg, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	if arg.IsNumeric() {
		switch arg.Variant {
		case node.NumericDimension:
			return ctx.Factory.NewDimension(expr.Path, expr.Line, -arg.NumericValue(), arg.Unit), nil
		case node.NumericPercentage:
			return ctx.Factory.NewPercentage(expr.Path, expr.Line, -arg.NumericValue()), nil
		default:
			return ctx.Factory.NewNumber(expr.Path, expr.Line, -arg.NumericValue()), nil
		}
	}
	expr.Children[0] = arg
	return expr, nil
}

func evalSchema(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	return evalSeqInPlace(expr, outer, e, ctx)
}

func evalCSSImport(expr *node.Node, outer *node.Node, e *env.Environment, ctx *Context) (*node.Node, error) {
	evaluated, err := Eval(expr.Children[0], outer, e, ctx)
	if err != nil {
		return nil, err
	}
	expr.Children[0] = evaluated
	return expr, nil
}

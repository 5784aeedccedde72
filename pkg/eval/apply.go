package eval

import (
	"strconv"

	"github.com/caspercss/casper/pkg/env"
	"github.com/caspercss/casper/pkg/evalerr"
	"github.com/caspercss/casper/pkg/function"
	"github.com/caspercss/casper/pkg/node"
)

// ApplyMixin binds mixin's parameters against args, clones its body, and
// evaluates the clone under a fresh frame linked to the caller's global
// frame (spec §4.5.1). mixin's children are [0]=name, [1]=params,
// [2]=body.
func ApplyMixin(mixin *node.Node, args *node.Node, outer *node.Node, callerEnv *env.Environment, ctx *Context) (*node.Node, error) {
	params := mixin.Children[1]
	body := ctx.Factory.Clone(mixin.Children[2])
	bindings := make(map[string]*node.Node)

	j := 0
	for _, arg := range args.Children {
		if arg.Variant == node.Assignment {
			name := arg.Children[0].Token.Text
			if !formalExists(params, name) {
				return nil, evalerr.New(evalerr.KindUnknownKeywordParameter, arg.Path, arg.Line,
					"mixin "+mixin.Children[0].String()+" has no parameter named "+name)
			}
			if _, bound := bindings[name]; !bound {
				val, err := Eval(arg.Children[1], outer, callerEnv, ctx)
				if err != nil {
					return nil, err
				}
				bindings[name] = val
			}
			continue
		}

		if j >= len(params.Children) {
			count := strconv.Itoa(len(params.Children))
			unit := " arguments"
			if len(params.Children) == 1 {
				unit = " argument"
			}
			return nil, evalerr.New(evalerr.KindTooManyPositionalArgs, arg.Path, arg.Line,
				"mixin "+mixin.Children[0].String()+" only takes "+count+unit)
		}
		param := params.Children[j]
		name := formalName(param)
		val, err := Eval(arg, outer, callerEnv, ctx)
		if err != nil {
			return nil, err
		}
		bindings[name] = val
		j++
	}

	for _, param := range params.Children {
		if param.Variant != node.Assignment {
			continue
		}
		name := param.Children[0].Token.Text
		if _, bound := bindings[name]; bound {
			continue
		}
		// Defaults evaluate in the caller's env at bind time, not in the
		// mixin's own closure (spec §4.5.1, step 3).
		val, err := Eval(param.Children[1], outer, callerEnv, ctx)
		if err != nil {
			return nil, err
		}
		bindings[name] = val
	}

	scope := callerEnv.Global().Link()
	for name, val := range bindings {
		scope.Bind(name, val)
	}

	for i, child := range body.Children {
		evaluated, err := Eval(child, outer, scope, ctx)
		if err != nil {
			return nil, err
		}
		body.Children[i] = evaluated
	}
	return body, nil
}

func formalExists(params *node.Node, name string) bool {
	for _, p := range params.Children {
		if formalName(p) == name {
			return true
		}
	}
	return false
}

func formalName(param *node.Node) string {
	if param.Variant == node.Assignment {
		return param.Children[0].Token.Text
	}
	return param.Token.Text
}

// ApplyFunction binds args against f's formal parameters and invokes its
// native body (spec §4.5.2). Defaults are not supported for built-ins,
// matching spec §4.5.2 and the open question in §9.
func ApplyFunction(f function.Function, args *node.Node, outer *node.Node, callerEnv *env.Environment, ctx *Context) (*node.Node, error) {
	bindings := make(map[string]*node.Node)
	j := 0
	for _, arg := range args.Children {
		if arg.Variant == node.Assignment {
			name := arg.Children[0].Token.Text
			val, err := Eval(arg.Children[1], outer, callerEnv, ctx)
			if err != nil {
				return nil, err
			}
			bindings[name] = val
			continue
		}
		val, err := Eval(arg, outer, callerEnv, ctx)
		if err != nil {
			return nil, err
		}
		bindings[f.Parameters[j]] = val
		j++
	}
	return f.Run(bindings, ctx.Factory)
}

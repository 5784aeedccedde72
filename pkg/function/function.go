// Package function implements the evaluator's built-in callable
// registry (spec §3.5, §6.3), modeled on the teacher's stdlib.Registry
// (pkg/stdlib/registry.go) but keyed by (name, arity) rather than name
// alone, since spec §4.1 dispatches function_call on the exact argument
// count and leaves arity mismatches to fall through unevaluated rather
// than erroring.
package function

import "github.com/caspercss/casper/pkg/node"

// Body is a built-in function's native implementation. It receives a
// mapping from formal parameter name to the already-evaluated argument
// node, plus the factory for constructing its result (spec §3.5, §6.3).
type Body func(bindings map[string]*node.Node, f *node.Factory) (*node.Node, error)

// Function is a built-in callable identified by (name, arity).
type Function struct {
	Name       string
	Parameters []string
	Run        Body
}

type signature struct {
	name  string
	arity int
}

// Registry is a read-only-during-evaluation mapping from (name, arity)
// to Function (spec §6.3).
type Registry struct {
	funcs map[signature]Function
}

// NewRegistry creates an empty registry. Casper's CLI populates it with
// RegisterBuiltins; library callers may build a bare registry and
// register only what they need.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[signature]Function)}
}

// Register adds fn under (fn.Name, len(fn.Parameters)).
func (r *Registry) Register(fn Function) {
	r.funcs[signature{fn.Name, len(fn.Parameters)}] = fn
}

// Lookup resolves a (name, arity) pair. A miss is not an error at this
// layer — the evaluator's function_call case treats it as a plain CSS
// function and emits the call verbatim (spec §4.1, §7).
func (r *Registry) Lookup(name string, arity int) (Function, bool) {
	fn, ok := r.funcs[signature{name, arity}]
	return fn, ok
}

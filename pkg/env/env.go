// Package env implements the evaluator's lexically-linked variable
// frames (spec §3.3, §4.2), modeled on the teacher's VariableScope
// (pkg/runtime/scope.go) but without its goroutine-safety machinery:
// spec §5 makes evaluation single-threaded and synchronous, so the
// mutex and shared-mutex plumbing the teacher carries for parallel
// workflow branches has no job to do here and is dropped rather than
// carried along unused.
package env

import "github.com/caspercss/casper/pkg/node"

// Environment is a single frame in the evaluator's scope chain. The
// root frame's global field points to itself, so Global() is always a
// cheap, non-nil lookup (spec §3.6: "the global frame is always
// reachable and has no parent").
type Environment struct {
	vars   map[string]*node.Node
	parent *Environment
	global *Environment
}

// NewRoot creates a fresh global frame for one evaluation run.
func NewRoot() *Environment {
	e := &Environment{vars: make(map[string]*node.Node)}
	e.global = e
	return e
}

// Link creates a new frame whose parent is e, per spec §4.2's `link`.
// Used on block entry (spec §4.1, `block`).
func (e *Environment) Link() *Environment {
	return &Environment{
		vars:   make(map[string]*node.Node),
		parent: e,
		global: e.global,
	}
}

// Global returns the root frame reachable from e.
func (e *Environment) Global() *Environment {
	return e.global
}

// Query reports whether name is bound anywhere on the chain from e.
func (e *Environment) Query(name string) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			return true
		}
	}
	return false
}

// Read walks the chain from e and returns the bound node, if any.
func (e *Environment) Read(name string) (*node.Node, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Write rebinds name in the frame that already owns it, walking the
// chain from e; if no frame owns it, it binds name in e itself. This is
// the `assignment-to-existing` vs `assignment-to-new` split from spec
// §3.3.
func (e *Environment) Write(name string, v *node.Node) {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// Bind binds name in e's own frame unconditionally, without walking the
// chain. Used for fresh mixin parameter bindings (spec §4.5.1),
// where "already bound" means bound in this new frame, not on some
// caller frame that happens to share the name.
func (e *Environment) Bind(name string, v *node.Node) {
	e.vars[name] = v
}

// Package env implements clipscript's lexical scope chain: a simple
// parent-linked map of names to values, relying on the garbage collector
// rather than manual reference counting (spec.md 4.4, 5).
package env

import "github.com/clipscript/clipscript/internal/object"

// Environment is one lexical scope. Blocks (if/elif/else bodies, while
// bodies, function bodies) each get their own Environment chained to the
// scope that contains them.
type Environment struct {
	vars  map[string]object.Value
	outer *Environment
}

// New creates a top-level environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]object.Value)}
}

// NewEnclosed creates a child scope of outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), outer: outer}
}

// Get looks up name in this scope and, failing that, each enclosing scope
// in turn. A miss reports ok=false; the caller (package eval) treats a read
// of an undefined variable as object.Null per the decision in DESIGN.md.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return object.Null, false
}

// Set binds name to value in the current scope, shadowing any binding of
// the same name in an enclosing scope. See DESIGN.md for why assignment
// does not search outer scopes before binding.
func (e *Environment) Set(name string, value object.Value) {
	e.vars[name] = value
}

// Outer returns the parent scope, or nil at the top level.
func (e *Environment) Outer() *Environment {
	return e.outer
}

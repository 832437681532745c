// Package eval implements clipscript's tree-walking evaluator: statement
// and expression evaluation, function-call semantics with the ExecFlow
// control-flow sum type, and the built-in operator tables of spec.md 4.3
// and 4.5. It depends on packages effects and methods only through their
// narrow interfaces / dispatch functions, never on concrete
// implementations.
package eval

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/effects"
	"github.com/clipscript/clipscript/internal/env"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
)

// Interpreter owns the function registry, the effect handlers, and the
// root scope for a single program run (spec.md 5: one instance of each,
// never shared across concurrent runs because there are none).
type Interpreter struct {
	root      *env.Environment
	functions map[string]*ast.FunctionDef
	handlers  effects.Handlers
}

// New creates an Interpreter with a fresh root scope and the given effect
// handlers.
func New(handlers effects.Handlers) *Interpreter {
	return &Interpreter{
		root:      env.New(),
		functions: make(map[string]*ast.FunctionDef),
		handlers:  handlers,
	}
}

// Run evaluates a parsed program to completion in the root scope. It
// returns the value of a top-level return statement, or Null when the
// program ends without one (mostly useful for embedding/tests; the CLI
// only cares about the error), and the first error encountered, if any. Error{Exit} is returned like any other error;
// callers that care about the graceful-exit distinction check err's Kind.
func (interp *Interpreter) Run(program []ast.Stmt) (object.Value, error) {
	flow, err := interp.evalStatements(program, interp.root)
	if err != nil {
		return object.Null, err
	}
	if flow.Kind == FlowReturn {
		return flow.Value, nil
	}
	if flow.Kind == FlowBreak || flow.Kind == FlowContinue {
		return object.Null, errs.New(errs.Syntax, "break/continue outside of a loop", flow.Span)
	}
	return object.Null, nil
}

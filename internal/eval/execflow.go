package eval

import (
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// FlowKind discriminates the statement-level control-flow result named
// ExecFlow in spec.md 3: normal completion, a return with a value, or an
// unwind to the nearest enclosing loop.
type FlowKind int

const (
	FlowNone FlowKind = iota
	FlowReturn
	FlowBreak
	FlowContinue
)

// ExecFlow is the result of evaluating a statement or a statement list.
// Errors are orthogonal and returned alongside, never folded into Kind.
type ExecFlow struct {
	Kind  FlowKind
	Value object.Value // meaningful only when Kind == FlowReturn
	Span  token.Span   // the break/continue/return statement's own span
}

var flowNone = ExecFlow{Kind: FlowNone}

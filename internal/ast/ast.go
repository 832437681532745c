// Package ast defines the typed abstract syntax tree produced by the
// parser and walked by the evaluator. Every node owns its children
// exclusively (no sharing, no cycles) and carries the source span it
// covers.
package ast

import (
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// Node is implemented by every AST node.
type Node interface {
	// Span returns the source range [start, end) this node covers.
	Span() token.Span
	// String renders a human-readable, source-like form of the node.
	String() string
}

// Expr is an expression node; it evaluates to a Value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node; it is evaluated for effect / control flow.
type Stmt interface {
	Node
	stmtNode()
}

// Type is the AST representation of a type annotation, used in variable
// declarations, function signatures, and cast expressions.
type Type struct {
	SpanValue token.Span
	Name      string // "int", "float", "boolean", "string", "regex", "match", "list"
	Elem      *Type  // element type for "list"; nil otherwise
}

func (t *Type) Span() token.Span { return t.SpanValue }

func (t *Type) String() string {
	if t.Name == "list" && t.Elem != nil {
		return "list<" + t.Elem.String() + ">"
	}
	return t.Name
}

// ToObjectType converts a parsed type annotation into the runtime Type
// representation used by object.MatchesType. A nil receiver (no
// annotation) converts to nil (unconstrained).
func (t *Type) ToObjectType() *object.Type {
	if t == nil {
		return nil
	}
	return &object.Type{Name: t.Name, Elem: t.Elem.ToObjectType()}
}

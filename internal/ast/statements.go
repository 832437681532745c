package ast

import (
	"strings"

	"github.com/clipscript/clipscript/internal/token"
)

// Assignment stores into the innermost scope that already binds Name, or
// else the current scope -- see the Environment.Set contract in package
// env and the open question recorded in DESIGN.md.
type Assignment struct {
	SpanValue token.Span
	Name      string
	Value     Expr
}

func (*Assignment) stmtNode() {}
func (s *Assignment) Span() token.Span { return s.SpanValue }
func (s *Assignment) String() string   { return s.Name + " = " + s.Value.String() + ";" }

// VarDecl declares and binds Name in the current scope. Initializer may be
// nil, in which case the variable is bound to Null.
type VarDecl struct {
	SpanValue   token.Span
	Name        string
	Type        *Type
	Initializer Expr // nil if omitted
}

func (*VarDecl) stmtNode() {}
func (s *VarDecl) Span() token.Span { return s.SpanValue }
func (s *VarDecl) String() string {
	out := s.Type.String() + " " + s.Name + "()"
	if s.Initializer != nil {
		out += " = " + s.Initializer.String()
	}
	return out + ";"
}

// ElifClause is one `elif (cond) { body }` clause of an If statement.
type ElifClause struct {
	Cond Expr
	Body []Stmt
}

// If is an if/elif*/else statement.
type If struct {
	SpanValue token.Span
	Cond      Expr
	Body      []Stmt
	Elifs     []ElifClause
	Else      []Stmt // nil if no else clause
}

func (*If) stmtNode() {}
func (s *If) Span() token.Span { return s.SpanValue }
func (s *If) String() string {
	var b strings.Builder
	b.WriteString("if (" + s.Cond.String() + ") { ... }")
	for range s.Elifs {
		b.WriteString(" elif (...) { ... }")
	}
	if s.Else != nil {
		b.WriteString(" else { ... }")
	}
	b.WriteString(";")
	return b.String()
}

// While is a pretest loop.
type While struct {
	SpanValue token.Span
	Cond      Expr
	Body      []Stmt
}

func (*While) stmtNode() {}
func (s *While) Span() token.Span { return s.SpanValue }
func (s *While) String() string   { return "while (" + s.Cond.String() + ") { ... };" }

// Return evaluates Value and returns it from the enclosing function.
type Return struct {
	SpanValue token.Span
	Value     Expr
}

func (*Return) stmtNode() {}
func (s *Return) Span() token.Span { return s.SpanValue }
func (s *Return) String() string   { return "return " + s.Value.String() + ";" }

// Break exits the innermost enclosing loop.
type Break struct {
	SpanValue token.Span
}

func (*Break) stmtNode() {}
func (s *Break) Span() token.Span { return s.SpanValue }
func (s *Break) String() string   { return "break;" }

// Continue skips to the next iteration of the innermost enclosing loop.
type Continue struct {
	SpanValue token.Span
}

func (*Continue) stmtNode() {}
func (s *Continue) Span() token.Span { return s.SpanValue }
func (s *Continue) String() string   { return "continue;" }

// Param is one (name, type) entry in a function signature.
type Param struct {
	Name string
	Type *Type
}

// FunctionDef registers a function in the interpreter's function table.
type FunctionDef struct {
	SpanValue  token.Span
	Name       string
	Params     []Param
	ReturnType *Type // nil means Null
	Body       []Stmt
}

func (*FunctionDef) stmtNode() {}
func (s *FunctionDef) Span() token.Span { return s.SpanValue }
func (s *FunctionDef) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	out := "function " + s.Name
	if s.ReturnType != nil {
		out += " returns " + s.ReturnType.String()
	}
	return out + "(" + strings.Join(parts, ", ") + ") { ... };"
}

// ExpressionStmt evaluates Expr for effect; its value is discarded.
type ExpressionStmt struct {
	SpanValue token.Span
	Expr      Expr
}

func (*ExpressionStmt) stmtNode() {}
func (s *ExpressionStmt) Span() token.Span { return s.SpanValue }
func (s *ExpressionStmt) String() string   { return s.Expr.String() + ";" }

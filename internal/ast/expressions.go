package ast

import (
	"fmt"
	"strings"

	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// UnaryOperator names the operators accepted by UnaryOp.
type UnaryOperator int

const (
	Not UnaryOperator = iota
	Neg
)

func (op UnaryOperator) String() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// BinaryOperator names the operators accepted by BinaryOp.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Pow
	Eq
	Ne
	Gt
	Lt
	Ge
	Le
	And
	Or
	Concat
)

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "**"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Ge:
		return ">="
	case Le:
		return "<="
	case And:
		return "&&"
	case Or:
		return "||"
	case Concat:
		return "++"
	default:
		return "?"
	}
}

// Literal holds a fully-constructed value, including the raw regex form.
type Literal struct {
	SpanValue token.Span
	Value     object.Value
}

func (*Literal) exprNode() {}
func (e *Literal) Span() token.Span { return e.SpanValue }
func (e *Literal) String() string   { return e.Value.ToDisplayString() }

// Variable is an identifier reference.
type Variable struct {
	SpanValue token.Span
	Name      string
}

func (*Variable) exprNode() {}
func (e *Variable) Span() token.Span { return e.SpanValue }
func (e *Variable) String() string   { return e.Name }

// UnaryOp applies a prefix operator to a single operand.
type UnaryOp struct {
	SpanValue token.Span
	Op        UnaryOperator
	Child     Expr
}

func (*UnaryOp) exprNode() {}
func (e *UnaryOp) Span() token.Span { return e.SpanValue }
func (e *UnaryOp) String() string   { return e.Op.String() + e.Child.String() }

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	SpanValue   token.Span
	Left, Right Expr
	Op          BinaryOperator
}

func (*BinaryOp) exprNode() {}
func (e *BinaryOp) Span() token.Span { return e.SpanValue }
func (e *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.String(), e.Right.String())
}

// Ternary is a `cond ? then : else` conditional expression.
type Ternary struct {
	SpanValue        token.Span
	Cond, Then, Else Expr
}

func (*Ternary) exprNode() {}
func (e *Ternary) Span() token.Span { return e.SpanValue }
func (e *Ternary) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}

// FunctionCall invokes a function (user-defined, effect builtin, or
// reserved) by name.
type FunctionCall struct {
	SpanValue token.Span
	Name      string
	Arguments []Expr
}

func (*FunctionCall) exprNode() {}
func (e *FunctionCall) Span() token.Span { return e.SpanValue }
func (e *FunctionCall) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

// ListLiteral builds a list value from source syntax `{e1, e2, ...}`.
type ListLiteral struct {
	SpanValue token.Span
	Elements  []Expr
}

func (*ListLiteral) exprNode() {}
func (e *ListLiteral) Span() token.Span { return e.SpanValue }
func (e *ListLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// TypeCast evaluates an expression and converts the result to Target.
type TypeCast struct {
	SpanValue token.Span
	Target    *Type
	Value     Expr
}

func (*TypeCast) exprNode() {}
func (e *TypeCast) Span() token.Span { return e.SpanValue }
func (e *TypeCast) String() string {
	return e.Target.String() + "(" + e.Value.String() + ")"
}

// MemberAccess is dotted access on a regex or match value, e.g. `m.content`.
type MemberAccess struct {
	SpanValue token.Span
	Object    Expr
	Member    string
}

func (*MemberAccess) exprNode() {}
func (e *MemberAccess) Span() token.Span { return e.SpanValue }
func (e *MemberAccess) String() string   { return e.Object.String() + "." + e.Member }

// MethodCall is a dotted method invocation, e.g. `s.toUpper()` or
// `r.getAll("x")`, dispatched through the method dispatcher (spec.md 6).
type MethodCall struct {
	SpanValue token.Span
	Object    Expr
	Method    string
	Arguments []Expr
}

func (*MethodCall) exprNode() {}
func (e *MethodCall) Span() token.Span { return e.SpanValue }
func (e *MethodCall) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return e.Object.String() + "." + e.Method + "(" + strings.Join(args, ", ") + ")"
}

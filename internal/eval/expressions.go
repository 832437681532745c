package eval

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/env"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/methods"
	"github.com/clipscript/clipscript/internal/object"
)

func (interp *Interpreter) evalExpr(expr ast.Expr, scope *env.Environment) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Variable:
		v, _ := scope.Get(e.Name) // unbound names resolve to Null, spec.md 9
		return v, nil

	case *ast.UnaryOp:
		return interp.evalUnary(e, scope)

	case *ast.BinaryOp:
		return interp.evalBinary(e, scope)

	case *ast.Ternary:
		cond, err := interp.evalExpr(e.Cond, scope)
		if err != nil {
			return object.Null, err
		}
		if cond.IsTruthy() {
			return interp.evalExpr(e.Then, scope)
		}
		return interp.evalExpr(e.Else, scope)

	case *ast.ListLiteral:
		elems := make([]object.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := interp.evalExpr(el, scope)
			if err != nil {
				return object.Null, err
			}
			elems[i] = v
		}
		return object.List(elems), nil

	case *ast.TypeCast:
		v, err := interp.evalExpr(e.Value, scope)
		if err != nil {
			return object.Null, err
		}
		return evalCast(v, e.Target, e.SpanValue)

	case *ast.MemberAccess:
		obj, err := interp.evalExpr(e.Object, scope)
		if err != nil {
			return object.Null, err
		}
		return evalMemberAccess(obj, e.Member, e.SpanValue)

	case *ast.MethodCall:
		obj, err := interp.evalExpr(e.Object, scope)
		if err != nil {
			return object.Null, err
		}
		args := make([]object.Value, len(e.Arguments))
		for i, a := range e.Arguments {
			v, err := interp.evalExpr(a, scope)
			if err != nil {
				return object.Null, err
			}
			args[i] = v
		}
		return methods.Dispatch(e.Method, obj, args, e.SpanValue)

	case *ast.FunctionCall:
		return interp.evalFunctionCall(e, scope)

	default:
		return object.Null, errs.Unspannedf(errs.Runtime, "eval: unhandled expression type %T", expr)
	}
}

func (interp *Interpreter) evalUnary(e *ast.UnaryOp, scope *env.Environment) (object.Value, error) {
	v, err := interp.evalExpr(e.Child, scope)
	if err != nil {
		return object.Null, err
	}
	switch e.Op {
	case ast.Not:
		return object.Bool(!v.IsTruthy()), nil
	case ast.Neg:
		switch v.Kind {
		case object.KindInt:
			return object.Int(-v.Int), nil
		case object.KindFloat:
			return object.Float(-v.Float), nil
		default:
			return object.Null, errs.Newf(errs.Type, e.SpanValue, "unary '-' requires a numeric operand, got %s", v.Kind)
		}
	default:
		return object.Null, errs.Unspannedf(errs.Runtime, "eval: unhandled unary operator %v", e.Op)
	}
}

// evalBinary implements short-circuit && and || directly, per spec.md 9:
// the general operand evaluator is never used for these two, since it
// would evaluate both sides unconditionally.
func (interp *Interpreter) evalBinary(e *ast.BinaryOp, scope *env.Environment) (object.Value, error) {
	if e.Op == ast.And || e.Op == ast.Or {
		left, err := interp.evalExpr(e.Left, scope)
		if err != nil {
			return object.Null, err
		}
		if e.Op == ast.And && !left.IsTruthy() {
			return object.Bool(false), nil
		}
		if e.Op == ast.Or && left.IsTruthy() {
			return object.Bool(true), nil
		}
		right, err := interp.evalExpr(e.Right, scope)
		if err != nil {
			return object.Null, err
		}
		return object.Bool(right.IsTruthy()), nil
	}

	left, err := interp.evalExpr(e.Left, scope)
	if err != nil {
		return object.Null, err
	}
	right, err := interp.evalExpr(e.Right, scope)
	if err != nil {
		return object.Null, err
	}
	return applyBinaryOp(e.Op, left, right, e.SpanValue)
}

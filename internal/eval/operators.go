package eval

import (
	"math"

	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// applyBinaryOp implements the arithmetic/comparison/equality/concat table
// of spec.md 4.3 for every BinaryOperator except And/Or, which short-
// circuit in evalBinary and never reach here.
func applyBinaryOp(op ast.BinaryOperator, left, right object.Value, span token.Span) (object.Value, error) {
	switch op {
	case ast.Add:
		return numericOp(op, left, right, span)
	case ast.Sub:
		return numericOp(op, left, right, span)
	case ast.Mul:
		return numericOp(op, left, right, span)
	case ast.Div:
		return numericOp(op, left, right, span)
	case ast.Pow:
		return evalPow(left, right, span)
	case ast.Concat:
		return object.String(left.ToDisplayString() + right.ToDisplayString()), nil
	case ast.Eq:
		return object.Bool(left.Equals(right)), nil
	case ast.Ne:
		return object.Bool(!left.Equals(right)), nil
	case ast.Gt, ast.Lt, ast.Ge, ast.Le:
		return compare(op, left, right, span)
	default:
		return object.Null, errs.Unspannedf(errs.Runtime, "eval: unhandled binary operator %v", op)
	}
}

func numericOp(op ast.BinaryOperator, left, right object.Value, span token.Span) (object.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return object.Null, errs.Newf(errs.Type, span, "operator '%s' requires numeric operands", op)
	}

	if op == ast.Div && isZero(right) {
		return object.Null, errs.New(errs.DivideByZero, "division by zero", span)
	}

	if left.Kind == object.KindInt && right.Kind == object.KindInt {
		switch op {
		case ast.Add:
			return object.Int(left.Int + right.Int), nil
		case ast.Sub:
			return object.Int(left.Int - right.Int), nil
		case ast.Mul:
			return object.Int(left.Int * right.Int), nil
		case ast.Div:
			return object.Int(left.Int / right.Int), nil
		}
	}

	l, r := left.AsFloat64(), right.AsFloat64()
	switch op {
	case ast.Add:
		return object.Float(l + r), nil
	case ast.Sub:
		return object.Float(l - r), nil
	case ast.Mul:
		return object.Float(l * r), nil
	case ast.Div:
		return object.Float(l / r), nil
	default:
		return object.Null, errs.Unspannedf(errs.Runtime, "eval: unhandled numeric operator %v", op)
	}
}

func isZero(v object.Value) bool {
	if v.Kind == object.KindInt {
		return v.Int == 0
	}
	return v.Float == 0
}

// evalPow implements ** per spec.md 4.3: both operands coercible to f64;
// if both operands are Int, the exponent is non-negative, and the result
// is an integral f64, return Int; otherwise Float.
func evalPow(left, right object.Value, span token.Span) (object.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return object.Null, errs.New(errs.Type, "operator '**' requires numeric operands", span)
	}
	result := math.Pow(left.AsFloat64(), right.AsFloat64())
	if left.Kind == object.KindInt && right.Kind == object.KindInt && right.Int >= 0 && result == math.Trunc(result) {
		return object.Int(int64(result)), nil
	}
	return object.Float(result), nil
}

func compare(op ast.BinaryOperator, left, right object.Value, span token.Span) (object.Value, error) {
	var result bool
	switch {
	case left.IsNumeric() && right.IsNumeric():
		l, r := left.AsFloat64(), right.AsFloat64()
		result = compareOrdered(op, l < r, l == r, l > r)
	case left.Kind == object.KindString && right.Kind == object.KindString:
		result = compareOrdered(op, left.Str < right.Str, left.Str == right.Str, left.Str > right.Str)
	default:
		return object.Null, errs.Newf(errs.Type, span, "operator '%s' requires two numbers or two strings", op)
	}
	return object.Bool(result), nil
}

func compareOrdered(op ast.BinaryOperator, less, equal, greater bool) bool {
	switch op {
	case ast.Gt:
		return greater
	case ast.Lt:
		return less
	case ast.Ge:
		return greater || equal
	case ast.Le:
		return less || equal
	default:
		return false
	}
}

package eval

import (
	"math"

	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// evalCast implements the T(expr) cast table of spec.md 6. Casting to
// regex, match, or list<T> is always a Type error regardless of source;
// casting a regex/match/list value to int or float is likewise always a
// Type error (the "Other" column).
func evalCast(v object.Value, target *ast.Type, span token.Span) (object.Value, error) {
	switch target.Name {
	case "int":
		return castToInt(v, span)
	case "float":
		return castToFloat(v, span)
	case "string":
		return object.String(v.ToDisplayString()), nil
	case "boolean":
		return object.Bool(v.IsTruthy()), nil
	default: // "regex", "match", "list"
		return object.Null, errs.Newf(errs.Type, span, "cannot cast to %s", target.String())
	}
}

func castToInt(v object.Value, span token.Span) (object.Value, error) {
	switch v.Kind {
	case object.KindInt:
		return v, nil
	case object.KindFloat:
		return object.Int(int64(math.Trunc(v.Float))), nil
	case object.KindBool:
		if v.Bool {
			return object.Int(1), nil
		}
		return object.Int(0), nil
	default:
		return object.Null, errs.Newf(errs.Type, span, "cannot cast %s to int", v.Kind)
	}
}

func castToFloat(v object.Value, span token.Span) (object.Value, error) {
	switch v.Kind {
	case object.KindInt:
		return object.Float(float64(v.Int)), nil
	case object.KindFloat:
		return v, nil
	default:
		return object.Null, errs.Newf(errs.Type, span, "cannot cast %s to float", v.Kind)
	}
}

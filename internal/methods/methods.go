// Package methods implements clipscript's method dispatcher: a flat table
// keyed by method name, with the receiver passed as the first evaluated
// argument alongside its call arguments (spec.md 6). This mirrors the
// dispatch style of the C++ original's MethodDispatcher::dispatchMethod,
// which also takes the receiver as args[0] ahead of a flat name switch.
package methods

import (
	"strings"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// Dispatch calls the method named name on receiver with args (not
// including the receiver), returning the result value or a structured
// error. span is attached to any error this call raises.
func Dispatch(name string, receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	switch name {
	case "length":
		return dispatchLength(receiver, span)
	case "contains":
		return dispatchContains(receiver, args, span)
	case "indexOf":
		return dispatchIndexOf(receiver, args, span)
	case "toUpper":
		return stringMethod(receiver, "toUpper", span, func(s string) (object.Value, error) {
			return object.String(strings.ToUpper(s)), nil
		})
	case "toLower":
		return stringMethod(receiver, "toLower", span, func(s string) (object.Value, error) {
			return object.String(strings.ToLower(s)), nil
		})
	case "trim":
		return stringMethod(receiver, "trim", span, func(s string) (object.Value, error) {
			return object.String(strings.TrimSpace(s)), nil
		})
	case "substring":
		return stringSubstring(receiver, args, span)
	case "replace":
		return stringReplace(receiver, args, span)
	case "startsWith":
		return stringStartsWith(receiver, args, span)
	case "endsWith":
		return stringEndsWith(receiver, args, span)
	case "split":
		return stringSplit(receiver, args, span)
	case "hasMatch":
		return stringHasMatch(receiver, args, span)
	case "replaceMatch":
		return stringReplaceMatch(receiver, args, span)
	case "get":
		return listGet(receiver, args, span)
	case "push":
		return listPush(receiver, args, span)
	case "slice":
		return listSlice(receiver, args, span)
	case "getAll":
		return regexGetAll(receiver, args, span)
	default:
		return object.Null, errs.Newf(errs.Runtime, span, "unknown method %q", name)
	}
}

func dispatchLength(receiver object.Value, span token.Span) (object.Value, error) {
	switch receiver.Kind {
	case object.KindString:
		return object.Int(int64(len(receiver.Str))), nil
	case object.KindList:
		return object.Int(int64(len(receiver.List))), nil
	default:
		return object.Null, errs.New(errs.Type, "length() can only be called on string or list type", span)
	}
}

func dispatchContains(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	switch receiver.Kind {
	case object.KindString:
		return stringContains(receiver, args, span)
	case object.KindList:
		return listContains(receiver, args, span)
	default:
		return object.Null, errs.New(errs.Type, "contains() can only be called on string or list type", span)
	}
}

func dispatchIndexOf(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	switch receiver.Kind {
	case object.KindString:
		return stringIndexOf(receiver, args, span)
	case object.KindList:
		return listIndexOf(receiver, args, span)
	default:
		return object.Null, errs.New(errs.Type, "indexOf() can only be called on string or list type", span)
	}
}

func arity(args []object.Value, n int, name string, span token.Span) error {
	if len(args) != n {
		return errs.Newf(errs.Arity, span, "%s() expects %d argument(s)", name, n)
	}
	return nil
}

func requireString(v object.Value, context string, span token.Span) (string, error) {
	if v.Kind != object.KindString {
		return "", errs.Newf(errs.Type, span, "%s expects a string", context)
	}
	return v.Str, nil
}

func requireInt(v object.Value, context string, span token.Span) (int64, error) {
	if v.Kind != object.KindInt {
		return 0, errs.Newf(errs.Type, span, "%s expects an integer", context)
	}
	return v.Int, nil
}

package methods

import (
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

func listGet(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindList {
		return object.Null, errs.New(errs.Type, "get() can only be called on list type", span)
	}
	if err := arity(args, 1, "get", span); err != nil {
		return object.Null, err
	}
	index, err := requireInt(args[0], "get()", span)
	if err != nil {
		return object.Null, err
	}
	if index < 0 {
		index += int64(len(receiver.List))
	}
	if index < 0 || index >= int64(len(receiver.List)) {
		return object.Null, errs.New(errs.Runtime, "list index out of range", span)
	}
	return receiver.List[index], nil
}

func listPush(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindList {
		return object.Null, errs.New(errs.Type, "push() can only be called on list type", span)
	}
	if err := arity(args, 1, "push", span); err != nil {
		return object.Null, err
	}
	out := make([]object.Value, len(receiver.List)+1)
	copy(out, receiver.List)
	out[len(receiver.List)] = args[0]
	return object.List(out), nil
}

func listSlice(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindList {
		return object.Null, errs.New(errs.Type, "slice() can only be called on list type", span)
	}
	if err := arity(args, 2, "slice", span); err != nil {
		return object.Null, err
	}
	start, err := requireInt(args[0], "slice()", span)
	if err != nil {
		return object.Null, err
	}
	end, err := requireInt(args[1], "slice()", span)
	if err != nil {
		return object.Null, err
	}
	start, end = clampRange(start, end, int64(len(receiver.List)))
	if start >= end {
		return object.List(nil), nil
	}
	sliced := make([]object.Value, end-start)
	copy(sliced, receiver.List[start:end])
	return object.List(sliced), nil
}

func listContains(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if err := arity(args, 1, "contains", span); err != nil {
		return object.Null, err
	}
	for _, elem := range receiver.List {
		if elem.Equals(args[0]) {
			return object.Bool(true), nil
		}
	}
	return object.Bool(false), nil
}

func listIndexOf(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if err := arity(args, 1, "indexOf", span); err != nil {
		return object.Null, err
	}
	for i, elem := range receiver.List {
		if elem.Equals(args[0]) {
			return object.Int(int64(i)), nil
		}
	}
	return object.Int(-1), nil
}

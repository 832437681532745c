package methods

import (
	"strings"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

type stringFn func(s string) (object.Value, error)

func stringMethod(receiver object.Value, name string, span token.Span, fn stringFn) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.Newf(errs.Type, span, "%s() can only be called on string type", name)
	}
	return fn(receiver.Str)
}

// clampRange normalizes (start, end) against a length per spec.md 6:
// negative indices count from the end, results clamp into [0, length].
func clampRange(start, end, length int64) (int64, int64) {
	if start < 0 {
		start = length + start
	}
	if end < 0 {
		end = length + end
	}
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}
	if end < 0 {
		end = 0
	}
	if end > length {
		end = length
	}
	return start, end
}

func stringSubstring(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "substring() can only be called on string type", span)
	}
	if err := arity(args, 2, "substring", span); err != nil {
		return object.Null, err
	}
	start, err := requireInt(args[0], "substring()", span)
	if err != nil {
		return object.Null, err
	}
	end, err := requireInt(args[1], "substring()", span)
	if err != nil {
		return object.Null, err
	}
	runes := []rune(receiver.Str)
	start, end = clampRange(start, end, int64(len(runes)))
	if start > end {
		return object.String(""), nil
	}
	return object.String(string(runes[start:end])), nil
}

func stringReplace(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "replace() can only be called on string type", span)
	}
	if err := arity(args, 2, "replace", span); err != nil {
		return object.Null, err
	}
	old, err := requireString(args[0], "replace()", span)
	if err != nil {
		return object.Null, err
	}
	repl, err := requireString(args[1], "replace()", span)
	if err != nil {
		return object.Null, err
	}
	return object.String(strings.ReplaceAll(receiver.Str, old, repl)), nil
}

func stringContains(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if err := arity(args, 1, "contains", span); err != nil {
		return object.Null, err
	}
	search, err := requireString(args[0], "contains() on string", span)
	if err != nil {
		return object.Null, err
	}
	return object.Bool(strings.Contains(receiver.Str, search)), nil
}

func stringStartsWith(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "startsWith() can only be called on string type", span)
	}
	if err := arity(args, 1, "startsWith", span); err != nil {
		return object.Null, err
	}
	prefix, err := requireString(args[0], "startsWith()", span)
	if err != nil {
		return object.Null, err
	}
	return object.Bool(strings.HasPrefix(receiver.Str, prefix)), nil
}

func stringEndsWith(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "endsWith() can only be called on string type", span)
	}
	if err := arity(args, 1, "endsWith", span); err != nil {
		return object.Null, err
	}
	suffix, err := requireString(args[0], "endsWith()", span)
	if err != nil {
		return object.Null, err
	}
	return object.Bool(strings.HasSuffix(receiver.Str, suffix)), nil
}

func stringIndexOf(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if err := arity(args, 1, "indexOf", span); err != nil {
		return object.Null, err
	}
	search, err := requireString(args[0], "indexOf() on string", span)
	if err != nil {
		return object.Null, err
	}
	return object.Int(int64(strings.Index(receiver.Str, search))), nil
}

func stringSplit(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "split() can only be called on string type", span)
	}
	if err := arity(args, 1, "split", span); err != nil {
		return object.Null, err
	}
	delim, err := requireString(args[0], "split()", span)
	if err != nil {
		return object.Null, err
	}
	if delim == "" {
		parts := make([]object.Value, 0, len(receiver.Str))
		for _, r := range receiver.Str {
			parts = append(parts, object.String(string(r)))
		}
		return object.List(parts), nil
	}
	pieces := strings.Split(receiver.Str, delim)
	parts := make([]object.Value, len(pieces))
	for i, p := range pieces {
		parts[i] = object.String(p)
	}
	return object.List(parts), nil
}

func stringHasMatch(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "hasMatch() can only be called on string type", span)
	}
	if err := arity(args, 1, "hasMatch", span); err != nil {
		return object.Null, err
	}
	if args[0].Kind != object.KindMatch {
		return object.Null, errs.New(errs.Type, "hasMatch() expects a match argument", span)
	}
	return object.Bool(strings.Contains(receiver.Str, args[0].Match.Content)), nil
}

func stringReplaceMatch(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "replaceMatch() can only be called on string type", span)
	}
	if err := arity(args, 2, "replaceMatch", span); err != nil {
		return object.Null, err
	}
	if args[0].Kind != object.KindMatch {
		return object.Null, errs.New(errs.Type, "replaceMatch() expects a match as first argument", span)
	}
	replacement, err := requireString(args[1], "replaceMatch()", span)
	if err != nil {
		return object.Null, err
	}
	m := args[0].Match
	s := receiver.Str
	if m.Start < len(s) && m.End <= len(s) && m.Start < m.End {
		out := s[:m.Start] + replacement + s[m.End:]
		return object.String(out), nil
	}
	return object.String(s), nil
}

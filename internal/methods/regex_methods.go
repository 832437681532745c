package methods

import (
	"regexp"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// Compile translates a clipscript Regex value into a stdlib *regexp.Regexp.
// The "i" flag maps to Go's inline case-insensitive modifier; other flag
// letters from the literal are accepted but have no further stdlib analogue
// (spec.md 9 leaves regex-dialect compatibility to the implementer).
func Compile(r object.Value, span token.Span) (*regexp.Regexp, error) {
	pattern := r.Regex.Pattern
	for _, f := range r.Regex.Flags {
		if f == 'i' {
			pattern = "(?i)" + pattern
			break
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.Newf(errs.Runtime, span, "invalid regex /%s/: %s", r.Regex.Pattern, err)
	}
	return re, nil
}

func regexGetAll(receiver object.Value, args []object.Value, span token.Span) (object.Value, error) {
	if receiver.Kind != object.KindRegex {
		return object.Null, errs.New(errs.Type, "getAll() can only be called on regex type", span)
	}
	if err := arity(args, 1, "getAll", span); err != nil {
		return object.Null, err
	}
	input, err := requireString(args[0], "getAll()", span)
	if err != nil {
		return object.Null, err
	}
	re, err := Compile(receiver, span)
	if err != nil {
		return object.Null, err
	}
	locs := re.FindAllStringIndex(input, -1)
	matches := make([]object.Value, len(locs))
	for i, loc := range locs {
		matches[i] = object.Match(loc[0], loc[1], input[loc[0]:loc[1]])
	}
	return object.List(matches), nil
}

package eval

import (
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// evalMemberAccess implements the dotted member access of spec.md 6: `.re`
// and `.flags` on Regex, `.start`/`.end`/`.content` on Match. Any other
// receiver kind or member name is a Runtime error.
func evalMemberAccess(obj object.Value, member string, span token.Span) (object.Value, error) {
	switch obj.Kind {
	case object.KindRegex:
		switch member {
		case "re":
			return object.String(obj.Regex.Pattern), nil
		case "flags":
			return object.String(obj.Regex.Flags), nil
		}
	case object.KindMatch:
		switch member {
		case "start":
			return object.Int(int64(obj.Match.Start)), nil
		case "end":
			return object.Int(int64(obj.Match.End)), nil
		case "content":
			return object.String(obj.Match.Content), nil
		}
	}
	return object.Null, errs.Newf(errs.Runtime, span, "%s has no member %q", obj.Kind, member)
}

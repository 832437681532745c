// Package object implements the clipscript runtime value model: a single
// tag-discriminated Value type covering every variant named in the
// language spec (Int, Float, Bool, String, Null, List, Regex, Match).
//
// A tagged union rather than one Go type per variant keeps the operator
// and coercion tables in package eval exhaustive and easy to audit: every
// table is a switch over Kind, not a set of type assertions.
package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindNull
	KindList
	KindRegex
	KindMatch
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindList:
		return "list"
	case KindRegex:
		return "regex"
	case KindMatch:
		return "match"
	default:
		return "unknown"
	}
}

// RegexData is the payload of a Regex value: the literal pattern text
// (the source found between the slashes) and the trailing flag letters.
type RegexData struct {
	Pattern string
	Flags   string
}

// MatchData is the payload of a Match value: a single regex hit.
type MatchData struct {
	Start   int
	End     int
	Content string
}

// Value is the runtime representation of every clipscript value. Only the
// field(s) named by Kind are meaningful; callers must switch on Kind
// before reading a payload field.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	List  []Value
	Regex RegexData
	Match MatchData

	// ElemType records the element type of the List<T> slot a List value
	// was bound to by a declaration. Nil means "any list" (no declared
	// element type). It is not re-checked after binding; push, for one,
	// appends without consulting it.
	ElemType *Type
}

// Null is the sole Null value.
var Null = Value{Kind: KindNull}

func Int(v int64) Value      { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value  { return Value{Kind: KindFloat, Float: v} }
func Bool(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func String(v string) Value  { return Value{Kind: KindString, Str: v} }
func List(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, List: items}
}
func Regex(pattern, flags string) Value {
	return Value{Kind: KindRegex, Regex: RegexData{Pattern: pattern, Flags: flags}}
}
func Match(start, end int, content string) Value {
	return Value{Kind: KindMatch, Match: MatchData{Start: start, End: end, Content: content}}
}

// AsFloat64 widens an Int or Float value to float64. It panics if v is
// neither; callers must check Kind first (arithmetic dispatch in package
// eval only calls this after confirming both operands are numeric).
func (v Value) AsFloat64() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Float
	default:
		panic(fmt.Sprintf("object: AsFloat64 called on non-numeric value %s", v.Kind))
	}
}

func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// IsTruthy implements the truthiness rule in spec.md 4.3.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	case KindFloat:
		return v.Float != 0
	case KindNull:
		return false
	case KindString:
		return v.Str != ""
	case KindList:
		return len(v.List) != 0
	case KindRegex:
		return v.Regex.Pattern != ""
	case KindMatch:
		return true
	default:
		return true
	}
}

const floatEqTolerance = 1e-9

// Equals implements structural equality, with Int/Float cross-kind
// comparison via an absolute f64 tolerance.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		if v.IsNumeric() && other.IsNumeric() {
			return math.Abs(v.AsFloat64()-other.AsFloat64()) <= floatEqTolerance
		}
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == other.Int
	case KindFloat:
		return math.Abs(v.Float-other.Float) <= floatEqTolerance
	case KindBool:
		return v.Bool == other.Bool
	case KindString:
		return v.Str == other.Str
	case KindNull:
		return true
	case KindRegex:
		return v.Regex.Pattern == other.Regex.Pattern && v.Regex.Flags == other.Regex.Flags
	case KindMatch:
		return v.Match == other.Match
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equals(other.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToDisplayString implements to_string/4.3: the textual rendering used by
// print, fstring substitution, ++ concatenation, and string(expr) casts.
func (v Value) ToDisplayString() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	case KindNull:
		return "null"
	case KindRegex:
		return "/" + v.Regex.Pattern + "/" + v.Regex.Flags
	case KindMatch:
		return v.Match.Content
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.ToDisplayString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

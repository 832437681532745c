package object

// Type is the runtime representation of a clipscript type annotation. It
// mirrors ast.Type but lives in package object so that Value (ElemType)
// and the evaluator's MatchesType can depend on it without an import
// cycle back to the parser/ast layer.
type Type struct {
	Name string // "int", "float", "boolean", "string", "regex", "match", "list"
	Elem *Type  // element type when Name == "list"; nil for an unconstrained list
}

func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}
	if t.Name == "list" && t.Elem != nil {
		return "list<" + t.Elem.String() + ">"
	}
	return t.Name
}

// MatchesType implements the matches_type predicate from spec.md 4.3: an
// exact Kind match, plus Int<->Float widening in both directions, plus
// recursive element checking for list<T>. A list type with no element
// constraint (Elem == nil) accepts any list.
func MatchesType(v Value, t *Type) bool {
	if t == nil {
		return true
	}
	switch t.Name {
	case "int":
		return v.Kind == KindInt || v.Kind == KindFloat
	case "float":
		return v.Kind == KindFloat || v.Kind == KindInt
	case "boolean":
		return v.Kind == KindBool
	case "string":
		return v.Kind == KindString
	case "regex":
		return v.Kind == KindRegex
	case "match":
		return v.Kind == KindMatch
	case "list":
		if v.Kind != KindList {
			return false
		}
		if t.Elem == nil {
			return true
		}
		for _, elem := range v.List {
			if !MatchesType(elem, t.Elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

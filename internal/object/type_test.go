package object

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestMatchesTypeNil(t *testing.T) {
	assert.True(t, MatchesType(Int(1), nil))
}

func TestMatchesTypeWidening(t *testing.T) {
	assert.True(t, MatchesType(Int(1), &Type{Name: "float"}))
	assert.True(t, MatchesType(Float(1.0), &Type{Name: "int"}))
}

func TestMatchesTypeExact(t *testing.T) {
	assert.True(t, MatchesType(Bool(true), &Type{Name: "boolean"}))
	assert.False(t, MatchesType(Int(1), &Type{Name: "boolean"}))
	assert.True(t, MatchesType(String("x"), &Type{Name: "string"}))
	assert.True(t, MatchesType(Regex("a", ""), &Type{Name: "regex"}))
	assert.True(t, MatchesType(Match(0, 1, "a"), &Type{Name: "match"}))
}

func TestMatchesTypeListUnconstrained(t *testing.T) {
	assert.True(t, MatchesType(List([]Value{Int(1), String("x")}), &Type{Name: "list"}))
}

func TestMatchesTypeListConstrained(t *testing.T) {
	intList := &Type{Name: "list", Elem: &Type{Name: "int"}}
	assert.True(t, MatchesType(List([]Value{Int(1), Int(2)}), intList))
	assert.False(t, MatchesType(List([]Value{Int(1), String("x")}), intList))
}

func TestMatchesTypeNestedList(t *testing.T) {
	nested := &Type{Name: "list", Elem: &Type{Name: "list", Elem: &Type{Name: "int"}}}
	ok := List([]Value{List([]Value{Int(1)}), List([]Value{Int(2), Int(3)})})
	assert.True(t, MatchesType(ok, nested))

	bad := List([]Value{List([]Value{String("x")})})
	assert.False(t, MatchesType(bad, nested))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, (&Type{Name: "int"}).String(), "int")
	assert.Equal(t, (&Type{Name: "list", Elem: &Type{Name: "string"}}).String(), "list<string>")
	var nilType *Type
	assert.Equal(t, nilType.String(), "<unknown>")
}

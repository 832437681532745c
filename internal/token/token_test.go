package token

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, LookupIdent("function"), FUNCTION)
	assert.Equal(t, LookupIdent("returns"), RETURNS)
	assert.Equal(t, LookupIdent("if"), IF)
	assert.Equal(t, LookupIdent("elif"), ELIF)
	assert.Equal(t, LookupIdent("while"), WHILE)
	assert.Equal(t, LookupIdent("true"), BOOL)
	assert.Equal(t, LookupIdent("false"), BOOL)
	assert.Equal(t, LookupIdent("someVar"), IDENT)
}

func TestReservedTypeNames(t *testing.T) {
	for _, name := range []string{"int", "float", "boolean", "string", "regex", "match", "list"} {
		assert.True(t, ReservedTypeNames[name])
	}
	assert.False(t, ReservedTypeNames["function"])
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	assert.Equal(t, p.String(), "3:7")
}

func TestMerge(t *testing.T) {
	a := Span{Start: Position{1, 1}, End: Position{1, 5}}
	b := Span{Start: Position{2, 1}, End: Position{2, 10}}
	m := Merge(a, b)
	assert.Equal(t, m.Start, Position{1, 1})
	assert.Equal(t, m.End, Position{2, 10})

	// Merge is order-independent.
	m2 := Merge(b, a)
	assert.Equal(t, m2.Start, m.Start)
	assert.Equal(t, m2.End, m.End)
}

func TestIsExpressionEnd(t *testing.T) {
	terminators := []Type{IDENT, INT, FLOAT, STRING, FSTRING, BOOL, REGEX, RPAREN, RBRACKET, RBRACE, EOF}
	for _, typ := range terminators {
		assert.True(t, typ.IsExpressionEnd())
	}
	nonTerminators := []Type{PLUS, MINUS, LPAREN, LBRACE, COMMA, ASSIGN, AND, OR}
	for _, typ := range nonTerminators {
		assert.False(t, typ.IsExpressionEnd())
	}
}

package methods

import (
	"testing"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
	"github.com/deepnoodle-ai/wonton/assert"
)

var noSpan = token.Span{}

func TestDispatchLengthStringAndList(t *testing.T) {
	v, err := Dispatch("length", object.String("hello"), nil, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Int(5))

	v, err = Dispatch("length", object.List([]object.Value{object.Int(1), object.Int(2)}), nil, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Int(2))
}

func TestDispatchLengthWrongReceiverIsTypeError(t *testing.T) {
	_, err := Dispatch("length", object.Int(5), nil, noSpan)
	assert.NotNil(t, err)
	e, ok := err.(*errs.Error)
	assert.True(t, ok)
	assert.Equal(t, e.Kind, errs.Type)
}

func TestDispatchUnknownMethod(t *testing.T) {
	_, err := Dispatch("frobnicate", object.String("x"), nil, noSpan)
	assert.NotNil(t, err)
}

func TestToUpperToLowerTrim(t *testing.T) {
	v, err := Dispatch("toUpper", object.String("aBc"), nil, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("ABC"))

	v, err = Dispatch("toLower", object.String("aBc"), nil, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("abc"))

	v, err = Dispatch("trim", object.String("  hi  "), nil, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("hi"))
}

func TestSubstringClampsNegativeIndices(t *testing.T) {
	v, err := Dispatch("substring", object.String("hello"), []object.Value{object.Int(-3), object.Int(100)}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("llo"))
}

func TestSubstringStartAfterEndReturnsEmpty(t *testing.T) {
	v, err := Dispatch("substring", object.String("hello"), []object.Value{object.Int(4), object.Int(1)}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String(""))
}

func TestReplace(t *testing.T) {
	v, err := Dispatch("replace", object.String("foo bar foo"), []object.Value{object.String("foo"), object.String("baz")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("baz bar baz"))
}

func TestStringContainsIndexOfStartsEndsWith(t *testing.T) {
	s := object.String("hello world")

	v, err := Dispatch("contains", s, []object.Value{object.String("world")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Bool(true))

	v, err = Dispatch("indexOf", s, []object.Value{object.String("world")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Int(6))

	v, err = Dispatch("startsWith", s, []object.Value{object.String("hello")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Bool(true))

	v, err = Dispatch("endsWith", s, []object.Value{object.String("world")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Bool(true))
}

func TestSplitWithDelimiterAndEmptyDelimiter(t *testing.T) {
	v, err := Dispatch("split", object.String("a,b,c"), []object.Value{object.String(",")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.List([]object.Value{object.String("a"), object.String("b"), object.String("c")}))

	v, err = Dispatch("split", object.String("abc"), []object.Value{object.String("")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.List([]object.Value{object.String("a"), object.String("b"), object.String("c")}))
}

func TestHasMatchAndReplaceMatch(t *testing.T) {
	m := object.Match(2, 5, "llo")
	v, err := Dispatch("hasMatch", object.String("hello"), []object.Value{m}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Bool(true))

	v, err = Dispatch("replaceMatch", object.String("hello"), []object.Value{m, object.String("p")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.String("hep"))
}

func TestListGetNegativeIndexAndOutOfRange(t *testing.T) {
	list := object.List([]object.Value{object.Int(1), object.Int(2), object.Int(3)})

	v, err := Dispatch("get", list, []object.Value{object.Int(-1)}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Int(3))

	_, err = Dispatch("get", list, []object.Value{object.Int(10)}, noSpan)
	assert.NotNil(t, err)
}

func TestListPushReturnsNewList(t *testing.T) {
	list := object.List([]object.Value{object.Int(1)})
	v, err := Dispatch("push", list, []object.Value{object.Int(2)}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.List([]object.Value{object.Int(1), object.Int(2)}))
	// original is untouched
	assert.Equal(t, list, object.List([]object.Value{object.Int(1)}))
}

func TestListSlice(t *testing.T) {
	list := object.List([]object.Value{object.Int(1), object.Int(2), object.Int(3), object.Int(4)})
	v, err := Dispatch("slice", list, []object.Value{object.Int(1), object.Int(3)}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.List([]object.Value{object.Int(2), object.Int(3)}))
}

func TestListContainsAndIndexOf(t *testing.T) {
	list := object.List([]object.Value{object.String("a"), object.String("b")})

	v, err := Dispatch("contains", list, []object.Value{object.String("b")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Bool(true))

	v, err = Dispatch("indexOf", list, []object.Value{object.String("z")}, noSpan)
	assert.Nil(t, err)
	assert.Equal(t, v, object.Int(-1))
}

func TestRegexGetAll(t *testing.T) {
	re := object.Regex(`\d+`, "")
	v, err := Dispatch("getAll", re, []object.Value{object.String("a1 b22 c333")}, noSpan)
	assert.Nil(t, err)
	list := v.List
	assert.Len(t, list, 3)
	assert.Equal(t, list[0].Match.Content, "1")
	assert.Equal(t, list[1].Match.Content, "22")
	assert.Equal(t, list[2].Match.Content, "333")
}

func TestRegexGetAllCaseInsensitiveFlag(t *testing.T) {
	re := object.Regex("abc", "i")
	v, err := Dispatch("getAll", re, []object.Value{object.String("ABC")}, noSpan)
	assert.Nil(t, err)
	assert.Len(t, v.List, 1)
}

func TestCompileInvalidPatternIsRuntimeError(t *testing.T) {
	re := object.Regex("(unclosed", "")
	_, err := Compile(re, noSpan)
	assert.NotNil(t, err)
}

func TestArityErrorOnWrongArgCount(t *testing.T) {
	_, err := Dispatch("substring", object.String("hi"), []object.Value{object.Int(0)}, noSpan)
	assert.NotNil(t, err)
	e, ok := err.(*errs.Error)
	assert.True(t, ok)
	assert.Equal(t, e.Kind, errs.Arity)
}

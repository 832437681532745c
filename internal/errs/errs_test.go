package errs

import (
	"testing"

	"github.com/clipscript/clipscript/internal/token"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestFriendlyErrorMessageWithSpan(t *testing.T) {
	span := token.Span{Start: token.Position{Line: 4, Column: 9}}
	err := New(Type, "cannot add string and int", span)
	assert.Equal(t, err.FriendlyErrorMessage(), "Type Error [at line 4, col 9]: cannot add string and int")
	assert.Equal(t, err.Error(), err.FriendlyErrorMessage())
}

func TestFriendlyErrorMessageUnspanned(t *testing.T) {
	err := Unspanned(Runtime, "no log file initialized")
	assert.Equal(t, err.FriendlyErrorMessage(), "Runtime Error : no log file initialized")
}

func TestNewfAndUnspannedf(t *testing.T) {
	span := token.Span{}
	err := Newf(Arity, span, "%s() expects %d argument(s), got %d", "print", 1, 2)
	assert.Equal(t, err.Message, "print() expects 1 argument(s), got 2")

	err2 := Unspannedf(DivideByZero, "division by %d", 0)
	assert.Equal(t, err2.Message, "division by 0")
	assert.Nil(t, err2.Span)
}

func TestIsExit(t *testing.T) {
	exitErr := New(Exit, "program terminated", token.Span{})
	assert.True(t, exitErr.IsExit())

	runtimeErr := New(Runtime, "boom", token.Span{})
	assert.False(t, runtimeErr.IsExit())

	var nilErr *Error
	assert.False(t, nilErr.IsExit())
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Runtime:      "Runtime",
		Syntax:       "Syntax",
		Type:         "Type",
		Arity:        "Arity",
		DivideByZero: "DivideByZero",
		Exit:         "Exit",
	}
	for kind, want := range cases {
		assert.Equal(t, kind.String(), want)
	}
}

package object

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestIsTruthy(t *testing.T) {
	truthy := []Value{Int(1), Float(0.5), Bool(true), String("x"), List([]Value{Int(1)}), Match(0, 1, "a")}
	for _, v := range truthy {
		assert.True(t, v.IsTruthy())
	}

	falsy := []Value{Int(0), Float(0), Bool(false), String(""), Null, List(nil), Regex("", "")}
	for _, v := range falsy {
		assert.False(t, v.IsTruthy())
	}
}

func TestEqualsSameKind(t *testing.T) {
	assert.True(t, Int(5).Equals(Int(5)))
	assert.False(t, Int(5).Equals(Int(6)))
	assert.True(t, String("a").Equals(String("a")))
	assert.True(t, Null.Equals(Null))
	assert.True(t, List([]Value{Int(1), Int(2)}).Equals(List([]Value{Int(1), Int(2)})))
	assert.False(t, List([]Value{Int(1)}).Equals(List([]Value{Int(1), Int(2)})))
}

func TestEqualsNumericCrossKind(t *testing.T) {
	assert.True(t, Int(2).Equals(Float(2.0)))
	assert.True(t, Float(2.0).Equals(Int(2)))
	assert.False(t, Int(2).Equals(Float(2.5)))
}

func TestEqualsReflexive(t *testing.T) {
	values := []Value{Int(3), Float(1.5), Bool(true), String("hi"), Null, List([]Value{Int(1)}), Regex("a", "i"), Match(0, 1, "a")}
	for _, v := range values {
		assert.True(t, v.Equals(v))
	}
}

func TestAsFloat64(t *testing.T) {
	assert.Equal(t, Int(4).AsFloat64(), 4.0)
	assert.Equal(t, Float(2.5).AsFloat64(), 2.5)
}

func TestAsFloat64PanicsOnNonNumeric(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	String("x").AsFloat64()
}

func TestToDisplayString(t *testing.T) {
	assert.Equal(t, Int(42).ToDisplayString(), "42")
	assert.Equal(t, Float(1.5).ToDisplayString(), "1.5")
	assert.Equal(t, Bool(true).ToDisplayString(), "true")
	assert.Equal(t, Bool(false).ToDisplayString(), "false")
	assert.Equal(t, String("hi").ToDisplayString(), "hi")
	assert.Equal(t, Null.ToDisplayString(), "null")
	assert.Equal(t, Regex("a+", "i").ToDisplayString(), "/a+/i")
	assert.Equal(t, Match(0, 3, "abc").ToDisplayString(), "abc")
	assert.Equal(t, List([]Value{Int(1), String("x")}).ToDisplayString(), "[1, x]")
}

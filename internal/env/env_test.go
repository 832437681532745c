package env

import (
	"testing"

	"github.com/clipscript/clipscript/internal/object"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestGetMissReturnsNull(t *testing.T) {
	e := New()
	v, ok := e.Get("x")
	assert.False(t, ok)
	assert.Equal(t, v, object.Null)
}

func TestSetAndGetCurrentScope(t *testing.T) {
	e := New()
	e.Set("x", object.Int(5))
	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, v, object.Int(5))
}

func TestGetWalksParentChain(t *testing.T) {
	root := New()
	root.Set("x", object.Int(1))
	child := NewEnclosed(root)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, v, object.Int(1))
	assert.Equal(t, child.Outer(), root)
}

func TestSetAlwaysWritesCurrentScope(t *testing.T) {
	root := New()
	root.Set("x", object.Int(1))
	child := NewEnclosed(root)

	child.Set("x", object.Int(2))

	childVal, _ := child.Get("x")
	rootVal, _ := root.Get("x")
	assert.Equal(t, childVal, object.Int(2))
	assert.Equal(t, rootVal, object.Int(1))
}

func TestShadowingDoesNotLeakToParent(t *testing.T) {
	root := New()
	child1 := NewEnclosed(root)
	child2 := NewEnclosed(root)

	child1.Set("y", object.Int(10))

	_, ok := child2.Get("y")
	assert.False(t, ok)
}

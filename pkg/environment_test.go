package tlox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", NumberValue(1, CodeSpan{}))

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v.Number)
}

func TestEnvironmentGetMissingReportsFalse(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironmentInnerFrameShadowsOuter(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", StringValue("outer", CodeSpan{}))

	env.PushFrame()
	env.Define("x", StringValue("inner", CodeSpan{}))

	v, _ := env.Get("x")
	assert.Equal(t, "inner", v.Str)

	env.PopFrame()
	v, _ = env.Get("x")
	assert.Equal(t, "outer", v.Str)
}

func TestEnvironmentAssignFindsEnclosingFrame(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", NumberValue(1, CodeSpan{}))

	env.PushFrame()
	ok := env.Assign("x", NumberValue(2, CodeSpan{}))
	assert.True(t, ok)
	env.PopFrame()

	v, _ := env.Get("x")
	assert.Equal(t, 2.0, v.Number)
}

func TestEnvironmentAssignUndeclaredFails(t *testing.T) {
	env := NewEnvironment()
	ok := env.Assign("nope", NumberValue(1, CodeSpan{}))
	assert.False(t, ok)
}

func TestEnvironmentDefineWithNoOpenFrameGoesToGlobal(t *testing.T) {
	env := NewEnvironment()
	env.PushFrame()
	env.PopFrame()

	env.Define("x", NumberValue(1, CodeSpan{}))
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v.Number)
}

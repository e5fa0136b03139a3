package tlox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream(source string) *TokenStream {
	return NewTokenStream(NewScanner(source))
}

func TestTokenStreamNextAdvances(t *testing.T) {
	ts := newTestStream("1 + 2")
	defer ts.Drain()

	assert.Equal(t, TokenNumber, ts.Next().Type)
	assert.Equal(t, TokenPlus, ts.Next().Type)
	assert.Equal(t, TokenNumber, ts.Next().Type)
	assert.Equal(t, TokenEOF, ts.Next().Type)
	assert.Equal(t, TokenEOF, ts.Next().Type, "reading past the end stays at EOF")
}

func TestTokenStreamPeekDoesNotAdvance(t *testing.T) {
	ts := newTestStream("1 + 2")
	defer ts.Drain()

	first := ts.Peek()
	second := ts.Peek()
	assert.Equal(t, first, second)

	assert.Equal(t, first, ts.Next())
	assert.Equal(t, TokenPlus, ts.Next().Type)
}

func TestTokenStreamBack(t *testing.T) {
	ts := newTestStream("1 + 2")
	defer ts.Drain()

	one := ts.Next()
	plus := ts.Next()

	require.NoError(t, ts.Back())
	assert.Equal(t, plus, ts.Next())

	require.NoError(t, ts.Back())
	require.NoError(t, ts.Back())
	assert.Equal(t, one, ts.Next())

	require.NoError(t, ts.Back())
	assert.Error(t, ts.Back(), "backing past the start is an error")
}

func TestTokenStreamSaveAndLoadPosition(t *testing.T) {
	ts := newTestStream("1 + 2 + 3")
	defer ts.Drain()

	ts.Next()
	pos := ts.SavePosition()

	ts.Next()
	ts.Next()

	ts.LoadPosition(pos)
	assert.Equal(t, TokenPlus, ts.Next().Type)
}

func TestTokenStreamCurrentPosition(t *testing.T) {
	ts := newTestStream("12 + 3")
	defer ts.Drain()

	assert.Equal(t, StartLocation(), ts.CurrentPosition())

	tok := ts.Next()
	assert.Equal(t, tok.Span.End, ts.CurrentPosition())

	// Peek is net-zero on the index, so it must not move CurrentPosition.
	before := ts.CurrentPosition()
	ts.Peek()
	assert.Equal(t, before, ts.CurrentPosition())
}

func TestTokenStreamHasNext(t *testing.T) {
	ts := newTestStream("1")
	defer ts.Drain()

	assert.True(t, ts.HasNext())
	ts.Next()
	assert.False(t, ts.HasNext())
}

func TestTokenStreamDrainUnblocksEarlyAbort(t *testing.T) {
	ts := newTestStream("1 2 3 4 5 6 7 8 9 10")
	ts.Next()

	done := make(chan error, 1)
	go func() { done <- ts.Drain() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Drain did not unblock the scanner goroutine")
	}
}

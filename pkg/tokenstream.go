package tlox

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// StreamPosition is an opaque snapshot of a TokenStream's read position, usable
// with SavePosition/LoadPosition to back out of a speculative parse.
type StreamPosition int

// TokenStream is a memoizing, seekable view over a Tokenizer's lazy output. It
// runs the tokenizer on a goroutine supervised by golang.org/x/sync/errgroup,
// converting a scanner panic into a returned error instead of crashing the
// process.
type TokenStream struct {
	tokenizer Tokenizer
	group     *errgroup.Group

	buf []Token
	idx int
}

// NewTokenStream starts t running on a background goroutine and returns a
// TokenStream ready to read from it.
func NewTokenStream(t Tokenizer) *TokenStream {
	var g errgroup.Group
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("scanner panicked: %v", r)
				// Do never reached its own close; close here so readers and
				// Drain see end-of-stream instead of blocking forever.
				close(t.Chan())
			}
		}()

		t.Do()
		return nil
	})

	return &TokenStream{tokenizer: t, group: &g}
}

// fill ensures buf holds at least n+1 tokens, pulling from the tokenizer's
// channel as needed. Once the channel closes — which only happens after the
// tokenizer has sent its trailing TokenEOF — further fills replicate the last
// buffered token, so reading past the end of the stream is always safe.
func (ts *TokenStream) fill(n int) {
	for len(ts.buf) <= n {
		tok, ok := <-ts.tokenizer.Chan()
		if !ok {
			if len(ts.buf) == 0 {
				ts.buf = append(ts.buf, Token{Type: TokenEOF})
			} else {
				ts.buf = append(ts.buf, ts.buf[len(ts.buf)-1])
			}
			continue
		}

		ts.buf = append(ts.buf, tok)
	}
}

func (ts *TokenStream) tokenAt(i int) Token {
	ts.fill(i)
	return ts.buf[i]
}

// Next returns the token at the current index, scanning another if the memo
// does not reach that far yet, and advances the index.
func (ts *TokenStream) Next() Token {
	tok := ts.tokenAt(ts.idx)
	ts.idx++
	return tok
}

// Peek returns the next token without consuming it. Idempotent: repeated peeks
// return the same token and never move CurrentPosition.
func (ts *TokenStream) Peek() Token {
	tok := ts.Next()
	ts.idx--
	return tok
}

// Back rewinds the stream by one position. It is an error to back up past the
// beginning of the stream.
func (ts *TokenStream) Back() error {
	if ts.idx == 0 {
		return errors.New("tokenstream: already at the beginning")
	}

	ts.idx--
	return nil
}

// SavePosition captures the current read position for a later LoadPosition,
// enabling a speculative parse to back out cleanly.
func (ts *TokenStream) SavePosition() StreamPosition {
	return StreamPosition(ts.idx)
}

// LoadPosition restores a position previously returned by SavePosition.
func (ts *TokenStream) LoadPosition(p StreamPosition) {
	ts.idx = int(p)
}

// CurrentPosition is the end location of the most recently returned token, or
// the start of the source if nothing has been read yet.
func (ts *TokenStream) CurrentPosition() Location {
	if ts.idx == 0 {
		return StartLocation()
	}

	return ts.buf[ts.idx-1].Span.End
}

// HasNext reports whether Peek would return anything other than end-of-stream.
func (ts *TokenStream) HasNext() bool {
	return ts.Peek().Type != TokenEOF
}

// Drain reads and discards any tokens the tokenizer goroutine has not yet had
// consumed, then waits for it to finish. A parser that aborts before reaching
// TokenEOF leaves the goroutine blocked sending into a bounded channel; callers
// that stop consuming early must call Drain so it always unblocks and exits.
func (ts *TokenStream) Drain() error {
	for range ts.tokenizer.Chan() {
	}

	return ts.group.Wait()
}

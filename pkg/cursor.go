package tlox

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// eof is returned by the cursor once the underlying stream is exhausted. It never
// collides with a legal source rune since decoding UTF-8 text never yields a
// negative rune, so the sentinel lives just below that range.
const eof rune = -1

// cursor is a buffered rune iterator over a source string. It tracks the current
// Location and offers one- and two-rune lookahead without advancing the reported
// position.
type cursor struct {
	reader *bufio.Reader
	loc    Location

	// lookahead buffers up to two runes read ahead of loc, so peek/peek2 never
	// observably move the reported location.
	lookahead    [2]rune
	lookaheadLen int
}

// newCursor wraps source in a cursor starting at the beginning of the text.
func newCursor(source string) *cursor {
	return &cursor{
		reader: bufio.NewReader(strings.NewReader(source)),
		loc:    StartLocation(),
	}
}

// fill ensures at least n runes (n <= 2) are buffered in the lookahead, reading
// from the underlying stream as needed.
func (c *cursor) fill(n int) {
	for c.lookaheadLen < n {
		r, _, err := c.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				r = eof
			} else {
				r = utf8.RuneError
			}
		}

		c.lookahead[c.lookaheadLen] = r
		c.lookaheadLen++
	}
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() rune {
	c.fill(1)
	return c.lookahead[0]
}

// peek2 returns the rune after next without consuming either.
func (c *cursor) peek2() rune {
	c.fill(2)
	return c.lookahead[1]
}

// next consumes and returns the next rune, advancing the current Location. \n
// resets the column to 0 and increments the line; any other rune increments the
// column.
func (c *cursor) next() rune {
	c.fill(1)

	r := c.lookahead[0]
	c.lookahead[0] = c.lookahead[1]
	c.lookaheadLen--

	if r != eof {
		c.loc = c.loc.Advance(r)
	}

	return r
}

// location returns the current position of the cursor.
func (c *cursor) location() Location {
	return c.loc
}

// peekLocation returns the location that would hold after consuming the next
// rune, without advancing the cursor.
func (c *cursor) peekLocation() Location {
	r := c.peek()
	if r == eof {
		return c.loc
	}

	return c.loc.Advance(r)
}

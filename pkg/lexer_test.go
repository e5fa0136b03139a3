package tlox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tlox.dev/internal/test"
)

// scanAll drains a Scanner to completion, returning every token up to but
// excluding the trailing TokenEOF.
func scanAll(source string) []Token {
	s := NewScanner(source)
	go s.Do()

	var toks []Token
	for tok := range s.Chan() {
		if tok.Type == TokenEOF {
			break
		}
		toks = append(toks, tok)
	}

	return toks
}

func TestScanner(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		expect []TokenType
	}{
		{"empty", "", []TokenType{}},
		{
			"punctuation and keywords",
			"var x = 1 + 2;",
			[]TokenType{TokenVar, TokenIdentifier, TokenEqual, TokenNumber, TokenPlus, TokenNumber, TokenSemicolon},
		},
		{
			"composite operators",
			"!= == <= >= < > = !",
			[]TokenType{TokenBangEqual, TokenEqualEqual, TokenLessEqual, TokenGreaterEqual, TokenLess, TokenGreater, TokenEqual, TokenBang},
		},
		{
			"comment is skipped",
			"1 // a comment\n2",
			[]TokenType{TokenNumber, TokenNumber},
		},
		{
			"keywords are not identifiers",
			"and or true false nil if else while for fun return print class",
			[]TokenType{TokenAnd, TokenOr, TokenTrue, TokenFalse, TokenNil, TokenIf, TokenElse, TokenWhile, TokenFor, TokenFun, TokenReturn, TokenPrint, TokenClass},
		},
		{
			"trailing dot with no digit is a separate token",
			"1.",
			[]TokenType{TokenNumber, TokenDot},
		},
		{
			"unterminated string yields invalid",
			"\"abc",
			[]TokenType{TokenInvalid},
		},
		{
			"unrecognised character yields invalid",
			"@",
			[]TokenType{TokenInvalid},
		},
		{
			"maximal munch: ifor is one identifier, not if + or",
			"ifor",
			[]TokenType{TokenIdentifier},
		},
		{
			"composite operators are eager: !== lexes as != then =",
			"!==",
			[]TokenType{TokenBangEqual, TokenEqual},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks := scanAll(c.src)

			types := make([]TokenType, len(toks))
			for i, tok := range toks {
				types[i] = tok.Type
			}

			assert.Equal(t, c.expect, types)
		})
	}
}

func TestScannerNumberValue(t *testing.T) {
	toks := scanAll("12.5")
	require.Len(t, toks, 1)
	assert.Equal(t, 12.5, toks[0].Number)
}

func TestScannerStringValue(t *testing.T) {
	toks := scanAll(`"hello world"`)
	require.Len(t, toks, 1)
	assert.Equal(t, "hello world", toks[0].Text)
}

func TestScannerIdentifierText(t *testing.T) {
	toks := scanAll("someName123")
	require.Len(t, toks, 1)
	assert.Equal(t, TokenIdentifier, toks[0].Type)
	assert.Equal(t, "someName123", toks[0].Text)
}

func TestScannerUnterminatedStringError(t *testing.T) {
	toks := scanAll(`"abc`)
	require.Len(t, toks, 1)
	_, ok := toks[0].Err.(*UnterminatedStringError)
	assert.True(t, ok)
}

func TestScannerTracksLineNumbers(t *testing.T) {
	toks := scanAll("1\n2\n3")
	require.Len(t, toks, 3)
	assert.Equal(t, uint64(1), toks[0].Span.Start.Line)
	assert.Equal(t, uint64(2), toks[1].Span.Start.Line)
	assert.Equal(t, uint64(3), toks[2].Span.Start.Line)
}

var benchResult []Token

func benchmarkScanner(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		data := test.GetRandomTokens(size)
		b.StartTimer()

		benchResult = scanAll(data)
	}
}

func BenchmarkScanner100(b *testing.B)    { benchmarkScanner(100, b) }
func BenchmarkScanner1000(b *testing.B)   { benchmarkScanner(1000, b) }
func BenchmarkScanner10000(b *testing.B)  { benchmarkScanner(10000, b) }
func BenchmarkScanner100000(b *testing.B) { benchmarkScanner(100000, b) }

package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type sliceReader[T comparable] struct {
	tokens []Token[T]
}

func (s *sliceReader[T]) Next() (Token[T], bool) {
	if len(s.tokens) == 0 {
		return Token[T]{}, true
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, false
}

func textOf(tokens []Token[string]) string {
	parts := []string{}
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

func TestParseRPN(t *testing.T) {
	cases := []struct {
		expr string
		rpn  string
	}{
		{"", ""},
		{"1", "1"},
		{"1 + 2 + 3 + 4", "1 2 + 3 + 4 +"},
		{"1 * 2 + 3 * 4", "1 2 * 3 4 * +"},
		{"1 + 2 * 3 + 4", "1 2 3 * + 4 +"},
		{"1 - 2 + 3 - 4", "1 2 - 3 + 4 -"},
		{"1 / 2 * 3 / 4", "1 2 / 3 * 4 /"},
		{"8 - 2 - 1", "8 2 - 1 -"},
		{"1 + 2 * 3 * 4 - 5", "1 2 3 * 4 * + 5 -"},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			require.Equal(t, c.rpn, FormatRPN(ParseRPN(c.expr)))
		})
	}
}

func TestParseRPNKeepsPositions(t *testing.T) {
	tokens := Collect(ParseRPN("12 + 3"))
	require.Equal(t, []Token[TokenType]{
		{Position: 0, Type: TokenTypeNum, Text: "12"},
		{Position: 5, Type: TokenTypeNum, Text: "3"},
		{Position: 3, Type: TokenTypeAdd, Text: "+"},
	}, tokens)
}

func TestParseRPNIsLazy(t *testing.T) {
	src := &sliceReader[TokenType]{tokens: []Token[TokenType]{
		{Position: 0, Type: TokenTypeNum, Text: "1"},
		{Position: 1, Type: TokenTypeAdd, Text: "+"},
		{Position: 2, Type: TokenTypeNum, Text: "2"},
	}}
	p := NewPostfix[TokenType, int](src, isOperand, getPrecedence)

	tok, done := p.Next()
	require.False(t, done)
	require.Equal(t, "1", tok.Text)
	require.Len(t, src.tokens, 2)
}

func TestPostfixCustomRanks(t *testing.T) {
	ranks := map[string]float64{"+": 1, "*": 2, "^": 3.5}
	tok := func(text string) Token[string] {
		typ := "operand"
		if _, ok := ranks[text]; ok {
			typ = text
		}
		return Token[string]{Type: typ, Text: text}
	}
	src := &sliceReader[string]{tokens: []Token[string]{
		tok("a"), tok("+"), tok("b"), tok("^"), tok("c"), tok("*"), tok("d"),
	}}
	p := NewPostfix[string, float64](
		src,
		func(typ string) bool { return typ == "operand" },
		func(typ string) float64 { return ranks[typ] },
	)

	require.Equal(t, "a b c ^ d * +", textOf(Collect[string](p)))
}

func TestPostfixEmpty(t *testing.T) {
	p := NewPostfix[TokenType, int](&sliceReader[TokenType]{}, isOperand, getPrecedence)
	_, done := p.Next()
	require.True(t, done)
	_, done = p.Next()
	require.True(t, done)
}

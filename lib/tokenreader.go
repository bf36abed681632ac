package lib

import "golang.org/x/exp/slices"

type TokenReader[T comparable] interface {
	Next() (tok Token[T], done bool)
}

type skipReader[T comparable] struct {
	reader TokenReader[T]
	skip   []T
}

// Skip drops every token whose type is one of types, e.g. whitespace.
func Skip[T comparable](reader TokenReader[T], types ...T) TokenReader[T] {
	return &skipReader[T]{reader: reader, skip: types}
}

func (s *skipReader[T]) Next() (Token[T], bool) {
	for {
		tok, done := s.reader.Next()
		if done {
			return Token[T]{}, true
		}
		if !slices.Contains(s.skip, tok.Type) {
			return tok, false
		}
	}
}

// Collect drains a reader into a slice.
func Collect[T comparable](reader TokenReader[T]) []Token[T] {
	tokens := []Token[T]{}
	for {
		tok, done := reader.Next()
		if done {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

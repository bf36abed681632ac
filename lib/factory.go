package lib

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// TokenizerFactory collects an ordered set of token definitions, at most one
// per token type, and hands out tokenizers over them.
type TokenizerFactory[T comparable] struct {
	flags       Flags
	definitions []*TokenDefinition[T]
	types       map[T]struct{}
}

// NewTokenizerFactory creates an empty factory. flags are applied to every
// definition registered through With.
func NewTokenizerFactory[T comparable](flags Flags) *TokenizerFactory[T] {
	return &TokenizerFactory[T]{
		flags:       flags,
		definitions: []*TokenDefinition[T]{},
		types:       map[T]struct{}{},
	}
}

func (f *TokenizerFactory[T]) Flags() Flags {
	return f.flags
}

// Add registers a definition after the ones already present.
func (f *TokenizerFactory[T]) Add(typ T, pattern string, flags Flags) error {
	if _, exists := f.types[typ]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateType, typ)
	}
	def, err := NewTokenDefinition(typ, pattern, flags)
	if err != nil {
		return err
	}
	f.definitions = append(f.definitions, def)
	f.types[typ] = struct{}{}
	return nil
}

// With is the chainable form of Add using the factory's default flags. Like
// regexp.MustCompile it panics on a bad definition, so it is meant for
// grammars fixed at compile time.
func (f *TokenizerFactory[T]) With(typ T, pattern string) *TokenizerFactory[T] {
	return f.WithFlags(typ, pattern, f.flags)
}

func (f *TokenizerFactory[T]) WithFlags(typ T, pattern string, flags Flags) *TokenizerFactory[T] {
	if err := f.Add(typ, pattern, flags); err != nil {
		panic(fmt.Sprintf("lib: TokenizerFactory.With(%v, %q): %v", typ, pattern, err))
	}
	return f
}

// Definitions returns a copy of the registered definitions in order.
func (f *TokenizerFactory[T]) Definitions() []*TokenDefinition[T] {
	return slices.Clone(f.definitions)
}

// Tokenize returns a new tokenizer over text. Definitions added to the
// factory afterwards do not affect it.
func (f *TokenizerFactory[T]) Tokenize(text string) (*Tokenizer[T], error) {
	return NewTokenizer(f.Definitions(), text)
}

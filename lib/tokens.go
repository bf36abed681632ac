package lib

import (
	"fmt"
	"regexp"
)

// Flags tweak how a token pattern is compiled.
type Flags uint8

const (
	IgnoreCase Flags = 1 << iota
	Multiline
	DotAll
)

func (f Flags) prefix() string {
	s := ""
	if f&IgnoreCase != 0 {
		s += "i"
	}
	if f&Multiline != 0 {
		s += "m"
	}
	if f&DotAll != 0 {
		s += "s"
	}
	if s == "" {
		return ""
	}
	return "(?" + s + ")"
}

type Token[T comparable] struct {
	Position int
	Type     T
	Text     string
}

func NewToken[T comparable](position int, typ T, text string) (Token[T], error) {
	if text == "" {
		return Token[T]{}, ErrEmptyToken
	}
	return Token[T]{Position: position, Type: typ, Text: text}, nil
}

func (t Token[T]) String() string {
	return fmt.Sprintf("%d -> %v: %q", t.Position, t.Type, t.Text)
}

// TokenDefinition recognizes one class of token. The pattern is compiled once
// when the definition is created.
type TokenDefinition[T comparable] struct {
	Type    T
	Pattern string
	Flags   Flags
	re      *regexp.Regexp
}

func NewTokenDefinition[T comparable](typ T, pattern string, flags Flags) (*TokenDefinition[T], error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile(flags.prefix() + `\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &TokenDefinition[T]{
		Type:    typ,
		Pattern: pattern,
		Flags:   flags,
		re:      re,
	}, nil
}

// MatchAt returns the text matched by the definition starting exactly at
// start. A match further along in input does not count, and neither does an
// empty match.
func (d *TokenDefinition[T]) MatchAt(input string, start int) (string, bool) {
	if start < 0 || start > len(input) {
		return "", false
	}
	loc := d.re.FindStringIndex(input[start:])
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", false
	}
	return input[start : start+loc[1]], true
}

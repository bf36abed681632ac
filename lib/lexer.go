package lib

// Tokenizer walks its input once, front to back, producing one token per call
// to Next. It is a cursor, so it must not be shared between goroutines or read
// by two consumers at once. To scan the same text again build a new one.
type Tokenizer[T comparable] struct {
	definitions []*TokenDefinition[T]
	text        string
	offset      int
	failed      bool
}

func NewTokenizer[T comparable](definitions []*TokenDefinition[T], text string) (*Tokenizer[T], error) {
	if len(definitions) == 0 {
		return nil, ErrNoDefinitions
	}
	for _, def := range definitions {
		if def == nil {
			return nil, ErrNilDefinition
		}
	}
	return &Tokenizer[T]{
		definitions: definitions,
		text:        text,
	}, nil
}

// Tokenize is shorthand for NewTokenizer.
func Tokenize[T comparable](definitions []*TokenDefinition[T], text string) (*Tokenizer[T], error) {
	return NewTokenizer(definitions, text)
}

// Next returns the next token. Definitions are tried in order and the first
// one matching at the cursor wins. When nothing matches the tokenizer stops
// for good and reports done, without an error.
func (l *Tokenizer[T]) Next() (tok Token[T], done bool) {
	if l.failed || l.offset >= len(l.text) {
		return Token[T]{}, true
	}

	for _, def := range l.definitions {
		value, ok := def.MatchAt(l.text, l.offset)
		if !ok {
			continue
		}
		tok = Token[T]{Position: l.offset, Type: def.Type, Text: value}
		l.offset += len(value)
		return tok, false
	}

	l.failed = true
	return Token[T]{}, true
}

// Offset is the number of bytes consumed so far. Once Next reports done,
// an offset short of the input length means scanning stopped on text no
// definition matched.
func (l *Tokenizer[T]) Offset() int {
	return l.offset
}

func (l *Tokenizer[T]) Failed() bool {
	return l.failed
}

// Complete reports whether every byte of the input has been tokenized.
func (l *Tokenizer[T]) Complete() bool {
	return !l.failed && l.offset == len(l.text)
}

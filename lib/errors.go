package lib

import (
	"errors"
	"fmt"
)

// Configuration errors
var (
	ErrEmptyPattern   = errors.New("token pattern is empty")
	ErrInvalidPattern = errors.New("invalid token pattern")
	ErrDuplicateType  = errors.New("token type already defined")
	ErrNoDefinitions  = errors.New("no token definitions")
	ErrNilDefinition  = errors.New("nil token definition")
	ErrEmptyToken     = errors.New("token text is empty")
)

// Arithmetic errors
var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrInvalidOperand      = errors.New("invalid operand")
	ErrUnknownOperator     = errors.New("unknown operator")
)

var ErrUnexpectedInput = errors.New("unexpected input")

// InputError reports where tokenization of an expression stopped.
type InputError struct {
	Expression string
	Offset     int
}

func (e *InputError) Error() string {
	rest := e.Expression[e.Offset:]
	if len(rest) > 10 {
		rest = rest[:10] + "..."
	}
	return fmt.Sprintf("Unexpected input at offset %d: %q", e.Offset, rest)
}

func (e *InputError) Unwrap() error {
	return ErrUnexpectedInput
}

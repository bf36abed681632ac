package lib

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TokenTypeNum TokenType = iota
	TokenTypeAdd
	TokenTypeSub
	TokenTypeMul
	TokenTypeDiv
	TokenTypeSpace
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeNum:
		return "num"
	case TokenTypeAdd:
		return "+"
	case TokenTypeSub:
		return "-"
	case TokenTypeMul:
		return "*"
	case TokenTypeDiv:
		return "/"
	case TokenTypeSpace:
		return "space"
	default:
		return "?"
	}
}

type operator func(n, m int) (int, error)

var operators = map[TokenType]operator{
	TokenTypeAdd: func(n, m int) (int, error) { return n + m, nil },
	TokenTypeSub: func(n, m int) (int, error) { return n - m, nil },
	TokenTypeMul: func(n, m int) (int, error) { return n * m, nil },
	TokenTypeDiv: func(n, m int) (int, error) {
		if m == 0 {
			return 0, ErrDivisionByZero
		}
		return n / m, nil
	},
}

func isOperand(t TokenType) bool {
	return t == TokenTypeNum
}

func getPrecedence(t TokenType) int {
	switch t {
	case TokenTypeAdd, TokenTypeSub:
		return 1
	case TokenTypeMul, TokenTypeDiv:
		return 2
	default:
		return 0
	}
}

// Calculator evaluates integer arithmetic over + - * / by converting the
// expression to postfix and running it on a stack.
type Calculator struct {
	tokenizer *TokenizerFactory[TokenType]
}

func NewCalculator() *Calculator {
	return &Calculator{
		tokenizer: NewTokenizerFactory[TokenType](0).
			With(TokenTypeNum, `[1-9][0-9]*`).
			With(TokenTypeAdd, `[+]`).
			With(TokenTypeSub, `[-]`).
			With(TokenTypeMul, `[*]`).
			With(TokenTypeDiv, `[/]`).
			With(TokenTypeSpace, `\s+`),
	}
}

func (c *Calculator) tokenize(expr string) *Tokenizer[TokenType] {
	l, err := c.tokenizer.Tokenize(expr)
	if err != nil {
		// The grammar is fixed in NewCalculator, so this cannot happen.
		panic(err)
	}
	return l
}

func (c *Calculator) postfix(l *Tokenizer[TokenType]) TokenReader[TokenType] {
	return NewPostfix[TokenType, int](Skip[TokenType](l, TokenTypeSpace), isOperand, getPrecedence)
}

// Parse returns expr's tokens in postfix order, read lazily. Scanning stops
// quietly at the first character outside the grammar.
func (c *Calculator) Parse(expr string) TokenReader[TokenType] {
	return c.postfix(c.tokenize(expr))
}

func (c *Calculator) Calc(expr string) (int, error) {
	return CalcRPN(c.Parse(expr))
}

// CalcStrict is Calc, except that any text the grammar does not recognize
// is an *InputError instead of being ignored.
func (c *Calculator) CalcStrict(expr string) (int, error) {
	l := c.tokenize(expr)
	result, err := CalcRPN(c.postfix(l))
	if l.Failed() {
		return 0, &InputError{Expression: expr, Offset: l.Offset()}
	}
	if err != nil {
		return 0, err
	}
	return result, nil
}

var defaultCalculator = NewCalculator()

func Calc(expr string) (int, error) {
	return defaultCalculator.Calc(expr)
}

func ParseRPN(expr string) TokenReader[TokenType] {
	return defaultCalculator.Parse(expr)
}

// CalcRPN evaluates a postfix token stream. Each operator takes the value
// below the top of the stack as its left operand and the top as its right.
// An empty stream evaluates to 0.
func CalcRPN(reader TokenReader[TokenType]) (int, error) {
	values := stack[int]{}
	for {
		tok, done := reader.Next()
		if done {
			break
		}

		if isOperand(tok.Type) {
			n, err := strconv.Atoi(tok.Text)
			if err != nil {
				return 0, fmt.Errorf("%w at %d: %q", ErrInvalidOperand, tok.Position, tok.Text)
			}
			values.push(n)
			continue
		}

		op, ok := operators[tok.Type]
		if !ok {
			return 0, fmt.Errorf("%w at %d: %v", ErrUnknownOperator, tok.Position, tok.Type)
		}
		m, ok := values.pop()
		if !ok {
			return 0, fmt.Errorf("%w: missing right operand of %v at %d", ErrStackUnderflow, tok.Type, tok.Position)
		}
		n, ok := values.pop()
		if !ok {
			return 0, fmt.Errorf("%w: missing left operand of %v at %d", ErrStackUnderflow, tok.Type, tok.Position)
		}
		result, err := op(n, m)
		if err != nil {
			return 0, fmt.Errorf("%v at %d: %w", tok.Type, tok.Position, err)
		}
		values.push(result)
	}

	switch values.len() {
	case 0:
		return 0, nil
	case 1:
		result, _ := values.pop()
		return result, nil
	default:
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, values.len())
	}
}

// FormatRPN drains reader and joins the token texts with spaces.
func FormatRPN(reader TokenReader[TokenType]) string {
	parts := []string{}
	for _, tok := range Collect(reader) {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

package lib

import "golang.org/x/exp/constraints"

// Postfix reorders an infix token stream into postfix order as it is read.
// isOperand picks out the tokens passed straight through; rank gives every
// operator its precedence, higher binding tighter. Operators of equal rank
// associate to the left.
type Postfix[T comparable, P constraints.Ordered] struct {
	reader    TokenReader[T]
	isOperand func(T) bool
	rank      func(T) P
	operators stack[Token[T]]
	pending   *Token[T]
	draining  bool
}

func NewPostfix[T comparable, P constraints.Ordered](
	reader TokenReader[T],
	isOperand func(T) bool,
	rank func(T) P,
) *Postfix[T, P] {
	return &Postfix[T, P]{
		reader:    reader,
		isOperand: isOperand,
		rank:      rank,
	}
}

func (p *Postfix[T, P]) Next() (Token[T], bool) {
	for {
		// An operator is waiting for higher or equal ranked operators to
		// be popped off ahead of it.
		if p.pending != nil {
			top, ok := p.operators.peek()
			if ok && p.rank(p.pending.Type) <= p.rank(top.Type) {
				p.operators.pop()
				return top, false
			}
			p.operators.push(*p.pending)
			p.pending = nil
		}

		if p.draining {
			top, ok := p.operators.pop()
			if !ok {
				return Token[T]{}, true
			}
			return top, false
		}

		tok, done := p.reader.Next()
		if done {
			p.draining = true
			continue
		}

		if p.isOperand(tok.Type) {
			return tok, false
		}

		top, ok := p.operators.peek()
		if !ok || p.rank(top.Type) < p.rank(tok.Type) {
			p.operators.push(tok)
			continue
		}
		p.pending = &tok
	}
}

package lib

type stack[E any] struct {
	items []E
}

func (s *stack[E]) push(e E) {
	s.items = append(s.items, e)
}

func (s *stack[E]) pop() (E, bool) {
	var zero E
	if len(s.items) == 0 {
		return zero, false
	}
	e := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return e, true
}

func (s *stack[E]) peek() (E, bool) {
	var zero E
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack[E]) len() int {
	return len(s.items)
}

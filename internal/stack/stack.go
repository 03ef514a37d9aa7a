package stack

// Stack is a generic LIFO work list.
type Stack[T any] interface {
	Push(items ...T)
	Pop() (T, bool)
	IsEmpty() bool
}

// New creates an empty Stack with an initial capacity of 8.
func New[T any]() Stack[T] {
	return &stack[T]{items: make([]T, 0, 8)}
}

type stack[T any] struct {
	items []T
}

func (s *stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

func (s *stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}

	item := s.items[n-1]
	s.items[n-1] = zero // prevent memory leaks
	s.items = s.items[:n-1]

	// Shrink when sparse (< 25% usage), min capacity 16.
	if c := cap(s.items); c > 16 && len(s.items) <= c/4 {
		buf := make([]T, len(s.items), c/2)
		copy(buf, s.items)
		s.items = buf
	}

	return item, true
}

func (s *stack[T]) IsEmpty() bool { return len(s.items) == 0 }

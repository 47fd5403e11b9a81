package bst

// stack is a LIFO of items backed by a slice. The traversals use it in
// place of recursion so that walking a degenerate tree does not depend on
// call depth.
type stack[T any] struct {
	items []T
}

func newStack[T any](capacity int) *stack[T] {
	return &stack[T]{items: make([]T, 0, capacity)}
}

func (s *stack[T]) push(item T) {
	s.items = append(s.items, item)
}

func (s *stack[T]) pop() (T, error) {
	var zero T
	if s.isEmpty() {
		return zero, errEmptyStack
	}
	last := len(s.items) - 1
	item := s.items[last]
	// drop the reference so popped nodes can be collected
	s.items[last] = zero
	s.items = s.items[:last]
	return item, nil
}

func (s *stack[T]) peek() (T, error) {
	if s.isEmpty() {
		var zero T
		return zero, errEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

func (s *stack[T]) isEmpty() bool {
	return len(s.items) == 0
}

func (s *stack[T]) len() int {
	return len(s.items)
}

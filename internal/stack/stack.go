// Package stack provides the LIFO used to simulate recursion over the
// ordered store without call-depth limits.
package stack

import "errors"

// ErrEmpty is the panic value of Pop and Top on an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a growable LIFO. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity items before it grows.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Init empties the stack, keeping the backing array.
func (s *Stack[T]) Init() {
	var zero T
	for i := range s.items {
		s.items[i] = zero // drop references held by the backing array
	}
	s.items = s.items[:0]
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. It panics with ErrEmpty when the
// stack is empty.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}
	var zero T
	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return v
}

// Top returns the top item without removing it. It panics with ErrEmpty when
// the stack is empty.
func (s *Stack[T]) Top() T {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}
	return s.items[len(s.items)-1]
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

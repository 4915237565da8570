package keyed

import "fmt"

// Stack is a plain LIFO stack with top-relative indexing: At(0) addresses
// the top of the stack, At(Len()-1) the bottom.
//
// The zero value is ready for use. Not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack with room for at least capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 4 {
		capacity = 4
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push pushes an item onto the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, or false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek returns the top item without removing it, or false if the stack is
// empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// At returns a pointer to the i-th item from the top of the stack. It panics
// if i is out of range.
func (s *Stack[T]) At(i int) *T {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("keyed: stack index %d out of range [0, %d)", i, len(s.items)))
	}
	return &s.items[len(s.items)-1-i]
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear removes all items.
func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}

// Iter returns an iterator from the top of the stack to the bottom.
func (s *Stack[T]) Iter() *StackIter[T] {
	return &StackIter[T]{stack: s, pos: len(s.items)}
}

// --------------------------------------------------------------------

// StackIter iterates over a stack from top to bottom.
type StackIter[T any] struct {
	stack *Stack[T]
	pos   int
}

// Next advances the cursor to the next item and returns true if successful.
func (i *StackIter[T]) Next() bool {
	if i.pos > 0 {
		i.pos--
		return true
	}
	return false
}

// Value returns the current item.
func (i *StackIter[T]) Value() T { return i.stack.items[i.pos] }

// Ptr returns a pointer to the current item, allowing in-place mutation.
func (i *StackIter[T]) Ptr() *T { return &i.stack.items[i.pos] }

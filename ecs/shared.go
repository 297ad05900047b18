package ecs

// Shared is a mutable cell owned jointly by sibling components, e.g. an
// orientation written by an on-screen control and read by the behaviour it
// steers. It is the only sanctioned aliasing of mutable state between
// components; holders share the pointer, never a subtree.
//
// Passes are single-threaded, so reads and writes need no locking.
type Shared[T any] struct {
	value T
}

// NewShared allocates a cell holding v.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{value: v}
}

// Get returns the current value.
func (s *Shared[T]) Get() T {
	return s.value
}

// Set replaces the value.
func (s *Shared[T]) Set(v T) {
	s.value = v
}

package arraylist

import "sync"

// SafeList is a mutex-protected wrapper around List for concurrent access.
// Every operation holds the lock for its duration; compound read-modify
// sequences go through Do so they observe a consistent list.
type SafeList[T any] struct {
	mu sync.Mutex
	l  *List[T]
}

// NewSafeList creates a thread-safe heap-backed list with room for capHint
// elements.
func NewSafeList[T any](capHint int) *SafeList[T] {
	return &SafeList[T]{l: New[T](capHint)}
}

// NewSafeListIn creates a thread-safe list backed by alloc. The allocator is
// only ever called under the list's lock.
func NewSafeListIn[T any](alloc Allocator, capHint int) *SafeList[T] {
	return &SafeList[T]{l: NewIn[T](alloc, capHint)}
}

// WithDestructor binds the per-element destructor and returns s.
func (s *SafeList[T]) WithDestructor(d DestroyFunc[T]) *SafeList[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.WithDestructor(d)
	return s
}

// Len thread-safely returns the number of live elements.
func (s *SafeList[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeList[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Cap()
}

// Append thread-safely adds v to the end of the list.
func (s *SafeList[T]) Append(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Append(v)
}

// AppendSlice thread-safely adds all vs with a single growth step.
func (s *SafeList[T]) AppendSlice(vs ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AppendSlice(vs...)
}

// Get thread-safely returns a copy of the element at index i. Unlike At it
// cannot hand out a pointer into the buffer, which would escape the lock.
func (s *SafeList[T]) Get(i int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.l.At(i)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Set thread-safely overwrites the element at index i.
func (s *SafeList[T]) Set(i int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(i, v)
}

// Pop thread-safely discards the last element.
func (s *SafeList[T]) Pop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Pop()
}

// Remove thread-safely discards the element at index i.
func (s *SafeList[T]) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(i)
}

// RemoveRange thread-safely discards elements from through to, inclusive.
func (s *SafeList[T]) RemoveRange(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveRange(from, to)
}

// Reserve thread-safely grows capacity to at least n.
func (s *SafeList[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Reserve(n)
}

// Clear thread-safely discards all elements, keeping capacity.
func (s *SafeList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Deinit thread-safely discards all elements and releases the buffer.
func (s *SafeList[T]) Deinit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Deinit()
}

// Metrics thread-safely returns a snapshot of the list's occupancy.
func (s *SafeList[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Metrics()
}

// Do runs fn with the lock held, giving it the underlying list for compound
// operations (iteration, sort, find-then-remove). fn must not retain the
// list or pointers into it past its return.
func (s *SafeList[T]) Do(fn func(l *List[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.l)
}

package arraylist

import "github.com/pkg/errors"

// CloneFunc duplicates one element into dst, allocating any owned memory
// through alloc so the result is fully independent of src. dst points at
// uninitialized storage and must be completely written.
type CloneFunc[T any] func(dst, src *T, alloc Allocator)

// Swap exchanges the entire contents of two lists in O(1): buffer, size,
// capacity, allocator, and destructor all move. Self-swap is a no-op.
func (l *List[T]) Swap(other *List[T]) error {
	if l == nil || other == nil {
		return errors.Wrap(ErrNilArgument, "swap")
	}
	if l == other {
		return nil
	}
	*l, *other = *other, *l
	return nil
}

// Copy produces a shallow copy: a second list with its own buffer whose
// elements are bitwise duplicates of l's. For element types containing
// pointers both lists now alias the same pointed-to data, so at most one of
// the two may ever be torn down with a destructor bound — tear the other
// down with ReleaseBuffer, or a double free results. Clone is the safe
// alternative.
func (l *List[T]) Copy() (*List[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrNilArgument, "copy")
	}
	dst := &List[T]{alloc: l.alloc, destroy: l.destroy}
	if cap(l.buf) > 0 {
		if err := dst.setCapacity(cap(l.buf)); err != nil {
			return nil, err
		}
	}
	dst.buf = dst.buf[:len(l.buf)]
	copy(dst.buf, l.buf)
	return dst, nil
}

// ReleaseBuffer frees the list's buffer without invoking the destructor on
// any element, leaving the list empty. It is the teardown path for the
// surviving twin of a shallow Copy, whose elements are owned elsewhere.
func (l *List[T]) ReleaseBuffer() {
	if l == nil {
		return
	}
	l.buf = l.buf[:0]
	l.releaseBuf()
}

// Clone produces a deep copy: a fresh buffer of equal size and capacity
// whose every element was built by fn, so no owned memory is shared with the
// source. A nil receiver or nil fn yields an empty list.
func (l *List[T]) Clone(fn CloneFunc[T]) (*List[T], error) {
	if l == nil || fn == nil {
		return &List[T]{}, nil
	}
	dst := &List[T]{alloc: l.alloc, destroy: l.destroy}
	if cap(l.buf) > 0 {
		if err := dst.setCapacity(cap(l.buf)); err != nil {
			return nil, err
		}
	}
	dst.buf = dst.buf[:len(l.buf)]
	for i := range l.buf {
		fn(&dst.buf[i], &l.buf[i], dst.alloc)
	}
	return dst, nil
}

// Steal moves the buffer, size, capacity, allocator, and destructor into a
// new list and resets l to the zero value. No element is touched and no
// destructor runs; the stolen-from list is simply empty (heap-backed) and
// may be reused.
func (l *List[T]) Steal() *List[T] {
	if l == nil {
		return &List[T]{}
	}
	dst := &List[T]{buf: l.buf, alloc: l.alloc, destroy: l.destroy}
	*l = List[T]{}
	return dst
}

package arraylist

import (
	"math"

	"github.com/pkg/errors"
)

// DestroyFunc releases whatever one element owns. The engine invokes it
// exactly once per discarded element, before the slot leaves the public API,
// and zeroes the slot afterwards.
type DestroyFunc[T any] func(*T)

// List is a growable contiguous sequence of T. The first Len() slots of its
// buffer hold live elements; the remainder is uninitialized slack. The zero
// value is an empty heap-backed list ready to use.
//
// A List is not goroutine-safe; use SafeList or external locking for
// concurrent access. Element pointers returned by At, Last, Emplace, and the
// iterators are invalidated by any operation that grows or shrinks the
// buffer.
type List[T any] struct {
	buf     []T // len == live size, cap == allocated capacity
	alloc   Allocator
	destroy DestroyFunc[T]
}

// New creates an empty heap-backed list with room for capHint elements.
func New[T any](capHint int) *List[T] {
	return NewIn[T](nil, capHint)
}

// NewIn creates an empty list whose buffers come from alloc (nil means the
// Go heap). capHint is a hint: if the allocator cannot provide it the list
// starts at zero capacity and the first append reports the failure.
func NewIn[T any](alloc Allocator, capHint int) *List[T] {
	l := &List[T]{alloc: alloc}
	if capHint > 0 {
		_ = l.Reserve(capHint)
	}
	return l
}

// WithDestructor binds d as the per-element destructor and returns l.
// Bind it before elements that own memory enter the list.
func (l *List[T]) WithDestructor(d DestroyFunc[T]) *List[T] {
	l.destroy = d
	return l
}

// Len returns the number of live elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.buf)
}

// Cap returns the number of allocated element slots.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.buf)
}

// IsEmpty reports whether the list has no live elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Reserve grows capacity to at least n. It never shrinks, never touches live
// elements, and on failure leaves the list exactly as it was.
func (l *List[T]) Reserve(n int) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "reserve")
	}
	if n <= cap(l.buf) {
		return nil
	}
	return l.setCapacity(n)
}

// ShrinkToFit reduces capacity to exactly Len(). An empty list releases its
// buffer entirely. On allocator failure the list is left unchanged.
func (l *List[T]) ShrinkToFit() error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "shrink to fit")
	}
	switch {
	case cap(l.buf) == len(l.buf):
		return nil
	case len(l.buf) == 0:
		l.releaseBuf()
		return nil
	default:
		return l.setCapacity(len(l.buf))
	}
}

// setCapacity retargets the buffer to exactly n slots, n >= Len(). It is the
// single allocate-or-reallocate branch shared by Reserve, growth, and
// ShrinkToFit.
func (l *List[T]) setCapacity(n int) error {
	elem := sizeOf[T]()
	if n > maxElems[T]() {
		return errors.Wrapf(ErrCapacityOverflow, "%d elements of %d bytes", n, elem)
	}

	// Zero-sized types never touch the allocator; the heap path costs
	// nothing and keeps slice bookkeeping exact.
	if l.alloc == nil || elem == 0 {
		nb := make([]T, len(l.buf), n)
		copy(nb, l.buf)
		l.buf = nb
		return nil
	}

	newBytes := uintptr(n) * elem
	if cap(l.buf) == 0 {
		p := l.alloc.Allocate(newBytes)
		if p == nil {
			return errors.Wrapf(ErrAllocationFailure, "allocate %d bytes", newBytes)
		}
		l.buf = carve[T](p, n)[:0]
		return nil
	}

	oldBytes := uintptr(cap(l.buf)) * elem
	p := l.alloc.Reallocate(base(l.buf), oldBytes, newBytes)
	if p == nil {
		return errors.Wrapf(ErrAllocationFailure, "reallocate %d to %d bytes", oldBytes, newBytes)
	}
	l.buf = carve[T](p, n)[:len(l.buf)]
	return nil
}

// ensureFree makes room for extra more elements, doubling capacity from a
// floor of one slot.
func (l *List[T]) ensureFree(extra int) error {
	needed := len(l.buf) + extra
	if needed < 0 {
		return errors.Wrapf(ErrCapacityOverflow, "%d + %d elements", len(l.buf), extra)
	}
	if needed <= cap(l.buf) {
		return nil
	}
	target := cap(l.buf)
	if target == 0 {
		target = 1
	}
	for target < needed {
		if target > math.MaxInt/2 {
			target = needed
			break
		}
		target *= 2
	}
	return l.setCapacity(target)
}

// Append adds v to the end of the list, growing if needed.
func (l *List[T]) Append(v T) error {
	slot, err := l.Emplace()
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// AppendSlice adds all vs to the end of the list with a single growth step.
func (l *List[T]) AppendSlice(vs ...T) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "append")
	}
	if len(vs) == 0 {
		return nil
	}
	if err := l.ensureFree(len(vs)); err != nil {
		return err
	}
	n := len(l.buf)
	l.buf = l.buf[:n+len(vs)]
	copy(l.buf[n:], vs)
	return nil
}

// Emplace reserves the next slot and returns a pointer to it. The slot is
// uninitialized (arena-backed buffers may contain garbage); the caller must
// fully initialize it before any other use of the list. Emplace is the
// preferred entry point for large element types, skipping one copy.
func (l *List[T]) Emplace() (*T, error) {
	if l == nil {
		return nil, errors.Wrap(ErrNilArgument, "emplace")
	}
	if err := l.ensureFree(1); err != nil {
		return nil, err
	}
	n := len(l.buf)
	l.buf = l.buf[:n+1]
	return &l.buf[n], nil
}

// Insert places v at index i, shifting later elements right. i may equal
// Len(), which appends.
func (l *List[T]) Insert(i int, v T) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "insert")
	}
	if i < 0 || i > len(l.buf) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d of %d", i, len(l.buf))
	}
	if err := l.ensureFree(1); err != nil {
		return err
	}
	n := len(l.buf)
	l.buf = l.buf[:n+1]
	copy(l.buf[i+1:], l.buf[i:n])
	l.buf[i] = v
	return nil
}

// At returns a pointer to the element at index i, or nil, false when i is
// out of range.
func (l *List[T]) At(i int) (*T, bool) {
	if l == nil || i < 0 || i >= len(l.buf) {
		return nil, false
	}
	return &l.buf[i], true
}

// Last returns a pointer to the final element, or nil, false when empty.
func (l *List[T]) Last() (*T, bool) {
	if l == nil || len(l.buf) == 0 {
		return nil, false
	}
	return &l.buf[len(l.buf)-1], true
}

// Set overwrites the element at index i. The previous value is not passed to
// the destructor; if it owns memory, the caller releases it.
func (l *List[T]) Set(i int, v T) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "set")
	}
	if i < 0 || i >= len(l.buf) {
		return errors.Wrapf(ErrIndexOutOfRange, "set at %d of %d", i, len(l.buf))
	}
	l.buf[i] = v
	return nil
}

// ToSlice returns a copy of the live elements. Element values are copied
// bitwise; pointer-shaped contents still alias the originals.
func (l *List[T]) ToSlice() []T {
	if l == nil || len(l.buf) == 0 {
		return nil
	}
	out := make([]T, len(l.buf))
	copy(out, l.buf)
	return out
}

// Pop discards the last element, running the destructor when bound, and
// reports whether an element was removed. Read the value first via Last if
// it is needed: with a destructor bound the popped element's owned memory is
// gone by the time Pop returns.
func (l *List[T]) Pop() bool {
	if l == nil || len(l.buf) == 0 {
		return false
	}
	n := len(l.buf) - 1
	l.discard(&l.buf[n])
	l.buf = l.buf[:n]
	return true
}

// Remove discards the element at index i, shifting later elements left.
func (l *List[T]) Remove(i int) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "remove")
	}
	if i < 0 || i >= len(l.buf) {
		return errors.Wrapf(ErrIndexOutOfRange, "remove at %d of %d", i, len(l.buf))
	}
	n := len(l.buf)
	l.discard(&l.buf[i])
	copy(l.buf[i:], l.buf[i+1:])
	var zero T
	l.buf[n-1] = zero
	l.buf = l.buf[:n-1]
	return nil
}

// RemoveRange discards elements from index from through to, inclusive. An
// invalid range (from > to, negative from, or to >= Len()) is rejected with
// ErrIndexOutOfRange: nothing is mutated and no destructor runs.
func (l *List[T]) RemoveRange(from, to int) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "remove range")
	}
	n := len(l.buf)
	if from < 0 || to < from || to >= n {
		return errors.Wrapf(ErrIndexOutOfRange, "remove [%d, %d] of %d", from, to, n)
	}
	for i := from; i <= to; i++ {
		l.discard(&l.buf[i])
	}
	copy(l.buf[from:], l.buf[to+1:])
	removed := to - from + 1
	var zero T
	for i := n - removed; i < n; i++ {
		l.buf[i] = zero
	}
	l.buf = l.buf[:n-removed]
	return nil
}

// Truncate discards every element at index n and beyond. Truncating to the
// current length or longer is a no-op. Capacity is never reduced; use
// ShrinkToFit for that.
func (l *List[T]) Truncate(n int) error {
	if l == nil {
		return errors.Wrap(ErrNilArgument, "truncate")
	}
	if n < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "truncate to %d", n)
	}
	if n >= len(l.buf) {
		return nil
	}
	for i := n; i < len(l.buf); i++ {
		l.discard(&l.buf[i])
	}
	l.buf = l.buf[:n]
	return nil
}

// Clear discards all elements, keeping capacity.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	_ = l.Truncate(0)
}

// Deinit discards all elements and releases the buffer, returning the list
// to the empty state with its allocator and destructor still bound. It is
// idempotent and safe on a never-allocated list.
func (l *List[T]) Deinit() {
	if l == nil {
		return
	}
	_ = l.Truncate(0)
	l.releaseBuf()
}

// discard runs the destructor on one live slot and zeroes it, so the slot is
// never destructed twice and pointer-shaped contents are dropped from the
// buffer.
func (l *List[T]) discard(p *T) {
	if l.destroy != nil {
		l.destroy(p)
	}
	var zero T
	*p = zero
}

// releaseBuf returns the buffer to the allocator and unsets it. No
// destructor runs; callers discard live elements first.
func (l *List[T]) releaseBuf() {
	if cap(l.buf) == 0 {
		l.buf = nil
		return
	}
	// Zero-sized types never went through the allocator; see setCapacity.
	if l.alloc != nil && sizeOf[T]() > 0 {
		l.alloc.Release(base(l.buf), uintptr(cap(l.buf))*sizeOf[T]())
	}
	l.buf = nil
}

package arraylist

import "iter"

// Range calls fn for each live element in index order, stopping early when
// fn returns false. fn receives a pointer into the buffer; it must not
// append to or remove from the list.
func (l *List[T]) Range(fn func(i int, v *T) bool) {
	if l == nil || fn == nil {
		return
	}
	for i := range l.buf {
		if !fn(i, &l.buf[i]) {
			return
		}
	}
}

// All returns an iterator over index/element pairs for use with range:
//
//	for i, v := range list.All() {
//		// v points into the buffer
//	}
func (l *List[T]) All() iter.Seq2[int, *T] {
	return l.Range
}

// Find returns a pointer to the first element satisfying pred, or nil,
// false when no element matches, the predicate is nil, or the list is empty.
func (l *List[T]) Find(pred func(*T) bool) (*T, bool) {
	i, ok := l.FindIndex(pred)
	if !ok {
		return nil, false
	}
	return &l.buf[i], true
}

// FindIndex returns the index of the first element satisfying pred, or -1,
// false when no element matches or the predicate is nil.
func (l *List[T]) FindIndex(pred func(*T) bool) (int, bool) {
	if l == nil || pred == nil {
		return -1, false
	}
	for i := range l.buf {
		if pred(&l.buf[i]) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether any element satisfies pred.
func (l *List[T]) Contains(pred func(*T) bool) bool {
	_, ok := l.FindIndex(pred)
	return ok
}

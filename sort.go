package arraylist

import "github.com/pkg/errors"

// Sort orders the elements in place under less, a strict weak ordering.
// The sort is an unstable partition-exchange sort with the last element of
// each partition as the pivot: O(n log n) on average, O(n²) on already- or
// reverse-sorted input. It never allocates.
func (l *List[T]) Sort(less func(a, b *T) bool) error {
	if l == nil || less == nil {
		return errors.Wrap(ErrNilArgument, "sort")
	}
	quicksort(l.buf, less)
	return nil
}

// quicksort recurses into the smaller partition and loops on the larger,
// bounding stack depth to O(log n).
func quicksort[T any](s []T, less func(a, b *T) bool) {
	for len(s) > 1 {
		p := partition(s, less)
		if p < len(s)-p-1 {
			quicksort(s[:p], less)
			s = s[p+1:]
		} else {
			quicksort(s[p+1:], less)
			s = s[:p]
		}
	}
}

// partition splits s around its last element and returns the pivot's final
// index.
func partition[T any](s []T, less func(a, b *T) bool) int {
	pivot := len(s) - 1
	i := 0
	for j := 0; j < pivot; j++ {
		if less(&s[j], &s[pivot]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[pivot] = s[pivot], s[i]
	return i
}

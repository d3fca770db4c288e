package arraylist

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// failAfter delegates to inner until limit memory requests have succeeded,
// then fails every Allocate and Reallocate.
type failAfter struct {
	inner Allocator
	limit int
	calls int
}

var _ Allocator = (*failAfter)(nil)

func (f *failAfter) Allocate(size uintptr) unsafe.Pointer {
	f.calls++
	if f.calls > f.limit {
		return nil
	}
	return f.inner.Allocate(size)
}

func (f *failAfter) Reallocate(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer {
	f.calls++
	if f.calls > f.limit {
		return nil
	}
	return f.inner.Reallocate(ptr, oldSize, newSize)
}

func (f *failAfter) Release(ptr unsafe.Pointer, size uintptr) {
	f.inner.Release(ptr, size)
}

func TestReserveAllocationFailure(t *testing.T) {
	fa := &failAfter{inner: NewArena(1024)}
	l := NewIn[int64](fa, 0)

	require.ErrorIs(t, l.Reserve(8), ErrAllocationFailure)
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.Cap())
}

func TestGrowthAllocationFailurePreservesState(t *testing.T) {
	fa := &failAfter{inner: NewArena(1024), limit: 1}
	l := NewIn[int64](fa, 0)
	require.NoError(t, l.Append(7)) // first allocation succeeds

	// growth reallocation fails; the prior buffer, size, and capacity are
	// untouched and usable
	require.ErrorIs(t, l.Append(8), ErrAllocationFailure)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, l.Cap())
	v, ok := l.At(0)
	require.True(t, ok)
	require.Equal(t, int64(7), *v)

	_, err := l.Emplace()
	require.ErrorIs(t, err, ErrAllocationFailure)
	require.Equal(t, 1, l.Len())

	// once the allocator recovers, the same list grows normally
	fa.limit = 100
	require.NoError(t, l.Append(8))
	require.Equal(t, []int64{7, 8}, l.ToSlice())
}

func TestAppendSliceAllocationFailure(t *testing.T) {
	fa := &failAfter{inner: NewArena(1024), limit: 1}
	l := NewIn[int32](fa, 2)
	require.NoError(t, l.AppendSlice(1, 2))

	require.ErrorIs(t, l.AppendSlice(3, 4, 5), ErrAllocationFailure)
	require.Equal(t, []int32{1, 2}, l.ToSlice())
	require.Equal(t, 2, l.Cap())
}

func TestShrinkToFitAllocationFailure(t *testing.T) {
	fa := &failAfter{inner: NewArena(1024), limit: 1}
	l := NewIn[int64](fa, 8)
	require.NoError(t, l.AppendSlice(1, 2, 3))

	require.ErrorIs(t, l.ShrinkToFit(), ErrAllocationFailure)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 8, l.Cap())
	require.Equal(t, []int64{1, 2, 3}, l.ToSlice())
}

func TestNewInCapHintAllocationFailure(t *testing.T) {
	// an unsatisfiable hint leaves the list at zero capacity; the next
	// mutation reports the failure
	fa := &failAfter{inner: NewArena(1024)}
	l := NewIn[int64](fa, 16)
	require.Equal(t, 0, l.Cap())
	require.ErrorIs(t, l.Append(1), ErrAllocationFailure)

	fa.limit = 100
	require.NoError(t, l.Append(1))
	require.Equal(t, 1, l.Len())
}

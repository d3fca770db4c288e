package arraylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	a := New[int](0)
	require.NoError(t, a.AppendSlice(1, 2, 3))
	b := New[int](0)
	require.NoError(t, b.AppendSlice(9))

	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{9}, a.ToSlice())
	require.Equal(t, []int{1, 2, 3}, b.ToSlice())

	// self-swap is a no-op
	require.NoError(t, a.Swap(a))
	require.Equal(t, []int{9}, a.ToSlice())

	require.ErrorIs(t, a.Swap(nil), ErrNilArgument)
}

func TestSwapMovesDestructor(t *testing.T) {
	aDestroyed, bDestroyed := 0, 0
	a := New[int](0).WithDestructor(func(*int) { aDestroyed++ })
	b := New[int](0).WithDestructor(func(*int) { bDestroyed++ })
	require.NoError(t, a.Append(1))
	require.NoError(t, b.Append(2))

	require.NoError(t, a.Swap(b))
	a.Deinit()
	b.Deinit()

	// each destructor followed its buffer
	require.Equal(t, 1, aDestroyed)
	require.Equal(t, 1, bDestroyed)
}

func TestShallowCopyAliasing(t *testing.T) {
	x, y := 1, 2
	l := New[*int](0)
	require.NoError(t, l.AppendSlice(&x, &y))

	cp, err := l.Copy()
	require.NoError(t, err)
	require.Equal(t, l.Len(), cp.Len())
	require.Equal(t, l.Cap(), cp.Cap())

	// mutating a pointee through one list is visible through the other
	p, ok := l.At(0)
	require.True(t, ok)
	**p = 42

	q, ok := cp.At(0)
	require.True(t, ok)
	require.Equal(t, 42, **q)

	// the buffers themselves are independent
	require.NoError(t, l.Set(1, &x))
	r, ok := cp.At(1)
	require.True(t, ok)
	require.Same(t, &y, *r)
}

func TestCopyThenReleaseBuffer(t *testing.T) {
	destroyed := 0
	l := New[*int](0).WithDestructor(func(p **int) {
		destroyed++
		*p = nil
	})
	x := 7
	require.NoError(t, l.Append(&x))

	cp, err := l.Copy()
	require.NoError(t, err)

	// only one twin runs destructors; the other releases just its buffer
	cp.ReleaseBuffer()
	require.Equal(t, 0, cp.Len())
	require.Equal(t, 0, cp.Cap())
	require.Equal(t, 0, destroyed)

	l.Deinit()
	require.Equal(t, 1, destroyed)
}

func TestCloneIndependence(t *testing.T) {
	x, y := 1, 2
	l := New[*int](0)
	require.NoError(t, l.AppendSlice(&x, &y))

	cl, err := l.Clone(func(dst, src **int, _ Allocator) {
		v := **src
		*dst = &v
	})
	require.NoError(t, err)
	require.Equal(t, l.Len(), cl.Len())
	require.Equal(t, l.Cap(), cl.Cap())

	// mutating the source's owned data does not affect the clone
	x = 100
	p, ok := cl.At(0)
	require.True(t, ok)
	require.Equal(t, 1, **p)

	// and vice versa
	**p = 55
	require.Equal(t, 100, x)
}

func TestCloneNilInputs(t *testing.T) {
	var nilList *List[int]
	cl, err := nilList.Clone(func(dst, src *int, _ Allocator) { *dst = *src })
	require.NoError(t, err)
	require.Equal(t, 0, cl.Len())

	l := New[int](0)
	require.NoError(t, l.Append(1))
	cl, err = l.Clone(nil)
	require.NoError(t, err)
	require.Equal(t, 0, cl.Len())
	require.Equal(t, 0, cl.Cap())
}

func TestSteal(t *testing.T) {
	destroyed := 0
	l := New[int](0).WithDestructor(func(*int) { destroyed++ })
	require.NoError(t, l.AppendSlice(1, 2, 3))
	capBefore := l.Cap()

	dst := l.Steal()

	// source is reset to the zero value, no destructor ran
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.Cap())
	require.Nil(t, l.buf)
	require.Nil(t, l.alloc)
	require.Nil(t, l.destroy)
	require.Equal(t, 0, destroyed)

	// destination holds the prior contents, capacity, and destructor
	require.Equal(t, []int{1, 2, 3}, dst.ToSlice())
	require.Equal(t, capBefore, dst.Cap())
	dst.Deinit()
	require.Equal(t, 3, destroyed)

	// stolen-from list is reusable
	require.NoError(t, l.Append(9))
	require.Equal(t, 1, l.Len())
}

package arraylist

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestListMetrics(t *testing.T) {
	l := New[int64](8)
	require.NoError(t, l.AppendSlice(1, 2, 3, 4))

	m := l.Metrics()
	require.Equal(t, 4, m.Len)
	require.Equal(t, 8, m.Cap)
	require.Equal(t, unsafe.Sizeof(int64(0)), m.ElemSize)
	require.Equal(t, uintptr(32), m.LiveBytes)
	require.Equal(t, uintptr(32), m.SlackBytes)
	require.InDelta(t, 0.5, m.Utilization, 1e-9)
}

func TestListMetricsEmptyAndNil(t *testing.T) {
	m := New[int64](0).Metrics()
	require.Zero(t, m.Len)
	require.Zero(t, m.Cap)
	require.Zero(t, m.Utilization)

	var nilList *List[int64]
	m = nilList.Metrics()
	require.Zero(t, m.Len)
	require.Equal(t, unsafe.Sizeof(int64(0)), m.ElemSize)
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)
	a.Allocate(100)
	a.Allocate(200)

	m := a.Metrics()
	require.Equal(t, 1024, m.Capacity)
	require.Equal(t, 1, m.NumChunks)
	require.Equal(t, 1024, m.ChunkSize)
	require.GreaterOrEqual(t, m.SizeInUse, 300)
	require.InDelta(t, float64(m.SizeInUse)/1024, m.Utilization, 1e-9)
}

func TestCountingAllocatorPairing(t *testing.T) {
	c := &CountingAllocator{Inner: NewArena(4096)}
	l := NewIn[int64](c, 0)

	for i := int64(0); i < 50; i++ {
		require.NoError(t, l.Append(i))
	}
	require.NotZero(t, c.Allocates)
	require.NotZero(t, c.Reallocates)
	require.Equal(t, uintptr(l.Cap())*sizeOf[int64](), c.InUseBytes)

	// every buffer the engine took is handed back with the same size
	l.Deinit()
	require.Equal(t, uint64(1), c.Releases)
	require.Zero(t, c.InUseBytes)
	require.NotZero(t, c.PeakBytes)
}

func TestCountingAllocatorShrink(t *testing.T) {
	c := &CountingAllocator{Inner: NewArena(4096)}
	l := NewIn[int32](c, 16)
	require.NoError(t, l.AppendSlice(1, 2, 3))

	require.NoError(t, l.ShrinkToFit())
	require.Equal(t, 3, l.Cap())
	require.Equal(t, uintptr(12), c.InUseBytes)

	l.Clear()
	require.NoError(t, l.ShrinkToFit())
	require.Zero(t, c.InUseBytes)
}

package arraylist

import "unsafe"

// Metrics is a snapshot of a list's occupancy.
type Metrics struct {
	Len         int     // live elements
	Cap         int     // allocated element slots
	ElemSize    uintptr // bytes per element
	LiveBytes   uintptr // bytes holding live elements
	SlackBytes  uintptr // allocated but unoccupied bytes
	Utilization float64 // ratio of live to allocated slots (0.0-1.0)
}

// Metrics returns a snapshot of the list's occupancy.
func (l *List[T]) Metrics() Metrics {
	m := Metrics{ElemSize: sizeOf[T]()}
	if l == nil {
		return m
	}
	m.Len = len(l.buf)
	m.Cap = cap(l.buf)
	m.LiveBytes = uintptr(m.Len) * m.ElemSize
	m.SlackBytes = uintptr(m.Cap-m.Len) * m.ElemSize
	if m.Cap > 0 {
		m.Utilization = float64(m.Len) / float64(m.Cap)
	}
	return m
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // bytes currently allocated
	Capacity    int     // total capacity in bytes
	NumChunks   int     // number of chunks
	ChunkSize   int     // default chunk size
	Utilization float64 // ratio of used to total capacity (0.0-1.0)
}

// SizeInUse returns the total number of bytes currently allocated in the
// arena, including internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity.
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// CountingAllocator wraps another Allocator and tracks how it is used. It is
// handy in tests and for verifying the engine's pairing discipline: every
// buffer allocated is eventually released with the same size.
type CountingAllocator struct {
	Inner Allocator // must be non-nil; the Go-heap fallback bypasses the interface

	Allocates   uint64
	Reallocates uint64
	Releases    uint64
	InUseBytes  uintptr
	PeakBytes   uintptr
}

var _ Allocator = (*CountingAllocator)(nil)

// Allocate delegates to Inner, counting the call and live bytes on success.
func (c *CountingAllocator) Allocate(size uintptr) unsafe.Pointer {
	c.Allocates++
	p := c.Inner.Allocate(size)
	if p != nil {
		c.InUseBytes += size
		if c.InUseBytes > c.PeakBytes {
			c.PeakBytes = c.InUseBytes
		}
	}
	return p
}

// Reallocate delegates to Inner, adjusting live bytes on success.
func (c *CountingAllocator) Reallocate(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer {
	c.Reallocates++
	p := c.Inner.Reallocate(ptr, oldSize, newSize)
	if p != nil {
		c.InUseBytes += newSize - oldSize
		if c.InUseBytes > c.PeakBytes {
			c.PeakBytes = c.InUseBytes
		}
	}
	return p
}

// Release delegates to Inner and subtracts the released bytes.
func (c *CountingAllocator) Release(ptr unsafe.Pointer, size uintptr) {
	c.Releases++
	c.Inner.Release(ptr, size)
	c.InUseBytes -= size
}

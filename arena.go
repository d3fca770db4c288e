package arraylist

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator implementing Allocator. Blocks are
// carved sequentially out of large chunks; individual Release calls only
// reclaim memory when they target the most recent block, everything else is
// reclaimed in bulk by Reset or Destroy. Not goroutine-safe.
//
// Lists backed by an Arena store their elements in the arena's chunks, which
// the garbage collector scans as raw bytes. Element types containing Go
// pointers must keep their referents alive through some other reference.
type Arena struct {
	chunks    []chunk
	chunkSize int
	current   *chunk

	// most recent block, for tail extension and rollback
	lastPtr   unsafe.Pointer
	lastStart uintptr
}

var _ Allocator = (*Arena)(nil)

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns a pointer to size bytes carved from the current chunk,
// growing the arena when the chunk is full. Returns nil if size == 0.
func (a *Arena) Allocate(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	if a.chunks == nil {
		panic("arraylist: arena used after Destroy()")
	}

	c := a.current
	off := alignPtr(c.offset)
	if off+size > uintptr(len(c.buf)) {
		a.grow(int(size))
		c = a.current
		off = alignPtr(c.offset)
	}

	p := unsafe.Pointer(&c.buf[off])
	c.offset = off + size
	a.lastPtr = p
	a.lastStart = off
	return p
}

// Reallocate resizes the block at ptr. The most recent block is extended in
// place when its chunk has room; any other block is copied into a fresh
// allocation. Shrinking never moves the block.
func (a *Arena) Reallocate(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer {
	if ptr == nil {
		return a.Allocate(newSize)
	}
	if a.chunks == nil {
		panic("arraylist: arena used after Destroy()")
	}
	if newSize <= oldSize {
		return ptr
	}

	// Fast path: extend the tail block in place.
	if ptr == a.lastPtr {
		c := a.current
		if a.lastStart+newSize <= uintptr(len(c.buf)) {
			c.offset = a.lastStart + newSize
			return ptr
		}
	}

	p := a.Allocate(newSize)
	if p == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(p), oldSize), unsafe.Slice((*byte)(ptr), oldSize))
	return p
}

// Release rolls the current chunk back when ptr is the most recent block.
// Older blocks are left in place until Reset or Destroy.
func (a *Arena) Release(ptr unsafe.Pointer, size uintptr) {
	if ptr == nil || a.chunks == nil {
		return
	}
	if ptr == a.lastPtr {
		a.current.offset = a.lastStart
		a.lastPtr = nil
		a.lastStart = 0
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for
// reuse. This provides O(1) cleanup between list lifetimes.
func (a *Arena) Reset() {
	if a.chunks == nil {
		panic("arraylist: arena used after Destroy()")
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = &a.chunks[0]
	a.lastPtr = nil
	a.lastStart = 0
}

// Destroy drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena) Destroy() {
	a.chunks = nil
	a.current = nil
	a.lastPtr = nil
	a.lastStart = 0
}

// grow appends a new chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = &a.chunks[len(a.chunks)-1]
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}

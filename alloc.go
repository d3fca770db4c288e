package arraylist

import (
	"math"
	"unsafe"
)

// Allocator is the capability a List uses for every buffer it owns. The
// engine always pairs an Allocate or Reallocate result with a Release of the
// exact size it believes the buffer to be, and never calls the allocator
// concurrently with itself.
//
// A nil Allocator means the Go heap: buffers come from make, reallocation is
// allocate-and-copy, and Release is a no-op because the garbage collector
// reclaims the old buffer.
type Allocator interface {
	// Allocate returns a pointer to size bytes, or nil on failure.
	// The memory is not guaranteed to be zeroed.
	Allocate(size uintptr) unsafe.Pointer

	// Reallocate resizes the block at ptr from oldSize to newSize bytes,
	// returning the (possibly moved) block or nil on failure. On failure the
	// original block remains valid and untouched.
	Reallocate(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer

	// Release returns the block at ptr, previously sized with size bytes,
	// to the allocator.
	Release(ptr unsafe.Pointer, size uintptr)
}

// sizeOf returns the byte size of one element of type T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// maxElems returns the largest element count whose byte size fits an int,
// or math.MaxInt for zero-sized types.
func maxElems[T any]() int {
	elem := sizeOf[T]()
	if elem == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / elem)
}

// carve views n elements of type T starting at p. p must reference at least
// n*sizeof(T) bytes obtained from an Allocator.
func carve[T any](p unsafe.Pointer, n int) []T {
	return unsafe.Slice((*T)(p), n)
}

// base returns the address of s's backing array, or nil when s has no
// capacity.
func base[T any](s []T) unsafe.Pointer {
	if cap(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

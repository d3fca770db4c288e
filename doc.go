// Package arraylist implements a generic, growable, contiguous sequence
// container with pluggable memory allocation and optional per-element
// destruction.
//
// # Overview
//
// A List[T] owns one contiguous buffer of element slots. The first Len()
// slots hold live elements, the rest is allocated slack. Appends are
// amortized O(1) via capacity doubling, every capacity computation is
// overflow-checked, and all buffer memory flows through a single Allocator
// capability. This is useful for:
//
//   - Element types that own memory and need deterministic cleanup
//   - Arena-backed workloads that batch allocation and teardown
//   - Code that needs explicit control over growth and failure handling
//
// # Basic Usage
//
//	list := arraylist.New[int](0)
//	defer list.Deinit()
//
//	for i := 0; i < 10; i++ {
//		arraylist.Must(list.Append(i * i))
//	}
//
//	if v, ok := list.At(3); ok {
//		fmt.Println(*v) // 9
//	}
//
//	for i, v := range list.All() {
//		_ = i
//		_ = *v
//	}
//
// # Ownership and Destructors
//
// A destructor bound with WithDestructor runs exactly once for every element
// the list discards — Pop, Remove, RemoveRange, Truncate, Clear, and Deinit
// all invoke it before the slot leaves the API, then zero the slot. With no
// destructor bound the list never frees memory reachable through an element;
// that stays the caller's responsibility.
//
//	type conn struct{ fd int }
//	list := arraylist.New[*conn](0).WithDestructor(func(c **conn) {
//		(*c).close()
//		*c = nil
//	})
//
// Set overwrites without destructing the old value, and Steal moves the
// whole buffer without destructing anything.
//
// # Allocators
//
// A nil Allocator means the Go heap. The Arena type is a chunked bump
// allocator for batch-teardown workloads, and CountingAllocator instruments
// any allocator underneath it:
//
//	arena := arraylist.NewArena(0)
//	defer arena.Destroy()
//
//	list := arraylist.NewIn[int64](arena, 64)
//	// ... use list; arena.Reset() reclaims everything at once
//
// Arena chunks are scanned by the garbage collector as raw bytes, so
// arena-backed lists should hold pointer-free element types unless the
// referents are kept alive elsewhere.
//
// # Copy, Clone, Steal
//
// Copy duplicates elements bitwise into a new buffer: cheap, but for
// pointer-shaped elements both lists alias the same owned data — tear down
// at most one of them with a destructor and the other with ReleaseBuffer.
// Clone builds independent elements through a caller-supplied CloneFunc and
// is the safe variant. Steal transfers the whole buffer in O(1) and leaves
// the source empty.
//
// # Failure Handling
//
// Fallible operations return wrapped sentinel errors (ErrNilArgument,
// ErrCapacityOverflow, ErrAllocationFailure, ErrIndexOutOfRange) matched
// with errors.Is. A failed growth or shrink leaves the list exactly as it
// was. Must and MustVal convert any call site to abort-on-failure.
//
// # Thread Safety
//
// List is not goroutine-safe. SafeList wraps one behind a mutex; its Do
// method runs compound operations under a single lock acquisition.
//
// # Important Notes
//
//   - Pointers from At, Last, Emplace, and the iterators are invalidated by
//     any operation that changes the buffer (growth, removal, shrink).
//   - Emplace returns an uninitialized slot; initialize it before use.
//   - Slack slots beyond Len() are never readable through the API.
package arraylist

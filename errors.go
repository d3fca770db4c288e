package arraylist

import "github.com/pkg/errors"

// Sentinel errors returned by list operations. Wrapped errors carry call-site
// context; match them with errors.Is.
var (
	// ErrNilArgument reports a nil list or a missing required callable.
	ErrNilArgument = errors.New("arraylist: nil argument")

	// ErrCapacityOverflow reports a requested or derived capacity whose byte
	// size does not fit the platform's int.
	ErrCapacityOverflow = errors.New("arraylist: capacity overflow")

	// ErrAllocationFailure reports that the bound allocator returned nil.
	// The list's prior buffer, size, and capacity are preserved.
	ErrAllocationFailure = errors.New("arraylist: allocation failure")

	// ErrIndexOutOfRange reports an index or range outside [0, Len()).
	// The failed operation mutates nothing and runs no destructors.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")
)

// Must panics if err is non-nil. It converts the error-returning API into
// an abort-on-failure one at the call site:
//
//	arraylist.Must(list.Reserve(1024))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustVal is Must for operations that also return a value:
//
//	slot := arraylist.MustVal(list.Emplace())
func MustVal[T any](v T, err error) T {
	Must(err)
	return v
}

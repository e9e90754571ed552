package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations and, for the same
// conditions, by the lazy containers. Match them with errors.Is; the
// returned errors usually wrap the sentinel with the offending index or
// argument.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty (for example a reduction without
	// an initial value).
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside the collection.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNotFound is returned by the index-returning finders and the
	// "OrFail" variants when no item satisfies the condition.
	ErrNotFound = errors.New("collections: no items match the given condition")

	// ErrInvalidArgument is returned for arguments that can never be valid,
	// such as a window size <= 0 or a negative index on a lazy list.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidRange is returned for malformed slice bounds, such as a zero
	// step.
	ErrInvalidRange = errors.New("collections: invalid slice range")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

// InvalidArgument wraps [ErrInvalidArgument] with a description of the
// offending argument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

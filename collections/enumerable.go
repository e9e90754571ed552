package collections

import "iter"

// Enumerable is the read-only surface of [Collection]. Accept it where a
// function only inspects items.
type Enumerable[T any] interface {
	All() []T
	ToSlice() []T
	Count() int
	IsEmpty() bool
	IsNotEmpty() bool

	// Iter yields (index, item) pairs in order.
	Iter() iter.Seq2[int, T]
	Each(fn func(T, int))

	// First and Last return false when no item (matching fns[0]) exists.
	First(fns ...func(T) bool) (T, bool)
	Last(fns ...func(T) bool) (T, bool)

	Every(fn func(T) bool) bool
	Some(fn func(T) bool) bool
}

// Selector is implemented by containers that narrow themselves to a subset
// of their items without changing the element type.
type Selector[T any] interface {
	Enumerable[T]

	Filter(fn func(T, int) bool) *Collection[T]
	Reject(fn func(T, int) bool) *Collection[T]
	Take(n int) *Collection[T]
	Skip(n int) *Collection[T]
}

var (
	_ Enumerable[int] = (*Collection[int])(nil)
	_ Selector[int]   = (*Collection[int])(nil)
)

package replay

import "iter"

// Iterator is a pull-based producer of T.
//
// Next returns the next element and true, or the zero value and false once
// the producer is exhausted. After Next has returned false, Err reports the
// error that ended the traversal, or nil on a clean end of input.
type Iterator[T any] interface {
	Next() (T, bool)
	Err() error
}

// funcIterator adapts a next function to an Iterator.
type funcIterator[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *funcIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.next = nil
	}
	return v, ok
}

func (it *funcIterator[T]) Err() error { return nil }

// FromFunc returns an Iterator driven by next. Once next reports false it is
// never called again.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	return &funcIterator[T]{next: next}
}

// FromSlice returns an Iterator over items. The slice is not copied; callers
// that keep mutating it should pass a copy.
func FromSlice[T any](items []T) Iterator[T] {
	cursor := 0
	return FromFunc(func() (T, bool) {
		if cursor < len(items) {
			cursor++
			return items[cursor-1], true
		}
		var zero T
		return zero, false
	})
}

// Empty returns an exhausted Iterator.
func Empty[T any]() Iterator[T] {
	return FromFunc(func() (T, bool) {
		var zero T
		return zero, false
	})
}

type failIterator[T any] struct{ err error }

func (it failIterator[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (it failIterator[T]) Err() error { return it.err }

// Fail returns an Iterator that yields nothing and reports err.
func Fail[T any](err error) Iterator[T] {
	return failIterator[T]{err: err}
}

// Seq adapts it to a range-over-func sequence. Iteration stops at the end of
// input or at the first error; inspect it.Err afterwards.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice. On error the elements pulled so far are
// returned together with the error.
func Collect[T any](it Iterator[T]) ([]T, error) {
	out := make([]T, 0)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out, it.Err()
}

package collections

import (
	"github.com/hasbyte1/go-lazy-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n items. If n is negative, returns the last |n| items.
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return wrap(arr.Tail(c.items, -n))
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[:n])
}

// Skip returns a new collection with the first n items removed. If n is
// negative, the last |n| items are removed instead.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		end := total + n
		if end < 0 {
			return Empty[T]()
		}
		return From(c.items[:end])
	}
	if n >= total {
		return Empty[T]()
	}
	return From(c.items[n:])
}

// Drop is an alias for [Collection.Skip].
func (c *Collection[T]) Drop(n int) *Collection[T] { return c.Skip(n) }

// TakeWhile returns the leading items for which fn holds, stopping at the
// first item that fails it.
func (c *Collection[T]) TakeWhile(fn func(T) bool) *Collection[T] {
	for i, item := range c.items {
		if !fn(item) {
			return From(c.items[:i])
		}
	}
	return From(c.items)
}

// TakeUntil returns the leading items up to, but excluding, the first item
// for which fn holds.
func (c *Collection[T]) TakeUntil(fn func(T) bool) *Collection[T] {
	return c.TakeWhile(func(item T) bool { return !fn(item) })
}

// SkipWhile drops the leading items for which fn holds and returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T) bool) *Collection[T] {
	for i, item := range c.items {
		if !fn(item) {
			return From(c.items[i:])
		}
	}
	return Empty[T]()
}

// SkipUntil drops the leading items up to the first item for which fn holds.
func (c *Collection[T]) SkipUntil(fn func(T) bool) *Collection[T] {
	return c.SkipWhile(func(item T) bool { return !fn(item) })
}

// Slice returns length items starting at offset. A negative offset counts
// from the end; a negative length takes everything after offset.
//
//	New(1, 2, 3, 4, 5).Slice(1, 3) // → [2 3 4]
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	total := len(c.items)
	if offset < 0 {
		offset = max(total+offset, 0)
	}
	if offset >= total {
		return Empty[T]()
	}
	if length < 0 {
		return From(c.items[offset:])
	}
	return From(c.items[offset:min(offset+length, total)])
}

// SliceStep returns items[start:stop:step] with clamped bounds:
// negative bounds count from the end, out-of-range bounds are clamped and a
// negative step walks backwards. Pass [Unbounded] to leave a bound open.
// Returns [ErrInvalidRange] when step is zero.
//
//	New(0, 1, 2, 3, 4, 5).SliceStep(Unbounded, Unbounded, -2) // → [5 3 1]
func (c *Collection[T]) SliceStep(start, stop, step int) (*Collection[T], error) {
	if step == 0 {
		return nil, ErrInvalidRange
	}
	return wrap(arr.SliceStep(c.items, start, stop, step)), nil
}

// TakeNth returns every n-th item starting with the first.
// Returns [ErrInvalidArgument] when n <= 0.
func (c *Collection[T]) TakeNth(n int) (*Collection[T], error) {
	if n <= 0 {
		return nil, InvalidArgument("step %d must be positive", n)
	}
	return wrap(arr.SliceStep(c.items, 0, Unbounded, n)), nil
}

// Tail returns the last n items.
func (c *Collection[T]) Tail(n int) *Collection[T] { return wrap(arr.Tail(c.items, n)) }

// Loop returns the items repeated n times. A negative n behaves like zero.
func (c *Collection[T]) Loop(n int) *Collection[T] {
	n = max(n, 0)
	out := make([]T, 0, n*len(c.items))
	for range n {
		out = append(out, c.items...)
	}
	return wrap(out)
}

// Compress keeps the items whose matching selector is true. The result stops
// at the shorter of the collection and selectors.
//
//	New("a", "b", "c").Compress([]bool{true, false, true}) // → [a c]
func (c *Collection[T]) Compress(selectors []bool) *Collection[T] {
	out := make([]T, 0)
	for i, item := range c.items {
		if i >= len(selectors) {
			break
		}
		if selectors[i] {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Windows
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits the collection into consecutive groups of size. The last
// chunk may be smaller. Returns an empty [][]T if size <= 0.
//
//	New(1, 2, 3, 4, 5).Chunk(2) // → [[1 2] [3 4] [5]]
func (c *Collection[T]) Chunk(size int) [][]T {
	return arr.Chunk(c.items, size)
}

// ChunkExact splits c into groups of exactly n items and drops an incomplete
// trailing group. Returns [ErrInvalidArgument] when n <= 0.
//
// Like [Map], it is a function rather than a method because its result
// instantiates Collection with []T.
func ChunkExact[T any](c *Collection[T], n int) (*Collection[[]T], error) {
	if n <= 0 {
		return nil, InvalidArgument("chunk size %d must be positive", n)
	}
	return wrap(arr.ChunkExact(c.items, n)), nil
}

// ChunkPad splits c into groups of exactly n items, filling the last group
// with pad. Returns [ErrInvalidArgument] when n <= 0.
//
//	ChunkPad(New(1, 2, 3, 4, 5), 2, 0) // → [[1 2] [3 4] [5 0]]
func ChunkPad[T any](c *Collection[T], n int, pad T) (*Collection[[]T], error) {
	if n <= 0 {
		return nil, InvalidArgument("chunk size %d must be positive", n)
	}
	return wrap(arr.ChunkPad(c.items, n, pad)), nil
}

// SlidingWindow returns every run of n consecutive items of c. Returns
// [ErrInvalidArgument] when n <= 0.
//
//	SlidingWindow(New(1, 2, 3, 4), 2) // → [[1 2] [2 3] [3 4]]
func SlidingWindow[T any](c *Collection[T], n int) (*Collection[[]T], error) {
	if n <= 0 {
		return nil, InvalidArgument("window size %d must be positive", n)
	}
	return wrap(arr.Windows(c.items, n)), nil
}

// Interleave merges c with others round-robin, skipping inputs that run out.
//
//	New(1, 2, 3).Interleave(New(10, 20)) // → [1 10 2 20 3]
func (c *Collection[T]) Interleave(others ...*Collection[T]) *Collection[T] {
	inputs := make([][]T, 0, len(others)+1)
	inputs = append(inputs, c.items)
	for _, o := range others {
		inputs = append(inputs, o.items)
	}
	return wrap(arr.Interleave(inputs...))
}

// Interpose places sep between each pair of adjacent items.
func (c *Collection[T]) Interpose(sep T) *Collection[T] {
	return wrap(arr.Interpose(c.items, sep))
}

package lazy

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/hasbyte1/go-lazy-collections/arr"
	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/replay"
	"github.com/hasbyte1/go-lazy-collections/sample"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the elements for which fn returns true.
func (l *List[T]) Filter(fn func(T) bool) *List[T] {
	up := l.iter()
	return stage(func() (T, bool, error) {
		for v, ok := up.Next(); ok; v, ok = up.Next() {
			if fn(v) {
				return v, true, nil
			}
		}
		return end[T](up.Err())
	})
}

// Reject drops the elements for which fn returns true.
func (l *List[T]) Reject(fn func(T) bool) *List[T] {
	return l.Filter(func(v T) bool { return !fn(v) })
}

// FilterFalse is an alias for [List.Reject].
func (l *List[T]) FilterFalse(fn func(T) bool) *List[T] { return l.Reject(fn) }

// Map transforms every element into an any. For a typed result use the
// package-level [Map].
func (l *List[T]) Map(fn func(T) any) *List[any] { return Map(l, fn) }

// Unique drops elements whose key has been seen before. fn extracts the
// key; pass nil to compare the default formatting of the elements.
func (l *List[T]) Unique(fn func(T) any) *List[T] {
	if fn == nil {
		fn = func(v T) any { return fmt.Sprintf("%v", v) }
	}
	seen := make(map[any]struct{})
	return l.Filter(func(v T) bool {
		k := fn(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Compress keeps the elements whose matching selector is true and stops at
// the end of the shorter side.
func (l *List[T]) Compress(selectors *List[bool]) *List[T] {
	up, sel := l.iter(), selectors.iter()
	return stage(func() (T, bool, error) {
		for {
			v, ok := up.Next()
			if !ok {
				return end[T](up.Err())
			}
			keep, ok := sel.Next()
			if !ok {
				return end[T](sel.Err())
			}
			if keep {
				return v, true, nil
			}
		}
	})
}

// Positions yields the index of every element satisfying fn.
func (l *List[T]) Positions(fn func(T) bool) *List[int] {
	up := l.iter()
	i := -1
	return stage(func() (int, bool, error) {
		for v, ok := up.Next(); ok; v, ok = up.Next() {
			i++
			if fn(v) {
				return i, true, nil
			}
		}
		return end[int](up.Err())
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take yields at most n elements. Upstream is never pulled past the n-th
// element, so Take bounds an infinite List. A negative n yields nothing.
func (l *List[T]) Take(n int) *List[T] {
	up := l.iter()
	taken := 0
	return stage(func() (T, bool, error) {
		if taken >= n {
			return end[T](nil)
		}
		v, ok := up.Next()
		if !ok {
			return end[T](up.Err())
		}
		taken++
		return v, true, nil
	})
}

// Drop skips the first n elements. A negative n skips nothing.
func (l *List[T]) Drop(n int) *List[T] {
	up := l.iter()
	skipped := false
	return stage(func() (T, bool, error) {
		if !skipped {
			skipped = true
			for range max(n, 0) {
				if _, ok := up.Next(); !ok {
					return end[T](up.Err())
				}
			}
		}
		v, ok := up.Next()
		if !ok {
			return end[T](up.Err())
		}
		return v, true, nil
	})
}

// Skip is an alias for [List.Drop].
func (l *List[T]) Skip(n int) *List[T] { return l.Drop(n) }

// TakeWhile yields elements until fn first returns false.
func (l *List[T]) TakeWhile(fn func(T) bool) *List[T] {
	up := l.iter()
	return stage(func() (T, bool, error) {
		v, ok := up.Next()
		if !ok {
			return end[T](up.Err())
		}
		if !fn(v) {
			return end[T](nil)
		}
		return v, true, nil
	})
}

// TakeUntil yields elements up to, but excluding, the first one for which
// fn returns true.
func (l *List[T]) TakeUntil(fn func(T) bool) *List[T] {
	return l.TakeWhile(func(v T) bool { return !fn(v) })
}

// DropWhile skips leading elements while fn returns true.
func (l *List[T]) DropWhile(fn func(T) bool) *List[T] {
	up := l.iter()
	dropping := true
	return stage(func() (T, bool, error) {
		for v, ok := up.Next(); ok; v, ok = up.Next() {
			if dropping && fn(v) {
				continue
			}
			dropping = false
			return v, true, nil
		}
		return end[T](up.Err())
	})
}

// SkipWhile is an alias for [List.DropWhile].
func (l *List[T]) SkipWhile(fn func(T) bool) *List[T] { return l.DropWhile(fn) }

// SkipUntil skips leading elements up to the first one for which fn returns
// true.
func (l *List[T]) SkipUntil(fn func(T) bool) *List[T] {
	return l.DropWhile(func(v T) bool { return !fn(v) })
}

// SliceStep yields the elements at start, start+step, ... below stop.
// Pass [Unbounded] as stop to run to the end. The length of a List is not
// known without forcing it, so negative bounds and non-positive steps are
// rejected with collections.ErrInvalidRange.
func (l *List[T]) SliceStep(start, stop, step int) (*List[T], error) {
	if start < 0 || (stop < 0 && stop != Unbounded) || step <= 0 {
		return nil, fmt.Errorf("%w: start %d, stop %d, step %d", collections.ErrInvalidRange, start, stop, step)
	}
	up := l.iter()
	i, next := -1, start
	done := false
	return stage(func() (T, bool, error) {
		for {
			if done || (stop != Unbounded && next >= stop) {
				return end[T](nil)
			}
			v, ok := up.Next()
			if !ok {
				return end[T](up.Err())
			}
			i++
			if i == next {
				// no index past next is reachable once the advance overflows
				if step > math.MaxInt-next {
					done = true
				} else {
					next += step
				}
				return v, true, nil
			}
		}
	}), nil
}

// TakeNth yields every n-th element starting with the first.
func (l *List[T]) TakeNth(n int) (*List[T], error) {
	if n <= 0 {
		return nil, collections.InvalidArgument("step %d must be positive", n)
	}
	return l.SliceStep(0, Unbounded, n)
}

// Tail yields the last n elements. The stage forces upstream on its first
// pull.
func (l *List[T]) Tail(n int) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return arr.Tail(items, n), nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// concat chains iterators one after the other.
func concat[T any](its ...replay.Iterator[T]) *List[T] {
	return stage(func() (T, bool, error) {
		for len(its) > 0 {
			v, ok := its[0].Next()
			if ok {
				return v, true, nil
			}
			if err := its[0].Err(); err != nil {
				return end[T](err)
			}
			its = its[1:]
		}
		return end[T](nil)
	})
}

// Append yields the elements of l followed by items.
func (l *List[T]) Append(items ...T) *List[T] {
	return concat(l.iter(), FromSlice(items).iter())
}

// Prepend yields items followed by the elements of l.
func (l *List[T]) Prepend(items ...T) *List[T] {
	return concat(FromSlice(items).iter(), l.iter())
}

// Extend yields the elements of l followed by those of every other list.
func (l *List[T]) Extend(others ...*List[T]) *List[T] {
	its := []replay.Iterator[T]{l.iter()}
	for _, o := range others {
		its = append(its, o.iter())
	}
	return concat(its...)
}

// ExtendLeft yields the elements of every other list, in argument order,
// followed by those of l.
func (l *List[T]) ExtendLeft(others ...*List[T]) *List[T] {
	its := make([]replay.Iterator[T], 0, len(others)+1)
	for _, o := range others {
		its = append(its, o.iter())
	}
	return concat(append(its, l.iter())...)
}

// Concat is Extend with a single list.
func (l *List[T]) Concat(other *List[T]) *List[T] { return l.Extend(other) }

// Insert yields v before the element at index. An index past the end
// appends v. Negative indices are rejected with
// collections.ErrInvalidArgument.
func (l *List[T]) Insert(index int, v T) (*List[T], error) {
	if index < 0 {
		return nil, collections.InvalidArgument("negative index %d", index)
	}
	up := l.iter()
	i, inserted := 0, false
	return stage(func() (T, bool, error) {
		if !inserted && i == index {
			inserted = true
			return v, true, nil
		}
		next, ok := up.Next()
		if !ok {
			if err := up.Err(); err != nil {
				return end[T](err)
			}
			if !inserted {
				inserted = true
				return v, true, nil
			}
			return end[T](nil)
		}
		i++
		return next, true, nil
	}), nil
}

// RemoveAt drops the element at index. If the List turns out to be shorter,
// the traversal fails with collections.ErrIndexOutOfRange. Negative indices
// are rejected with collections.ErrInvalidArgument.
func (l *List[T]) RemoveAt(index int) (*List[T], error) {
	if index < 0 {
		return nil, collections.InvalidArgument("negative index %d", index)
	}
	up := l.iter()
	i := 0
	return stage(func() (T, bool, error) {
		for {
			v, ok := up.Next()
			if !ok {
				if err := up.Err(); err != nil {
					return end[T](err)
				}
				if i <= index {
					return end[T](fmt.Errorf("%w: index %d, length %d", collections.ErrIndexOutOfRange, index, i))
				}
				return end[T](nil)
			}
			i++
			if i-1 != index {
				return v, true, nil
			}
		}
	}), nil
}

// Clear returns an empty List of the same type.
func (l *List[T]) Clear() *List[T] { return Empty[T]() }

// Copy returns an independent List over the same sequence.
func (l *List[T]) Copy() *List[T] { return newList[T](l.iter()) }

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Interpose yields sep between each pair of adjacent elements.
func (l *List[T]) Interpose(sep T) *List[T] {
	up := l.iter()
	var (
		pending    T
		hasPending bool
		started    bool
	)
	return stage(func() (T, bool, error) {
		if hasPending {
			hasPending = false
			return pending, true, nil
		}
		v, ok := up.Next()
		if !ok {
			return end[T](up.Err())
		}
		if !started {
			started = true
			return v, true, nil
		}
		pending, hasPending = v, true
		return sep, true, nil
	})
}

// Interleave takes one element from l and every other list in turn,
// skipping lists that are exhausted.
func (l *List[T]) Interleave(others ...*List[T]) *List[T] {
	its := []replay.Iterator[T]{l.iter()}
	for _, o := range others {
		its = append(its, o.iter())
	}
	turn := 0
	return stage(func() (T, bool, error) {
		for len(its) > 0 {
			turn %= len(its)
			it := its[turn]
			if v, ok := it.Next(); ok {
				turn++
				return v, true, nil
			}
			if err := it.Err(); err != nil {
				return end[T](err)
			}
			its = slices.Delete(its, turn, turn+1)
		}
		return end[T](nil)
	})
}

// Loop yields the whole List n times. A negative n behaves like zero.
func (l *List[T]) Loop(n int) *List[T] {
	its := make([]replay.Iterator[T], 0, max(n, 0))
	for range max(n, 0) {
		its = append(its, l.iter())
	}
	return concat(its...)
}

// Accumulate yields the running fold of the elements.
func (l *List[T]) Accumulate(fn func(carry, item T) T) *List[T] {
	up := l.iter()
	var (
		acc     T
		started bool
	)
	return stage(func() (T, bool, error) {
		v, ok := up.Next()
		if !ok {
			return end[T](up.Err())
		}
		if started {
			acc = fn(acc, v)
		} else {
			acc, started = v, true
		}
		return acc, true, nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Windows
// ─────────────────────────────────────────────────────────────────────────────

// chunks groups upstream into runs of n; pad decides what to do with a short
// final run.
func chunks[T any](up replay.Iterator[T], n int, pad func([]T) []T) *List[[]T] {
	return stage(func() ([]T, bool, error) {
		group := make([]T, 0, n)
		for len(group) < n {
			v, ok := up.Next()
			if !ok {
				if err := up.Err(); err != nil {
					return end[[]T](err)
				}
				break
			}
			group = append(group, v)
		}
		if len(group) < n {
			group = pad(group)
		}
		if len(group) == 0 {
			return end[[]T](nil)
		}
		return group, true, nil
	})
}

// ChunkAll yields consecutive groups of n elements of l; the last group may
// be shorter. The window stages are functions because their element type is
// []T.
func ChunkAll[T any](l *List[T], n int) (*List[[]T], error) {
	if n <= 0 {
		return nil, collections.InvalidArgument("chunk size %d must be positive", n)
	}
	return chunks(l.iter(), n, func(g []T) []T { return g }), nil
}

// ChunkExact yields consecutive groups of exactly n elements and drops an
// incomplete final group.
func ChunkExact[T any](l *List[T], n int) (*List[[]T], error) {
	if n <= 0 {
		return nil, collections.InvalidArgument("chunk size %d must be positive", n)
	}
	return chunks(l.iter(), n, func([]T) []T { return nil }), nil
}

// ChunkPad yields consecutive groups of exactly n elements, filling the
// final group with pad.
func ChunkPad[T any](l *List[T], n int, pad T) (*List[[]T], error) {
	if n <= 0 {
		return nil, collections.InvalidArgument("chunk size %d must be positive", n)
	}
	return chunks(l.iter(), n, func(g []T) []T {
		if len(g) == 0 {
			return g
		}
		for len(g) < n {
			g = append(g, pad)
		}
		return g
	}), nil
}

// SlidingWindow yields every run of n consecutive elements.
func SlidingWindow[T any](l *List[T], n int) (*List[[]T], error) {
	if n <= 0 {
		return nil, collections.InvalidArgument("window size %d must be positive", n)
	}
	up := l.iter()
	var window []T
	return stage(func() ([]T, bool, error) {
		for len(window) < n {
			v, ok := up.Next()
			if !ok {
				return end[[]T](up.Err())
			}
			window = append(window, v)
		}
		out := arr.Clone(window)
		window = window[1:]
		return out, true, nil
	}), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Global-knowledge stages (force upstream on first pull)
// ─────────────────────────────────────────────────────────────────────────────

// Reverse yields the elements in reverse order.
func (l *List[T]) Reverse() *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return arr.Reverse(items), nil
	})
}

// Sort yields the elements stably sorted by less.
func (l *List[T]) Sort(less func(a, b T) bool) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
		return items, nil
	})
}

// Rotate shifts the elements cyclically to the right by n positions.
func (l *List[T]) Rotate(n int) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return arr.Rotate(items, n), nil
	})
}

// Shuffle yields the elements in random order. With the same
// sample.WithSeed it matches Collection.Shuffle.
func (l *List[T]) Shuffle(opts ...sample.Option) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return sample.Shuffle(items, opts...), nil
	})
}

// Sample yields k elements chosen with replacement. With the same seed it
// produces exactly the sample Collection.Sample produces for the same
// items. A negative k is rejected immediately; an empty population fails
// the traversal.
func (l *List[T]) Sample(k int, opts ...sample.Option) (*List[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", sample.ErrNegativeCount, k)
	}
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return sample.Choices(items, k, opts...)
	}), nil
}

package lazy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/replay"
)

// Forcing operations pull elements through the stage chain. Each one starts
// a fresh traversal, so calling several of them on the same List observes
// the same sequence, and an error raised by any stage is returned here.

// ToSlice evaluates the List into a new slice.
func (l *List[T]) ToSlice() ([]T, error) {
	return replay.Collect(l.iter())
}

// Evaluate materialises the List as an eager collection.
func (l *List[T]) Evaluate() (*collections.Collection[T], error) {
	items, err := l.ToSlice()
	if err != nil {
		return nil, err
	}
	return collections.From(items), nil
}

// At returns the element at index, pulling no further than index. Negative
// indices are rejected with collections.ErrInvalidArgument; an index past the
// end returns collections.ErrIndexOutOfRange.
func (l *List[T]) At(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, collections.InvalidArgument("negative index %d", index)
	}
	it := l.iter()
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if i == index {
			return v, nil
		}
		i++
	}
	if err := it.Err(); err != nil {
		return zero, err
	}
	return zero, fmt.Errorf("%w: index %d, length %d", collections.ErrIndexOutOfRange, index, i)
}

// Len counts the elements with a full traversal. It never returns on an
// infinite List.
func (l *List[T]) Len() (int, error) {
	it := l.iter()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n, it.Err()
}

// Each calls fn for every element.
func (l *List[T]) Each(fn func(T, int)) error {
	it := l.iter()
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v, i)
		i++
	}
	return it.Err()
}

// Contains reports whether any element satisfies fn, stopping at the first
// match.
func (l *List[T]) Contains(fn func(T) bool) (bool, error) {
	_, found, err := l.First(fn)
	return found, err
}

// Some is an alias for [List.Contains].
func (l *List[T]) Some(fn func(T) bool) (bool, error) { return l.Contains(fn) }

// Every reports whether all elements satisfy fn, stopping at the first
// failure. It is true for an empty List.
func (l *List[T]) Every(fn func(T) bool) (bool, error) {
	found, err := l.Contains(func(v T) bool { return !fn(v) })
	return !found && err == nil, err
}

// Reduce folds the elements from left to right starting from initial. For a
// result of another type use the package-level [Reduce].
func (l *List[T]) Reduce(fn func(carry, item T) T, initial T) (T, error) {
	return Reduce(l, fn, initial)
}

// ReduceOrFail folds the elements using the first one as the initial value.
// An empty List returns collections.ErrEmptyCollection.
func (l *List[T]) ReduceOrFail(fn func(carry, item T) T) (T, error) {
	it := l.iter()
	acc, ok := it.Next()
	if !ok {
		if err := it.Err(); err != nil {
			return acc, err
		}
		return acc, collections.ErrEmptyCollection
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v)
	}
	return acc, it.Err()
}

// First returns the first element, or the first satisfying fns[0]. The
// boolean is false when there is no such element.
func (l *List[T]) First(fns ...func(T) bool) (T, bool, error) {
	var zero T
	it := l.iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if len(fns) == 0 || fns[0](v) {
			return v, true, nil
		}
	}
	return zero, false, it.Err()
}

// Second returns the second element.
func (l *List[T]) Second() (T, bool, error) {
	v, err := l.At(1)
	if err != nil {
		var zero T
		if errors.Is(err, collections.ErrIndexOutOfRange) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return v, true, nil
}

// Last returns the last element, or the last satisfying fns[0]. It reads
// the whole List.
func (l *List[T]) Last(fns ...func(T) bool) (T, bool, error) {
	var (
		last  T
		found bool
	)
	it := l.iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if len(fns) == 0 || fns[0](v) {
			last, found = v, true
		}
	}
	if err := it.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return last, found, nil
}

// FindIndex returns the index of the first element satisfying fn, or
// collections.ErrNotFound.
func (l *List[T]) FindIndex(fn func(T) bool) (int, error) {
	it := l.iter()
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if fn(v) {
			return i, nil
		}
		i++
	}
	if err := it.Err(); err != nil {
		return -1, err
	}
	return -1, collections.ErrNotFound
}

// FindLastIndex returns the index of the last element satisfying fn, or
// collections.ErrNotFound.
func (l *List[T]) FindLastIndex(fn func(T) bool) (int, error) {
	it := l.iter()
	i, found := 0, -1
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if fn(v) {
			found = i
		}
		i++
	}
	if err := it.Err(); err != nil {
		return -1, err
	}
	if found < 0 {
		return -1, collections.ErrNotFound
	}
	return found, nil
}

// Join joins the default formatting of every element with sep.
func (l *List[T]) Join(sep string) (string, error) {
	var b strings.Builder
	err := l.Each(func(v T, i int) {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level forcing operations
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the elements into a value of type U.
func Reduce[T, U any](l *List[T], fn func(U, T) U, initial U) (U, error) {
	acc := initial
	it := l.iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v)
	}
	if err := it.Err(); err != nil {
		return initial, err
	}
	return acc, nil
}

// GroupBy evaluates the List and groups its elements by key. Each group
// keeps encounter order.
func GroupBy[T any, K comparable](l *List[T], key func(T) K) (map[K]*collections.Collection[T], error) {
	c, err := l.Evaluate()
	if err != nil {
		return nil, err
	}
	return collections.GroupBy(c, key), nil
}

// ReduceBy evaluates the List and folds each key group with reducer in one
// traversal.
func ReduceBy[T any, K comparable](l *List[T], key func(T) K, reducer func(carry, item T) T) (map[K]T, error) {
	out := make(map[K]T)
	it := l.iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		k := key(v)
		if acc, seen := out[k]; seen {
			out[k] = reducer(acc, v)
			continue
		}
		out[k] = v
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EqualFunc compares a and b pairwise with eq. The comparison is bounded by
// the shorter List and stops at the first mismatch, so a List equals any
// List it is a prefix of.
func EqualFunc[A, B any](a *List[A], b *List[B], eq func(A, B) bool) (bool, error) {
	ia, ib := a.iter(), b.iter()
	for {
		x, okA := ia.Next()
		if !okA {
			return true, ia.Err()
		}
		y, okB := ib.Next()
		if !okB {
			return true, ib.Err()
		}
		if !eq(x, y) {
			return false, nil
		}
	}
}

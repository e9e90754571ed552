package collections

import (
	"fmt"

	"github.com/samber/lo"
)

// Functions in this file need item equality, so they are constrained to
// comparable element types.

// Index returns the position of the first item equal to v, or [ErrNotFound].
func Index[T comparable](c *Collection[T], v T) (int, error) {
	return c.FindIndex(func(item T) bool { return item == v })
}

// IndexLast returns the position of the last item equal to v, or
// [ErrNotFound].
func IndexLast[T comparable](c *Collection[T], v T) (int, error) {
	return c.FindLastIndex(func(item T) bool { return item == v })
}

// Includes reports whether v is present.
func Includes[T comparable](c *Collection[T], v T) bool {
	return lo.Contains(c.items, v)
}

// CountOf returns the number of items equal to v.
func CountOf[T comparable](c *Collection[T], v T) int {
	return lo.Count(c.items, v)
}

// Remove returns a new collection without the first item equal to v.
// Returns [ErrNotFound] when v is absent.
func Remove[T comparable](c *Collection[T], v T) (*Collection[T], error) {
	i, err := Index(c, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, v)
	}
	return c.Forget(i), nil
}

// RemoveAll returns a new collection without any item equal to v.
func RemoveAll[T comparable](c *Collection[T], v T) *Collection[T] {
	return wrap(lo.Without(c.items, v))
}

// Compact drops every zero value. For a Collection[bool] only true remains.
//
//	collections.Compact(collections.New("a", "", "b")) // → [a b]
func Compact[T comparable](c *Collection[T]) *Collection[T] {
	return wrap(lo.Compact(c.items))
}

// Frequencies counts the occurrences of every distinct item.
func Frequencies[T comparable](c *Collection[T]) map[T]int {
	return lo.CountValues(c.items)
}

// FrequencyPairs returns (item, count) pairs in first-seen order.
func FrequencyPairs[T comparable](c *Collection[T]) *Collection[Pair[T, int]] {
	counts := Frequencies(c)
	out := make([]Pair[T, int], 0, len(counts))
	for _, item := range lo.Uniq(c.items) {
		out = append(out, Pair[T, int]{First: item, Second: counts[item]})
	}
	return wrap(out)
}

// Mode returns the most common item. When several items tie, the one seen
// first wins. Returns [ErrEmptyCollection] for an empty collection.
func Mode[T comparable](c *Collection[T]) (T, error) {
	pairs := FrequencyPairs(c)
	if pairs.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	best := pairs.items[0]
	for _, p := range pairs.items[1:] {
		if p.Second > best.Second {
			best = p
		}
	}
	return best.First, nil
}

// MultiMode returns every item tied for the highest count, in first-seen
// order. The result is empty for an empty collection.
func MultiMode[T comparable](c *Collection[T]) *Collection[T] {
	pairs := FrequencyPairs(c)
	top := 0
	for _, p := range pairs.items {
		top = max(top, p.Second)
	}
	out := make([]T, 0)
	for _, p := range pairs.items {
		if p.Second == top {
			out = append(out, p.First)
		}
	}
	return wrap(out)
}

// Uniq returns the distinct items in first-seen order.
func Uniq[T comparable](c *Collection[T]) *Collection[T] {
	return wrap(lo.Uniq(c.items))
}

// NUnique returns the number of distinct items.
func NUnique[T comparable](c *Collection[T]) int {
	return len(ToSet(c))
}

// IsDistinct reports whether no item occurs twice.
func IsDistinct[T comparable](c *Collection[T]) bool {
	return NUnique(c) == len(c.items)
}

// ToSet returns the distinct items as a set.
func ToSet[T comparable](c *Collection[T]) map[T]struct{} {
	set := make(map[T]struct{}, len(c.items))
	for _, item := range c.items {
		set[item] = struct{}{}
	}
	return set
}

// Equal reports whether a and b hold the same items in the same order.
func Equal[T comparable](a, b *Collection[T]) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if a.items[i] != b.items[i] {
			return false
		}
	}
	return true
}

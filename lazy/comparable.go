package lazy

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

// Equal reports whether a and b agree element by element. Like
// [EqualFunc] the comparison is bounded by the shorter List.
func Equal[T comparable](a, b *List[T]) (bool, error) {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// Includes reports whether v occurs, stopping at the first occurrence.
func Includes[T comparable](l *List[T], v T) (bool, error) {
	return l.Contains(func(x T) bool { return x == v })
}

// Index returns the position of the first element equal to v, or
// collections.ErrNotFound.
func Index[T comparable](l *List[T], v T) (int, error) {
	return l.FindIndex(func(x T) bool { return x == v })
}

// CountOf returns how many elements equal v.
func CountOf[T comparable](l *List[T], v T) (int, error) {
	return Reduce(l, func(n int, x T) int {
		if x == v {
			n++
		}
		return n
	}, 0)
}

// Remove drops the first element equal to v. If the traversal ends without
// meeting v it fails with collections.ErrNotFound.
func Remove[T comparable](l *List[T], v T) *List[T] {
	up := l.iter()
	removed := false
	return stage(func() (T, bool, error) {
		for x, ok := up.Next(); ok; x, ok = up.Next() {
			if !removed && x == v {
				removed = true
				continue
			}
			return x, true, nil
		}
		if err := up.Err(); err != nil {
			return end[T](err)
		}
		if !removed {
			return end[T](fmt.Errorf("%w: %v", collections.ErrNotFound, v))
		}
		return end[T](nil)
	})
}

// RemoveAll drops every element equal to v.
func RemoveAll[T comparable](l *List[T], v T) *List[T] {
	return l.Reject(func(x T) bool { return x == v })
}

// Uniq drops repeated elements, keeping first occurrences.
func Uniq[T comparable](l *List[T]) *List[T] {
	seen := make(map[T]struct{})
	return l.Filter(func(x T) bool {
		if _, ok := seen[x]; ok {
			return false
		}
		seen[x] = struct{}{}
		return true
	})
}

// Compact drops zero values. For a List[bool] only true remains.
func Compact[T comparable](l *List[T]) *List[T] {
	var zero T
	return l.Filter(func(x T) bool { return x != zero })
}

// ─────────────────────────────────────────────────────────────────────────────
// Frequencies (force evaluation)
// ─────────────────────────────────────────────────────────────────────────────

// Frequencies counts the occurrences of every distinct element.
func Frequencies[T comparable](l *List[T]) (map[T]int, error) {
	c, err := l.Evaluate()
	if err != nil {
		return nil, err
	}
	return collections.Frequencies(c), nil
}

// Mode returns the most common element, preferring the one seen first on a
// tie. An empty List returns collections.ErrEmptyCollection.
func Mode[T comparable](l *List[T]) (T, error) {
	c, err := l.Evaluate()
	if err != nil {
		var zero T
		return zero, err
	}
	return collections.Mode(c)
}

// MultiMode returns every element tied for the highest count in first-seen
// order.
func MultiMode[T comparable](l *List[T]) (*collections.Collection[T], error) {
	c, err := l.Evaluate()
	if err != nil {
		return nil, err
	}
	return collections.MultiMode(c), nil
}

// NUnique returns the number of distinct elements.
func NUnique[T comparable](l *List[T]) (int, error) {
	set, err := ToSet(l)
	return len(set), err
}

// IsDistinct reports whether no element occurs twice. It stops at the first
// repeat.
func IsDistinct[T comparable](l *List[T]) (bool, error) {
	seen := make(map[T]struct{})
	repeated, err := l.Contains(func(x T) bool {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
		return false
	})
	return !repeated && err == nil, err
}

// ToSet returns the distinct elements as a set.
func ToSet[T comparable](l *List[T]) (map[T]struct{}, error) {
	set := make(map[T]struct{})
	err := l.Each(func(x T, _ int) { set[x] = struct{}{} })
	if err != nil {
		return nil, err
	}
	return set, nil
}

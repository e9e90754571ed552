package lazy

import (
	"cmp"

	"github.com/hasbyte1/go-lazy-collections/arr"
	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/replay"
)

// Package-level stages that change the element type. Go methods cannot
// introduce type parameters, so these take the List as their first
// argument:
//
//	lengths := lazy.Map(words, func(s string) int { return len(s) })

// Map transforms every element with fn.
func Map[T, U any](l *List[T], fn func(T) U) *List[U] {
	up := l.iter()
	return stage(func() (U, bool, error) {
		v, ok := up.Next()
		if !ok {
			return end[U](up.Err())
		}
		return fn(v), true, nil
	})
}

// TryMap transforms every element with a fallible fn. The first error ends
// the traversal and is reported by the forcing operation that reached it.
func TryMap[T, U any](l *List[T], fn func(T) (U, error)) *List[U] {
	up := l.iter()
	return stage(func() (U, bool, error) {
		v, ok := up.Next()
		if !ok {
			return end[U](up.Err())
		}
		out, err := fn(v)
		if err != nil {
			return end[U](err)
		}
		return out, true, nil
	})
}

// FlatMap maps every element to a slice and yields the slices' elements in
// order.
func FlatMap[T, U any](l *List[T], fn func(T) []U) *List[U] {
	up := l.iter()
	var pending []U
	return stage(func() (U, bool, error) {
		for len(pending) == 0 {
			v, ok := up.Next()
			if !ok {
				return end[U](up.Err())
			}
			pending = fn(v)
		}
		out := pending[0]
		pending = pending[1:]
		return out, true, nil
	})
}

// Flatten yields the elements of every nested slice.
func Flatten[T any](l *List[[]T]) *List[T] {
	return FlatMap(l, func(s []T) []T { return s })
}

// Enumerate pairs every element with its index.
func Enumerate[T any](l *List[T]) *List[collections.Pair[int, T]] {
	i := -1
	return Map(l, func(v T) collections.Pair[int, T] {
		i++
		return collections.Pair[int, T]{First: i, Second: v}
	})
}

// Fixed wraps every element as a present Option.
func Fixed[T any](l *List[T]) *List[collections.Option[T]] {
	return Map(l, collections.Some[T])
}

// GetPath projects the value at a dot-notation path out of every element.
// Missing paths yield an absent Option.
func GetPath(l *List[map[string]any], path string) *List[collections.Option[any]] {
	return Map(l, func(m map[string]any) collections.Option[any] {
		if v, ok := arr.Get(m, path); ok {
			return collections.Some(v)
		}
		return collections.None[any]()
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Zip
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs the elements of a and b and stops at the shorter list.
func Zip[A, B any](a *List[A], b *List[B]) *List[collections.Pair[A, B]] {
	ia, ib := a.iter(), b.iter()
	return stage(func() (collections.Pair[A, B], bool, error) {
		x, ok := ia.Next()
		if !ok {
			return end[collections.Pair[A, B]](ia.Err())
		}
		y, ok := ib.Next()
		if !ok {
			return end[collections.Pair[A, B]](ib.Err())
		}
		return collections.Pair[A, B]{First: x, Second: y}, true, nil
	})
}

// Zip3 combines three lists into Triples and stops at the shortest.
func Zip3[A, B, C any](a *List[A], b *List[B], c *List[C]) *List[collections.Triple[A, B, C]] {
	ab := Zip(a, b)
	return Map(Zip(ab, c), func(p collections.Pair[collections.Pair[A, B], C]) collections.Triple[A, B, C] {
		return collections.Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}
	})
}

// ZipN combines any number of lists of the same type row by row and stops
// at the shortest. With no lists the result is empty.
func ZipN[T any](ls ...*List[T]) *List[[]T] {
	if len(ls) == 0 {
		return Empty[[]T]()
	}
	its := iters(ls)
	return stage(func() ([]T, bool, error) {
		row := make([]T, len(its))
		for i, it := range its {
			v, ok := it.Next()
			if !ok {
				return end[[]T](it.Err())
			}
			row[i] = v
		}
		return row, true, nil
	})
}

// ZipLongest pairs the elements of a and b until both are exhausted,
// marking positions past the end of the shorter list as absent.
func ZipLongest[A, B any](a *List[A], b *List[B]) *List[collections.Pair[collections.Option[A], collections.Option[B]]] {
	ia, ib := a.iter(), b.iter()
	return stage(func() (collections.Pair[collections.Option[A], collections.Option[B]], bool, error) {
		var r collections.Pair[collections.Option[A], collections.Option[B]]
		x, okA := ia.Next()
		if !okA {
			if err := ia.Err(); err != nil {
				return r, false, err
			}
		}
		y, okB := ib.Next()
		if !okB {
			if err := ib.Err(); err != nil {
				return r, false, err
			}
		}
		if !okA && !okB {
			return r, false, nil
		}
		if okA {
			r.First = collections.Some(x)
		}
		if okB {
			r.Second = collections.Some(y)
		}
		return r, true, nil
	})
}

// ZipLongestN is the homogeneous, any-arity form of [ZipLongest].
func ZipLongestN[T any](ls ...*List[T]) *List[[]collections.Option[T]] {
	its := iters(ls)
	return stage(func() ([]collections.Option[T], bool, error) {
		row := make([]collections.Option[T], len(its))
		live := false
		for i, it := range its {
			v, ok := it.Next()
			if !ok {
				if err := it.Err(); err != nil {
					return end[[]collections.Option[T]](err)
				}
				continue
			}
			row[i] = collections.Some(v)
			live = true
		}
		if !live {
			return end[[]collections.Option[T]](nil)
		}
		return row, true, nil
	})
}

func iters[T any](ls []*List[T]) []replay.Iterator[T] {
	its := make([]replay.Iterator[T], len(ls))
	for i, l := range ls {
		its[i] = l.iter()
	}
	return its
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering (force upstream on first pull)
// ─────────────────────────────────────────────────────────────────────────────

// SortByKey yields the elements stably sorted by key, descending when
// reverse is set.
func SortByKey[T any, K cmp.Ordered](l *List[T], key func(T) K, reverse bool) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return arr.SortStable(items, key, reverse), nil
	})
}

// TopK yields the k elements with the greatest key, largest first. Ties keep
// their encounter order.
func TopK[T any, K cmp.Ordered](l *List[T], k int, key func(T) K) *List[T] {
	return deferred(l.iter(), func(items []T) ([]T, error) {
		return arr.TopK(items, k, key), nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinatorics
// ─────────────────────────────────────────────────────────────────────────────

// indexed materialises upstream on the first pull, then yields one tuple per
// index set produced by gen.
func indexed[T any](up replay.Iterator[T], gen func(n int) arr.IndexGenerator) *List[[]T] {
	var (
		items  []T
		next   arr.IndexGenerator
		loaded bool
	)
	return stage(func() ([]T, bool, error) {
		if !loaded {
			loaded = true
			var err error
			if items, err = replay.Collect(up); err != nil {
				return end[[]T](err)
			}
			next = gen(len(items))
		}
		idx, ok := next()
		if !ok {
			return end[[]T](nil)
		}
		return arr.PickAll(items, idx), true, nil
	})
}

// Combinations yields every r-length combination in lexicographic index
// order. Tuples are produced one at a time once upstream has been read.
func Combinations[T any](l *List[T], r int) (*List[[]T], error) {
	if r < 0 {
		return nil, collections.InvalidArgument("r %d must not be negative", r)
	}
	return indexed(l.iter(), func(n int) arr.IndexGenerator { return arr.CombinationIndices(n, r) }), nil
}

// CombinationsWithReplacement yields every r-length combination in which an
// element may repeat.
func CombinationsWithReplacement[T any](l *List[T], r int) (*List[[]T], error) {
	if r < 0 {
		return nil, collections.InvalidArgument("r %d must not be negative", r)
	}
	return indexed(l.iter(), func(n int) arr.IndexGenerator { return arr.ReplacementIndices(n, r) }), nil
}

// Permutations yields every ordered selection of r distinct positions.
func Permutations[T any](l *List[T], r int) (*List[[]T], error) {
	if r < 0 {
		return nil, collections.InvalidArgument("r %d must not be negative", r)
	}
	return indexed(l.iter(), func(n int) arr.IndexGenerator { return arr.PermutationIndices(n, r) }), nil
}

// Product yields the Cartesian product of a and b, with b varying fastest.
// b is read in full on the first pull; a is consumed lazily.
func Product[A, B any](a *List[A], b *List[B]) *List[collections.Pair[A, B]] {
	ia, ib := a.iter(), b.iter()
	var (
		right  []B
		loaded bool
		cur    A
		pos    int
	)
	return stage(func() (collections.Pair[A, B], bool, error) {
		var p collections.Pair[A, B]
		if !loaded {
			loaded = true
			var err error
			if right, err = replay.Collect(ib); err != nil {
				return p, false, err
			}
			pos = len(right)
		}
		if len(right) == 0 {
			return p, false, nil
		}
		if pos == len(right) {
			v, ok := ia.Next()
			if !ok {
				return p, false, ia.Err()
			}
			cur, pos = v, 0
		}
		pos++
		p.First, p.Second = cur, right[pos-1]
		return p, true, nil
	})
}

package collections

import (
	"cmp"

	"github.com/hasbyte1/go-lazy-collections/arr"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Collection[U].
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U].
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	for i, item := range c.items {
		out = append(out, fn(item, i)...)
	}
	return &Collection[U]{items: out}
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T and returns a new
// Collection[U].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[U]{items: out}
}

// GetPath projects the value at a dot-notation path out of every element.
// Elements where the path is missing yield an absent Option.
//
//	cities := collections.GetPath(users, "address.city")
func GetPath(c *Collection[map[string]any], path string) *Collection[Option[any]] {
	return Pluck(c, func(m map[string]any) Option[any] {
		if v, ok := arr.Get(m, path); ok {
			return Some(v)
		}
		return None[any]()
	})
}

// GroupBy groups items by the comparable key K extracted by fn. Items keep
// their encounter order inside each group.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for _, item := range c.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}

// ReduceBy groups items by key and folds each group with reducer in a single
// traversal. The first item of a group is its initial value.
//
//	collections.ReduceBy(collections.New(1, 2, 3, 4),
//	    func(n int) int { return n % 2 },
//	    func(a, b int) int { return a + b }) // → map[0:6 1:4]
func ReduceBy[T any, K comparable](c *Collection[T], key func(T) K, reducer func(carry, item T) T) map[K]T {
	out := make(map[K]T)
	for _, item := range c.items {
		k := key(item)
		if acc, ok := out[k]; ok {
			out[k] = reducer(acc, item)
			continue
		}
		out[k] = item
	}
	return out
}

// SortByKey returns a stably sorted collection ordered by key, descending
// when reverse is set. Equal keys keep their encounter order in both
// directions.
func SortByKey[T any, K cmp.Ordered](c *Collection[T], key func(T) K, reverse bool) *Collection[T] {
	return wrap(arr.SortStable(c.items, key, reverse))
}

// TopK returns the k items with the greatest key, largest first. Ties keep
// their encounter order.
func TopK[T any, K cmp.Ordered](c *Collection[T], k int, key func(T) K) *Collection[T] {
	return wrap(arr.TopK(c.items, k, key))
}

// Enumerate pairs every item with its index.
func Enumerate[T any](c *Collection[T]) *Collection[Pair[int, T]] {
	return Map(c, func(item T, i int) Pair[int, T] { return Pair[int, T]{First: i, Second: item} })
}

// Fixed returns every item wrapped as present, the element type produced by
// [ZipLongestN] for a single input.
func Fixed[T any](c *Collection[T]) *Collection[Option[T]] {
	return Map(c, func(item T, _ int) Option[T] { return Some(item) })
}

// Zip combines two collections element-by-element into Pairs.
// Stops at the shorter of the two collections.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	n := min(len(a.items), len(b.items))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Collection[Pair[A, B]]{items: out}
}

// Zip3 combines three collections into Triples, stopping at the shortest.
func Zip3[A, B, C any](a *Collection[A], b *Collection[B], c *Collection[C]) *Collection[Triple[A, B, C]] {
	n := min(len(a.items), len(b.items), len(c.items))
	out := make([]Triple[A, B, C], n)
	for i := 0; i < n; i++ {
		out[i] = Triple[A, B, C]{First: a.items[i], Second: b.items[i], Third: c.items[i]}
	}
	return &Collection[Triple[A, B, C]]{items: out}
}

// ZipN combines any number of collections of the same element type. Each
// result row holds one item from every input; the result stops at the
// shortest input. With no inputs the result is empty.
func ZipN[T any](cs ...*Collection[T]) *Collection[[]T] {
	if len(cs) == 0 {
		return Empty[[]T]()
	}
	n := len(cs[0].items)
	for _, c := range cs[1:] {
		n = min(n, len(c.items))
	}
	out := make([][]T, n)
	for i := range out {
		row := make([]T, len(cs))
		for j, c := range cs {
			row[j] = c.items[i]
		}
		out[i] = row
	}
	return wrap(out)
}

// ZipLongest combines two collections element-by-element, running to the
// longer of the two. Positions past the end of the shorter side are absent.
//
//	collections.ZipLongest(collections.New(1, 2, 3), collections.New("a"))
//	// → [(1, a) (2, <absent>) (3, <absent>)]
func ZipLongest[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[Option[A], Option[B]]] {
	n := max(len(a.items), len(b.items))
	out := make([]Pair[Option[A], Option[B]], n)
	for i := range out {
		if i < len(a.items) {
			out[i].First = Some(a.items[i])
		}
		if i < len(b.items) {
			out[i].Second = Some(b.items[i])
		}
	}
	return wrap(out)
}

// ZipLongestN is the homogeneous, any-arity form of [ZipLongest].
func ZipLongestN[T any](cs ...*Collection[T]) *Collection[[]Option[T]] {
	n := 0
	for _, c := range cs {
		n = max(n, len(c.items))
	}
	out := make([][]Option[T], n)
	for i := range out {
		row := make([]Option[T], len(cs))
		for j, c := range cs {
			if i < len(c.items) {
				row[j] = Some(c.items[i])
			}
		}
		out[i] = row
	}
	return wrap(out)
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
//
//	m, _ := collections.Combine([]string{"a", "b"}, []int{1, 2})
//	// → map["a":1, "b":2]
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	total := 0
	for _, chunk := range c.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range c.items {
		out = append(out, chunk...)
	}
	return &Collection[T]{items: out}
}

// Flatten is an alias for [Collapse]. It flattens one level of nesting.
func Flatten[T any](c *Collection[[]T]) *Collection[T] { return Collapse(c) }

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// slices or *Collection[any] values of arbitrary depth.
//
// The result type is Collection[any]; use type assertions on individual
// elements as needed.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.items))
	var flatten func(items []any)
	flatten = func(items []any) {
		for _, item := range items {
			switch v := item.(type) {
			case []any:
				flatten(v)
			case *Collection[any]:
				flatten(v.items)
			default:
				out = append(out, item)
			}
		}
	}
	flatten(c.items)
	return &Collection[any]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinatorics
// ─────────────────────────────────────────────────────────────────────────────

// Combinations returns every r-length combination of the items in
// lexicographic index order. r > Count() yields an empty collection.
// Returns [ErrInvalidArgument] for a negative r.
//
//	collections.Combinations(collections.New("a", "b", "c"), 2)
//	// → [[a b] [a c] [b c]]
func Combinations[T any](c *Collection[T], r int) (*Collection[[]T], error) {
	if r < 0 {
		return nil, InvalidArgument("r %d must not be negative", r)
	}
	return wrap(arr.Drain(c.items, arr.CombinationIndices(len(c.items), r))), nil
}

// CombinationsWithReplacement returns every r-length combination in which
// an item may be chosen more than once.
func CombinationsWithReplacement[T any](c *Collection[T], r int) (*Collection[[]T], error) {
	if r < 0 {
		return nil, InvalidArgument("r %d must not be negative", r)
	}
	return wrap(arr.Drain(c.items, arr.ReplacementIndices(len(c.items), r))), nil
}

// Permutations returns every ordered selection of r distinct positions.
func Permutations[T any](c *Collection[T], r int) (*Collection[[]T], error) {
	if r < 0 {
		return nil, InvalidArgument("r %d must not be negative", r)
	}
	return wrap(arr.Drain(c.items, arr.PermutationIndices(len(c.items), r))), nil
}

// Product returns the Cartesian product of a and b, with b varying fastest.
func Product[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	out := make([]Pair[A, B], 0, len(a.items)*len(b.items))
	next := arr.ProductIndices(len(a.items), len(b.items))
	for idx, ok := next(); ok; idx, ok = next() {
		out = append(out, Pair[A, B]{First: a.items[idx[0]], Second: b.items[idx[1]]})
	}
	return wrap(out)
}

package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/hasbyte1/go-lazy-collections/arr"
	"github.com/hasbyte1/go-lazy-collections/sample"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
// It is the eager counterpart of [lazy.List]: every operation runs
// immediately and materialises its result.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same collection concurrently) and avoids
// accidental aliasing bugs in pipelines.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int, _ int) bool { return n%2 == 0 }).
//	    Rotate(1).
//	    Take(2)
//
// # Indices
//
// Methods that take an index accept negative values counting from the end
// (At(-1) is the last item), because the length of an eager collection is
// always known. Lazy lists reject negative indices instead.
//
// # Lookups
//
// Value lookups (First, Last, Get) report absence with a boolean and never
// fail. Index lookups (FindIndex, FindLastIndex, [Index]) return
// [ErrNotFound] when nothing matches.
type Collection[T any] struct {
	items []T
}

// Unbounded leaves a SliceStep bound open.
const Unbounded = arr.Unbounded

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: arr.Clone(items)}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{items: arr.Clone(items)}
}

// FromSeq creates a Collection by draining a finite sequence.
func FromSeq[T any](seq iter.Seq[T]) *Collection[T] {
	return &Collection[T]{items: slices.AppendSeq(make([]T, 0), seq)}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return arr.Clone(c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// At returns the item at index. A negative index counts from the end.
// Returns [ErrIndexOutOfRange] when the index is outside the collection.
func (c *Collection[T]) At(index int) (T, error) {
	i, ok := arr.Resolve(index, len(c.items))
	if !ok {
		var zero T
		return zero, indexError(index, len(c.items))
	}
	return c.items[i], nil
}

// Pick returns the items at the given indices, in the order given.
// Negative indices count from the end.
func (c *Collection[T]) Pick(indices ...int) (*Collection[T], error) {
	out := make([]T, len(indices))
	for i, index := range indices {
		v, err := c.At(index)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return wrap(out), nil
}

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Keys returns the integer indices of the collection (0 … Count()-1).
func (c *Collection[T]) Keys() []int {
	keys := make([]int, len(c.items))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Values returns a clean copy of the collection.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// Copy is an alias for [Collection.Values].
func (c *Collection[T]) Copy() *Collection[T] { return c.Values() }

// Clear returns an empty collection of the same type.
func (c *Collection[T]) Clear() *Collection[T] { return Empty[T]() }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns an index/item sequence for range-over-func loops.
func (c *Collection[T]) Iter() iter.Seq2[int, T] {
	return slices.All(c.items)
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range c.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// FirstOrFail returns the first item matching fn, or [ErrNotFound].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNotFound
	}
	return item, nil
}

// Second returns the second item, or false when there are fewer than two.
func (c *Collection[T]) Second() (T, bool) { return c.Get(1) }

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate. The scan runs backwards.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(c.items) - 1; i >= 0; i-- {
			if fns[0](c.items[i]) {
				return c.items[i], true
			}
		}
		return zero, false
	}
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// LastOrFail returns the last item matching fn, or [ErrNotFound].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNotFound
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return c.Search(fn) >= 0
}

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int {
	for i, item := range c.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// FindIndex returns the index of the first item satisfying fn, or
// [ErrNotFound].
func (c *Collection[T]) FindIndex(fn func(T) bool) (int, error) {
	if i := c.Search(fn); i >= 0 {
		return i, nil
	}
	return -1, ErrNotFound
}

// FindLastIndex returns the index of the last item satisfying fn, or
// [ErrNotFound].
func (c *Collection[T]) FindLastIndex(fn func(T) bool) (int, error) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if fn(c.items[i]) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Positions returns the indices of every item satisfying fn.
func (c *Collection[T]) Positions(fn func(T) bool) *Collection[int] {
	out := make([]int, 0)
	for i, item := range c.items {
		if fn(item) {
			out = append(out, i)
		}
	}
	return wrap(out)
}

// Every reports whether fn holds for all items. It is true for an empty
// collection.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	for _, item := range c.items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one item.
func (c *Collection[T]) Some(fn func(T) bool) bool { return c.Contains(fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// FilterFalse is an alias for [Collection.Reject].
func (c *Collection[T]) FilterFalse(fn func(T, int) bool) *Collection[T] { return c.Reject(fn) }

// Where is an alias for [Collection.Filter].
func (c *Collection[T]) Where(fn func(T, int) bool) *Collection[T] { return c.Filter(fn) }

// WhereNot is an alias for [Collection.Reject].
func (c *Collection[T]) WhereNot(fn func(T, int) bool) *Collection[T] { return c.Reject(fn) }

// Map returns a new Collection[any] with each item transformed by fn(item, index).
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(fn func(T, int) any) *Collection[any] {
	return Map(c, fn)
}

// FlatMap maps each item to a []any via fn and flattens the results one level.
//
// For type-safe flat-mapping, use the package-level [FlatMap] function.
func (c *Collection[T]) FlatMap(fn func(T, int) []any) *Collection[any] {
	return FlatMap(c, fn)
}

// Pluck extracts a value from each item using fn and returns a Collection[any].
//
// For type-safe plucking, use the package-level [Pluck] function.
func (c *Collection[T]) Pluck(fn func(T) any) *Collection[any] {
	return Pluck(c, fn)
}

// Reduce folds the collection from left to right, starting from initial.
//
// For reductions that change the type (T → U where T ≠ U), use the
// package-level [Reduce] function.
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for _, item := range c.items {
		result = fn(result, item)
	}
	return result
}

// ReduceOrFail folds the collection using the first item as the initial
// value. Returns [ErrEmptyCollection] when the collection is empty.
func (c *Collection[T]) ReduceOrFail(fn func(carry, item T) T) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	result := c.items[0]
	for _, item := range c.items[1:] {
		result = fn(result, item)
	}
	return result, nil
}

// Accumulate returns the running fold: item i of the result is fn applied
// cumulatively to items 0..i.
//
//	New(1, 2, 3, 4).Accumulate(func(a, b int) int { return a * b }) // → [1 2 6 24]
func (c *Collection[T]) Accumulate(fn func(carry, item T) T) *Collection[T] {
	return wrap(arr.Accumulate(c.items, fn))
}

// Unique returns a new collection with duplicates removed, keeping first
// occurrences. fn extracts the comparison key; pass nil to use
// fmt.Sprintf("%v") for any T.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	seen := make(map[any]struct{}, len(c.items))
	return c.Filter(func(item T, _ int) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Diff returns items in c that are not present in other.
// fn extracts the key used for equality comparison.
func (c *Collection[T]) Diff(other *Collection[T], fn func(T) any) *Collection[T] {
	set := make(map[any]struct{}, other.Count())
	other.Each(func(item T, _ int) { set[fn(item)] = struct{}{} })
	return c.Filter(func(item T, _ int) bool {
		_, found := set[fn(item)]
		return !found
	})
}

// Intersect returns items that appear in both c and other.
// fn extracts the key used for equality comparison.
func (c *Collection[T]) Intersect(other *Collection[T], fn func(T) any) *Collection[T] {
	set := make(map[any]struct{}, other.Count())
	other.Each(func(item T, _ int) { set[fn(item)] = struct{}{} })
	return c.Filter(func(item T, _ int) bool {
		_, found := set[fn(item)]
		return found
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] { return wrap(arr.Reverse(c.items)) }

// Rotate shifts the items cyclically to the right by n % Count() positions;
// a negative n shifts to the left. Rotating an empty collection returns an
// empty collection.
//
//	New(1, 2, 3, 4, 5).Rotate(2)  // → [4 5 1 2 3]
//	New(1, 2, 3, 4, 5).Rotate(-2) // → [3 4 5 1 2]
func (c *Collection[T]) Rotate(n int) *Collection[T] { return wrap(arr.Rotate(c.items, n)) }

// Sort returns a new collection sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := arr.Clone(c.items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return wrap(out)
}

// SortBy returns a new collection sorted in ascending order by the float64
// value extracted by fn. For other key types use [SortByKey].
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// SortByDesc returns a new collection sorted in descending order by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) > fn(b) })
}

// Shuffle returns a new collection with items in random order. Pass
// [sample.WithSeed] for a reproducible order.
func (c *Collection[T]) Shuffle(opts ...sample.Option) *Collection[T] {
	return wrap(sample.Shuffle(c.items, opts...))
}

// Random returns a new collection with n randomly selected items (without
// replacement). If n >= Count(), a shuffled copy of the full collection is
// returned; a negative n returns an empty collection. Passing
// [sample.WithWeights] fails with [sample.ErrBadWeights].
func (c *Collection[T]) Random(n int, opts ...sample.Option) (*Collection[T], error) {
	out, err := sample.Take(c.items, max(n, 0), opts...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Sample returns k items chosen with replacement, optionally weighted with
// [sample.WithWeights]. The same [sample.WithSeed] seed always produces the
// same sample for the same input.
func (c *Collection[T]) Sample(k int, opts ...sample.Option) (*Collection[T], error) {
	out, err := sample.Choices(c.items, k, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, len(c.items)+len(items))
	copy(out, c.items)
	copy(out[len(c.items):], items)
	return wrap(out)
}

// Append is an alias for [Collection.Push].
func (c *Collection[T]) Append(items ...T) *Collection[T] { return c.Push(items...) }

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	out := make([]T, len(items)+len(c.items))
	copy(out, items)
	copy(out[len(items):], c.items)
	return wrap(out)
}

// Extend returns a new collection with the items of every slice appended,
// in argument order.
func (c *Collection[T]) Extend(others ...[]T) *Collection[T] {
	return wrap(slices.Concat(append([][]T{c.items}, others...)...))
}

// ExtendLeft returns a new collection with the items of every slice placed
// before the existing items, in argument order.
func (c *Collection[T]) ExtendLeft(others ...[]T) *Collection[T] {
	return wrap(slices.Concat(append(others, c.items)...))
}

// Insert returns a new collection with item placed before index. A
// negative index counts from the end and an out-of-range index is clamped
// to the nearest end.
func (c *Collection[T]) Insert(index int, item T) *Collection[T] {
	total := len(c.items)
	if index < 0 {
		index = max(index+total, 0)
	}
	index = min(index, total)
	out := make([]T, 0, total+1)
	out = append(out, c.items[:index]...)
	out = append(out, item)
	out = append(out, c.items[index:]...)
	return wrap(out)
}

// RemoveAt returns a new collection without the item at index. A negative
// index counts from the end. Returns [ErrIndexOutOfRange] when the index is
// outside the collection.
func (c *Collection[T]) RemoveAt(index int) (*Collection[T], error) {
	i, ok := arr.Resolve(index, len(c.items))
	if !ok {
		return nil, indexError(index, len(c.items))
	}
	_, rest, _ := c.Pull(i)
	return rest, nil
}

// Pop removes and returns the last item together with the remaining collection.
// Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Pop() (T, *Collection[T], bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, c, false
	}
	return c.items[len(c.items)-1], From(c.items[:len(c.items)-1]), true
}

// Shift removes and returns the first item together with the remaining
// collection. Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Shift() (T, *Collection[T], bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, c, false
	}
	return c.items[0], From(c.items[1:]), true
}

// Pull removes and returns the item at index together with the remaining
// collection. Returns the zero value, c, and false if index is out of range.
func (c *Collection[T]) Pull(index int) (T, *Collection[T], bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, c, false
	}
	item := c.items[index]
	out := make([]T, 0, len(c.items)-1)
	out = append(out, c.items[:index]...)
	out = append(out, c.items[index+1:]...)
	return item, wrap(out), true
}

// Forget returns a new collection with the item at index removed.
// Returns c unchanged if index is out of range.
func (c *Collection[T]) Forget(index int) *Collection[T] {
	_, col, _ := c.Pull(index)
	return col
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// Merge is an alias for [Collection.Concat].
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] { return c.Concat(other) }

// Fill returns a new collection in which the items of the range
// [start, end) are replaced by value. Bounds follow [SliceStep] rules;
// pass [Unbounded] as end to fill to the end.
func (c *Collection[T]) Fill(value T, start, end int) *Collection[T] {
	out := arr.Clone(c.items)
	lo, hi := arr.SliceBounds(start, end, 1, len(out))
	for i := lo; i < hi; i++ {
		out[i] = value
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range c.items {
		sum += fn(item)
	}
	return sum
}

// Average returns the arithmetic mean of all items, or 0 for an empty
// collection.
func (c *Collection[T]) Average(fn func(T) float64) float64 {
	if len(c.items) == 0 {
		return 0
	}
	return c.Sum(fn) / float64(len(c.items))
}

// Min returns the item with the smallest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	minItem, minVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return minItem, true
}

// Max returns the item with the largest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	maxItem, maxVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return maxItem, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping / Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key returned by fn, preserving encounter order
// within each group. For typed keys use the package-level [GroupBy].
func (c *Collection[T]) GroupBy(fn func(T) any) map[any]*Collection[T] {
	return GroupBy(c, fn)
}

// KeyBy returns a map keyed by the value extracted by fn.
// Returns map[any]T. For typed keys use the package-level [KeyBy].
func (c *Collection[T]) KeyBy(fn func(T) any) map[any]T {
	return KeyBy(c, fn)
}

// Partition splits the collection into two:
// the first contains items for which fn returns true; the second the rest.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range c.items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return wrap(pass), wrap(fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// Join joins the default formatting of every item with sep.
//
//	New(1, 2, 3).Join(",") // → "1,2,3"
func (c *Collection[T]) Join(sep string) string {
	return c.Implode(sep, func(item T) string { return fmt.Sprint(item) })
}

// Flip returns a map from each item's string representation to its index.
func (c *Collection[T]) Flip() map[string]int {
	out := make(map[string]int, len(c.items))
	for i, item := range c.items {
		out[fmt.Sprintf("%v", item)] = i
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}

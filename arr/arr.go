package arr

import (
	"cmp"
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Clone returns a copy of items that is never nil.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Reverse returns a new slice with items in reverse order.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Rotate shifts items cyclically to the right by n % len(items) positions;
// a negative n shifts to the left. Rotating an empty slice returns an empty
// slice.
//
//	Rotate([]int{1, 2, 3, 4, 5}, 2)  // → [4 5 1 2 3]
//	Rotate([]int{1, 2, 3, 4, 5}, -2) // → [3 4 5 1 2]
func Rotate[T any](items []T, n int) []T {
	total := len(items)
	if total == 0 {
		return []T{}
	}
	steps := ((n % total) + total) % total
	out := make([]T, 0, total)
	out = append(out, items[total-steps:]...)
	return append(out, items[:total-steps]...)
}

// Chunk splits items into consecutive groups of size. The last group may be
// shorter. Returns an empty [][]T if size <= 0.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := lo.Chunk(items, size)
	for i, chunk := range chunks {
		chunks[i] = Clone(chunk)
	}
	return chunks
}

// ChunkPad splits items into groups of exactly n, filling the last group
// with pad. n must be positive.
func ChunkPad[T any](items []T, n int, pad T) [][]T {
	chunks := Chunk(items, n)
	if len(chunks) == 0 {
		return chunks
	}
	last := chunks[len(chunks)-1]
	for len(last) < n {
		last = append(last, pad)
	}
	chunks[len(chunks)-1] = last
	return chunks
}

// ChunkExact splits items into groups of exactly n and drops an incomplete
// trailing group. n must be positive.
func ChunkExact[T any](items []T, n int) [][]T {
	chunks := Chunk(items, n)
	if len(chunks) > 0 && len(chunks[len(chunks)-1]) < n {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}

// Windows returns every run of n consecutive items. Fewer than n items yield
// no windows. n must be positive.
func Windows[T any](items []T, n int) [][]T {
	out := make([][]T, 0)
	for i := 0; i+n <= len(items); i++ {
		out = append(out, Clone(items[i:i+n]))
	}
	return out
}

// Interleave takes one item from each input in turn, skipping inputs that
// are exhausted, until all inputs are drained.
//
//	Interleave([]int{1, 2, 3}, []int{4, 5, 6}) // → [1 4 2 5 3 6]
func Interleave[T any](inputs ...[]T) []T {
	return lo.Interleave(inputs...)
}

// Interpose places sep between each pair of adjacent items.
func Interpose[T any](items []T, sep T) []T {
	out := make([]T, 0, max(0, 2*len(items)-1))
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

// Accumulate returns the running left fold of items: out[i] is fn applied
// cumulatively to items[0..i].
func Accumulate[T any](items []T, fn func(carry, item T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if i == 0 {
			out[i] = item
			continue
		}
		out[i] = fn(out[i-1], item)
	}
	return out
}

// Tail returns the last n items (all items when n exceeds the length).
func Tail[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return Clone(items[len(items)-n:])
}

// TopK returns the k items with the greatest key in descending order. Ties
// keep their encounter order.
func TopK[T any, K cmp.Ordered](items []T, k int, key func(T) K) []T {
	if k <= 0 {
		return []T{}
	}
	out := Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	if k < len(out) {
		out = out[:k]
	}
	return out
}

// SortStable returns a stably sorted copy of items, ordered by key ascending
// or, with reverse, descending. Equal keys keep their input order in both
// directions.
func SortStable[T any, K cmp.Ordered](items []T, key func(T) K, reverse bool) []T {
	out := Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		if reverse {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return out
}

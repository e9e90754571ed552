// Package arr provides the plain-slice kernels shared by the eager
// [collections.Collection] and the lazy [lazy.List] containers.
//
// The functions operate on []T values and always return freshly allocated
// slices, so callers can wrap the results without worrying about aliasing:
//
//	arr.Rotate([]int{1, 2, 3, 4, 5}, 2)        // → [4 5 1 2 3]
//	arr.Windows([]int{1, 2, 3, 4}, 2)          // → [[1 2] [2 3] [3 4]]
//	arr.SliceStep([]int{0, 1, 2, 3, 4}, 4, arr.Unbounded, -2) // → [4 2 0]
//
// # Index conventions
//
// [Resolve] and [SliceBounds] implement end-relative indexing: negative
// indices count from the end, and slice bounds are clamped to the sequence.
// [Unbounded] leaves a slice bound open.
//
// # Dot-notation map access
//
// [Get] and [Has] read values from nested map[string]any structures using
// dot-separated paths; the containers expose them as GetPath.
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	arr.Get(m, "user.name") // → "Alice"
package arr

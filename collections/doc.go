// Package collections provides Collection, the eager half of the library: a
// generic, fluent wrapper around a slice in which every operation runs
// immediately and returns a new, fully materialised collection. Its lazy
// counterpart, lazy.List, shares the same vocabulary and converts to a
// Collection with Evaluate.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a rich, chainable API:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Join(", ") // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. This makes Collection values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ int) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [Pluck], [GetPath],
// [GroupBy], [KeyBy], [ReduceBy], [SortByKey], [TopK], [Enumerate], [Zip],
// [Zip3], [ZipN], [ZipLongest], [ZipLongestN], [Combine], [Collapse],
// [Flatten], [FlattenDeep], [Combinations], [CombinationsWithReplacement],
// [Permutations], [Product].
//
// Functions that compare items are constrained to comparable types:
// [Index], [IndexLast], [Includes], [CountOf], [Remove], [RemoveAll],
// [Compact], [Frequencies], [FrequencyPairs], [Mode], [MultiMode], [Uniq],
// [NUnique], [IsDistinct], [ToSet], [Equal].
//
// # Absent values
//
// [ZipLongest] pads the shorter side with [Option] values rather than zero
// values, so padding can never be confused with data.
//
// # Randomness
//
// [Collection.Sample], [Collection.Shuffle] and [Collection.Random] draw from
// the sample package. Pass sample.WithSeed for reproducible results:
//
//	picks, _ := c.Sample(3, sample.WithSeed(42))
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
package collections

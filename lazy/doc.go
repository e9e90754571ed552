// Package lazy provides List, the lazily evaluated counterpart of
// collections.Collection.
//
// A List describes a pipeline: constructors wrap a producer, transformations
// append deferred stages, and nothing is computed until a forcing operation
// such as ToSlice, Evaluate, Reduce or First pulls elements through the
// chain:
//
//	evens := lazy.Count(0).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(5)
//	got, _ := evens.ToSlice() // [0 2 4 6 8]
//
// # Re-iteration
//
// Every List sits on a replay buffer. Each traversal forks the buffer, so a
// List can be forced any number of times, even interleaved, and always
// yields the same sequence. Upstream producers are pulled at most once per
// element.
//
// # Errors
//
// Arguments that can never be valid (a window size of zero, a negative
// index) are rejected when the stage is built. Failures that depend on the
// data, such as an error from TryMap or an empty reduction, are returned by
// the forcing operation that reaches them.
//
// # Indices
//
// The length of a List is unknown until it is forced, so negative indices
// are rejected with collections.ErrInvalidArgument rather than counted from
// the end.
//
// # Global stages
//
// Reverse, Sort, SortByKey, Shuffle, Sample, Tail, TopK and the
// combinatoric stages need the whole input. They still return a List, but
// read their upstream in full on the first pull.
package lazy

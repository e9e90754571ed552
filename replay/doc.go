// Package replay provides the re-iteration primitive behind the lazy
// containers: a pull-based [Iterator] and a shared, append-only [Buffer] that
// lets any number of independent [Cursor] forks traverse one upstream
// producer from the start.
//
// # Tee semantics
//
// A Buffer owns its upstream iterator exclusively. Every fork reads elements
// that are already buffered first; a fork that reaches the end of the buffer
// pulls the next element from upstream and appends it, so all sibling forks
// observe it too:
//
//	buf := replay.NewBuffer(replay.FromSlice([]int{1, 2, 3}))
//	a, b := buf.Fork(), buf.Fork()
//	a.Next() // 1 (pulled from upstream)
//	b.Next() // 1 (replayed from the buffer)
//
// Upstream is therefore pulled at most once per element, late forks replay
// the identical prefix, and an infinite upstream only ever produces as many
// elements as the furthest fork has asked for.
//
// # Errors
//
// An Iterator reports exhaustion through the second result of Next and the
// reason through Err, in the style of bufio.Scanner: Err returns nil after a
// clean end of input. A Buffer records the upstream error once and every fork
// reports it when it reaches the end.
//
// # Concurrency
//
// Buffers and cursors are not safe for concurrent use. Evaluation is a
// single-threaded pull model: a traversal runs on the calling goroutine.
package replay

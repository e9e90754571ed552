package lazy

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/replay"
)

// List is a lazily evaluated, re-iterable sequence of T.
//
// A List owns a producer rather than a sequence. Transformations return a
// new List describing one more deferred stage; nothing runs until a forcing
// operation (ToSlice, Evaluate, Reduce, ...) pulls elements through the
// chain. Every traversal forks the list's replay buffer, so a List can be
// traversed any number of times and always observes the same sequence,
// while its upstream is pulled at most once per element.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	buf *replay.Buffer[T]
}

// Unbounded leaves the stop bound of SliceStep open.
const Unbounded = collections.Unbounded

func newList[T any](src replay.Iterator[T]) *List[T] {
	return &List[T]{buf: replay.NewBuffer(src)}
}

// iter starts a new traversal.
func (l *List[T]) iter() replay.Iterator[T] { return l.buf.Fork() }

// ─────────────────────────────────────────────────────────────────────────────
// Stage plumbing
// ─────────────────────────────────────────────────────────────────────────────

// pipe adapts a pull function to replay.Iterator. The pull function returns
// ok=false to end the sequence, with a non-nil error when it failed.
type pipe[T any] struct {
	pull func() (T, bool, error)
	err  error
}

func (p *pipe[T]) Next() (T, bool) {
	var zero T
	if p.pull == nil {
		return zero, false
	}
	v, ok, err := p.pull()
	if !ok || err != nil {
		p.pull = nil
		p.err = err
		return zero, false
	}
	return v, true
}

func (p *pipe[T]) Err() error { return p.err }

// stage wraps pull in a new List.
func stage[T any](pull func() (T, bool, error)) *List[T] {
	return newList[T](&pipe[T]{pull: pull})
}

// end finishes a pull function, forwarding err.
func end[T any](err error) (T, bool, error) {
	var zero T
	return zero, false, err
}

// deferred builds a stage that drains up on its first pull, hands the whole
// sequence to build and then yields the result. Construction never pulls.
func deferred[T, U any](up replay.Iterator[T], build func([]T) ([]U, error)) *List[U] {
	var (
		items  []U
		loaded bool
		pos    int
	)
	return stage(func() (U, bool, error) {
		if !loaded {
			loaded = true
			src, err := replay.Collect(up)
			if err != nil {
				return end[U](err)
			}
			if items, err = build(src); err != nil {
				return end[U](err)
			}
		}
		if pos >= len(items) {
			return end[U](nil)
		}
		pos++
		return items[pos-1], true, nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List over the given items (copied).
func New[T any](items ...T) *List[T] {
	return FromSlice(items)
}

// FromSlice creates a List over a copy of items.
func FromSlice[T any](items []T) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return newList(replay.FromSlice(cp))
}

// FromCollection creates a List over the items of an eager collection.
func FromCollection[T any](c *collections.Collection[T]) *List[T] {
	return newList(replay.FromSlice(c.All()))
}

// FromIterator creates a List that takes ownership of it. The iterator is
// pulled at most once per element no matter how often the List is
// traversed.
func FromIterator[T any](it replay.Iterator[T]) *List[T] {
	return newList(it)
}

// FromFunc creates a List driven by next, which reports false at the end of
// input. next is never called again after it has reported false.
func FromFunc[T any](next func() (T, bool)) *List[T] {
	return newList(replay.FromFunc(next))
}

// Empty returns a List with no elements.
func Empty[T any]() *List[T] {
	return newList(replay.Empty[T]())
}

// Generate returns the infinite List fn(0), fn(1), fn(2), ...
func Generate[T any](fn func(i int) T) *List[T] {
	i := 0
	return FromFunc(func() (T, bool) {
		v := fn(i)
		i++
		return v, true
	})
}

// Iterate returns the infinite List seed, fn(seed), fn(fn(seed)), ...
func Iterate[T any](seed T, fn func(T) T) *List[T] {
	cur, started := seed, false
	return FromFunc(func() (T, bool) {
		if started {
			cur = fn(cur)
		}
		started = true
		return cur, true
	})
}

// Count returns the infinite List start, start+1, start+2, ...
func Count(start int) *List[int] {
	return Generate(func(i int) int { return start + i })
}

// Repeat returns an infinite List of v.
func Repeat[T any](v T) *List[T] {
	return Generate(func(int) T { return v })
}

// RepeatN returns a List of v repeated n times. A negative n yields nothing.
func RepeatN[T any](v T, n int) *List[T] {
	return Repeat(v).Take(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Range-over-func
// ─────────────────────────────────────────────────────────────────────────────

// Seq returns a sequence for range-over-func loops. Each element is yielded
// with a nil error; if the traversal fails, a final pair carries the error.
//
//	for v, err := range l.Seq() {
//	    if err != nil {
//	        return err
//	    }
//	    use(v)
//	}
func (l *List[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := l.iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v, nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Values returns a plain sequence of the elements. A failing traversal
// simply ends early; use [List.Seq] when errors matter.
func (l *List[T]) Values() iter.Seq[T] {
	return replay.Seq(l.iter())
}

// ─────────────────────────────────────────────────────────────────────────────
// Observability & extension
// ─────────────────────────────────────────────────────────────────────────────

// Trace inserts a pass-through stage that logs every element it yields at
// trace level and the end of the sequence at debug level.
//
//	l = l.Trace(log.Logger, "after-filter")
func (l *List[T]) Trace(logger zerolog.Logger, name string) *List[T] {
	up := l.iter()
	n := 0
	return stage(func() (T, bool, error) {
		v, ok := up.Next()
		if !ok {
			err := up.Err()
			logger.Debug().Str("stage", name).Int("count", n).Err(err).Msg("exhausted")
			return end[T](err)
		}
		logger.Trace().Str("stage", name).Int("index", n).Interface("value", v).Msg("pull")
		n++
		return v, true, nil
	})
}

// Macro calls the named macro registered with collections.RegisterMacro,
// passing l as the receiver.
func (l *List[T]) Macro(name string, args ...any) (any, error) {
	return collections.CallMacro(name, l, args...)
}

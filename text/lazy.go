package text

import (
	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/lazy"
	"github.com/hasbyte1/go-lazy-collections/replay"
)

// failed returns a list whose every traversal reports err.
func failed[T any](err error) *lazy.List[T] {
	return lazy.FromIterator(replay.Fail[T](err))
}

// LazyFilterMatch keeps the strings of l that pattern matches at the start.
// A bad pattern fails the traversal with a [*PatternError].
func LazyFilterMatch(l *lazy.List[string], pattern string) *lazy.List[string] {
	re, err := anchored(pattern, false)
	if err != nil {
		return failed[string](err)
	}
	return l.Filter(re.MatchString)
}

// LazyFilterFullMatch keeps the strings of l that pattern matches entirely.
func LazyFilterFullMatch(l *lazy.List[string], pattern string) *lazy.List[string] {
	re, err := anchored(pattern, true)
	if err != nil {
		return failed[string](err)
	}
	return l.Filter(re.MatchString)
}

// LazyFindAll yields every non-overlapping match of pattern in each string
// of l.
func LazyFindAll(l *lazy.List[string], pattern string) *lazy.List[[]string] {
	re, err := compile(pattern)
	if err != nil {
		return failed[[]string](err)
	}
	return lazy.Map(l, findAll(re))
}

// LazySub is [Sub] over a lazy list.
func LazySub(l *lazy.List[string], pattern, repl string, count int) *lazy.List[string] {
	re, err := compile(pattern)
	if err != nil {
		return failed[string](err)
	}
	return lazy.Map(l, func(s string) string {
		out, _ := replace(re, s, repl, count)
		return out
	})
}

// LazyMap applies a one-to-one collection transform such as [Upper] or
// [CaseFold] to l one element at a time.
//
//	shout := text.LazyMap(words, text.Upper)
func LazyMap(l *lazy.List[string], transform func(*Strings) *Strings) *lazy.List[string] {
	return lazy.Map(l, func(s string) string {
		out, _ := transform(collections.New(s)).First()
		return out
	})
}

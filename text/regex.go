package text

import (
	"regexp"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// anchored compiles pattern so it only matches at the start of the input,
// and also at the end when full is set.
func anchored(pattern string, full bool) (*regexp.Regexp, error) {
	if _, err := compile(pattern); err != nil {
		return nil, err
	}
	expr := `\A(?:` + pattern + `)`
	if full {
		expr += `\z`
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

func findAll(re *regexp.Regexp) func(string) []string {
	return func(s string) []string {
		if m := re.FindAllString(s, -1); m != nil {
			return m
		}
		return []string{}
	}
}

// replace substitutes the first count matches of re in s, or all of them
// when count <= 0, and reports how many it replaced.
func replace(re *regexp.Regexp, s, repl string, count int) (string, int) {
	n := -1
	if count > 0 {
		n = count
	}
	matches := re.FindAllStringSubmatchIndex(s, n)
	if len(matches) == 0 {
		return s, 0
	}
	out := make([]byte, 0, len(s))
	last := 0
	for _, m := range matches {
		out = append(out, s[last:m[0]]...)
		out = re.ExpandString(out, repl, s, m)
		last = m[1]
	}
	out = append(out, s[last:]...)
	return string(out), len(matches)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// FindAll returns every non-overlapping match of pattern in each string.
//
//	text.FindAll(collections.New("a1b22", "c"), `\d+`) // → [[1 22] []]
func FindAll(c *Strings, pattern string) (*collections.Collection[[]string], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return each(c, findAll(re)), nil
}

// FindFirstMatch returns the leftmost match of pattern in each string, or
// "" when there is none.
func FindFirstMatch(c *Strings, pattern string) (*Strings, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return each(c, re.FindString), nil
}

// IsMatch reports for each string whether pattern matches at its start.
//
//	text.IsMatch(collections.New("abc", "xabc"), "ab") // → [true false]
func IsMatch(c *Strings, pattern string) (*collections.Collection[bool], error) {
	re, err := anchored(pattern, false)
	if err != nil {
		return nil, err
	}
	return each(c, re.MatchString), nil
}

// IsFullMatch reports for each string whether pattern matches all of it.
func IsFullMatch(c *Strings, pattern string) (*collections.Collection[bool], error) {
	re, err := anchored(pattern, true)
	if err != nil {
		return nil, err
	}
	return each(c, re.MatchString), nil
}

// FilterMatch keeps the strings that pattern matches at the start.
func FilterMatch(c *Strings, pattern string) (*Strings, error) {
	re, err := anchored(pattern, false)
	if err != nil {
		return nil, err
	}
	return Keep(c, re.MatchString, false), nil
}

// FilterFullMatch keeps the strings that pattern matches entirely.
func FilterFullMatch(c *Strings, pattern string) (*Strings, error) {
	re, err := anchored(pattern, true)
	if err != nil {
		return nil, err
	}
	return Keep(c, re.MatchString, false), nil
}

// MatchGroups matches pattern at the start of each string and returns the
// capture groups, or an absent Option when it does not match. Groups that
// took no part in the match are "".
//
//	text.MatchGroups(collections.New("k=v", "nope"), `(\w)=(\w)`)
//	// → [[k v] <absent>]
func MatchGroups(c *Strings, pattern string) (*collections.Collection[collections.Option[[]string]], error) {
	re, err := anchored(pattern, false)
	if err != nil {
		return nil, err
	}
	return each(c, func(s string) collections.Option[[]string] {
		m := re.FindStringSubmatch(s)
		if m == nil {
			return collections.None[[]string]()
		}
		return collections.Some(m[1:])
	}), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Substitution
// ─────────────────────────────────────────────────────────────────────────────

// Sub replaces the first count matches of pattern in each string with repl,
// or every match when count <= 0. repl may reference groups as $1 or
// ${name}.
//
//	text.Sub(collections.New("a-b-c"), "-", "+", 1) // → ["a+b-c"]
func Sub(c *Strings, pattern, repl string, count int) (*Strings, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return each(c, func(s string) string {
		out, _ := replace(re, s, repl, count)
		return out
	}), nil
}

// Subn is [Sub] that also reports the number of replacements made in each
// string.
func Subn(c *Strings, pattern, repl string, count int) (*collections.Collection[collections.Pair[string, int]], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return each(c, func(s string) collections.Pair[string, int] {
		out, n := replace(re, s, repl, count)
		return collections.Pair[string, int]{First: out, Second: n}
	}), nil
}

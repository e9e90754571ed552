package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

// Strings is the collection type every function in this package works on.
type Strings = collections.Collection[string]

func each[U any](c *Strings, fn func(string) U) *collections.Collection[U] {
	return collections.Map(c, func(s string, _ int) U { return fn(s) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Case
// ─────────────────────────────────────────────────────────────────────────────

// Upper maps every string to upper case.
func Upper(c *Strings) *Strings { return UpperIn(c, language.Und) }

// UpperIn maps every string to upper case using the rules of tag.
func UpperIn(c *Strings, tag language.Tag) *Strings {
	return each(c, cases.Upper(tag).String)
}

// Lower maps every string to lower case.
func Lower(c *Strings) *Strings { return LowerIn(c, language.Und) }

// LowerIn maps every string to lower case using the rules of tag.
func LowerIn(c *Strings, tag language.Tag) *Strings {
	return each(c, cases.Lower(tag).String)
}

// Title upper-cases the first letter of every word and lower-cases the
// rest.
func Title(c *Strings) *Strings { return TitleIn(c, language.Und) }

// TitleIn is [Title] using the rules of tag.
func TitleIn(c *Strings, tag language.Tag) *Strings {
	return each(c, cases.Title(tag).String)
}

// CaseFold maps every string to its case-folded form for caseless
// comparison.
//
//	text.CaseFold(collections.New("Straße")) // → ["strasse"]
func CaseFold(c *Strings) *Strings {
	return each(c, cases.Fold().String)
}

// Capitalize title-cases the first rune of every string and lower-cases
// the rest.
func Capitalize(c *Strings) *Strings {
	lower := cases.Lower(language.Und)
	return each(c, func(s string) string {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return s
		}
		return string(unicode.ToTitle(r)) + lower.String(s[size:])
	})
}

// SwapCase converts upper-case runes to lower case and vice versa.
func SwapCase(c *Strings) *Strings {
	return each(c, func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case unicode.IsUpper(r):
				return unicode.ToLower(r)
			case unicode.IsLower(r):
				return unicode.ToUpper(r)
			}
			return r
		}, s)
	})
}

// Normalize converts every string to the Unicode normalization form f.
//
//	text.Normalize(collections.New("é"), norm.NFC) // → ["é"]
func Normalize(c *Strings, f norm.Form) *Strings {
	return each(c, f.String)
}

// ─────────────────────────────────────────────────────────────────────────────
// Trimming and padding
// ─────────────────────────────────────────────────────────────────────────────

func trimmer(trim func(string, string) string, trimFunc func(string, func(rune) bool) string, chars []string) func(string) string {
	if len(chars) == 0 {
		return func(s string) string { return trimFunc(s, unicode.IsSpace) }
	}
	cutset := strings.Join(chars, "")
	return func(s string) string { return trim(s, cutset) }
}

// Strip removes leading and trailing runes found in chars, or white space
// when chars is omitted.
//
//	text.Strip(collections.New("  a  ", "xxbxx"))      // → ["a" "xxbxx"]
//	text.Strip(collections.New("xxbxx"), "x")           // → ["b"]
func Strip(c *Strings, chars ...string) *Strings {
	return each(c, trimmer(strings.Trim, strings.TrimFunc, chars))
}

// LStrip is [Strip] for the leading end only.
func LStrip(c *Strings, chars ...string) *Strings {
	return each(c, trimmer(strings.TrimLeft, strings.TrimLeftFunc, chars))
}

// RStrip is [Strip] for the trailing end only.
func RStrip(c *Strings, chars ...string) *Strings {
	return each(c, trimmer(strings.TrimRight, strings.TrimRightFunc, chars))
}

// Center pads every string on both sides with fill to width runes. When
// the padding is uneven the extra rune goes right, unless both the padding
// and width are odd.
func Center(c *Strings, width int, fill rune) *Strings {
	pad := string(fill)
	return each(c, func(s string) string {
		marg := width - utf8.RuneCountInString(s)
		if marg <= 0 {
			return s
		}
		left := marg/2 + (marg & width & 1)
		return strings.Repeat(pad, left) + s + strings.Repeat(pad, marg-left)
	})
}

// LJust pads every string on the right with fill to width runes.
func LJust(c *Strings, width int, fill rune) *Strings {
	pad := string(fill)
	return each(c, func(s string) string {
		return s + strings.Repeat(pad, max(width-utf8.RuneCountInString(s), 0))
	})
}

// RJust pads every string on the left with fill to width runes.
func RJust(c *Strings, width int, fill rune) *Strings {
	pad := string(fill)
	return each(c, func(s string) string {
		return strings.Repeat(pad, max(width-utf8.RuneCountInString(s), 0)) + s
	})
}

// ZFill pads every string on the left with zeros to width runes, keeping a
// leading sign in front.
//
//	text.ZFill(collections.New("42", "-42"), 5) // → ["00042" "-0042"]
func ZFill(c *Strings, width int) *Strings {
	return each(c, func(s string) string {
		fill := width - utf8.RuneCountInString(s)
		if fill <= 0 {
			return s
		}
		zeros := strings.Repeat("0", fill)
		if s != "" && (s[0] == '+' || s[0] == '-') {
			return s[:1] + zeros + s[1:]
		}
		return zeros + s
	})
}

// ExpandTabs replaces every tab with spaces up to the next multiple of
// tabSize columns. Columns restart after a newline or carriage return. A
// tabSize <= 0 removes tabs.
func ExpandTabs(c *Strings, tabSize int) *Strings {
	return each(c, func(s string) string {
		var b strings.Builder
		col := 0
		for _, r := range s {
			switch r {
			case '\t':
				if tabSize > 0 {
					n := tabSize - col%tabSize
					b.WriteString(strings.Repeat(" ", n))
					col += n
				}
			case '\n', '\r':
				b.WriteRune(r)
				col = 0
			default:
				b.WriteRune(r)
				col++
			}
		}
		return b.String()
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Replace and split
// ─────────────────────────────────────────────────────────────────────────────

// Replace replaces the first n non-overlapping occurrences of old with
// new in every string, or all of them when n < 0.
func Replace(c *Strings, old, new string, n int) *Strings {
	return each(c, func(s string) string { return strings.Replace(s, old, new, n) })
}

// Split splits every string around sep.
func Split(c *Strings, sep string) *collections.Collection[[]string] {
	return each(c, func(s string) []string { return strings.Split(s, sep) })
}

// SplitN splits every string around sep into at most n parts. n < 0
// means no limit.
func SplitN(c *Strings, sep string, n int) *collections.Collection[[]string] {
	return each(c, func(s string) []string { return strings.SplitN(s, sep, n) })
}

// Fields splits every string around runs of white space.
func Fields(c *Strings) *collections.Collection[[]string] {
	return each(c, strings.Fields)
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// StartsWith reports for every string whether it begins with prefix.
func StartsWith(c *Strings, prefix string) *collections.Collection[bool] {
	return each(c, func(s string) bool { return strings.HasPrefix(s, prefix) })
}

// EndsWith reports for every string whether it ends with suffix.
func EndsWith(c *Strings, suffix string) *collections.Collection[bool] {
	return each(c, func(s string) bool { return strings.HasSuffix(s, suffix) })
}

// FilterStartsWith keeps the strings that begin with prefix, or those that
// don't when inverse is set.
func FilterStartsWith(c *Strings, prefix string, inverse bool) *Strings {
	return Keep(c, func(s string) bool { return strings.HasPrefix(s, prefix) }, inverse)
}

// FilterEndsWith keeps the strings that end with suffix, or those that
// don't when inverse is set.
func FilterEndsWith(c *Strings, suffix string, inverse bool) *Strings {
	return Keep(c, func(s string) bool { return strings.HasSuffix(s, suffix) }, inverse)
}

// StrCount counts the non-overlapping occurrences of sub in every string.
func StrCount(c *Strings, sub string) *collections.Collection[int] {
	return each(c, func(s string) int { return strings.Count(s, sub) })
}

func runeIndex(s string, byteIndex int) int {
	if byteIndex < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:byteIndex])
}

// Find returns the rune offset of the first occurrence of sub in every
// string, or -1.
func Find(c *Strings, sub string) *collections.Collection[int] {
	return each(c, func(s string) int { return runeIndex(s, strings.Index(s, sub)) })
}

// RFind returns the rune offset of the last occurrence of sub in every
// string, or -1.
func RFind(c *Strings, sub string) *collections.Collection[int] {
	return each(c, func(s string) int { return runeIndex(s, strings.LastIndex(s, sub)) })
}

// Len returns the rune count of every string.
func Len(c *Strings) *collections.Collection[int] {
	return each(c, utf8.RuneCountInString)
}

package text

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

func all(s string, fn func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Character classes
// ─────────────────────────────────────────────────────────────────────────────

// IsAlpha reports whether s is non-empty and every rune is a letter.
func IsAlpha(s string) bool { return all(s, unicode.IsLetter) }

// IsAlnum reports whether s is non-empty and every rune is a letter or a
// number.
func IsAlnum(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) })
}

// IsDecimal reports whether s is non-empty and every rune is a decimal
// digit (category Nd).
func IsDecimal(s string) bool { return all(s, unicode.IsDigit) }

// isDigit accepts decimal digits and the compatibility forms that decompose
// to one, such as superscripts.
func isDigit(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	if !unicode.Is(unicode.No, r) {
		return false
	}
	d := norm.NFKD.String(string(r))
	v, size := utf8.DecodeRuneInString(d)
	return size == len(d) && unicode.IsDigit(v)
}

// IsDigit reports whether s is non-empty and every rune is a digit. Unlike
// [IsDecimal] it accepts superscript and subscript digits.
//
//	text.IsDigit("²") // → true
//	text.IsDecimal("²") // → false
func IsDigit(s string) bool { return all(s, isDigit) }

// IsNumeric reports whether s is non-empty and every rune has a numeric
// value, including fractions and Roman numerals.
func IsNumeric(s string) bool { return all(s, unicode.IsNumber) }

// IsSpace reports whether s is non-empty and every rune is white space.
func IsSpace(s string) bool { return all(s, unicode.IsSpace) }

func isCased(r rune) bool { return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) }

// IsUpper reports whether s holds at least one cased rune and no lower-case
// or title-case ones.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		cased = cased || unicode.IsUpper(r)
	}
	return cased
}

// IsLower reports whether s holds at least one cased rune and no upper-case
// or title-case ones.
func IsLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		cased = cased || unicode.IsLower(r)
	}
	return cased
}

// IsTitle reports whether s is title-cased: upper-case runes only follow
// uncased ones, lower-case runes only follow cased ones, and there is at
// least one cased rune.
//
//	text.IsTitle("Hello World") // → true
//	text.IsTitle("Hello world") // → false
func IsTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// IsASCII reports whether every rune is ASCII. It is true for "".
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsPrintable reports whether every rune is printable, counting the ASCII
// space but no other white space. It is true for "".
func IsPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s is a valid identifier: a letter or
// underscore followed by letters, digits, underscores or combining marks.
func IsIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)):
		default:
			return false
		}
	}
	return s != ""
}

// IsNumber reports whether s, ignoring surrounding white space, parses as a
// floating-point number. Values too large for a float64 still count.
//
//	text.IsNumber(" 1e3 ") // → true
//	text.IsNumber("1e999") // → true
//	text.IsNumber("one")   // → false
func IsNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// ─────────────────────────────────────────────────────────────────────────────
// Applying predicates
// ─────────────────────────────────────────────────────────────────────────────

// Test applies pred to every string.
//
//	text.Test(collections.New("abc", "a1"), text.IsAlpha) // → [true false]
func Test(c *Strings, pred func(string) bool) *collections.Collection[bool] {
	return each(c, pred)
}

// Keep returns the strings satisfying pred, or those failing it when
// inverse is set.
//
//	text.Keep(collections.New("abc", "a1"), text.IsAlpha, true) // → ["a1"]
func Keep(c *Strings, pred func(string) bool, inverse bool) *Strings {
	return c.Filter(func(s string, _ int) bool { return pred(s) != inverse })
}

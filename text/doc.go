// Package text adds string operations to collections and lazy lists of
// strings.
//
// Case mapping goes through golang.org/x/text/cases, so it handles the
// full Unicode case tables and language-specific rules:
//
//	text.Title(collections.New("hello world"))                // → ["Hello World"]
//	text.UpperIn(collections.New("istanbul"), language.Turkish) // → ["İSTANBUL"]
//
// Offsets and widths count runes, not bytes.
//
// # Predicates
//
// The character-class predicates ([IsAlpha], [IsDigit], [IsTitle] and the
// rest) are plain func(string) bool values that plug into [Test], [Keep],
// Collection.Filter or lazy.List.Filter. All of them except [IsASCII] and
// [IsPrintable] are false for the empty string.
//
// # Regular expressions
//
// Patterns use RE2 syntax (package regexp). A pattern that fails to compile
// is reported as a [*PatternError]. The eager functions return it
// immediately; the Lazy functions return a list whose traversal fails with
// it. Replacement strings use regexp's template syntax ($1, ${name}).
package text

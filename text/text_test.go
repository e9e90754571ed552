package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/text"
)

func TestCaseMapping(t *testing.T) {
	c := collections.New("hello world", "hELLO")
	assert.Equal(t, []string{"HELLO WORLD", "HELLO"}, text.Upper(c).All())
	assert.Equal(t, []string{"hello world", "hello"}, text.Lower(c).All())
	assert.Equal(t, []string{"Hello World", "Hello"}, text.Title(c).All())
	assert.Equal(t, []string{"Hello world", "Hello"}, text.Capitalize(c).All())
	assert.Equal(t, []string{"HELLO WORLD", "Hello"}, text.SwapCase(c).All())
	assert.Equal(t, []string{""}, text.Capitalize(collections.New("")).All())

	assert.Equal(t, []string{"strasse"}, text.CaseFold(collections.New("Straße")).All())
	assert.Equal(t, []string{"İSTANBUL"}, text.UpperIn(collections.New("istanbul"), language.Turkish).All())
	assert.Equal(t, []string{"ıi"}, text.LowerIn(collections.New("Iİ"), language.Turkish).All())
}

func TestNormalize(t *testing.T) {
	decomposed := "e\u0301"
	composed := "\u00e9"
	assert.Equal(t, []string{composed}, text.Normalize(collections.New(decomposed), norm.NFC).All())
	assert.Equal(t, []string{decomposed}, text.Normalize(collections.New(composed), norm.NFD).All())
}

func TestTrimming(t *testing.T) {
	assert.Equal(t, []string{"a", "xxbxx"}, text.Strip(collections.New("  a \t", "xxbxx")).All())
	assert.Equal(t, []string{"b"}, text.Strip(collections.New("xybyx"), "x", "y").All())
	assert.Equal(t, []string{"a "}, text.LStrip(collections.New("  a ")).All())
	assert.Equal(t, []string{"xa"}, text.RStrip(collections.New("xax"), "x").All())
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"center even", text.Center(collections.New("abc"), 6, '*').All(), []string{"*abc**"}},
		{"center odd", text.Center(collections.New("ab"), 5, '*').All(), []string{"**ab*"}},
		{"center narrow", text.Center(collections.New("abc"), 2, '*').All(), []string{"abc"}},
		{"ljust", text.LJust(collections.New("ab", "abcde"), 4, '.').All(), []string{"ab..", "abcde"}},
		{"rjust", text.RJust(collections.New("ab"), 4, '.').All(), []string{"..ab"}},
		{"rjust runes", text.RJust(collections.New("é"), 3, ' ').All(), []string{"  é"}},
		{"zfill", text.ZFill(collections.New("42", "-42", "+1", ""), 5).All(), []string{"00042", "-0042", "+0001", "00000"}},
		{"zfill narrow", text.ZFill(collections.New("12345"), 3).All(), []string{"12345"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestExpandTabs(t *testing.T) {
	c := collections.New("a\tb", "ab\tc\n\td")
	assert.Equal(t, []string{"a   b", "ab  c\n    d"}, text.ExpandTabs(c, 4).All())
	assert.Equal(t, []string{"ab", "abc\nd"}, text.ExpandTabs(c, 0).All())
}

func TestReplaceAndSplit(t *testing.T) {
	assert.Equal(t, []string{"bba"}, text.Replace(collections.New("aaa"), "a", "b", 2).All())
	assert.Equal(t, []string{"bbb"}, text.Replace(collections.New("aaa"), "a", "b", -1).All())

	assert.Equal(t, [][]string{{"a", "b"}}, text.Split(collections.New("a,b"), ",").All())
	assert.Equal(t, [][]string{{"a", "b,c"}}, text.SplitN(collections.New("a,b,c"), ",", 2).All())
	assert.Equal(t, [][]string{{"a", "b"}, {}}, text.Fields(collections.New(" a  b ", "  ")).All())
}

func TestQueries(t *testing.T) {
	c := collections.New("héllo", "banana")
	assert.Equal(t, []bool{true, false}, text.StartsWith(c, "hé").All())
	assert.Equal(t, []bool{false, true}, text.EndsWith(c, "na").All())
	assert.Equal(t, []int{0, 2}, text.StrCount(c, "an").All())
	assert.Equal(t, []int{2, -1}, text.Find(c, "l").All())
	assert.Equal(t, []int{3, -1}, text.RFind(c, "l").All())
	assert.Equal(t, []int{5, 6}, text.Len(c).All())

	assert.Equal(t, []string{"banana"}, text.FilterEndsWith(c, "na", false).All())
	assert.Equal(t, []string{"banana"}, text.FilterStartsWith(c, "h", true).All())
}

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name string
		pred func(string) bool
		yes  []string
		no   []string
	}{
		{"alpha", text.IsAlpha, []string{"abc", "héllo"}, []string{"", "a1", "a b"}},
		{"alnum", text.IsAlnum, []string{"a1", "Ⅻ2"}, []string{"", "a 1", "a-1"}},
		{"decimal", text.IsDecimal, []string{"123", "٣"}, []string{"", "²", "1.5"}},
		{"digit", text.IsDigit, []string{"123", "²"}, []string{"", "½", "1a"}},
		{"numeric", text.IsNumeric, []string{"123", "½", "Ⅷ"}, []string{"", "1.5", "x"}},
		{"space", text.IsSpace, []string{" \t\n"}, []string{"", " a "}},
		{"upper", text.IsUpper, []string{"ABC", "A1 B"}, []string{"", "123", "AbC"}},
		{"lower", text.IsLower, []string{"abc", "a1 b"}, []string{"", "123", "aBc"}},
		{"title", text.IsTitle, []string{"Hello World", "A1 B"}, []string{"", "Hello world", "HELLO", "hello"}},
		{"ascii", text.IsASCII, []string{"", "abc~"}, []string{"é"}},
		{"printable", text.IsPrintable, []string{"", "a b"}, []string{"a\n", "\t"}},
		{"identifier", text.IsIdentifier, []string{"_a1", "héllo"}, []string{"", "1a", "a-b"}},
		{"number", text.IsNumber, []string{" 1e3 ", "-2.5", "1e999", "inf"}, []string{"", "one", "1.2.3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.yes {
				assert.True(t, tc.pred(s), "%q", s)
			}
			for _, s := range tc.no {
				assert.False(t, tc.pred(s), "%q", s)
			}
		})
	}
}

func TestTestAndKeep(t *testing.T) {
	c := collections.New("abc", "a1", "xyz")
	assert.Equal(t, []bool{true, false, true}, text.Test(c, text.IsAlpha).All())
	assert.Equal(t, []string{"abc", "xyz"}, text.Keep(c, text.IsAlpha, false).All())
	assert.Equal(t, []string{"a1"}, text.Keep(c, text.IsAlpha, true).All())
}

func TestSearching(t *testing.T) {
	c := collections.New("a1b22", "c")

	all, err := text.FindAll(c, `\d+`)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "22"}, {}}, all.All())

	first, err := text.FindFirstMatch(c, `\d+`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", ""}, first.All())
}

func TestMatchIsAnchored(t *testing.T) {
	c := collections.New("abc", "xabc", "ab")

	m, err := text.IsMatch(c, "ab")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, m.All())

	full, err := text.IsFullMatch(c, "a|ab")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, full.All(), "any alternative may span the whole string")

	kept, err := text.FilterMatch(c, "ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "ab"}, kept.All())

	kept, err = text.FilterFullMatch(c, `\w+c`)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "xabc"}, kept.All())
}

func TestMatchGroups(t *testing.T) {
	groups, err := text.MatchGroups(collections.New("k=v", "nope", "a="), `(\w)=(\w)?`)
	require.NoError(t, err)
	got := groups.All()

	v, ok := got[0].Get()
	require.True(t, ok)
	assert.Equal(t, []string{"k", "v"}, v)

	_, ok = got[1].Get()
	assert.False(t, ok)

	v, ok = got[2].Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", ""}, v)
}

func TestSubstitution(t *testing.T) {
	c := collections.New("a-b-c", "abc")

	out, err := text.Sub(c, "-", "+", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a+b-c", "abc"}, out.All())

	out, err = text.Sub(c, "-", "+", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a+b+c", "abc"}, out.All())

	out, err = text.Sub(collections.New("ab"), `(a)(b)`, "${2}${1}", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ba"}, out.All())

	counted, err := text.Subn(collections.New("aaa", "b"), "a", "x", 0)
	require.NoError(t, err)
	assert.Equal(t, []collections.Pair[string, int]{{First: "xxx", Second: 3}, {First: "b", Second: 0}}, counted.All())
}

func TestPatternError(t *testing.T) {
	c := collections.New("a")
	calls := []func() error{
		func() error { _, err := text.FindAll(c, "("); return err },
		func() error { _, err := text.FindFirstMatch(c, "("); return err },
		func() error { _, err := text.IsMatch(c, "("); return err },
		func() error { _, err := text.IsFullMatch(c, "("); return err },
		func() error { _, err := text.FilterMatch(c, "("); return err },
		func() error { _, err := text.FilterFullMatch(c, "("); return err },
		func() error { _, err := text.MatchGroups(c, "("); return err },
		func() error { _, err := text.Sub(c, "(", "", 0); return err },
		func() error { _, err := text.Subn(c, "(", "", 0); return err },
	}
	for _, call := range calls {
		var perr *text.PatternError
		require.ErrorAs(t, call(), &perr)
		assert.Equal(t, "(", perr.Pattern)
		assert.NotNil(t, perr.Unwrap())
	}
}

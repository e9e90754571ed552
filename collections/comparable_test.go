package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

func TestIndexFuncs(t *testing.T) {
	c := collections.New("a", "b", "a")
	if i, err := collections.Index(c, "a"); err != nil || i != 0 {
		t.Fatalf("Index = %d, %v", i, err)
	}
	if i, err := collections.IndexLast(c, "a"); err != nil || i != 2 {
		t.Fatalf("IndexLast = %d, %v", i, err)
	}
	if _, err := collections.Index(c, "z"); !errors.Is(err, collections.ErrNotFound) {
		t.Fatalf("Index err = %v", err)
	}
	if !collections.Includes(c, "b") || collections.Includes(c, "z") {
		t.Fatal("Includes failed")
	}
	if n := collections.CountOf(c, "a"); n != 2 {
		t.Fatalf("CountOf = %d; want 2", n)
	}
}

func TestRemove(t *testing.T) {
	c := ints(1, 2, 1, 3)
	got, err := collections.Remove(c, 1)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got.All(), []int{2, 1, 3})
	if _, err := collections.Remove(c, 9); !errors.Is(err, collections.ErrNotFound) {
		t.Fatalf("Remove err = %v", err)
	}
	assertSlice(t, collections.RemoveAll(c, 1).All(), []int{2, 3})
}

func TestCompact(t *testing.T) {
	assertSlice(t, collections.Compact(collections.New("a", "", "b")).All(), []string{"a", "b"})
	assertSlice(t, collections.Compact(ints(0, 1, 0, 2)).All(), []int{1, 2})
	assertSlice(t, collections.Compact(collections.New(true, false, true)).All(), []bool{true, true})
}

func TestFrequencies(t *testing.T) {
	c := collections.New("b", "a", "b", "c", "a", "b")
	freq := collections.Frequencies(c)
	if freq["b"] != 3 || freq["a"] != 2 || freq["c"] != 1 {
		t.Fatalf("Frequencies = %v", freq)
	}
	pairs := collections.FrequencyPairs(c).All()
	want := []collections.Pair[string, int]{{"b", 3}, {"a", 2}, {"c", 1}}
	assertSlice(t, pairs, want)
}

func TestMode(t *testing.T) {
	m, err := collections.Mode(ints(3, 1, 1, 3, 2))
	if err != nil || m != 3 {
		t.Fatalf("Mode = %d, %v; want first-seen maximum 3", m, err)
	}
	if _, err := collections.Mode(collections.Empty[int]()); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Mode err = %v", err)
	}
	assertSlice(t, collections.MultiMode(ints(3, 1, 1, 3, 2)).All(), []int{3, 1})
	if !collections.MultiMode(collections.Empty[int]()).IsEmpty() {
		t.Fatal("MultiMode of empty should be empty")
	}
}

func TestDistinct(t *testing.T) {
	c := ints(1, 2, 2, 3)
	assertSlice(t, collections.Uniq(c).All(), []int{1, 2, 3})
	if collections.NUnique(c) != 3 {
		t.Fatal("NUnique failed")
	}
	if collections.IsDistinct(c) || !collections.IsDistinct(ints(1, 2)) {
		t.Fatal("IsDistinct failed")
	}
	if _, ok := collections.ToSet(c)[2]; !ok {
		t.Fatal("ToSet missing 2")
	}
}

func TestEqual(t *testing.T) {
	if !collections.Equal(ints(1, 2), ints(1, 2)) {
		t.Fatal("equal collections reported different")
	}
	if collections.Equal(ints(1, 2), ints(2, 1)) || collections.Equal(ints(1), ints(1, 2)) {
		t.Fatal("different collections reported equal")
	}
}

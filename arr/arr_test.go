package arr_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── Indexing ─────────────────────────────────────────────────────────────────

func TestResolve(t *testing.T) {
	cases := []struct {
		index, length, want int
		ok                  bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{3, 3, 0, false},
		{-1, 3, 2, true},
		{-3, 3, 0, true},
		{-4, 3, 0, false},
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := arr.Resolve(tc.index, tc.length)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Resolve(%d, %d) = %d, %v; want %d, %v", tc.index, tc.length, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSliceStep(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5}
	u := arr.Unbounded
	cases := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{"all", u, u, 1, []int{0, 1, 2, 3, 4, 5}},
		{"head", u, 3, 1, []int{0, 1, 2}},
		{"tail", 3, u, 1, []int{3, 4, 5}},
		{"every other", u, u, 2, []int{0, 2, 4}},
		{"negative start", -2, u, 1, []int{4, 5}},
		{"negative stop", u, -2, 1, []int{0, 1, 2, 3}},
		{"reversed", u, u, -1, []int{5, 4, 3, 2, 1, 0}},
		{"reversed from 4", 4, u, -2, []int{4, 2, 0}},
		{"reversed window", 4, 1, -1, []int{4, 3, 2}},
		{"clamped", -100, 100, 1, []int{0, 1, 2, 3, 4, 5}},
		{"empty", 4, 2, 1, []int{}},
		{"huge step", 1, u, math.MaxInt, []int{1}},
		{"huge negative step", 4, u, -math.MaxInt, []int{4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertSlice(t, arr.SliceStep(items, tc.start, tc.stop, tc.step), tc.want)
		})
	}
}

// ─── Kernels ──────────────────────────────────────────────────────────────────

func TestRotate(t *testing.T) {
	assertSlice(t, arr.Rotate([]int{1, 2, 3, 4, 5}, 2), []int{4, 5, 1, 2, 3})
	assertSlice(t, arr.Rotate([]int{1, 2, 3, 4, 5}, -2), []int{3, 4, 5, 1, 2})
	assertSlice(t, arr.Rotate([]int{1, 2, 3}, 7), []int{3, 1, 2})
	assertSlice(t, arr.Rotate([]int{}, 3), []int{})
}

func TestRotateRoundTrip(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	for n := -20; n <= 20; n++ {
		assertSlice(t, arr.Rotate(arr.Rotate(items, n), -n), items)
	}
}

func TestChunk(t *testing.T) {
	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk len = %d; want 3", len(chunks))
	}
	assertSlice(t, chunks[2], []int{5})
	if len(arr.Chunk([]int{1}, 0)) != 0 {
		t.Fatal("Chunk(0) should be empty")
	}
}

func TestChunkDoesNotAlias(t *testing.T) {
	items := []int{1, 2, 3, 4}
	chunks := arr.Chunk(items, 2)
	chunks[0][0] = 99
	if items[0] != 1 {
		t.Fatal("Chunk aliases its input")
	}
}

func TestChunkPadAndExact(t *testing.T) {
	padded := arr.ChunkPad([]int{0, 1, 2, 3, 4}, 2, -1)
	assertSlice(t, padded[2], []int{4, -1})

	exact := arr.ChunkExact([]int{0, 1, 2, 3, 4}, 2)
	if len(exact) != 2 {
		t.Fatalf("ChunkExact len = %d; want 2", len(exact))
	}
	assertSlice(t, exact[1], []int{2, 3})
}

func TestWindows(t *testing.T) {
	w := arr.Windows([]int{0, 1, 2, 3, 4}, 2)
	if len(w) != 4 {
		t.Fatalf("Windows len = %d; want 4", len(w))
	}
	assertSlice(t, w[3], []int{3, 4})
	if len(arr.Windows([]int{1}, 2)) != 0 {
		t.Fatal("Windows larger than input should be empty")
	}
}

func TestInterleave(t *testing.T) {
	assertSlice(t, arr.Interleave([]int{1, 2, 3}, []int{4}, []int{5, 6}), []int{1, 4, 5, 2, 6, 3})
}

func TestInterpose(t *testing.T) {
	assertSlice(t, arr.Interpose([]int{1, 2, 3}, 0), []int{1, 0, 2, 0, 3})
	assertSlice(t, arr.Interpose([]int{}, 0), []int{})
}

func TestAccumulate(t *testing.T) {
	got := arr.Accumulate([]int{1, 2, 3, 4}, func(a, b int) int { return a * b })
	assertSlice(t, got, []int{1, 2, 6, 24})
}

func TestTail(t *testing.T) {
	assertSlice(t, arr.Tail([]int{1, 2, 3}, 2), []int{2, 3})
	assertSlice(t, arr.Tail([]int{1, 2, 3}, 10), []int{1, 2, 3})
	assertSlice(t, arr.Tail([]int{1, 2, 3}, 0), []int{})
}

func TestTopK(t *testing.T) {
	type item struct {
		score int
		name  string
	}
	items := []item{{1, "a"}, {3, "b"}, {2, "c"}, {3, "d"}}
	got := arr.TopK(items, 3, func(i item) int { return i.score })
	want := []item{{3, "b"}, {3, "d"}, {2, "c"}}
	assertSlice(t, got, want)
}

func TestSortStable(t *testing.T) {
	type pair struct {
		k int
		v string
	}
	items := []pair{{1, "a"}, {1, "b"}, {0, "c"}}
	key := func(p pair) int { return p.k }
	assertSlice(t, arr.SortStable(items, key, false), []pair{{0, "c"}, {1, "a"}, {1, "b"}})
	assertSlice(t, arr.SortStable(items, key, true), []pair{{1, "a"}, {1, "b"}, {0, "c"}})
}

func TestReverse(t *testing.T) {
	assertSlice(t, arr.Reverse([]int{1, 2, 3}), []int{3, 2, 1})
}

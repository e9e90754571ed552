package arr

import "gonum.org/v1/gonum/stat/combin"

// IndexGenerator yields successive index tuples; it returns false once all
// tuples have been produced. Each returned slice is freshly allocated.
type IndexGenerator func() ([]int, bool)

func single() IndexGenerator {
	done := false
	return func() ([]int, bool) {
		if done {
			return nil, false
		}
		done = true
		return []int{}, true
	}
}

func none() IndexGenerator {
	return func() ([]int, bool) { return nil, false }
}

// CombinationIndices yields every r-length combination of the indices
// 0..n-1 in lexicographic order. r must not be negative; r > n yields
// nothing and r == 0 yields one empty tuple.
func CombinationIndices(n, r int) IndexGenerator {
	switch {
	case r == 0:
		return single()
	case r > n:
		return none()
	}
	gen := combin.NewCombinationGenerator(n, r)
	return func() ([]int, bool) {
		if !gen.Next() {
			return nil, false
		}
		return gen.Combination(nil), true
	}
}

// ReplacementIndices yields every r-length combination of 0..n-1 in which
// indices may repeat, in lexicographic order. It maps the combinations of
// n+r-1 elements onto non-decreasing tuples.
func ReplacementIndices(n, r int) IndexGenerator {
	switch {
	case r == 0:
		return single()
	case n == 0:
		return none()
	}
	next := CombinationIndices(n+r-1, r)
	return func() ([]int, bool) {
		idx, ok := next()
		if !ok {
			return nil, false
		}
		for i := range idx {
			idx[i] -= i
		}
		return idx, true
	}
}

// PermutationIndices yields every ordered r-length selection of distinct
// indices from 0..n-1 in lexicographic order.
//
//	PermutationIndices(3, 2) // → [0 1] [0 2] [1 0] [1 2] [2 0] [2 1]
func PermutationIndices(n, r int) IndexGenerator {
	switch {
	case r == 0:
		return single()
	case r > n:
		return none()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// cycles[i] counts the candidates still to place at position i.
	cycles := make([]int, r)
	for i := range cycles {
		cycles[i] = n - i
	}
	started, done := false, false
	return func() ([]int, bool) {
		if done {
			return nil, false
		}
		if !started {
			started = true
			return Clone(idx[:r]), true
		}
		for i := r - 1; i >= 0; i-- {
			cycles[i]--
			if cycles[i] == 0 {
				first := idx[i]
				copy(idx[i:], idx[i+1:])
				idx[n-1] = first
				cycles[i] = n - i
				continue
			}
			j := n - cycles[i]
			idx[i], idx[j] = idx[j], idx[i]
			return Clone(idx[:r]), true
		}
		done = true
		return nil, false
	}
}

// ProductIndices yields the Cartesian product of the ranges 0..lens[i]-1 in
// lexicographic order (the last position varies fastest). Any empty range
// yields nothing.
func ProductIndices(lens ...int) IndexGenerator {
	if len(lens) == 0 {
		return single()
	}
	for _, l := range lens {
		if l <= 0 {
			return none()
		}
	}
	gen := combin.NewCartesianGenerator(lens)
	return func() ([]int, bool) {
		if !gen.Next() {
			return nil, false
		}
		return gen.Product(nil), true
	}
}

// PickAll returns the items at the given positions. Every index must be in
// range.
func PickAll[T any](items []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = items[idx]
	}
	return out
}

// Drain collects every tuple of gen mapped through items.
func Drain[T any](items []T, gen IndexGenerator) [][]T {
	out := make([][]T, 0)
	for idx, ok := gen(); ok; idx, ok = gen() {
		out = append(out, PickAll(items, idx))
	}
	return out
}

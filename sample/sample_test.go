package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/sample"
)

func TestSourceDeterministic(t *testing.T) {
	a, b := sample.NewSource(1), sample.NewSource(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, sample.NewSource(1).Uint64(), sample.NewSource(2).Uint64())
}

func TestChoicesReproducible(t *testing.T) {
	pop := []string{"a", "b", "c", "d", "e"}
	first, err := sample.Choices(pop, 20, sample.WithSeed(42))
	require.NoError(t, err)
	second, err := sample.Choices(pop, 20, sample.WithSeed(42))
	require.NoError(t, err)

	assert.Len(t, first, 20)
	assert.Equal(t, first, second)
	for _, v := range first {
		assert.Contains(t, pop, v)
	}
}

func TestChoicesDifferentSeeds(t *testing.T) {
	pop := make([]int, 1000)
	for i := range pop {
		pop[i] = i
	}
	a, _ := sample.Choices(pop, 10, sample.WithSeed(1))
	b, _ := sample.Choices(pop, 10, sample.WithSeed(2))
	assert.NotEqual(t, a, b)
}

func TestChoicesWeights(t *testing.T) {
	got, err := sample.Choices([]string{"never", "always"}, 50,
		sample.WithWeights([]float64{0, 1}), sample.WithSeed(3))
	require.NoError(t, err)
	for _, v := range got {
		assert.Equal(t, "always", v)
	}
}

func TestChoicesErrors(t *testing.T) {
	_, err := sample.Choices([]int{1}, -1)
	assert.ErrorIs(t, err, sample.ErrNegativeCount)

	_, err = sample.Choices([]int{}, 1)
	assert.ErrorIs(t, err, sample.ErrEmptyPopulation)

	got, err := sample.Choices([]int{}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	cases := map[string][]float64{
		"length":   {1},
		"negative": {1, -1},
		"zero sum": {0, 0},
		"nan":      {1, math.NaN()},
	}
	for name, w := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sample.Choices([]int{1, 2}, 1, sample.WithWeights(w))
			assert.ErrorIs(t, err, sample.ErrBadWeights)
		})
	}
}

func TestTakeWithoutReplacement(t *testing.T) {
	pop := []int{1, 2, 3, 4, 5, 6}
	got, err := sample.Take(pop, 4, sample.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, got, 4)

	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}

	all, err := sample.Take(pop, 100, sample.WithSeed(9))
	require.NoError(t, err)
	assert.ElementsMatch(t, pop, all)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, pop, "input must not be mutated")

	_, err = sample.Take(pop, 1, sample.WithWeights([]float64{1, 1, 1, 1, 1, 1}))
	assert.ErrorIs(t, err, sample.ErrBadWeights)
}

func TestShuffle(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := sample.Shuffle(items, sample.WithSeed(5))
	b := sample.Shuffle(items, sample.WithSeed(5))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, items, a)

	unseeded := sample.Shuffle(items)
	assert.ElementsMatch(t, items, unseeded)
}

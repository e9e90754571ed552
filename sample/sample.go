package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Option configures a sampling call.
type Option func(*config)

type config struct {
	seed    uint64
	seeded  bool
	weights []float64
}

// WithSeed makes the call deterministic: the same seed, input and count
// always produce the same output.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWeights assigns a relative selection weight to every element of the
// population. Only [Choices] accepts weights.
func WithWeights(weights []float64) Option {
	return func(c *config) {
		c.weights = append([]float64(nil), weights...)
	}
}

func resolve(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Rand returns the generator selected by opts: seeded when [WithSeed] is
// present, entropy-keyed otherwise.
func Rand(opts ...Option) *rand.Rand {
	return resolve(opts).rand()
}

func (c config) rand() *rand.Rand {
	if c.seeded {
		return rand.New(NewSource(c.seed))
	}
	return rand.New(newEntropySource())
}

// Choices returns k elements chosen from population with replacement.
//
//	picks, _ := sample.Choices([]int{1, 2, 3}, 4, sample.WithSeed(7))
//	biased, _ := sample.Choices([]string{"a", "b"}, 10,
//	    sample.WithWeights([]float64{9, 1}), sample.WithSeed(7))
func Choices[T any](population []T, k int, opts ...Option) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, k)
	}
	cfg := resolve(opts)
	if k == 0 {
		return []T{}, nil
	}
	n := len(population)
	if n == 0 {
		return nil, ErrEmptyPopulation
	}
	r := cfg.rand()
	out := make([]T, k)
	if cfg.weights == nil {
		for i := range out {
			out[i] = population[r.IntN(n)]
		}
		return out, nil
	}

	cum, err := cumulative(cfg.weights, n)
	if err != nil {
		return nil, err
	}
	total := cum[n-1]
	for i := range out {
		x := r.Float64() * total
		idx := sort.Search(n, func(j int) bool { return cum[j] > x })
		if idx == n {
			idx = n - 1
		}
		out[i] = population[idx]
	}
	return out, nil
}

func cumulative(weights []float64, n int) ([]float64, error) {
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d elements", ErrBadWeights, len(weights), n)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrBadWeights, i, w)
		}
	}
	cum := floats.CumSum(make([]float64, n), weights)
	if cum[n-1] <= 0 {
		return nil, fmt.Errorf("%w: total weight must be positive", ErrBadWeights)
	}
	return cum, nil
}

// Take returns min(k, len(population)) distinct positions of population in
// random order (sampling without replacement).
func Take[T any](population []T, k int, opts ...Option) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, k)
	}
	cfg := resolve(opts)
	if cfg.weights != nil {
		return nil, fmt.Errorf("%w: weights require sampling with replacement", ErrBadWeights)
	}
	pool := make([]T, len(population))
	copy(pool, population)
	k = min(k, len(pool))
	r := cfg.rand()
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](items []T, opts ...Option) []T {
	out := make([]T, len(items))
	copy(out, items)
	resolve(opts).rand().Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

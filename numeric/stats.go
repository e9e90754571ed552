package numeric

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

func toFloats[T Number](c *collections.Collection[T]) []float64 {
	return lo.Map(c.All(), func(x T, _ int) float64 { return float64(x) })
}

// samples converts c to float64 and checks it holds at least atLeast values.
func samples[T Number](c *collections.Collection[T], atLeast int) ([]float64, error) {
	if c.IsEmpty() {
		return nil, collections.ErrEmptyCollection
	}
	if c.Count() < atLeast {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrTooFewValues, atLeast, c.Count())
	}
	return toFloats(c), nil
}

// Sum returns the total of all elements, zero for an empty collection.
func Sum[T Number](c *collections.Collection[T]) T {
	var total T
	for _, x := range c.Iter() {
		total += x
	}
	return total
}

// Min returns the smallest element.
func Min[T Number](c *collections.Collection[T]) (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, collections.ErrEmptyCollection
	}
	return lo.Min(c.All()), nil
}

// Max returns the largest element.
func Max[T Number](c *collections.Collection[T]) (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, collections.ErrEmptyCollection
	}
	return lo.Max(c.All()), nil
}

// Mean returns the arithmetic mean.
func Mean[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 1)
	if err != nil {
		return 0, err
	}
	return stat.Mean(xs, nil), nil
}

// Median returns the middle value, or the mean of the two middle values
// when the count is even.
//
//	numeric.Median(collections.New(4, 1, 3, 2)) // → 2.5
func Median[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 1)
	if err != nil {
		return 0, err
	}
	slices.Sort(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid], nil
	}
	return (xs[mid-1] + xs[mid]) / 2, nil
}

// Variance returns the sample variance (n-1 denominator).
func Variance[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 2)
	if err != nil {
		return 0, err
	}
	return stat.Variance(xs, nil), nil
}

// StdDev returns the sample standard deviation.
func StdDev[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 2)
	if err != nil {
		return 0, err
	}
	return stat.StdDev(xs, nil), nil
}

// HarmonicMean returns n / Σ(1/x). Negative elements return [ErrDomain];
// any zero element makes the result zero.
//
//	numeric.HarmonicMean(collections.New(40.0, 60.0)) // → 48
func HarmonicMean[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 1)
	if err != nil {
		return 0, err
	}
	for i, x := range xs {
		if x < 0 {
			return 0, domainError("harmonic_mean", x, i)
		}
		if x == 0 {
			return 0, nil
		}
	}
	return stat.HarmonicMean(xs, nil), nil
}

// GeometricMean returns the n-th root of the product of the elements.
// Negative elements return [ErrDomain]; any zero element makes the result
// zero.
func GeometricMean[T Number](c *collections.Collection[T]) (float64, error) {
	xs, err := samples(c, 1)
	if err != nil {
		return 0, err
	}
	for i, x := range xs {
		if x < 0 {
			return 0, domainError("geometric_mean", x, i)
		}
		if x == 0 {
			return 0, nil
		}
	}
	return stat.GeometricMean(xs, nil), nil
}

// QuantileMethod selects how [Quantiles] interpolates cut points.
type QuantileMethod int

const (
	// Exclusive treats the data as a sample from a larger population, so
	// cut points may lie beyond the observed minimum and maximum.
	Exclusive QuantileMethod = iota

	// Inclusive treats the data as the whole population: the minimum is
	// the 0th percentile and the maximum the 100th.
	Inclusive
)

// Quantiles divides the data into n intervals of equal probability and
// returns the n-1 cut points between them. n must be at least 1 and the
// data must hold at least two values.
//
//	numeric.Quantiles(collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 4, numeric.Exclusive)
//	// → [2.75 5.5 8.25]
func Quantiles[T Number](c *collections.Collection[T], n int, method QuantileMethod) (*collections.Collection[float64], error) {
	if n < 1 {
		return nil, collections.InvalidArgument("n = %d must be at least 1", n)
	}
	xs, err := samples(c, 2)
	if err != nil {
		return nil, err
	}
	slices.Sort(xs)
	ld := len(xs)
	out := make([]float64, 0, n-1)

	switch method {
	case Inclusive:
		m := ld - 1
		for i := 1; i < n; i++ {
			j, d := i*m/n, i*m%n
			out = append(out, (xs[j]*float64(n-d)+xs[j+1]*float64(d))/float64(n))
		}
	case Exclusive:
		m := ld + 1
		for i := 1; i < n; i++ {
			j := min(max(i*m/n, 1), ld-1)
			d := i*m - j*n
			out = append(out, (xs[j-1]*float64(n-d)+xs[j]*float64(d))/float64(n))
		}
	default:
		return nil, collections.InvalidArgument("unknown quantile method %d", method)
	}
	return collections.From(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Running and windowed
// ─────────────────────────────────────────────────────────────────────────────

// CumSum returns the running totals.
//
//	numeric.CumSum(collections.New(1, 2, 3, 4)) // → [1 3 6 10]
func CumSum[T Number](c *collections.Collection[T]) *collections.Collection[T] {
	return c.Accumulate(add[T])
}

// Diff returns the differences between consecutive elements.
//
//	numeric.Diff(collections.New(1, 2, 4, 8)) // → [1 2 4]
func Diff[T Number](c *collections.Collection[T]) *collections.Collection[T] {
	out, _ := WindowReduce(c, 2, delta[T])
	return out
}

// WindowReduce applies fn to every window of n consecutive elements.
// Returns collections.ErrInvalidArgument when n <= 0.
func WindowReduce[T Number, U any](c *collections.Collection[T], n int, fn func(window []T) U) (*collections.Collection[U], error) {
	windows, err := collections.SlidingWindow(c, n)
	if err != nil {
		return nil, err
	}
	return collections.Map(windows, func(w []T, _ int) U { return fn(w) }), nil
}

// MovingAverage returns the mean of every window of n consecutive
// elements.
//
//	numeric.MovingAverage(collections.New(0, 1, 2, 3, 4), 4) // → [1.5 2.5]
func MovingAverage[T Number](c *collections.Collection[T], n int) (*collections.Collection[float64], error) {
	return WindowReduce(c, n, mean[T])
}

func add[T Number](a, b T) T { return a + b }

func delta[T Number](w []T) T { return w[1] - w[0] }

func mean[T Number](w []T) float64 {
	xs := lo.Map(w, func(x T, _ int) float64 { return float64(x) })
	return floats.Sum(xs) / float64(len(xs))
}

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/lazy"
	"github.com/hasbyte1/go-lazy-collections/numeric"
)

func TestArithmeticKeepsType(t *testing.T) {
	c := collections.New(1, -2, 3)
	assert.Equal(t, []int{3, 0, 5}, numeric.Add(c, 2).All())
	assert.Equal(t, []int{0, -3, 2}, numeric.Sub(c, 1).All())
	assert.Equal(t, []int{3, -6, 9}, numeric.Mul(c, 3).All())
	assert.Equal(t, []int{1, 2, 3}, numeric.Abs(c).All())
}

func TestDivision(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, []float64{0.5, 1, 1.5}, numeric.Div(c, 2).All())

	got := numeric.Div(c, 0).All()
	assert.True(t, math.IsInf(got[0], 1))

	_, err := numeric.DivChecked(c, 0)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	out, err := numeric.DivChecked(collections.Empty[int](), 0)
	require.NoError(t, err, "no element reaches the zero divisor")
	assert.True(t, out.IsEmpty())
}

func TestModCarriesDivisorSign(t *testing.T) {
	assert.Equal(t, []float64{2, 1}, numeric.Mod(collections.New(-7, 7), 3).All())
	assert.Equal(t, []float64{-1, -2}, numeric.Mod(collections.New(-7, 7), -3).All())

	_, err := numeric.ModChecked(collections.New(1), 0)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestRemainderAndModf(t *testing.T) {
	assert.Equal(t, []float64{1, -1}, numeric.Remainder(collections.New(10.0, 11.0), 3).All())

	_, err := numeric.RemainderChecked(collections.New(math.Inf(1)), 3)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	parts := numeric.Modf(collections.New(-3.5)).All()
	assert.Equal(t, -3.0, parts[0].First)
	assert.Equal(t, -0.5, parts[0].Second)
}

func TestSqrtCheckedReportsIndex(t *testing.T) {
	c := collections.New(4.0, 9.0, -1.0)

	plain := numeric.Sqrt(c).All()
	assert.Equal(t, []float64{2, 3}, plain[:2])
	assert.True(t, math.IsNaN(plain[2]))

	_, err := numeric.SqrtChecked(c)
	require.ErrorIs(t, err, numeric.ErrDomain)
	assert.Contains(t, err.Error(), "sqrt(-1) at index 2")
}

func TestPowAndRoot(t *testing.T) {
	assert.Equal(t, []float64{1, 4, 9}, numeric.Pow(collections.New(1, 2, 3), 2).All())
	assert.InDeltaSlice(t, []float64{2, 3}, numeric.Root(collections.New(8.0, 27.0), 3).All(), 1e-12)

	_, err := numeric.PowChecked(collections.New(-8.0), 0.5)
	assert.ErrorIs(t, err, numeric.ErrDomain)
	_, err = numeric.PowChecked(collections.New(0.0), -1)
	assert.ErrorIs(t, err, numeric.ErrDomain)
	_, err = numeric.PowChecked(collections.New(-2.0), 3)
	assert.NoError(t, err)

	_, err = numeric.RootChecked(collections.New(8.0), 0)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestLogarithms(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0, 1, 3}, numeric.Log(collections.New(1, 2, 8), 2).All(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 2}, numeric.Log10(collections.New(1, 100)).All(), 1e-12)
	assert.Equal(t, []float64{3}, numeric.Log2(collections.New(8)).All())
	assert.Equal(t, []float64{0}, numeric.Ln(collections.New(1)).All())
	assert.Equal(t, []float64{0}, numeric.Log1p(collections.New(0)).All())

	checks := map[string]func() error{
		"log zero":  func() error { _, err := numeric.LogChecked(collections.New(0.0), 10); return err },
		"log base1": func() error { _, err := numeric.LogChecked(collections.New(5.0), 1); return err },
		"ln":        func() error { _, err := numeric.LnChecked(collections.New(-1.0)); return err },
		"log10":     func() error { _, err := numeric.Log10Checked(collections.New(0)); return err },
		"log2":      func() error { _, err := numeric.Log2Checked(collections.New(-4)); return err },
		"log1p":     func() error { _, err := numeric.Log1pChecked(collections.New(-1.0)); return err },
		"inverse":   func() error { _, err := numeric.InverseChecked(collections.New(0)); return err },
	}
	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, fn(), numeric.ErrDomain)
		})
	}
}

func TestRounding(t *testing.T) {
	c := collections.New(-1.5, 0.5, 1.5, 2.5)
	assert.Equal(t, []float64{-1, 1, 2, 3}, numeric.Ceil(c).All())
	assert.Equal(t, []float64{-2, 0, 1, 2}, numeric.Floor(c).All())
	assert.Equal(t, []float64{-1, 0, 1, 2}, numeric.Trunc(c).All())
	assert.Equal(t, []float64{-2, 0, 2, 2}, numeric.Round(c).All())
}

func TestExponentials(t *testing.T) {
	assert.InDeltaSlice(t, []float64{1, 8}, numeric.Exp2(collections.New(0, 3)).All(), 1e-12)
	assert.InDelta(t, math.E, numeric.Exp(collections.New(1)).All()[0], 1e-12)
	assert.Equal(t, []float64{0.5, -0.25}, numeric.Inverse(collections.New(2, -4)).All())
}

func TestFloatPredicates(t *testing.T) {
	c := collections.New(1.0, math.Inf(-1), math.NaN(), 1.0000000001)
	assert.Equal(t, []bool{true, false, false, true}, numeric.IsFinite(c).All())
	assert.Equal(t, []bool{false, true, false, false}, numeric.IsInf(c).All())
	assert.Equal(t, []bool{false, false, true, false}, numeric.IsNaN(c).All())
	assert.Equal(t, []bool{true, false, false, true}, numeric.IsClose(c, 1, 1e-9, 0).All())
	assert.Equal(t, []bool{true}, numeric.IsClose(collections.New(0.0), 1e-12, 1e-9, 1e-10).All())
}

func TestStatistics(t *testing.T) {
	c := collections.New(2, 4, 4, 4, 5, 5, 7, 9)

	assert.Equal(t, 40, numeric.Sum(c))
	assert.Equal(t, 0, numeric.Sum(collections.Empty[int]()))

	lo, err := numeric.Min(c)
	require.NoError(t, err)
	assert.Equal(t, 2, lo)
	hi, err := numeric.Max(c)
	require.NoError(t, err)
	assert.Equal(t, 9, hi)

	mean, err := numeric.Mean(c)
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	med, err := numeric.Median(c)
	require.NoError(t, err)
	assert.Equal(t, 4.5, med)

	med, err = numeric.Median(collections.New(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, med)

	v, err := numeric.Variance(c)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, v, 1e-12)

	sd, err := numeric.StdDev(c)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), sd, 1e-12)

	hm, err := numeric.HarmonicMean(collections.New(40.0, 60.0))
	require.NoError(t, err)
	assert.InDelta(t, 48.0, hm, 1e-9)

	gm, err := numeric.GeometricMean(collections.New(2.0, 8.0))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, gm, 1e-9)
}

func TestStatisticsEdgeCases(t *testing.T) {
	empty := collections.Empty[float64]()

	_, err := numeric.Mean(empty)
	assert.ErrorIs(t, err, collections.ErrEmptyCollection)
	_, err = numeric.Median(empty)
	assert.ErrorIs(t, err, collections.ErrEmptyCollection)
	_, err = numeric.Min(empty)
	assert.ErrorIs(t, err, collections.ErrEmptyCollection)
	_, err = numeric.Variance(collections.New(1.0))
	assert.ErrorIs(t, err, numeric.ErrTooFewValues)
	_, err = numeric.StdDev(collections.New(1.0))
	assert.ErrorIs(t, err, numeric.ErrTooFewValues)

	_, err = numeric.HarmonicMean(collections.New(1.0, -1.0))
	assert.ErrorIs(t, err, numeric.ErrDomain)
	hm, err := numeric.HarmonicMean(collections.New(1.0, 0.0))
	require.NoError(t, err)
	assert.Zero(t, hm)

	_, err = numeric.GeometricMean(collections.New(-2.0))
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestQuantiles(t *testing.T) {
	c := collections.New(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)

	q, err := numeric.Quantiles(c, 4, numeric.Exclusive)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.75, 5.5, 8.25}, q.All(), 1e-12)

	q, err = numeric.Quantiles(c, 4, numeric.Inclusive)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.25, 5.5, 7.75}, q.All(), 1e-12)

	q, err = numeric.Quantiles(c, 1, numeric.Exclusive)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())

	_, err = numeric.Quantiles(c, 0, numeric.Exclusive)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = numeric.Quantiles(collections.New(1), 4, numeric.Exclusive)
	assert.ErrorIs(t, err, numeric.ErrTooFewValues)
}

func TestRunningAndWindowed(t *testing.T) {
	assert.Equal(t, []int{1, 3, 6, 10}, numeric.CumSum(collections.New(1, 2, 3, 4)).All())
	assert.Equal(t, []int{1, 2, 4}, numeric.Diff(collections.New(1, 2, 4, 8)).All())
	assert.True(t, numeric.Diff(collections.New(1)).IsEmpty())

	ma, err := numeric.MovingAverage(collections.New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}, ma.All())

	_, err = numeric.MovingAverage(collections.New(1, 2), 0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	spans, err := numeric.WindowReduce(collections.New(3, 1, 4, 1, 5), 3, func(w []int) int {
		return max(w[0], w[1], w[2]) - min(w[0], w[1], w[2])
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 4}, spans.All())
}

func TestLazyVariants(t *testing.T) {
	cum, err := numeric.LazyCumSum(lazy.Count(1)).Take(4).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 10}, cum)

	diff, err := numeric.LazyDiff(lazy.Iterate(1, func(n int) int { return n * 2 })).Take(3).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, diff)

	ma, err := numeric.LazyMovingAverage(lazy.Count(0), 4)
	require.NoError(t, err)
	got, err := ma.Take(2).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, got)

	_, err = numeric.LazyMovingAverage(lazy.Count(0), -1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestLazyCheckedFailsAtTraversal(t *testing.T) {
	l := numeric.LazySqrtChecked(lazy.New(4.0, -1.0, 9.0))

	first, err := l.Take(1).ToSlice()
	require.NoError(t, err, "elements before the bad one are fine")
	assert.Equal(t, []float64{2}, first)

	got, err := l.ToSlice()
	assert.ErrorIs(t, err, numeric.ErrDomain)
	assert.Equal(t, []float64{2}, got)

	_, err = numeric.LazyLogChecked(lazy.New(1.0, 0.0), 10).Len()
	require.ErrorIs(t, err, numeric.ErrDomain)
	assert.Contains(t, err.Error(), "at index 1")
}

package numeric

import (
	"math"

	"github.com/hasbyte1/go-lazy-collections/lazy"
)

// LazyCumSum yields the running totals of l.
func LazyCumSum[T Number](l *lazy.List[T]) *lazy.List[T] {
	return l.Accumulate(add[T])
}

// LazyDiff yields the differences between consecutive elements of l.
func LazyDiff[T Number](l *lazy.List[T]) *lazy.List[T] {
	out, _ := LazyWindowReduce(l, 2, delta[T])
	return out
}

// LazyWindowReduce yields fn applied to every window of n consecutive
// elements of l. Returns collections.ErrInvalidArgument when n <= 0.
func LazyWindowReduce[T Number, U any](l *lazy.List[T], n int, fn func(window []T) U) (*lazy.List[U], error) {
	windows, err := lazy.SlidingWindow(l, n)
	if err != nil {
		return nil, err
	}
	return lazy.Map(windows, fn), nil
}

// LazyMovingAverage yields the mean of every window of n consecutive
// elements of l.
func LazyMovingAverage[T Number](l *lazy.List[T], n int) (*lazy.List[float64], error) {
	return LazyWindowReduce(l, n, mean[T])
}

// lazyChecked maps l through fn, ending the traversal with [ErrDomain] at the
// first element that fails valid.
func lazyChecked[T Number](l *lazy.List[T], op string, fn func(float64) float64, valid func(float64) bool) *lazy.List[float64] {
	i := -1
	return lazy.TryMap(l, func(x T) (float64, error) {
		i++
		f := float64(x)
		if !valid(f) {
			return 0, domainError(op, f, i)
		}
		return fn(f), nil
	})
}

// LazySqrtChecked yields the square root of every element. A negative
// element fails the traversal with [ErrDomain] when it is reached.
func LazySqrtChecked[T Number](l *lazy.List[T]) *lazy.List[float64] {
	return lazyChecked(l, "sqrt", math.Sqrt, nonNegative)
}

// LazyLogChecked yields the logarithm of every element to base. A
// non-positive element, or an invalid base, fails the traversal with
// [ErrDomain] when it is reached.
func LazyLogChecked[T Number](l *lazy.List[T], base float64) *lazy.List[float64] {
	return lazyChecked(l, "log", logBase(base), func(x float64) bool {
		return x > 0 && base > 0 && base != 1
	})
}

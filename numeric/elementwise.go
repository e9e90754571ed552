package numeric

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-lazy-collections/collections"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func apply[T Number](c *collections.Collection[T], fn func(float64) float64) *collections.Collection[float64] {
	return collections.Map(c, func(x T, _ int) float64 { return fn(float64(x)) })
}

// applyChecked is apply with a domain test run before each element. The
// first element that fails valid aborts the whole operation.
func applyChecked[T Number](c *collections.Collection[T], op string, fn func(float64) float64, valid func(float64) bool) (*collections.Collection[float64], error) {
	out := make([]float64, 0, c.Count())
	for i, x := range c.Iter() {
		f := float64(x)
		if !valid(f) {
			return nil, domainError(op, f, i)
		}
		out = append(out, fn(f))
	}
	return collections.From(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add adds v to every element.
func Add[T Number](c *collections.Collection[T], v T) *collections.Collection[T] {
	return collections.Map(c, func(x T, _ int) T { return x + v })
}

// Sub subtracts v from every element.
func Sub[T Number](c *collections.Collection[T], v T) *collections.Collection[T] {
	return collections.Map(c, func(x T, _ int) T { return x - v })
}

// Mul multiplies every element by v.
func Mul[T Number](c *collections.Collection[T], v T) *collections.Collection[T] {
	return collections.Map(c, func(x T, _ int) T { return x * v })
}

// Abs returns the absolute value of every element.
func Abs[T Number](c *collections.Collection[T]) *collections.Collection[T] {
	return collections.Map(c, func(x T, _ int) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Div divides every element by v using floating-point division, so a zero
// divisor yields ±Inf or NaN.
//
//	numeric.Div(collections.New(1, 2, 3), 2) // → [0.5 1 1.5]
func Div[T Number](c *collections.Collection[T], v T) *collections.Collection[float64] {
	d := float64(v)
	return apply(c, func(x float64) float64 { return x / d })
}

// DivChecked is [Div] returning [ErrDomain] for a zero divisor.
func DivChecked[T Number](c *collections.Collection[T], v T) (*collections.Collection[float64], error) {
	d := float64(v)
	return applyChecked(c, "div", func(x float64) float64 { return x / d }, func(float64) bool { return d != 0 })
}

// floorMod returns x modulo y with the sign of y.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// Mod returns every element modulo v. The result carries the sign of v:
//
//	numeric.Mod(collections.New(-7, 7), 3) // → [2 1]
func Mod[T Number](c *collections.Collection[T], v T) *collections.Collection[float64] {
	d := float64(v)
	return apply(c, func(x float64) float64 { return floorMod(x, d) })
}

// ModChecked is [Mod] returning [ErrDomain] for a zero divisor.
func ModChecked[T Number](c *collections.Collection[T], v T) (*collections.Collection[float64], error) {
	d := float64(v)
	return applyChecked(c, "mod", func(x float64) float64 { return floorMod(x, d) }, func(float64) bool { return d != 0 })
}

// Remainder returns the IEEE 754 remainder x - n*v, where n*v is the
// multiple of v closest to x.
func Remainder[T Number](c *collections.Collection[T], v T) *collections.Collection[float64] {
	d := float64(v)
	return apply(c, func(x float64) float64 { return math.Remainder(x, d) })
}

// RemainderChecked is [Remainder] returning [ErrDomain] for a zero divisor
// or an infinite element.
func RemainderChecked[T Number](c *collections.Collection[T], v T) (*collections.Collection[float64], error) {
	d := float64(v)
	return applyChecked(c, "remainder", func(x float64) float64 { return math.Remainder(x, d) },
		func(x float64) bool { return d != 0 && !math.IsInf(x, 0) })
}

// Modf splits every element into its integer and fractional parts. Both
// parts carry the sign of the element.
func Modf[T Number](c *collections.Collection[T]) *collections.Collection[collections.Pair[float64, float64]] {
	return collections.Map(c, func(x T, _ int) collections.Pair[float64, float64] {
		i, f := math.Modf(float64(x))
		return collections.Pair[float64, float64]{First: i, Second: f}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Powers and roots
// ─────────────────────────────────────────────────────────────────────────────

func powValid(x, p float64) bool {
	if x < 0 && p != math.Trunc(p) {
		return false
	}
	return x != 0 || p >= 0
}

// Pow raises every element to exp.
func Pow[T Number](c *collections.Collection[T], exp float64) *collections.Collection[float64] {
	return apply(c, func(x float64) float64 { return math.Pow(x, exp) })
}

// PowChecked is [Pow] returning [ErrDomain] for a negative base with a
// fractional exponent, or zero raised to a negative power.
func PowChecked[T Number](c *collections.Collection[T], exp float64) (*collections.Collection[float64], error) {
	return applyChecked(c, "pow", func(x float64) float64 { return math.Pow(x, exp) },
		func(x float64) bool { return powValid(x, exp) })
}

// Root returns the degree-th root of every element, computed as
// x**(1/degree).
//
//	numeric.Root(collections.New(8.0, 27.0), 3) // → [2 3]
func Root[T Number](c *collections.Collection[T], degree float64) *collections.Collection[float64] {
	return Pow(c, 1/degree)
}

// RootChecked is [Root] returning [ErrDomain] for a zero degree or a
// negative element.
func RootChecked[T Number](c *collections.Collection[T], degree float64) (*collections.Collection[float64], error) {
	p := 1 / degree
	return applyChecked(c, "root", func(x float64) float64 { return math.Pow(x, p) },
		func(x float64) bool { return degree != 0 && powValid(x, p) })
}

// Sqrt returns the square root of every element.
func Sqrt[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Sqrt)
}

// SqrtChecked is [Sqrt] returning [ErrDomain] for a negative element.
func SqrtChecked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "sqrt", math.Sqrt, nonNegative)
}

// Inverse returns 1/x for every element.
func Inverse[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, inverse)
}

// InverseChecked is [Inverse] returning [ErrDomain] for a zero element.
func InverseChecked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "inverse", inverse, func(x float64) bool { return x != 0 })
}

func inverse(x float64) float64 { return 1 / x }

func nonNegative(x float64) bool { return x >= 0 }

func positive(x float64) bool { return x > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Exponentials and logarithms
// ─────────────────────────────────────────────────────────────────────────────

// Exp returns e**x for every element.
func Exp[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Exp)
}

// Exp2 returns 2**x for every element.
func Exp2[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Exp2)
}

func logBase(base float64) func(float64) float64 {
	lb := math.Log(base)
	return func(x float64) float64 { return math.Log(x) / lb }
}

// Log returns the logarithm of every element to the given base.
func Log[T Number](c *collections.Collection[T], base float64) *collections.Collection[float64] {
	return apply(c, logBase(base))
}

// LogChecked is [Log] returning [ErrDomain] for a non-positive element or
// a base that is non-positive or one.
func LogChecked[T Number](c *collections.Collection[T], base float64) (*collections.Collection[float64], error) {
	return applyChecked(c, "log", logBase(base), func(x float64) bool {
		return x > 0 && base > 0 && base != 1
	})
}

// Ln returns the natural logarithm of every element.
func Ln[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Log)
}

// LnChecked is [Ln] returning [ErrDomain] for a non-positive element.
func LnChecked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "ln", math.Log, positive)
}

// Log10 returns the base 10 logarithm of every element.
func Log10[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Log10)
}

// Log10Checked is [Log10] returning [ErrDomain] for a non-positive element.
func Log10Checked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "log10", math.Log10, positive)
}

// Log2 returns the base 2 logarithm of every element.
func Log2[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Log2)
}

// Log2Checked is [Log2] returning [ErrDomain] for a non-positive element.
func Log2Checked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "log2", math.Log2, positive)
}

// Log1p returns ln(1+x) for every element, accurate for x near zero.
func Log1p[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Log1p)
}

// Log1pChecked is [Log1p] returning [ErrDomain] for an element <= -1.
func Log1pChecked[T Number](c *collections.Collection[T]) (*collections.Collection[float64], error) {
	return applyChecked(c, "log1p", math.Log1p, func(x float64) bool { return x > -1 })
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// Ceil rounds every element up.
func Ceil[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Ceil)
}

// Floor rounds every element down.
func Floor[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Floor)
}

// Trunc rounds every element toward zero.
func Trunc[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.Trunc)
}

// Round rounds every element to the nearest integer, halves to even.
//
//	numeric.Round(collections.New(0.5, 1.5, 2.5)) // → [0 2 2]
func Round[T Number](c *collections.Collection[T]) *collections.Collection[float64] {
	return apply(c, math.RoundToEven)
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

func isClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= max(relTol*max(math.Abs(a), math.Abs(b)), absTol)
}

// IsClose reports for every element whether it is within relTol (relative)
// or absTol (absolute) of v.
func IsClose[T Number](c *collections.Collection[T], v, relTol, absTol float64) *collections.Collection[bool] {
	return collections.Map(c, func(x T, _ int) bool { return isClose(float64(x), v, relTol, absTol) })
}

// IsFinite reports for every element whether it is neither infinite nor NaN.
func IsFinite[T Number](c *collections.Collection[T]) *collections.Collection[bool] {
	return collections.Map(c, func(x T, _ int) bool {
		f := float64(x)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
}

// IsInf reports for every element whether it is ±Inf.
func IsInf[T Number](c *collections.Collection[T]) *collections.Collection[bool] {
	return collections.Map(c, func(x T, _ int) bool { return math.IsInf(float64(x), 0) })
}

// IsNaN reports for every element whether it is NaN.
func IsNaN[T Number](c *collections.Collection[T]) *collections.Collection[bool] {
	return collections.Map(c, func(x T, _ int) bool { return math.IsNaN(float64(x)) })
}

// Package numeric adds arithmetic and statistics to collections and lazy
// lists of numbers.
//
// The functions are generic over [Number], any integer or floating-point
// type. Add, Sub, Mul and Abs keep the element type; every other
// elementwise function yields float64.
//
// # Checked entry points
//
// The plain functions follow the math package: a value outside an
// operation's domain produces NaN or ±Inf. Each domain-sensitive operation
// also has a Checked variant that stops at the first offending element and
// returns [ErrDomain] wrapped with the operation, value and index:
//
//	numeric.Sqrt(collections.New(4.0, -1.0))        // → [2 NaN]
//	_, err := numeric.SqrtChecked(collections.New(4.0, -1.0))
//	errors.Is(err, numeric.ErrDomain)               // → true
//
// # Statistics
//
// Mean, Variance, StdDev, HarmonicMean and GeometricMean delegate to
// gonum's stat package. Statistics over an empty input return
// collections.ErrEmptyCollection; the sample variance of fewer than two
// values returns [ErrTooFewValues].
//
// # Lazy lists
//
// The Lazy functions build stages over a *lazy.List. Domain errors in
// [LazySqrtChecked] and [LazyLogChecked] surface when the list is traversed,
// not when the stage is built.
package numeric

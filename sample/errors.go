package sample

import "errors"

// Sentinel errors returned by the sampling functions.
var (
	// ErrEmptyPopulation is returned when a non-zero sample is requested
	// from an empty population.
	ErrEmptyPopulation = errors.New("sample: cannot sample from an empty population")

	// ErrNegativeCount is returned when the requested sample size is negative.
	ErrNegativeCount = errors.New("sample: sample size must not be negative")

	// ErrBadWeights is returned when weights do not match the population,
	// contain negative or non-finite values, or sum to zero.
	ErrBadWeights = errors.New("sample: invalid weights")
)

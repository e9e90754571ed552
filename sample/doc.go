// Package sample provides seedable random sampling for the collection
// containers.
//
// # Reproducibility
//
// All randomness comes from a [Source], a math/rand/v2 source backed by a
// ChaCha20 keystream keyed by a 64-bit seed. The keystream is fixed by
// RFC 8439, so the same seed, input and count reproduce the same
// sample across runs, platforms and Go releases:
//
//	a, _ := sample.Choices([]string{"x", "y", "z"}, 5, sample.WithSeed(42))
//	b, _ := sample.Choices([]string{"x", "y", "z"}, 5, sample.WithSeed(42))
//	// a and b are identical
//
// Without [WithSeed] the key is drawn from crypto/rand. There is no
// package-level random state.
//
// # Weights
//
// [WithWeights] assigns a relative weight to each element of the population
// for sampling with replacement ([Choices]). Weights must match the
// population length, be finite and non-negative, and sum to a positive total.
package sample

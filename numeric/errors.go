package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned by the Checked functions when an element lies
	// outside the operation's domain, such as the square root of a negative
	// number or a division by zero.
	ErrDomain = errors.New("numeric: math domain error")

	// ErrTooFewValues is returned by statistics that need more data points
	// than the input holds.
	ErrTooFewValues = errors.New("numeric: not enough data points")
)

func domainError(op string, x float64, index int) error {
	return fmt.Errorf("%w: %s(%v) at index %d", ErrDomain, op, x, index)
}

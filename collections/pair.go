package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip], [Enumerate] and [Product].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple holds three values of possibly different types. It is the element
// type produced by [Zip3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// String returns a human-readable representation: "(first, second, third)".
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Option is an explicit "maybe absent" value. It marks the padding produced
// by [ZipLongest] so that padding never collides with a legitimate zero
// value in the data.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// OrElse returns the value when present and def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

// String returns the value's representation, or "<absent>".
func (o Option[T]) String() string {
	if !o.Valid {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.Value)
}

package arr

import "math"

// Unbounded leaves a slice bound open. As a start it means "from the natural
// beginning for the step direction", as a stop "to the natural end".
const Unbounded = math.MinInt

// Resolve maps a possibly negative index onto [0, length). Negative indices
// count from the end. The second result is false when the index is out of
// range.
func Resolve(index, length int) (int, bool) {
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

// SliceBounds normalises start and stop for a sequence of the given length
// and a non-zero step: negative bounds
// count from the end, out-of-range bounds are clamped, and [Unbounded]
// selects the natural bound for the step direction.
func SliceBounds(start, stop, step, length int) (int, int) {
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(v, open int) int {
		switch {
		case v == Unbounded:
			return open
		case v < 0:
			v += length
			if v < lower {
				v = lower
			}
		case v > upper:
			v = upper
		}
		return v
	}
	if step < 0 {
		return clamp(start, upper), clamp(stop, lower)
	}
	return clamp(start, lower), clamp(stop, upper)
}

// SliceStep returns items[start:stop:step] with the clamping rules of
// [SliceBounds]. step must not be zero.
func SliceStep[T any](items []T, start, stop, step int) []T {
	start, stop = SliceBounds(start, stop, step, len(items))
	out := make([]T, 0)
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, items[i])
			if step >= stop-i {
				break
			}
		}
		return out
	}
	for i := start; i > stop; i += step {
		out = append(out, items[i])
		if step <= stop-i {
			break
		}
	}
	return out
}

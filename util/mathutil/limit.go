package mathutil

import "cmp"

func Limit[T cmp.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

// Floors v at min.
func AtLeast[T cmp.Ordered](v, min T) T {
	if v < min {
		return min
	}
	return v
}

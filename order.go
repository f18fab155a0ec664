package binheap

import (
	"golang.org/x/exp/constraints"
)

// Natural orders values of an ordered type ascending. A floating-point NaN
// sorts before every other value and equal to any other NaN, so a heap of
// floats holding NaN keeps a consistent order.
func Natural[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// isNaN reports whether x is a NaN without requiring a float type.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// Reverse flips order.
func Reverse[T any](order func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return order(b, a)
	}
}

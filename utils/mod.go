package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMin returns the index of the first item with the smallest key, or -1
// for an empty slice.
func ArgMin[T any, K constraints.Ordered](slice []T, key func(T) K) int {
	best := -1
	var bestKey K
	for i, v := range slice {
		if k := key(v); best < 0 || k < bestKey {
			best = i
			bestKey = k
		}
	}
	return best
}

package utils

import "math/bits"

// RoundUp2 - Returns the nearest power of 2 that is equal to or bigger than a
// Values less than 1 returns 1.
func RoundUp2(a int) int {
	if a <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(a-1))
}

// IsPowerOf2 - Returns true if a is a positive power of 2
func IsPowerOf2(a int) bool {
	return a > 0 && a&(a-1) == 0
}

// LoadFactor - Returns size / capacity, zero for a zero capacity
func LoadFactor(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}

	return float64(size) / float64(capacity)
}

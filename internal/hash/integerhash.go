package hash

import "golang.org/x/exp/constraints"

// IntegerHashAlgorithm - The internally used hash algorithm for integer keys. The hash value is the key itself
// converted to uint64, so the bucket of a key is key & (capacity - 1). Negative keys wrap around as two's
// complement which still masks into a valid bucket.
type IntegerHashAlgorithm[K constraints.Integer] struct{}

// NewIntegerHashAlgorithm - Returns a pointer to a new IntegerHashAlgorithm instance
func NewIntegerHashAlgorithm[K constraints.Integer]() *IntegerHashAlgorithm[K] {
	return &IntegerHashAlgorithm[K]{}
}

// HashFunc - Given key it returns the key as hash value
func (I *IntegerHashAlgorithm[K]) HashFunc(key K) uint64 {
	return uint64(key)
}

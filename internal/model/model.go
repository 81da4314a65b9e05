package model

// Pair - Represents one key value association stored in a chain
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

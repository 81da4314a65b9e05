package hashfunc

// HashAlgorithm - Interface that supplies the deterministic hash primitive for a key type.
// A HashMap is bound to one HashAlgorithm for its whole lifetime, it is used both when placing new pairs and
// when rehashing existing pairs after a change of capacity.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value.
	// The same key must always produce the same value, since the bucket of a key is calculated as
	// bucket = hash & (capacity - 1) and any drift would make stored pairs unreachable.
	// Only the low bits are used for small tables, so an algorithm that leaves the low bits poorly
	// distributed will give long chains.
	HashFunc(key K) uint64
}

// HashAlgorithmFunc - Adapts an ordinary function to the HashAlgorithm interface
type HashAlgorithmFunc[K any] func(key K) uint64

// HashFunc - Calls f(key)
func (f HashAlgorithmFunc[K]) HashFunc(key K) uint64 {
	return f(key)
}

package chainmap

// Equal - Returns true if a and b hold the same set of keys with equal values per key.
// Capacity and bucket layout are not compared. Two nil hash maps are equal, a nil and a non-nil are equal only if
// the non-nil one is empty.
func Equal[K, V comparable](a, b *HashMap[K, V]) bool {
	return EqualFunc(a, b, func(va, vb V) bool { return va == vb })
}

// EqualFunc - Like Equal but values are compared with eq, for value types that are not comparable
func EqualFunc[K comparable, V1, V2 any](a *HashMap[K, V1], b *HashMap[K, V2], eq func(V1, V2) bool) bool {
	if a == nil || b == nil {
		return size(a) == size(b)
	}
	if a.Size() != b.Size() {
		return false
	}

	// Same size and every key of a found in b with an equal value means the key sets are the same
	for k, va := range a.All() {
		vb, ok := b.Lookup(k)
		if !ok || !eq(va, vb) {
			return false
		}
	}

	return true
}

// size - Returns the size of hm treating nil as empty
func size[K comparable, V any](hm *HashMap[K, V]) int {
	if hm == nil {
		return 0
	}
	return hm.Size()
}

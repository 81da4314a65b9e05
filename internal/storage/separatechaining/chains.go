package separatechaining

import (
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/model"
	"github.com/gostonefire/chainmap/internal/utils"
	"github.com/pkg/errors"
)

// Chains - Represents the bucket store for the Separate Chaining Collision Resolution Technique.
// It holds exactly capacity chains, each an ordered slice of pairs, and capacity is always a power of 2 so that
// the bucket of a key can be calculated as hash & (capacity - 1).
// A key is stored at most once across all chains, Chains itself does not enforce that, callers check with Find first.
type Chains[K comparable, V any] struct {
	buckets       [][]model.Pair[K, V]
	hashAlgorithm hashfunc.HashAlgorithm[K]
	size          int
}

// NewChains - Returns a pointer to a new empty Chains instance
//   - capacity is the number of buckets, it must be a power of 2
//   - hashAlgorithm is the hash primitive used for all bucket calculations
//
// It returns:
//   - chains which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewChains[K comparable, V any](capacity int, hashAlgorithm hashfunc.HashAlgorithm[K]) (chains *Chains[K, V], err error) {
	if !utils.IsPowerOf2(capacity) {
		err = errors.Errorf("capacity must be a positive power of 2, got %d", capacity)
		return
	}
	if hashAlgorithm == nil {
		err = errors.New("hash algorithm can not be nil")
		return
	}

	chains = &Chains[K, V]{
		buckets:       make([][]model.Pair[K, V], capacity),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// Capacity - Returns the number of buckets
func (S *Chains[K, V]) Capacity() int {
	return len(S.buckets)
}

// Size - Returns the total number of pairs over all chains
func (S *Chains[K, V]) Size() int {
	return S.size
}

// BucketNo - Returns which bucket the key belongs to given the current capacity
func (S *Chains[K, V]) BucketNo(key K) int {
	return maskHash(S.hashAlgorithm.HashFunc(key), len(S.buckets))
}

// BucketLen - Returns the length of the chain in bucket bucketNo, 0 for a bucket number out of range
func (S *Chains[K, V]) BucketLen(bucketNo int) int {
	if bucketNo < 0 || bucketNo >= len(S.buckets) {
		return 0
	}

	return len(S.buckets[bucketNo])
}

// Find - Searches the chain of key for a matching pair.
// It returns:
//   - bucketNo is the bucket the key belongs to, whether found or not
//   - offset is the position within the chain, -1 if not found
//   - found is true if the key is stored
func (S *Chains[K, V]) Find(key K) (bucketNo, offset int, found bool) {
	bucketNo = S.BucketNo(key)
	for i := range S.buckets[bucketNo] {
		if S.buckets[bucketNo][i].Key == key {
			offset = i
			found = true
			return
		}
	}

	offset = -1
	return
}

// Record - Returns a pointer to the pair stored at bucketNo and offset, or nil if there is none.
// The pointer stays valid until the next Append, Remove, Rehash or Clear.
func (S *Chains[K, V]) Record(bucketNo, offset int) *model.Pair[K, V] {
	if bucketNo < 0 || bucketNo >= len(S.buckets) {
		return nil
	}
	if offset < 0 || offset >= len(S.buckets[bucketNo]) {
		return nil
	}

	return &S.buckets[bucketNo][offset]
}

// Append - Adds the pair to the end of its chain without checking for an existing key
// It returns the bucket and offset the pair was stored at.
func (S *Chains[K, V]) Append(pair model.Pair[K, V]) (bucketNo, offset int) {
	bucketNo = S.BucketNo(pair.Key)
	S.buckets[bucketNo] = append(S.buckets[bucketNo], pair)
	S.size++
	offset = len(S.buckets[bucketNo]) - 1

	return
}

// Remove - Removes the pair with matching key keeping the order of the rest of the chain
// It returns true if a pair was removed.
func (S *Chains[K, V]) Remove(key K) bool {
	bucketNo, offset, found := S.Find(key)
	if !found {
		return false
	}

	chain := S.buckets[bucketNo]
	copy(chain[offset:], chain[offset+1:])
	var zero model.Pair[K, V]
	chain[len(chain)-1] = zero
	chain = chain[:len(chain)-1]
	if len(chain) == 0 {
		chain = nil
	}
	S.buckets[bucketNo] = chain
	S.size--

	return true
}

// Rehash - Moves every pair into a new set of newCapacity buckets using the new mask.
// Pairs are visited in bucket order then chain order, so pairs that collide again keep their relative order.
// The old buckets are swapped out only after all pairs are placed.
func (S *Chains[K, V]) Rehash(newCapacity int) (err error) {
	if !utils.IsPowerOf2(newCapacity) {
		err = errors.Errorf("capacity must be a positive power of 2, got %d", newCapacity)
		return
	}

	buckets := make([][]model.Pair[K, V], newCapacity)
	for _, chain := range S.buckets {
		for _, pair := range chain {
			n := maskHash(S.hashAlgorithm.HashFunc(pair.Key), newCapacity)
			buckets[n] = append(buckets[n], pair)
		}
	}
	S.buckets = buckets

	return
}

// FirstNonEmpty - Returns the lowest bucket number at or after from with a non-empty chain
// It returns ok false if there is none.
func (S *Chains[K, V]) FirstNonEmpty(from int) (bucketNo int, ok bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(S.buckets); i++ {
		if len(S.buckets[i]) > 0 {
			return i, true
		}
	}

	return
}

// LastNonEmpty - Returns the highest bucket number with a non-empty chain
// It returns ok false if all chains are empty.
func (S *Chains[K, V]) LastNonEmpty() (bucketNo int, ok bool) {
	for i := len(S.buckets) - 1; i >= 0; i-- {
		if len(S.buckets[i]) > 0 {
			return i, true
		}
	}

	return
}

// Clear - Empties every chain keeping the capacity
func (S *Chains[K, V]) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.size = 0
}

// Clone - Returns a deep copy sharing no backing storage with S. Values are copied by assignment.
func (S *Chains[K, V]) Clone() *Chains[K, V] {
	buckets := make([][]model.Pair[K, V], len(S.buckets))
	for i, chain := range S.buckets {
		if len(chain) > 0 {
			buckets[i] = append([]model.Pair[K, V](nil), chain...)
		}
	}

	return &Chains[K, V]{
		buckets:       buckets,
		hashAlgorithm: S.hashAlgorithm,
		size:          S.size,
	}
}

// maskHash - Masks a hash value into a bucket number, capacity must be a power of 2
func maskHash(hashValue uint64, capacity int) int {
	return int(hashValue & uint64(capacity-1))
}

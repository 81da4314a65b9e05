package chainmap

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterator - A forward cursor over the pairs of a HashMap, visiting buckets in order and each chain front to back.
// The zero position of an empty hash map is both Begin and End. For a non-empty hash map End is one past the last
// pair of the last non-empty chain, which is not necessarily the last bucket.
//
// An Iterator is invalidated by any structural change of the hash map it came from.
type Iterator[K comparable, V any] struct {
	hashMap *HashMap[K, V]
	bucket  int
	offset  int
}

// Begin - Returns an iterator at the first pair, equal to End if the hash map is empty
func (H *HashMap[K, V]) Begin() Iterator[K, V] {
	bucketNo, ok := H.chains.FirstNonEmpty(0)
	if !ok {
		return Iterator[K, V]{hashMap: H}
	}

	return Iterator[K, V]{hashMap: H, bucket: bucketNo}
}

// End - Returns the iterator positioned one past the last pair
func (H *HashMap[K, V]) End() Iterator[K, V] {
	bucketNo, ok := H.chains.LastNonEmpty()
	if !ok {
		return Iterator[K, V]{hashMap: H}
	}

	return Iterator[K, V]{hashMap: H, bucket: bucketNo, offset: H.chains.BucketLen(bucketNo)}
}

// Next - Advances the iterator to the next pair, or onto End if there is none, and returns it (pre-increment).
// Advancing an iterator that is already at End leaves it at End.
func (I *Iterator[K, V]) Next() *Iterator[K, V] {
	chains := I.hashMap.chains

	if I.offset+1 < chains.BucketLen(I.bucket) {
		I.offset++
		return I
	}

	if bucketNo, ok := chains.FirstNonEmpty(I.bucket + 1); ok {
		I.bucket = bucketNo
		I.offset = 0
		return I
	}

	*I = I.hashMap.End()

	return I
}

// PostNext - Advances the iterator and returns a copy of its position before advancing (post-increment)
func (I *Iterator[K, V]) PostNext() Iterator[K, V] {
	prev := *I
	I.Next()

	return prev
}

// Equal - Returns true if both iterators belong to the same hash map and are at the same position
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.hashMap == other.hashMap && I.bucket == other.bucket && I.offset == other.offset
}

// Pair - Returns the pair at the iterator.
// It returns an error of type InvalidCursor at End, for an iterator not obtained from a hash map, or for a stale
// position left behind by a structural change.
func (I Iterator[K, V]) Pair() (pair Pair[K, V], err error) {
	if I.hashMap == nil {
		err = errors.WithStack(InvalidCursor{})
		return
	}

	record := I.hashMap.chains.Record(I.bucket, I.offset)
	if record == nil {
		err = errors.WithStack(InvalidCursor{})
		return
	}

	pair = *record

	return
}

// Key - Returns the key at the iterator, see Pair for the error cases
func (I Iterator[K, V]) Key() (key K, err error) {
	pair, err := I.Pair()
	key = pair.Key
	return
}

// Value - Returns the value at the iterator, see Pair for the error cases
func (I Iterator[K, V]) Value() (value V, err error) {
	pair, err := I.Pair()
	value = pair.Value
	return
}

// All - Returns a sequence over all pairs in iteration order, for use with range.
// The hash map must not be structurally changed during the range, assigning through At is fine.
func (H *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		end := H.End()
		for it := H.Begin(); !it.Equal(end); it.Next() {
			pair, err := it.Pair()
			if err != nil {
				return
			}
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys - Returns a sequence over all keys in iteration order
func (H *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range H.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values - Returns a sequence over all values in iteration order
func (H *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range H.All() {
			if !yield(v) {
				return
			}
		}
	}
}

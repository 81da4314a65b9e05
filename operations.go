package chainmap

import (
	"fmt"

	"github.com/gostonefire/chainmap/internal/model"
	"github.com/pkg/errors"
)

// Insert - Adds the pair if the key is not already stored.
//   - key is the identifier of the pair
//   - value is the value to associate with key
//
// It returns true if the pair was added, false if key already existed in which case its value is left untouched.
func (H *HashMap[K, V]) Insert(key K, value V) bool {
	if _, _, found := H.chains.Find(key); found {
		return false
	}

	H.chains.Append(model.Pair[K, V]{Key: key, Value: value})
	H.grow()

	return true
}

// Erase - Removes the pair with matching key.
// It returns true if a pair was removed and false if key was not stored, the latter is not an error.
func (H *HashMap[K, V]) Erase(key K) bool {
	if !H.chains.Remove(key) {
		return false
	}

	H.shrink()

	return true
}

// At - Returns a pointer to the stored value of key, through which the value can be changed in place.
// The pointer is valid until the next structural change of the hash map.
//
// It returns:
//   - value is a pointer to the stored value, nil if not found
//   - err is of type KeyNotFound if key is not stored
func (H *HashMap[K, V]) At(key K) (value *V, err error) {
	bucketNo, offset, found := H.chains.Find(key)
	if !found {
		err = errors.WithStack(KeyNotFound{msg: fmt.Sprintf("key %v was not found", key)})
		return
	}

	value = &H.chains.Record(bucketNo, offset).Value

	return
}

// Get - Returns a copy of the stored value of key, or the zero value of V if key is not stored.
// Get never inserts, use Index for that.
func (H *HashMap[K, V]) Get(key K) (value V) {
	value, _ = H.Lookup(key)
	return
}

// Lookup - Returns a copy of the stored value of key and whether it was found
func (H *HashMap[K, V]) Lookup(key K) (value V, ok bool) {
	bucketNo, offset, found := H.chains.Find(key)
	if !found {
		return
	}

	value = H.chains.Record(bucketNo, offset).Value
	ok = true

	return
}

// Index - Returns a pointer to the stored value of key, first inserting the zero value of V if key is not stored.
// Inserting may resize the hash map, the returned pointer is taken after any resize and is valid until the next
// structural change.
func (H *HashMap[K, V]) Index(key K) *V {
	if _, _, found := H.chains.Find(key); !found {
		var zero V
		H.Insert(key, zero)
	}

	bucketNo, offset, _ := H.chains.Find(key)

	return &H.chains.Record(bucketNo, offset).Value
}

// Set - Assigns value to key, inserting the key if not stored
func (H *HashMap[K, V]) Set(key K, value V) {
	*H.Index(key) = value
}

// ContainsKey - Returns true if key is stored
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	_, _, found := H.chains.Find(key)
	return found
}

// BucketIndex - Returns which bucket the stored key is in given the current capacity
//
// It returns:
//   - bucketNo is the bucket number
//   - err is of type KeyNotFound if key is not stored
func (H *HashMap[K, V]) BucketIndex(key K) (bucketNo int, err error) {
	bucketNo, _, found := H.chains.Find(key)
	if !found {
		bucketNo = 0
		err = errors.WithStack(KeyNotFound{msg: fmt.Sprintf("key %v was not found", key)})
	}

	return
}

// BucketSize - Returns the length of the chain the stored key is in
//
// It returns:
//   - size is the number of pairs in the chain of key, key included
//   - err is of type KeyNotFound if key is not stored
func (H *HashMap[K, V]) BucketSize(key K) (size int, err error) {
	bucketNo, _, found := H.chains.Find(key)
	if !found {
		err = errors.WithStack(KeyNotFound{msg: fmt.Sprintf("key %v was not found", key)})
		return
	}

	size = H.chains.BucketLen(bucketNo)

	return
}

// Clear - Removes all pairs keeping the current capacity
func (H *HashMap[K, V]) Clear() {
	H.chains.Clear()
}

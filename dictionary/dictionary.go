// Package dictionary provides a string to string hash map with strict erase semantics and bulk updates.
package dictionary

import (
	"fmt"
	"iter"

	"github.com/gostonefire/chainmap"
	"github.com/pkg/errors"
)

// InvalidKey - Custom error to inform that a key given to Erase is not in the dictionary.
// It is a different error kind than chainmap.KeyNotFound.
type InvalidKey struct {
	msg string
}

// Error - Used to notify that the key is invalid
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "key was not found"
	}
	return E.msg
}

// Is - Matches any InvalidKey regardless of message
func (E InvalidKey) Is(target error) bool {
	_, ok := target.(InvalidKey)
	return ok
}

var _ chainmap.StrictEraser[string] = (*Dictionary)(nil)

// Dictionary - A chainmap.HashMap[string, string] whose Erase fails on a missing key.
// All other operations are those of the embedded hash map.
type Dictionary struct {
	*chainmap.HashMap[string, string]
}

// New - Returns a new empty dictionary, keys are hashed with FarmHash
func New(opts ...chainmap.Option) (dictionary *Dictionary, err error) {
	hm, err := chainmap.New[string, string](chainmap.FarmHash(), opts...)
	if err != nil {
		return
	}

	dictionary = &Dictionary{HashMap: hm}
	return
}

// NewFromSlices - Returns a new dictionary holding keys[i] -> values[i], later duplicates win.
// It fails with chainmap.LengthMismatch if the slices differ in length.
func NewFromSlices(keys, values []string, opts ...chainmap.Option) (dictionary *Dictionary, err error) {
	hm, err := chainmap.NewFromSlices[string, string](keys, values, chainmap.FarmHash(), opts...)
	if err != nil {
		return
	}

	dictionary = &Dictionary{HashMap: hm}
	return
}

// FromHashMap - Returns a new dictionary holding a deep copy of hashMap
func FromHashMap(hashMap *chainmap.HashMap[string, string]) *Dictionary {
	return &Dictionary{HashMap: hashMap.Clone()}
}

// Erase - Removes the pair with matching key.
//
// It returns:
//   - erased is true when the pair was removed
//   - err is of type InvalidKey if key is not in the dictionary
func (D *Dictionary) Erase(key string) (erased bool, err error) {
	if !D.HashMap.Erase(key) {
		err = errors.WithStack(InvalidKey{msg: fmt.Sprintf("key %q was not found", key)})
		return
	}

	erased = true
	return
}

// Update - Assigns every pair in order, a key occurring several times ends up with its last value.
// An empty slice leaves the dictionary unchanged.
func (D *Dictionary) Update(pairs []chainmap.Pair[string, string]) {
	for _, p := range pairs {
		D.Set(p.Key, p.Value)
	}
}

// UpdateSeq - Like Update but takes the pairs from a sequence, such as another dictionary's All.
// The sequence must not range over D itself since inserting invalidates the iteration.
func (D *Dictionary) UpdateSeq(pairs iter.Seq2[string, string]) {
	for k, v := range pairs {
		D.Set(k, v)
	}
}

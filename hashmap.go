// Package chainmap implements a generic hash map using separate chaining.
//
// Buckets are addressed with hash & (capacity - 1) where capacity is always a power of 2. The capacity doubles
// when the load factor exceeds 0.75 after an insert and halves, repeatedly if needed, when it drops below 0.25
// after an erase, never going below 1 bucket.
//
// A HashMap is not safe for concurrent use. Pointers returned by At and Index, as well as iterators, are only
// valid until the next structural change (insert of a new key, erase, clear or resize).
package chainmap

import (
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/hash"
	"github.com/gostonefire/chainmap/internal/model"
	"github.com/gostonefire/chainmap/internal/storage/separatechaining"
	"github.com/gostonefire/chainmap/internal/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Pair - A key value association as seen through iteration
type Pair[K comparable, V any] = model.Pair[K, V]

// PermissiveEraser - Erase capability that reports a missing key by returning false
type PermissiveEraser[K comparable] interface {
	Erase(key K) bool
}

// StrictEraser - Erase capability that reports a missing key as an error
type StrictEraser[K comparable] interface {
	Erase(key K) (bool, error)
}

var _ PermissiveEraser[int] = (*HashMap[int, int])(nil)

// HashMap - The main implementation struct
type HashMap[K comparable, V any] struct {
	chains *separatechaining.Chains[K, V]
	logger *zap.Logger
}

// New - Returns a new empty hash map with 16 buckets unless WithInitialCapacity says otherwise.
//   - hashAlgorithm is the hash primitive for the key type, if nil the internal default for K is used (integers and strings).
//   - opts are optional settings such as WithLogger
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is either of type NoHashAlgorithm, InvalidCapacity or nil if everything went ok
func New[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	s := newSettings(opts)

	if s.initialCapacity <= 0 {
		err = errors.WithStack(InvalidCapacity{})
		return
	}

	if hashAlgorithm == nil {
		var ok bool
		hashAlgorithm, ok = hash.Default[K]()
		if !ok {
			err = errors.WithStack(NoHashAlgorithm{})
			return
		}
	}

	chains, err := separatechaining.NewChains[K, V](utils.RoundUp2(s.initialCapacity), hashAlgorithm)
	if err != nil {
		err = errors.Wrap(err, "error while creating bucket store")
		return
	}

	hashMap = &HashMap[K, V]{
		chains: chains,
		logger: s.logger,
	}

	return
}

// NewFromSlices - Returns a new hash map holding keys[i] -> values[i] for every i.
// Pairs are assigned in order so a later duplicate key overwrites the value of an earlier one.
//   - keys and values must have the same length
//   - hashAlgorithm and opts are as for New
//
// It returns:
//   - hashMap is a pointer to a HashMap struct, nil on error
//   - err is either of type LengthMismatch, any error from New or nil if everything went ok
func NewFromSlices[K comparable, V any](keys []K, values []V, hashAlgorithm hashfunc.HashAlgorithm[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	if len(keys) != len(values) {
		err = errors.WithStack(LengthMismatch{})
		return
	}

	hm, err := New[K, V](hashAlgorithm, opts...)
	if err != nil {
		return
	}

	for i := range keys {
		hm.Set(keys[i], values[i])
	}

	hashMap = hm
	return
}

// Size - Returns the number of pairs stored
func (H *HashMap[K, V]) Size() int {
	return H.chains.Size()
}

// Capacity - Returns the number of buckets, always a power of 2
func (H *HashMap[K, V]) Capacity() int {
	return H.chains.Capacity()
}

// Empty - Returns true if no pairs are stored
func (H *HashMap[K, V]) Empty() bool {
	return H.chains.Size() == 0
}

// LoadFactor - Returns Size / Capacity
func (H *HashMap[K, V]) LoadFactor() float64 {
	return utils.LoadFactor(H.chains.Size(), H.chains.Capacity())
}

// Clone - Returns a deep copy with the same capacity and bucket layout. The copy shares no storage with H, values
// are copied by assignment so a V holding pointers still refers to the same pointees.
func (H *HashMap[K, V]) Clone() *HashMap[K, V] {
	return &HashMap[K, V]{
		chains: H.chains.Clone(),
		logger: H.logger,
	}
}

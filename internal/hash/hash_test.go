//go:build unit

package hash

import (
	"testing"

	"github.com/dgryski/go-farm"
	"github.com/stretchr/testify/assert"
	"github.com/twmb/murmur3"
)

type userID int

type label string

func TestIntegerHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("hashes integer keys to their own value", func(t *testing.T) {
		// Prepare
		h := NewIntegerHashAlgorithm[int]()

		// Execute
		h10 := h.HashFunc(10)
		h17 := h.HashFunc(17)

		// Check
		assert.Equal(t, uint64(10), h10, "10 hashes to itself")
		assert.Equal(t, uint64(17), h17, "17 hashes to itself")
		assert.Equal(t, uint64(10), h10&15, "10 lands in bucket 10 of 16")
		assert.Equal(t, uint64(1), h17&15, "17 lands in bucket 1 of 16")
	})

	t.Run("negative keys still mask into range", func(t *testing.T) {
		// Prepare
		h := NewIntegerHashAlgorithm[int8]()

		// Execute
		bucketNo := h.HashFunc(-1) & 15

		// Check
		assert.Equal(t, uint64(15), bucketNo, "two's complement masks to last bucket")
	})
}

func TestFarmHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("is deterministic and matches farm.Hash64", func(t *testing.T) {
		// Prepare
		h := NewFarmHashAlgorithm()

		// Execute
		first := h.HashFunc("Hey")
		second := h.HashFunc("Hey")

		// Check
		assert.Equal(t, first, second, "same key same hash")
		assert.Equal(t, farm.Hash64([]byte("Hey")), first, "uses farm hash")
		assert.NotEqual(t, first, h.HashFunc("Whats"), "different keys differ")
	})
}

func TestMurmur3HashAlgorithm_HashFunc(t *testing.T) {
	t.Run("is deterministic and matches murmur3.Sum64", func(t *testing.T) {
		// Prepare
		h := NewMurmur3HashAlgorithm()

		// Execute
		value := h.HashFunc("There")

		// Check
		assert.Equal(t, murmur3.Sum64([]byte("There")), value, "uses murmur3")
		assert.Equal(t, value, h.HashFunc("There"), "same key same hash")
	})
}

func TestDefault(t *testing.T) {
	t.Run("selects integer hash for predeclared integers", func(t *testing.T) {
		// Execute
		h, ok := Default[uint16]()

		// Check
		assert.True(t, ok, "has default")
		assert.Equal(t, uint64(300), h.HashFunc(300), "identity hash")
	})

	t.Run("selects farm hash for strings", func(t *testing.T) {
		// Execute
		h, ok := Default[string]()

		// Check
		assert.True(t, ok, "has default")
		assert.Equal(t, farm.Hash64([]byte("key")), h.HashFunc("key"), "farm hash")
	})

	t.Run("resolves named types by kind", func(t *testing.T) {
		// Execute
		hi, okInt := Default[userID]()
		hs, okStr := Default[label]()

		// Check
		assert.True(t, okInt, "named int has default")
		assert.True(t, okStr, "named string has default")
		assert.Equal(t, uint64(42), hi.HashFunc(userID(42)), "identity hash for named int")
		assert.Equal(t, farm.Hash64([]byte("x")), hs.HashFunc(label("x")), "farm hash for named string")
	})

	t.Run("no default for composite keys", func(t *testing.T) {
		// Execute
		h, ok := Default[struct{ a, b int }]()

		// Check
		assert.False(t, ok, "no default for struct keys")
		assert.Nil(t, h, "no algorithm returned")
	})
}

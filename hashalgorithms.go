package chainmap

import (
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/hash"
	"golang.org/x/exp/constraints"
)

// IntegerHash - Returns the hash algorithm used for integer keys when none is given, the key is its own hash
func IntegerHash[K constraints.Integer]() hashfunc.HashAlgorithm[K] {
	return hash.NewIntegerHashAlgorithm[K]()
}

// FarmHash - Returns the hash algorithm used for string keys when none is given
func FarmHash() hashfunc.HashAlgorithm[string] {
	return hash.NewFarmHashAlgorithm()
}

// Murmur3Hash - Returns a MurmurHash3 based hash algorithm for string keys
func Murmur3Hash() hashfunc.HashAlgorithm[string] {
	return hash.NewMurmur3HashAlgorithm()
}

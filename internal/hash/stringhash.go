package hash

import (
	"github.com/dgryski/go-farm"
	"github.com/twmb/murmur3"
)

// FarmHashAlgorithm - The internally used hash algorithm for string keys. It is implemented using farm.Hash64,
// which is fast on short keys and has well distributed low bits, the latter being what the bucket mask uses.
type FarmHashAlgorithm struct{}

// NewFarmHashAlgorithm - Returns a pointer to a new FarmHashAlgorithm instance
func NewFarmHashAlgorithm() *FarmHashAlgorithm {
	return &FarmHashAlgorithm{}
}

// HashFunc - Given key it generates a 64-bit FarmHash value
func (F *FarmHashAlgorithm) HashFunc(key string) uint64 {
	return farm.Hash64([]byte(key))
}

// Murmur3HashAlgorithm - Alternative hash algorithm for string keys implemented using murmur3.Sum64 (x64 variant,
// seed 0). Use it when bucket placement has to match other systems hashing with MurmurHash3.
type Murmur3HashAlgorithm struct{}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
func NewMurmur3HashAlgorithm() *Murmur3HashAlgorithm {
	return &Murmur3HashAlgorithm{}
}

// HashFunc - Given key it generates a 64-bit MurmurHash3 value
func (M *Murmur3HashAlgorithm) HashFunc(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

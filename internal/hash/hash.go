package hash

import (
	"reflect"

	"github.com/gostonefire/chainmap/hashfunc"
)

// Default - Returns the internal hash algorithm for key type K, or ok false if there is none.
// All predeclared integer types get an IntegerHashAlgorithm and string gets a FarmHashAlgorithm. Named types
// whose underlying type is an integer or a string are hashed the same way through reflection, which is slower
// but keeps the placement identical to that of the underlying type.
func Default[K any]() (hashAlgorithm hashfunc.HashAlgorithm[K], ok bool) {
	var zero K
	var ha any

	switch any(zero).(type) {
	case int:
		ha = NewIntegerHashAlgorithm[int]()
	case int8:
		ha = NewIntegerHashAlgorithm[int8]()
	case int16:
		ha = NewIntegerHashAlgorithm[int16]()
	case int32:
		ha = NewIntegerHashAlgorithm[int32]()
	case int64:
		ha = NewIntegerHashAlgorithm[int64]()
	case uint:
		ha = NewIntegerHashAlgorithm[uint]()
	case uint8:
		ha = NewIntegerHashAlgorithm[uint8]()
	case uint16:
		ha = NewIntegerHashAlgorithm[uint16]()
	case uint32:
		ha = NewIntegerHashAlgorithm[uint32]()
	case uint64:
		ha = NewIntegerHashAlgorithm[uint64]()
	case uintptr:
		ha = NewIntegerHashAlgorithm[uintptr]()
	case string:
		ha = NewFarmHashAlgorithm()
	default:
		return byKind[K]()
	}

	hashAlgorithm, ok = ha.(hashfunc.HashAlgorithm[K])
	return
}

// byKind - Resolves named key types by their underlying kind
func byKind[K any]() (hashAlgorithm hashfunc.HashAlgorithm[K], ok bool) {
	t := reflect.TypeOf((*K)(nil)).Elem()

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		hashAlgorithm = hashfunc.HashAlgorithmFunc[K](func(key K) uint64 {
			return uint64(reflect.ValueOf(key).Int())
		})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		hashAlgorithm = hashfunc.HashAlgorithmFunc[K](func(key K) uint64 {
			return reflect.ValueOf(key).Uint()
		})
	case reflect.String:
		farmHash := NewFarmHashAlgorithm()
		hashAlgorithm = hashfunc.HashAlgorithmFunc[K](func(key K) uint64 {
			return farmHash.HashFunc(reflect.ValueOf(key).String())
		})
	default:
		return
	}

	ok = true
	return
}

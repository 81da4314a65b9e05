//go:build unit

package chainmap

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	t.Run("visits every pair once", func(t *testing.T) {
		// Prepare
		hm, err := NewFromSlices([]int{1, 2, 3, 4}, []string{"a", "b", "c", "d"}, nil)
		assert.NoError(t, err, "creates hash map")

		// Execute
		count, sum := 0, 0
		end := hm.End()
		for it := hm.Begin(); !it.Equal(end); it.Next() {
			key, keyErr := it.Key()
			assert.NoError(t, keyErr, "dereference inside range")
			count++
			sum += key
		}

		// Check
		assert.False(t, hm.Begin().Equal(hm.End()), "begin differs from end")
		assert.Equal(t, 4, count, "four pairs")
		assert.Equal(t, 10, sum, "sum of keys")
	})

	t.Run("pre and post increment", func(t *testing.T) {
		// Prepare
		hm, err := NewFromSlices([]int{1, 2, 3, 4}, []string{"a", "b", "c", "d"}, nil)
		assert.NoError(t, err, "creates hash map")

		// Execute and Check
		it1 := hm.Begin()
		it2 := hm.Begin()
		it2.Next()
		assert.False(t, it1.Equal(it2), "advanced differs")
		it1.PostNext()
		assert.True(t, it1.Equal(it2), "post increment advanced")

		it1 = hm.Begin()
		advanced := it1.Next()
		assert.True(t, advanced.Equal(it1), "pre increment returns advanced iterator")
		assert.True(t, advanced.Equal(it2), "advanced to second pair")
		prev := it1.PostNext()
		assert.False(t, prev.Equal(it1), "post increment returns position before advancing")

		third := hm.Begin()
		third.Next().Next()
		v1, _ := it1.Value()
		v3, _ := third.Value()
		assert.Equal(t, v3, v1, "both at third pair")
		assert.Equal(t, "c", v1, "keys 1..4 sit in buckets 1..4")
	})

	t.Run("empty hash map begin equals end", func(t *testing.T) {
		// Prepare
		hm := newIntMap[int](t)

		// Execute
		begin := hm.Begin()
		end := hm.End()
		_, err := begin.Pair()

		// Check
		assert.True(t, begin.Equal(end), "begin equals end")
		assert.ErrorIs(t, err, InvalidCursor{}, "nothing to dereference")
		assert.True(t, begin.Next().Equal(end), "advancing empty stays at end")
	})

	t.Run("end is after the last non-empty chain, not the last bucket", func(t *testing.T) {
		// Prepare
		hm := newIntMap[string](t)
		hm.Insert(2, "two")
		hm.Insert(18, "eighteen")
		hm.Insert(5, "five")

		// Execute
		end := hm.End()
		it := hm.Begin()
		it.Next()
		it.Next()
		last, lastErr := it.Pair()
		it.Next()
		_, endErr := it.Pair()

		// Check
		assert.Equal(t, Iterator[int, string]{hashMap: hm, bucket: 5, offset: 1}, end, "end is one past bucket 5")
		assert.NoError(t, lastErr, "last pair reachable")
		assert.Equal(t, Pair[int, string]{Key: 5, Value: "five"}, last, "last pair in bucket 5")
		assert.True(t, it.Equal(end), "advance settles on end")
		assert.ErrorIs(t, endErr, InvalidCursor{}, "end can not be dereferenced")
		assert.True(t, it.Next().Equal(end), "advancing end stays at end")
	})

	t.Run("skips empty buckets and walks chains in order", func(t *testing.T) {
		// Prepare
		hm := newIntMap[int](t)
		for _, k := range []int{9, 1, 17, 14} {
			hm.Insert(k, k*10)
		}

		// Execute
		var keys []int
		for k := range hm.Keys() {
			keys = append(keys, k)
		}

		// Check
		if diff := cmp.Diff([]int{1, 17, 9, 14}, keys); diff != "" {
			t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("stale iterator fails after shrink", func(t *testing.T) {
		// Prepare
		hm := newIntMap[int](t)
		hm.Insert(15, 15)
		it := hm.Begin()

		// Execute
		hm.Erase(15)
		_, err := it.Pair()

		// Check
		assert.ErrorIs(t, err, InvalidCursor{}, "position past new capacity")
	})

	t.Run("zero iterator fails", func(t *testing.T) {
		var it Iterator[int, int]
		_, err := it.Pair()
		assert.ErrorIs(t, err, InvalidCursor{}, "no hash map")
	})

	t.Run("iterators of different hash maps differ", func(t *testing.T) {
		a := newIntMap[int](t)
		b := newIntMap[int](t)
		assert.False(t, a.Begin().Equal(b.Begin()), "different owner")
	})
}

func TestHashMap_All(t *testing.T) {
	t.Run("range yields every pair after resizes", func(t *testing.T) {
		// Prepare
		hm := newIntMap[int](t)
		want := map[int]int{}
		for i := 0; i < 200; i++ {
			hm.Insert(i*7, i)
			want[i*7] = i
		}
		for i := 0; i < 200; i += 3 {
			hm.Erase(i * 7)
			delete(want, i*7)
		}

		// Execute
		got := map[int]int{}
		for k, v := range hm.All() {
			_, dup := got[k]
			assert.False(t, dup, "key %d visited once", k)
			got[k] = v
		}

		// Check
		assert.Equal(t, hm.Size(), len(got), "visits size pairs")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pairs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("break stops early", func(t *testing.T) {
		hm, err := NewFromSlices([]int{1, 2, 3}, []int{1, 2, 3}, nil)
		assert.NoError(t, err, "creates hash map")
		n := 0
		for range hm.All() {
			n++
			break
		}
		assert.Equal(t, 1, n, "one pair before break")
	})

	t.Run("values follows key order", func(t *testing.T) {
		hm, err := NewFromSlices([]int{3, 1, 2}, []string{"c", "a", "b"}, nil)
		assert.NoError(t, err, "creates hash map")
		var values []string
		for v := range hm.Values() {
			values = append(values, v)
		}
		sort.Strings(values)
		assert.Equal(t, []string{"a", "b", "c"}, values, "all values")
	})
}

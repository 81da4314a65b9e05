package chainmap

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of pairs stored
//   - Capacity is the number of buckets
//   - LoadFactor is Records / Capacity
//   - UsedBuckets is the number of buckets with a non-empty chain
//   - LongestChain is the length of the longest chain
//   - BucketDistribution is the chain length of each bucket, nil unless asked for
type HashMapStat struct {
	Records            int
	Capacity           int
	LoadFactor         float64
	UsedBuckets        int
	LongestChain       int
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with the number of pairs per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	capacity := H.chains.Capacity()

	hashMapStat = HashMapStat{
		Records:    H.chains.Size(),
		Capacity:   capacity,
		LoadFactor: H.LoadFactor(),
	}
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, capacity)
	}

	for i := 0; i < capacity; i++ {
		n := H.chains.BucketLen(i)
		if n > 0 {
			hashMapStat.UsedBuckets++
		}
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	return
}

package chainmap

import (
	"github.com/gostonefire/chainmap/internal/conf"
	"github.com/gostonefire/chainmap/internal/utils"
	"go.uber.org/zap"
)

// grow - Doubles the capacity if the load factor exceeds the upper threshold, called after each insert
func (H *HashMap[K, V]) grow() {
	capacity := H.chains.Capacity()
	if utils.LoadFactor(H.chains.Size(), capacity) <= conf.UpperLoadFactor {
		return
	}

	H.rehash(capacity * conf.GrowFactor)
}

// shrink - Halves the capacity while the load factor is below the lower threshold and the capacity is above the
// floor, called after each erase. The target is found first so the pairs are only moved once.
func (H *HashMap[K, V]) shrink() {
	size := H.chains.Size()
	capacity := H.chains.Capacity()
	target := capacity
	for utils.LoadFactor(size, target) < conf.LowerLoadFactor && target > conf.MinCapacity {
		target /= conf.GrowFactor
	}

	if target == capacity {
		return
	}

	H.rehash(target)
}

// rehash - Moves all pairs into newCapacity buckets
func (H *HashMap[K, V]) rehash(newCapacity int) {
	from := H.chains.Capacity()

	// newCapacity is derived from a power of 2 by doubling or halving and kept >= 1, Rehash can not fail on it
	if err := H.chains.Rehash(newCapacity); err != nil {
		H.logger.Error("rehash rejected", zap.Int("from", from), zap.Int("to", newCapacity), zap.Error(err))
		return
	}

	H.logger.Debug("rehashed",
		zap.Int("from", from),
		zap.Int("to", newCapacity),
		zap.Int("size", H.chains.Size()),
	)
}

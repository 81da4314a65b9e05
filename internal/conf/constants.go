package conf

// InitialCapacity - Number of buckets in a newly created hash map unless another is requested
const InitialCapacity int = 16

// MinCapacity - The floor for shrinking, a hash map never has fewer buckets than this
const MinCapacity int = 1

// UpperLoadFactor - Load factor (size / capacity) that, when exceeded after an insert, doubles the capacity
const UpperLoadFactor float64 = 0.75

// LowerLoadFactor - Load factor that, when undercut after an erase, halves the capacity until cleared or at MinCapacity
const LowerLoadFactor float64 = 0.25

// GrowFactor - Factor applied to the capacity when growing, and divisor when shrinking
const GrowFactor int = 2

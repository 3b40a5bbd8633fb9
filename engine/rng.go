package engine

import (
	"hash/fnv"
	"math/rand"
)

// === SortKey ===

// SortKey uniquely identifies a reproducible sort run. Two sorts with the
// same SortKey, the same input, and the same policy MUST make identical
// sampling decisions and therefore take identical step sequences.
type SortKey int64

// NewSortKey creates a SortKey from a seed value.
func NewSortKey(seed int64) SortKey {
	return SortKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemSampling is the RNG subsystem used by the sampler for its
	// uniform draws during sample selection.
	SubsystemSampling = "sampling"

	// SubsystemWorkload is the RNG subsystem callers use for input
	// generation, so that generated data and sampling decisions stay
	// isolated under one master seed.
	SubsystemWorkload = "workload"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived as masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. The engine is single-threaded and owns
// exclusive access for the lifetime of a sort.
type PartitionedRNG struct {
	key        SortKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SortKey.
func NewPartitionedRNG(key SortKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SortKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SortKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

package cmd

import (
	"fmt"
	"math/rand"
)

// Input distributions matching the shapes the engine's fast paths and full
// sampling rounds are sensitive to.
const (
	DistUniform   = "uniform"    // independent uniform draws in [1, maxValue]
	DistSorted    = "sorted"     // already ascending
	DistReversed  = "reversed"   // strictly descending
	DistAllEqual  = "all-equal"  // one repeated value
	DistFewUnique = "few-unique" // uniform draws over a tiny value set
)

// ValidDistributions is the set of recognized --dist values.
var ValidDistributions = map[string]bool{
	DistUniform:   true,
	DistSorted:    true,
	DistReversed:  true,
	DistAllEqual:  true,
	DistFewUnique: true,
}

// GenerateWorkload produces size ints with the given distribution. The rng
// comes from the engine's workload subsystem so that data generation and
// sampling decisions stay isolated under one master seed.
func GenerateWorkload(dist string, size, maxValue int, rng *rand.Rand) ([]int, error) {
	buf := make([]int, size)
	switch dist {
	case DistUniform:
		for i := range buf {
			buf[i] = 1 + rng.Intn(maxValue)
		}
	case DistSorted:
		for i := range buf {
			buf[i] = i + 1
		}
	case DistReversed:
		for i := range buf {
			buf[i] = size - i
		}
	case DistAllEqual:
		for i := range buf {
			buf[i] = maxValue
		}
	case DistFewUnique:
		// four distinct values regardless of maxValue
		for i := range buf {
			buf[i] = 1 + rng.Intn(4)
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
	return buf, nil
}

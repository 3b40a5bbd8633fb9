// Tracks per-sort counters: steps taken, transitions per state, fast paths
// hit, and stack pressure.

package engine

import (
	"fmt"
	"time"
)

// Metrics aggregates statistics about one sort run for final reporting.
// Useful for verifying which paths an input exercised (fast paths vs. full
// sampling rounds) and for debugging behavior over time.
type Metrics struct {
	Steps int // total state transitions performed

	SortedFastPath   int // ranges popped because already sorted
	ReversedFastPath int // ranges popped after an in-place reverse
	InsertionSorts   int // ranges finished by the base-case sorter
	SampleRounds     int // sample-select transitions
	SplitterRounds   int // sample-sorted transitions
	PartitionRounds  int // partition transitions
	DegenerateRounds int // partitions with zero splitters (duplicate-dominated)
	BucketsEmitted   int // bucket tasks pushed by partitioning

	MaxStackDepth int // peak number of pending tasks
}

// NewMetrics returns a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// observeDepth records the stack depth after a push.
func (m *Metrics) observeDepth(depth int) {
	if depth > m.MaxStackDepth {
		m.MaxStackDepth = depth
	}
}

// Print displays aggregated metrics at the end of a sort.
func (m *Metrics) Print(n int, elapsed time.Duration) {
	fmt.Println("=== Sort Metrics ===")
	fmt.Printf("Elements             : %d\n", n)
	fmt.Printf("Steps                : %d\n", m.Steps)
	fmt.Printf("Sorted fast paths    : %d\n", m.SortedFastPath)
	fmt.Printf("Reversed fast paths  : %d\n", m.ReversedFastPath)
	fmt.Printf("Insertion sorts      : %d\n", m.InsertionSorts)
	fmt.Printf("Sample rounds        : %d\n", m.SampleRounds)
	fmt.Printf("Splitter rounds      : %d\n", m.SplitterRounds)
	fmt.Printf("Partition rounds     : %d\n", m.PartitionRounds)
	fmt.Printf("Degenerate rounds    : %d\n", m.DegenerateRounds)
	fmt.Printf("Buckets emitted      : %d\n", m.BucketsEmitted)
	fmt.Printf("Peak stack depth     : %d\n", m.MaxStackDepth)
	fmt.Printf("Elapsed              : %v\n", elapsed)
}

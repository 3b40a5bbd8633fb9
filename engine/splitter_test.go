package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSplitters_DistinctSample_StrictlyIncreasing(t *testing.T) {
	// GIVEN a sorted sample of 7 distinct values, step 2, 4 buckets
	buf := []int{1, 2, 3, 4, 5, 6, 7}

	// WHEN splitters are built (visits indices 1, 3, 5)
	splitters := buildSplitters(buf, 0, 7, 2, 4, intLess)

	// THEN at most numBuckets-1 strictly increasing values result
	assert.Equal(t, []int{2, 4, 6}, splitters)
}

func TestBuildSplitters_CappedAtNumBucketsMinusOne(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	splitters := buildSplitters(buf, 0, 9, 1, 4, intLess)

	assert.Len(t, splitters, 3)
	for i := 1; i < len(splitters); i++ {
		assert.True(t, splitters[i-1] < splitters[i], "splitters must be strictly increasing")
	}
}

func TestBuildSplitters_DuplicatesSkipped(t *testing.T) {
	// GIVEN a sorted sample dominated by the value 5
	buf := []int{5, 5, 5, 5, 7, 7, 9}

	// WHEN splitters are built with step 1
	splitters := buildSplitters(buf, 0, 7, 1, 8, intLess)

	// THEN 5 (equal to the sample minimum) never appears, duplicates of 7
	// collapse to one splitter, and fewer than planned is fine
	assert.Equal(t, []int{7, 9}, splitters)
}

func TestBuildSplitters_AllEqualSample_YieldsNone(t *testing.T) {
	// GIVEN an all-equal sample
	buf := []int{4, 4, 4, 4, 4, 4}

	// WHEN splitters are built
	splitters := buildSplitters(buf, 0, 6, 1, 8, intLess)

	// THEN no splitter is usable; the partitioner falls back to the
	// base-case path instead of re-splitting
	assert.Empty(t, splitters)
}

func TestBuildSplitters_SubrangeOffset(t *testing.T) {
	// sample prefix lives at offset 3 in the shared buffer
	buf := []int{0, 0, 0, 10, 20, 30, 40, 99}

	splitters := buildSplitters(buf, 3, 4, 1, 4, intLess)

	assert.Equal(t, []int{20, 30, 40}, splitters)
}

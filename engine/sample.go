package engine

import "math/rand"

// selectSample moves numSamples uniformly random elements (without
// replacement) to the front of buf[lo:hi] via a partial Fisher-Yates
// shuffle: O(1) extra space, O(numSamples) draws. The rest of the range is
// left in an unspecified permutation; partitioning restores no order either,
// so nothing downstream depends on it.
func selectSample[T any](buf []T, lo, hi, numSamples int, rng *rand.Rand) {
	remaining := hi - lo
	cursor := lo
	for i := 0; i < numSamples; i++ {
		remaining--
		idx := rng.Intn(remaining + 1)
		buf[cursor], buf[cursor+idx] = buf[cursor+idx], buf[cursor]
		cursor++
	}
}

package engine

// buildSplitters derives a strictly increasing splitter sequence from the
// sorted sample prefix buf[lo : lo+numSamples], visiting every step-th
// element starting at index step-1. A candidate is skipped unless strictly
// greater than the previous splitter, so duplicate-heavy samples yield fewer
// splitters than planned; the partitioner tolerates that.
//
// The comparison baseline starts at the sample minimum buf[lo]: a splitter
// equal to the minimum would produce an empty less-than bucket, and with an
// all-equal sample the result is no splitters at all, which the partitioner
// resolves through the base-case path instead of resampling forever.
func buildSplitters[T any](buf []T, lo, numSamples, step, numBuckets int, less func(a, b T) bool) []T {
	splitters := make([]T, 0, numBuckets-1)
	last := buf[lo]
	for i := step - 1; i < numSamples && len(splitters) < numBuckets-1; i += step {
		v := buf[lo+i]
		if less(last, v) {
			splitters = append(splitters, v)
			last = v
		}
	}
	return splitters
}

package engine

// partitionLess rearranges buf[lo:hi] so every element strictly less than
// pivot precedes every other element, returning the partition point. Not
// stable: equal elements may change relative order.
func partitionLess[T any](buf []T, lo, hi int, pivot T, less func(a, b T) bool) int {
	p := lo
	for i := lo; i < hi; i++ {
		if less(buf[i], pivot) {
			buf[p], buf[i] = buf[i], buf[p]
			p++
		}
	}
	return p
}

// Fast-path classification of a range as empty, already sorted, or strictly
// reverse-sorted, before any sampling machinery runs.

package engine

// sortedAscending reports whether buf[lo:hi] is non-decreasing under less.
func sortedAscending[T any](buf []T, lo, hi int, less func(a, b T) bool) bool {
	for i := lo; i+1 < hi; i++ {
		if less(buf[i+1], buf[i]) {
			return false
		}
	}
	return true
}

// strictlyDescending reports whether buf[lo:hi] has no ascending adjacent
// pair, i.e. reversing it yields a sorted range.
func strictlyDescending[T any](buf []T, lo, hi int, less func(a, b T) bool) bool {
	for i := lo; i+1 < hi; i++ {
		if less(buf[i], buf[i+1]) {
			return false
		}
	}
	return true
}

// reverseRange reverses buf[lo:hi] in place.
func reverseRange[T any](buf []T, lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

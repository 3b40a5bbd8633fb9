package engine

// insertionSort sorts buf[lo:hi] in place with a guarded insertion sort.
// An element smaller than the current front shifts the whole prefix down by
// one and takes the front slot; otherwise the backward scan needs no bounds
// check because the front element is a sentinel. The shift condition is
// strict less, so equal elements keep their relative order.
func insertionSort[T any](buf []T, lo, hi int, less func(a, b T) bool) {
	for i := lo + 1; i < hi; i++ {
		val := buf[i]
		if less(val, buf[lo]) {
			copy(buf[lo+1:i+1], buf[lo:i])
			buf[lo] = val
		} else {
			j := i
			for less(val, buf[j-1]) {
				buf[j] = buf[j-1]
				j--
			}
			buf[j] = val
		}
	}
}

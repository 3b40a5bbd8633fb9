package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestInsertionSort_PiDigits(t *testing.T) {
	// GIVEN the size-8 scrambled digits scenario
	buf := []int{3, 1, 4, 1, 5, 9, 2, 6}

	// WHEN insertion sorted
	insertionSort(buf, 0, len(buf), intLess)

	// THEN the exact expected order results
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, buf)
}

func TestInsertionSort_SubrangeOnly(t *testing.T) {
	// GIVEN a buffer where only [2,6) should be touched
	buf := []int{9, 9, 4, 3, 2, 1, 0, 0}

	insertionSort(buf, 2, 6, intLess)

	assert.Equal(t, []int{9, 9, 1, 2, 3, 4, 0, 0}, buf)
}

func TestInsertionSort_EmptyAndSingle(t *testing.T) {
	buf := []int{7}
	insertionSort(buf, 0, 0, intLess)
	insertionSort(buf, 0, 1, intLess)
	assert.Equal(t, []int{7}, buf)
}

func TestInsertionSort_NewFrontShiftsWholePrefix(t *testing.T) {
	// the guarded front-placement path: last element is the new minimum
	buf := []int{5, 6, 7, 8, 1}
	insertionSort(buf, 0, len(buf), intLess)
	assert.Equal(t, []int{1, 5, 6, 7, 8}, buf)
}

func TestInsertionSort_AllEqual(t *testing.T) {
	buf := []int{4, 4, 4, 4, 4}
	insertionSort(buf, 0, len(buf), intLess)
	assert.Equal(t, []int{4, 4, 4, 4, 4}, buf)
}

func TestInsertionSort_RandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		buf := make([]int, 64)
		for i := range buf {
			buf[i] = rng.Intn(50)
		}
		want := append([]int(nil), buf...)
		referenceSort(want)

		insertionSort(buf, 0, len(buf), intLess)

		assert.Equal(t, want, buf)
	}
}

// referenceSort is a deliberately simple selection sort used as a test
// oracle, so the tests do not lean on the code under test.
func referenceSort(buf []int) {
	for i := 0; i < len(buf); i++ {
		minIdx := i
		for j := i + 1; j < len(buf); j++ {
			if buf[j] < buf[minIdx] {
				minIdx = j
			}
		}
		buf[i], buf[minIdx] = buf[minIdx], buf[i]
	}
}

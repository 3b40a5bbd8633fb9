package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplesort/samplesort/engine"
)

func workloadRNG(seed int64) *engine.PartitionedRNG {
	return engine.NewPartitionedRNG(engine.NewSortKey(seed))
}

func TestGenerateWorkload_Uniform_BoundsAndSize(t *testing.T) {
	rngs := workloadRNG(42)
	buf, err := GenerateWorkload(DistUniform, 300, 100, rngs.ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)

	assert.Len(t, buf, 300)
	for i, v := range buf {
		if v < 1 || v > 100 {
			t.Fatalf("buf[%d] = %d outside [1,100]", i, v)
		}
	}
}

func TestGenerateWorkload_SortedAndReversed(t *testing.T) {
	rngs := workloadRNG(1)
	sorted, err := GenerateWorkload(DistSorted, 5, 100, rngs.ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)

	reversed, err := GenerateWorkload(DistReversed, 5, 100, rngs.ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, reversed)
}

func TestGenerateWorkload_AllEqual(t *testing.T) {
	rngs := workloadRNG(1)
	buf, err := GenerateWorkload(DistAllEqual, 50, 7, rngs.ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)
	for _, v := range buf {
		assert.Equal(t, 7, v)
	}
}

func TestGenerateWorkload_FewUnique_AtMostFourValues(t *testing.T) {
	rngs := workloadRNG(5)
	buf, err := GenerateWorkload(DistFewUnique, 1000, 100, rngs.ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, v := range buf {
		seen[v] = true
	}
	assert.LessOrEqual(t, len(seen), 4)
}

func TestGenerateWorkload_SameSeed_SameData(t *testing.T) {
	a, err := GenerateWorkload(DistUniform, 200, 50, workloadRNG(9).ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)
	b, err := GenerateWorkload(DistUniform, 200, 50, workloadRNG(9).ForSubsystem(engine.SubsystemWorkload))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateWorkload_UnknownDist_ReturnsError(t *testing.T) {
	_, err := GenerateWorkload("zipf", 10, 10, workloadRNG(1).ForSubsystem(engine.SubsystemWorkload))
	assert.Error(t, err)
}

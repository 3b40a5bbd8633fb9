package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTraceLevel(t *testing.T) {
	assert.True(t, IsValidTraceLevel("none"))
	assert.True(t, IsValidTraceLevel("transitions"))
	assert.True(t, IsValidTraceLevel(""))
	assert.False(t, IsValidTraceLevel("verbose"))
}

func TestSortTrace_RecordTransition_Appends(t *testing.T) {
	// GIVEN a trace at the transitions level
	st := NewSortTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN two records are appended
	st.RecordTransition(TransitionRecord{Step: 1, From: "simple-cases", To: "base-case", Lo: 0, Hi: 8, StackDepth: 1})
	st.RecordTransition(TransitionRecord{Step: 2, From: "base-case", To: "done", Lo: 0, Hi: 8, StackDepth: 0})

	// THEN they are kept in order
	assert.Len(t, st.Transitions, 2)
	assert.Equal(t, 1, st.Transitions[0].Step)
	assert.Equal(t, "done", st.Transitions[1].To)
}

func TestSortTrace_Enabled(t *testing.T) {
	var nilSink *SortTrace
	assert.False(t, nilSink.Enabled())
	assert.False(t, NewSortTrace(TraceConfig{Level: TraceLevelNone}).Enabled())
	assert.True(t, NewSortTrace(TraceConfig{Level: TraceLevelTransitions}).Enabled())
}

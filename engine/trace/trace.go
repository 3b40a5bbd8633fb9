package trace

// TraceLevel controls the verbosity of step tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransitions captures every state transition the driver
	// performs, one record per Step().
	TraceLevelTransitions TraceLevel = "transitions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelTransitions: true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized
// trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SortTrace collects transition records during a sort. It is injected into
// the engine as an optional sink; a nil sink costs nothing.
type SortTrace struct {
	Config      TraceConfig
	Transitions []TransitionRecord
}

// NewSortTrace creates a SortTrace ready for recording.
func NewSortTrace(config TraceConfig) *SortTrace {
	return &SortTrace{
		Config:      config,
		Transitions: make([]TransitionRecord, 0),
	}
}

// Enabled reports whether transition records should be captured.
func (st *SortTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelTransitions
}

// RecordTransition appends a transition record.
func (st *SortTrace) RecordTransition(record TransitionRecord) {
	st.Transitions = append(st.Transitions, record)
}

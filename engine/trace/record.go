// Package trace provides step-trace recording for sort-run analysis.
// This package has no dependencies on engine/ — it stores pure data types.
package trace

// TransitionRecord captures a single driver state transition.
type TransitionRecord struct {
	Step       int    // 1-based step counter
	From       string // state the top task was dispatched in
	To         string // resulting state, or "done" when the task popped
	Lo, Hi     int    // the task's range at dispatch time
	StackDepth int    // pending tasks after the transition
}

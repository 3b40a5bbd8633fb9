// Implements the Task, the unit of pending sorting work, and the LIFO
// TaskStack that drives the state machine.

package engine

import "fmt"

// TaskState identifies the next transition a task is waiting for.
type TaskState string

const (
	// StateSimpleCases checks for empty, sorted, and reverse-sorted ranges.
	StateSimpleCases TaskState = "simple-cases"
	// StateBaseCase finishes small ranges with insertion sort.
	StateBaseCase TaskState = "base-case"
	// StateSampleSelect computes the sampling plan and selects the sample.
	StateSampleSelect TaskState = "sample-select"
	// StateSampleSorted resumes a parent task after its sample child has
	// been fully sorted; builds the splitters.
	StateSampleSorted TaskState = "sample-sorted"
	// StatePartition partitions the range by its splitters into buckets.
	StatePartition TaskState = "partition"

	// StateDone is not a stack state. It appears only in transition
	// records and logs to mark a task popping off the stack.
	StateDone TaskState = "done"
)

// Task describes a pending subrange of the shared buffer. Lo and Hi delimit
// a half-open view [Lo, Hi); the task never owns the elements. Splitters and
// the plan fields (NumSamples, Step, NumBuckets) are meaningful only in the
// states that populate them.
type Task[T any] struct {
	Lo, Hi int
	State  TaskState

	// Sampling plan, valid once StateSampleSelect has computed it.
	NumSamples int
	Step       int
	NumBuckets int

	// Strictly increasing splitter values, at most NumBuckets-1 of them.
	// Populated by StateSampleSorted, consumed by StatePartition.
	Splitters []T
}

// Len returns the number of elements in the task's range.
func (t *Task[T]) Len() int {
	return t.Hi - t.Lo
}

func (t *Task[T]) String() string {
	return fmt.Sprintf("{[%d,%d) %s}", t.Lo, t.Hi, t.State)
}

// TaskStack is the LIFO collection of pending tasks. The union of all live
// task ranges plus already-popped prefixes always equals the original input
// range; live ranges never overlap, except that a sample child's range is a
// prefix of its suspended parent's range until the child resolves.
type TaskStack[T any] struct {
	tasks []*Task[T]
}

// Push places a task on top of the stack.
func (s *TaskStack[T]) Push(t *Task[T]) {
	if t == nil {
		panic("Push: task must not be nil")
	}
	s.tasks = append(s.tasks, t)
}

// Pop removes and returns the top task. Panics on an empty stack; the
// driver checks IsDone before dispatching.
func (s *TaskStack[T]) Pop() *Task[T] {
	if len(s.tasks) == 0 {
		panic("Pop: empty task stack")
	}
	t := s.tasks[len(s.tasks)-1]
	s.tasks = s.tasks[:len(s.tasks)-1]
	return t
}

// Peek returns the top task without removing it, or nil if the stack is
// empty.
func (s *TaskStack[T]) Peek() *Task[T] {
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[len(s.tasks)-1]
}

// Len returns the number of pending tasks.
func (s *TaskStack[T]) Len() int {
	return len(s.tasks)
}

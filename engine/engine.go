// engine/engine.go
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samplesort/samplesort/engine/trace"
)

// ErrInvalidRange reports a construction-time range violation (lo > hi or a
// view outside the buffer). The sort fails fast instead of corrupting the
// buffer.
var ErrInvalidRange = errors.New("invalid range")

// Options carries the injected configuration for one sort.
type Options struct {
	// Policy tunes base-case threshold, bucket count, and oversampling.
	// Zero-valued fields fall back to DefaultPolicy.
	Policy Policy
	// Seed makes sampling decisions reproducible. 0 means a fresh
	// entropy-derived seed per sort.
	Seed int64
	// Trace is an optional transition sink. Nil disables tracing.
	Trace *trace.SortTrace
}

// Engine is the core object that holds the shared buffer, the comparator,
// and the task stack, and drives the sort one state transition at a time.
// It assumes exclusive, unsynchronized access to the buffer for the
// lifetime of the sort.
type Engine[T any] struct {
	buf  []T
	less func(a, b T) bool
	// lo, hi delimit the view of buf this engine sorts
	lo, hi int

	stack  TaskStack[T]
	policy Policy
	// rngs owns all randomness for this sort; rng is the cached sampling
	// subsystem stream
	rngs *PartitionedRNG
	rng  *rand.Rand

	Metrics *Metrics

	traceSink *trace.SortTrace
	stepCount int
}

// New constructs an engine over the whole buffer with one task covering it.
func New[T any](buf []T, less func(a, b T) bool, opts Options) (*Engine[T], error) {
	return NewRange(buf, 0, len(buf), less, opts)
}

// NewRange constructs an engine over the view buf[lo:hi]. Returns
// ErrInvalidRange when the view is malformed.
func NewRange[T any](buf []T, lo, hi int, less func(a, b T) bool, opts Options) (*Engine[T], error) {
	if lo < 0 || hi < lo || hi > len(buf) {
		return nil, fmt.Errorf("%w: [%d,%d) over buffer of length %d", ErrInvalidRange, lo, hi, len(buf))
	}
	if less == nil {
		return nil, errors.New("comparator must not be nil")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rngs := NewPartitionedRNG(NewSortKey(seed))

	e := &Engine[T]{
		buf:       buf,
		less:      less,
		lo:        lo,
		hi:        hi,
		policy:    opts.Policy.withDefaults(),
		rngs:      rngs,
		rng:       rngs.ForSubsystem(SubsystemSampling),
		Metrics:   NewMetrics(),
		traceSink: opts.Trace,
	}
	e.stack.Push(&Task[T]{Lo: lo, Hi: hi, State: StateSimpleCases})
	e.Metrics.observeDepth(1)
	return e, nil
}

// NewOrdered constructs an engine using the natural "less than" ordering.
func NewOrdered[T cmp.Ordered](buf []T, opts Options) (*Engine[T], error) {
	return New(buf, cmp.Less[T], opts)
}

// Sort sorts buf in place with the default policy and an entropy seed.
func Sort[T cmp.Ordered](buf []T) {
	SortFunc(buf, cmp.Less[T])
}

// SortFunc sorts buf in place under less with the default policy and an
// entropy seed.
func SortFunc[T any](buf []T, less func(a, b T) bool) {
	e, err := New(buf, less, Options{})
	if err != nil {
		// unreachable: the whole-slice view is always a valid range
		panic(err)
	}
	e.Run()
}

// IsDone reports whether the task stack is empty, i.e. the view is sorted.
func (e *Engine[T]) IsDone() bool {
	return e.stack.Len() == 0
}

// Steps returns the number of state transitions performed so far.
func (e *Engine[T]) Steps() int {
	return e.stepCount
}

// StackDepth returns the number of pending tasks.
func (e *Engine[T]) StackDepth() int {
	return e.stack.Len()
}

// Key returns the seed identity of this sort, for reproducing a run.
func (e *Engine[T]) Key() SortKey {
	return e.rngs.Key()
}

// TaskView is a read-only snapshot of a pending task, for inspection
// between steps.
type TaskView struct {
	Lo, Hi int
	State  TaskState
}

// Top returns a snapshot of the task the next Step will dispatch, and false
// when the sort is done.
func (e *Engine[T]) Top() (TaskView, bool) {
	t := e.stack.Peek()
	if t == nil {
		return TaskView{}, false
	}
	return TaskView{Lo: t.Lo, Hi: t.Hi, State: t.State}, true
}

// Run steps until the task stack is empty.
func (e *Engine[T]) Run() {
	logrus.Infof("sorting %d elements (seed=%d, base threshold=%d)", e.hi-e.lo, e.rngs.Key(), e.policy.BaseThreshold())
	for !e.IsDone() {
		e.Step()
	}
	logrus.Infof("sort finished after %d steps", e.stepCount)
}

// Step performs exactly one state transition for the task at the top of the
// stack. No-op when the sort is already done. A panicking comparator
// propagates unmodified, leaving the buffer in whatever state it was in at
// the failing comparison.
func (e *Engine[T]) Step() {
	if e.IsDone() {
		return
	}
	t := e.stack.Peek()
	from, lo, hi := t.State, t.Lo, t.Hi
	e.stepCount++
	e.Metrics.Steps++

	var to TaskState
	switch from {
	case StateSimpleCases:
		to = e.stepSimpleCases(t)
	case StateBaseCase:
		to = e.stepBaseCase(t)
	case StateSampleSelect:
		to = e.stepSampleSelect(t)
	case StateSampleSorted:
		to = e.stepSampleSorted(t)
	case StatePartition:
		to = e.stepPartition(t)
	default:
		panic(fmt.Sprintf("Step: unknown task state %q", from))
	}

	logrus.Tracef("[step %07d] %s [%d,%d) -> %s", e.stepCount, from, lo, hi, to)
	if e.traceSink.Enabled() {
		e.traceSink.RecordTransition(trace.TransitionRecord{
			Step:       e.stepCount,
			From:       string(from),
			To:         string(to),
			Lo:         lo,
			Hi:         hi,
			StackDepth: e.stack.Len(),
		})
	}
}

// stepSimpleCases resolves empty, sorted, and reverse-sorted ranges without
// sampling. Anything else falls through to the base case.
func (e *Engine[T]) stepSimpleCases(t *Task[T]) TaskState {
	lo, hi := t.Lo, t.Hi
	if lo == hi {
		e.stack.Pop()
		return StateDone
	}

	// If the last element is not smaller than the first, the range cannot
	// be reverse sorted; test for fully sorted instead.
	if !e.less(e.buf[hi-1], e.buf[lo]) {
		if sortedAscending(e.buf, lo, hi, e.less) {
			e.Metrics.SortedFastPath++
			e.stack.Pop()
			return StateDone
		}
	} else if strictlyDescending(e.buf, lo, hi, e.less) {
		reverseRange(e.buf, lo, hi)
		e.Metrics.ReversedFastPath++
		e.stack.Pop()
		return StateDone
	}

	t.State = StateBaseCase
	return StateBaseCase
}

// stepBaseCase finishes small ranges with insertion sort; larger ranges
// move on to sampling.
func (e *Engine[T]) stepBaseCase(t *Task[T]) TaskState {
	if t.Len() <= e.policy.BaseThreshold() {
		insertionSort(e.buf, t.Lo, t.Hi, e.less)
		e.Metrics.InsertionSorts++
		e.stack.Pop()
		return StateDone
	}
	t.State = StateSampleSelect
	return StateSampleSelect
}

// stepSampleSelect computes the sampling plan, moves a uniform sample to the
// front of the range, and rewrites the task into a continuation: the task
// itself becomes the sample-sorted resume point, and a child task covering
// just the sample prefix goes on top. LIFO ordering guarantees the child
// (and all of its descendants) fully resolves before this task is reachable
// again.
func (e *Engine[T]) stepSampleSelect(t *Task[T]) TaskState {
	n := t.Len()
	t.NumBuckets, t.Step, t.NumSamples = e.policy.plan(n)
	selectSample(e.buf, t.Lo, t.Hi, t.NumSamples, e.rng)
	e.Metrics.SampleRounds++

	t.State = StateSampleSorted
	e.stack.Push(&Task[T]{Lo: t.Lo, Hi: t.Lo + t.NumSamples, State: StateSimpleCases})
	e.Metrics.observeDepth(e.stack.Len())
	return StateSampleSorted
}

// stepSampleSorted runs once the sample prefix is sorted: build the
// splitters and move on to partitioning.
func (e *Engine[T]) stepSampleSorted(t *Task[T]) TaskState {
	t.Splitters = buildSplitters(e.buf, t.Lo, t.NumSamples, t.Step, t.NumBuckets, e.less)
	e.Metrics.SplitterRounds++
	t.State = StatePartition
	return StatePartition
}

// stepPartition partitions the range by each splitter in ascending order and
// pushes every bucket larger than one element as a fresh task. With zero
// splitters (duplicate-dominated sample) no split can make progress, so the
// range is finished through the base-case path instead of being re-pushed.
func (e *Engine[T]) stepPartition(t *Task[T]) TaskState {
	e.stack.Pop()
	e.Metrics.PartitionRounds++

	if len(t.Splitters) == 0 {
		insertionSort(e.buf, t.Lo, t.Hi, e.less)
		e.Metrics.InsertionSorts++
		e.Metrics.DegenerateRounds++
		return StateDone
	}

	// buckets collects [lo, hi) pairs
	buckets := make([][2]int, 0, len(t.Splitters)+1)
	cursor := t.Lo
	for i := range t.Splitters {
		p := partitionLess(e.buf, cursor, t.Hi, t.Splitters[i], e.less)
		if p-cursor > 1 {
			buckets = append(buckets, [2]int{cursor, p})
		}
		cursor = p
	}
	// everything at or above the last splitter is the final bucket
	if t.Hi-cursor > 1 {
		buckets = append(buckets, [2]int{cursor, t.Hi})
	}

	// push right-to-left so the leftmost bucket is processed first
	for i := len(buckets) - 1; i >= 0; i-- {
		e.stack.Push(&Task[T]{Lo: buckets[i][0], Hi: buckets[i][1], State: StateSimpleCases})
		e.Metrics.BucketsEmitted++
	}
	e.Metrics.observeDepth(e.stack.Len())
	return StateDone
}

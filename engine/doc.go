// Package engine provides the core in-place samplesort state machine.
//
// # Reading Guide
//
// Start with these three files to understand the sorting kernel:
//   - task.go: Task lifecycle (simple-cases → base-case → sample-select →
//     sample-sorted → partition) and the LIFO work stack
//   - engine.go: the driver that dispatches one state transition per Step()
//   - policy.go: the size policy deciding base-case threshold, bucket count,
//     and oversampling
//
// # Architecture
//
// The engine sorts a caller-owned buffer in place. Instead of native
// recursion it keeps an explicit stack of pending tasks, each a half-open
// view [lo, hi) into the single shared buffer plus enough context to resume
// exactly where it left off. A task leaves the stack only once its range is
// fully sorted; recursion into a sample prefix is expressed by rewriting the
// parent task to a continuation state and pushing the child above it.
//
// Leaf components live in their own files and are pure functions over
// (buffer, range, comparator):
//   - simplecases.go: sorted / reverse-sorted fast-path detection
//   - basecase.go: guarded insertion sort for small ranges
//   - sample.go: in-place uniform sample selection and the sampling plan
//   - splitter.go: strictly increasing splitter derivation from a sorted sample
//   - partition.go: sequential two-way partitioning into buckets
//
// Randomness is owned by the engine through a deterministically partitioned
// RNG (rng.go); passing the same seed reproduces the exact step sequence.
// Optional step tracing lives in the dependency-free engine/trace package
// and is injected as a sink via Options.
package engine

package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samplesort/samplesort/engine"
	"github.com/samplesort/samplesort/engine/trace"
)

var (
	// CLI flags for the sort run
	seed       int64  // Seed for workload generation and sampling decisions
	size       int    // Number of elements to sort
	dist       string // Input distribution (see workload.go)
	maxValue   int    // Upper bound for generated values
	logLevel   string // Log verbosity level
	policyPath string // Optional YAML size-policy bundle
	traceLevel string // Trace level (none, transitions)
	traceOut   string // Path for the JSON trace dump
	stepLimit  int    // Abort after this many steps (0 = unlimited)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "samplesort",
	Short: "In-place samplesort engine driven by an explicit task stack",
}

// runCmd generates a workload, sorts it, verifies the result, and prints
// metrics. It is an external caller of the engine: everything here is
// harness, not sort.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sort a generated workload and report metrics",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if size < 0 {
			logrus.Fatalf("Invalid size %d", size)
		}
		if !ValidDistributions[dist] {
			logrus.Fatalf("Unknown distribution %q", dist)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q", traceLevel)
		}

		// Assemble the size policy, overlaying a YAML bundle if given
		policy := engine.DefaultPolicy()
		if policyPath != "" {
			bundle, err := engine.LoadPolicyBundle(policyPath)
			if err != nil {
				logrus.Fatalf("unable to read policy config: %v", err)
			}
			if err := bundle.Validate(); err != nil {
				logrus.Fatalf("invalid policy config: %v", err)
			}
			policy = bundle.Apply(policy)
		}

		// Generate the workload from the same master seed the engine uses,
		// through an isolated RNG subsystem
		rngs := engine.NewPartitionedRNG(engine.NewSortKey(seed))
		buf, err := GenerateWorkload(dist, size, maxValue, rngs.ForSubsystem(engine.SubsystemWorkload))
		if err != nil {
			logrus.Fatalf("unable to generate workload: %v", err)
		}
		before := countValues(buf)

		var sink *trace.SortTrace
		if traceLevel == string(trace.TraceLevelTransitions) {
			sink = trace.NewSortTrace(trace.TraceConfig{Level: trace.TraceLevelTransitions})
		}

		logrus.Infof("Starting sort: size=%d dist=%s seed=%d threshold=%d",
			size, dist, seed, policy.BaseThreshold())

		startTime := time.Now()

		e, err := engine.NewOrdered(buf, engine.Options{
			Policy: policy,
			Seed:   seed,
			Trace:  sink,
		})
		if err != nil {
			logrus.Fatalf("unable to construct engine: %v", err)
		}

		if stepLimit > 0 {
			for i := 0; i < stepLimit && !e.IsDone(); i++ {
				e.Step()
			}
			if !e.IsDone() {
				logrus.Fatalf("step limit %d reached with %d tasks pending", stepLimit, e.StackDepth())
			}
		} else {
			e.Run()
		}
		elapsed := time.Since(startTime)

		// Verify: non-decreasing order and unchanged multiset of values
		if !isSorted(buf) {
			logrus.Fatalf("result is NOT sorted")
		}
		if !sameCounts(before, countValues(buf)) {
			logrus.Fatalf("result is NOT a permutation of the input")
		}

		e.Metrics.Print(size, elapsed)

		if sink != nil && traceOut != "" {
			if err := writeTrace(sink, traceOut); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
			logrus.Infof("wrote %d transition records to %s", len(sink.Transitions), traceOut)
		}

		logrus.Info("Sort complete.")
	},
}

// isSorted reports whether buf is non-decreasing.
func isSorted(buf []int) bool {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i+1] < buf[i] {
			return false
		}
	}
	return true
}

// countValues builds a value -> multiplicity map for permutation checking.
func countValues(buf []int) map[int]int {
	counts := make(map[int]int, len(buf))
	for _, v := range buf {
		counts[v]++
	}
	return counts
}

// sameCounts compares two multiplicity maps.
func sameCounts(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for v, n := range a {
		if b[v] != n {
			return false
		}
	}
	return true
}

// writeTrace dumps the collected transition records as JSON.
func writeTrace(sink *trace.SortTrace, path string) error {
	data, err := json.MarshalIndent(sink.Transitions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation and sampling decisions")
	runCmd.Flags().IntVar(&size, "size", 300, "Number of elements to sort")
	runCmd.Flags().StringVar(&dist, "dist", DistUniform, "Input distribution (uniform, sorted, reversed, all-equal, few-unique)")
	runCmd.Flags().IntVar(&maxValue, "max-value", 100, "Upper bound for generated values")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&policyPath, "policy", "", "Path to a YAML size-policy bundle")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, transitions)")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write the transition trace as JSON to this path")
	runCmd.Flags().IntVar(&stepLimit, "step-limit", 0, "Abort after this many steps (0 = unlimited)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

package engine

import (
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy groups the size-policy parameters that shape the sort: when to fall
// back to insertion sort, how many buckets to split into, and how much to
// oversample when picking splitters. The zero value means "use defaults";
// withDefaults fills unset fields at construction time.
type Policy struct {
	BaseCaseSize        int // granularity unit of the base case (default 16)
	BaseCaseMultiplier  int // base threshold = multiplier * size (default 16)
	MaxLogBuckets       int // cap on the bucket-count exponent (default 8, i.e. <=256 buckets)
	OversamplingPercent int // oversampling factor = percent/100 * log2(n), min 1 (default 20)
}

// DefaultPolicy returns the tuning used when the caller injects nothing.
func DefaultPolicy() Policy {
	return Policy{
		BaseCaseSize:        16,
		BaseCaseMultiplier:  16,
		MaxLogBuckets:       8,
		OversamplingPercent: 20,
	}
}

// withDefaults fills zero-valued fields from DefaultPolicy so a partially
// specified policy (e.g. from a YAML bundle) still behaves.
func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.BaseCaseSize <= 0 {
		p.BaseCaseSize = def.BaseCaseSize
	}
	if p.BaseCaseMultiplier <= 0 {
		p.BaseCaseMultiplier = def.BaseCaseMultiplier
	}
	if p.MaxLogBuckets <= 0 {
		p.MaxLogBuckets = def.MaxLogBuckets
	}
	if p.OversamplingPercent <= 0 {
		p.OversamplingPercent = def.OversamplingPercent
	}
	return p
}

// BaseThreshold is the largest range length handled by insertion sort.
func (p Policy) BaseThreshold() int {
	return p.BaseCaseMultiplier * p.BaseCaseSize
}

// LogBuckets maps a range length to the bucket-count exponent:
// floor(log2(n / BaseCaseSize)) clamped to [1, MaxLogBuckets].
func (p Policy) LogBuckets(n int) int {
	if n < 2*p.BaseCaseSize {
		return 1
	}
	lb := bits.Len(uint(n/p.BaseCaseSize)) - 1
	if lb > p.MaxLogBuckets {
		lb = p.MaxLogBuckets
	}
	return lb
}

// OversamplingFactor maps a range length to the sampling stride:
// OversamplingPercent/100 * log2(n), never below 1.
func (p Policy) OversamplingFactor(n int) int {
	if n < 2 {
		return 1
	}
	log2n := bits.Len(uint(n)) - 1
	f := p.OversamplingPercent * log2n / 100
	if f < 1 {
		f = 1
	}
	return f
}

// plan computes the sampling plan for a range of length n. It is evaluated
// exactly once per sample-select entry; the results are stored on the task
// before any element moves, because later transitions depend on them.
func (p Policy) plan(n int) (numBuckets, step, numSamples int) {
	numBuckets = 1 << p.LogBuckets(n)
	step = p.OversamplingFactor(n)
	numSamples = min(step*numBuckets-1, n/2)
	return numBuckets, step, numSamples
}

// PolicyBundle holds size-policy configuration loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" — they do not override the
// in-code policy when applied.
type PolicyBundle struct {
	BaseCaseSize        *int `yaml:"base_case_size"`
	BaseCaseMultiplier  *int `yaml:"base_case_multiplier"`
	MaxLogBuckets       *int `yaml:"max_log_buckets"`
	OversamplingPercent *int `yaml:"oversampling_percent"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// Validate rejects non-positive values for any field that was set.
func (b *PolicyBundle) Validate() error {
	check := func(name string, v *int) error {
		if v != nil && *v <= 0 {
			return fmt.Errorf("policy field %s must be positive, got %d", name, *v)
		}
		return nil
	}
	if err := check("base_case_size", b.BaseCaseSize); err != nil {
		return err
	}
	if err := check("base_case_multiplier", b.BaseCaseMultiplier); err != nil {
		return err
	}
	if err := check("max_log_buckets", b.MaxLogBuckets); err != nil {
		return err
	}
	return check("oversampling_percent", b.OversamplingPercent)
}

// Apply overlays the bundle's set fields onto p and returns the result.
func (b *PolicyBundle) Apply(p Policy) Policy {
	if b.BaseCaseSize != nil {
		p.BaseCaseSize = *b.BaseCaseSize
	}
	if b.BaseCaseMultiplier != nil {
		p.BaseCaseMultiplier = *b.BaseCaseMultiplier
	}
	if b.MaxLogBuckets != nil {
		p.MaxLogBuckets = *b.MaxLogBuckets
	}
	if b.OversamplingPercent != nil {
		p.OversamplingPercent = *b.OversamplingPercent
	}
	return p
}

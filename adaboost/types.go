package adaboost

import "github.com/tanigawalab/hicaboost/kmer"

// Config configures an AdaBoost training run.
//
//	K               - k-mer length; determines P and feature dimensionality.
//	IterationNum    - T, number of boosting rounds.
//	Threshold       - real cutoff for label binarization (consumed upstream
//	                  by feature.BuildLabels; kept here for config parity,
//	                  Learn itself does not read it).
//	ExecThreadNum   - W, worker count for the weak-learner evaluator; W>=1.
//	ForbiddenMotifs - ordered list of (code,length) pairs; nil means
//	                  DefaultConfig's kmer.DefaultMotifs().
//	OutputFile      - path for the final model log; "" means stderr.
type Config struct {
	K               int
	IterationNum    int
	Threshold       float64
	ExecThreadNum   int
	ForbiddenMotifs []kmer.Motif
	OutputFile      string
}

// DefaultConfig returns a Config with the reference pipeline's defaults:
// single-threaded, the GATC forbidden motif, and stderr output.
func DefaultConfig() Config {
	return Config{
		ExecThreadNum:   1,
		ForbiddenMotifs: kmer.DefaultMotifs(),
	}
}

// ConfigOption customizes a Config returned by NewConfig.
type ConfigOption func(*Config)

// WithForbiddenMotifs overrides the forbidden-motif list.
func WithForbiddenMotifs(motifs []kmer.Motif) ConfigOption {
	return func(c *Config) { c.ForbiddenMotifs = motifs }
}

// WithOutputFile sets the path the final model log is written to.
func WithOutputFile(path string) ConfigOption {
	return func(c *Config) { c.OutputFile = path }
}

// WithExecThreadNum overrides the worker count.
func WithExecThreadNum(w int) ConfigOption {
	return func(c *Config) { c.ExecThreadNum = w }
}

// NewConfig builds a Config for k-mer length k, T rounds, and label
// threshold, applying opts in order over DefaultConfig's baseline.
func NewConfig(k, iterationNum int, threshold float64, opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	cfg.K = k
	cfg.IterationNum = iterationNum
	cfg.Threshold = threshold
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate checks that Config holds a valid combination: K, IterationNum,
// and ExecThreadNum must all be in range. It does not check the CKPI;
// Learn validates that separately since the CKPI is supplied
// independently.
func (c *Config) Validate() error {
	if c.K <= 0 {
		return ErrInvalidConfig
	}
	if c.IterationNum == 0 {
		return ErrInvalidConfig
	}
	if c.ExecThreadNum < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// Model is the trained ensemble: for round t, axis[t] indexes the CKPI
// candidate chosen, sign[t] is its polarity, and beta[t] is its
// down-weighting factor.
type Model struct {
	T    int
	Axis []uint32
	Sign []uint8
	Beta []float64
}

package property

import (
	"runtime"

	"go.uber.org/zap"
)

const (
	// DefaultChunkSize is the number of trials per parallel work unit.
	DefaultChunkSize = 256

	// DefaultMaxExamples caps the counterexamples kept per property.
	DefaultMaxExamples = 3

	// DefaultRateBound is the violation-rate bound used when the config has
	// no "violation_rate_bound" threshold (rule of three).
	DefaultRateBound = "3/N"
)

// Threshold names read from the configuration.
const (
	ThresholdTightnessSlack = "tightness_slack"
	ThresholdRateBound      = "violation_rate_bound"
)

const (
	panicNilLogger   = "property: WithLogger(nil)"
	panicWorkers     = "property: WithWorkers requires n ≥ 1"
	panicChunkSize   = "property: WithChunkSize requires n ≥ 1"
	panicTrials      = "property: WithTrials requires n ≥ 0"
	panicMaxExamples = "property: WithMaxExamples requires n ≥ 0"
)

// Option configures a Runner. Constructors panic on nonsensical values.
type Option func(*Runner)

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(r *Runner) { r.log = l }
}

// WithWorkers bounds the number of concurrent chunks (default GOMAXPROCS).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(r *Runner) { r.workers = n }
}

// WithChunkSize sets trials per work unit. Changing it changes which stream
// each trial draws from, and therefore the report.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSize)
	}

	return func(r *Runner) { r.chunk = n }
}

// WithTrials overrides the configured trial count; 0 keeps the config.
func WithTrials(n int) Option {
	if n < 0 {
		panic(panicTrials)
	}

	return func(r *Runner) { r.trials = n }
}

// WithMaxExamples caps stored counterexamples per property.
func WithMaxExamples(n int) Option {
	if n < 0 {
		panic(panicMaxExamples)
	}

	return func(r *Runner) { r.maxExamples = n }
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }

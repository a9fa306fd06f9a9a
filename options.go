package seggo

import (
	"log/slog"

	"github.com/hupe1980/seggo/pool"
)

// Algorithm selects the segmentation optimizer. It is a closed set,
// resolved once at the Segment dispatcher; the engines never branch on
// algorithm names.
type Algorithm int

const (
	// AlgorithmExact runs the dynamic-programming search and returns
	// the globally optimal segmentation at O(N²) oracle calls.
	AlgorithmExact Algorithm = iota

	// AlgorithmHierarchical runs the divide-and-merge approximation
	// at roughly O(N log N) oracle calls.
	AlgorithmHierarchical
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmExact:
		return "exact"
	case AlgorithmHierarchical:
		return "hierarchical"
	default:
		return "unknown"
	}
}

type options struct {
	algorithm      Algorithm
	maxSegments    int
	maxSegmentsSet bool
	pool           pool.Pool
	parallel       bool
	logger         *Logger
	metrics        MetricsCollector
}

// Option configures a segmentation call.
type Option func(*options)

// WithAlgorithm selects the optimizer. Default: AlgorithmExact.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithMaxSegments caps the number of segments in the result. Must be
// in [1, N]. Default: the number of columns.
func WithMaxSegments(k int) Option {
	return func(o *options) {
		o.maxSegments = k
		o.maxSegmentsSet = true
	}
}

// WithPool supplies the worker pool used for parallel oracle
// evaluation. The pool stays owned by the caller: it is never created,
// resized, or closed by seggo and may be shared across calls. Without
// a pool all evaluation runs sequentially.
func WithPool(p pool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithParallel toggles dispatching oracle calls through the configured
// pool. Default: true. It has no effect without a pool.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		algorithm: AlgorithmExact,
		parallel:  true,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

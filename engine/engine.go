package engine

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/hupe1980/seggo/pool"
	"gonum.org/v1/gonum/mat"
)

// Config configures an Engine.
type Config struct {
	// Pool is the worker pool used for parallel oracle evaluation.
	// When nil, all evaluation runs sequentially.
	Pool pool.Pool

	// Parallel enables dispatching oracle calls through Pool. It has
	// no effect when Pool is nil.
	Parallel bool

	// Logger receives debug-level progress events. When nil, logging
	// is disabled.
	Logger *slog.Logger
}

// Engine runs segmentation optimizations. An Engine is cheap to
// construct, holds no per-call state, and is safe for concurrent use;
// each call owns its own likelihood cache.
type Engine struct {
	pool     pool.Pool
	parallel bool
	logger   *slog.Logger

	evaluations atomic.Int64
	cacheHits   atomic.Int64
}

// New creates an Engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		pool:     cfg.Pool,
		parallel: cfg.Parallel,
		logger:   logger,
	}
}

// Stats is a snapshot of cumulative engine counters.
type Stats struct {
	// Evaluations is the number of oracle calls made.
	Evaluations int64

	// CacheHits is the number of segment scores served from the
	// per-call likelihood cache instead of the oracle.
	CacheHits int64
}

// Stats returns cumulative counters across all calls on this Engine.
func (e *Engine) Stats() Stats {
	return Stats{
		Evaluations: e.evaluations.Load(),
		CacheHits:   e.cacheHits.Load(),
	}
}

// validate checks the common engine preconditions and returns the
// number of columns.
func validate(data mat.Matrix, maxSegments int) (int, error) {
	_, n := data.Dims()
	if n == 0 {
		return 0, ErrEmptyData
	}
	if maxSegments < 1 || maxSegments > n {
		return 0, &InvalidMaxSegmentsError{MaxSegments: maxSegments, N: n}
	}
	return n, nil
}

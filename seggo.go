package seggo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/seggo/engine"
	"github.com/hupe1980/seggo/model"
	"github.com/hupe1980/seggo/penalty"
	"gonum.org/v1/gonum/mat"
)

// Segment partitions the columns of data into contiguous segments
// maximizing the summed oracle likelihood, using the configured
// algorithm (AlgorithmExact by default).
//
// data is read-only for the duration of the call and never mutated.
// The oracle must be a pure function of its argument; with a worker
// pool configured it is called from multiple goroutines.
func Segment(ctx context.Context, data mat.Matrix, oracle model.Oracle, optFns ...Option) (*model.Result, error) {
	o := applyOptions(optFns)
	return run(ctx, data, oracle, o)
}

// ExactSegment is Segment with the algorithm fixed to AlgorithmExact.
func ExactSegment(ctx context.Context, data mat.Matrix, oracle model.Oracle, optFns ...Option) (*model.Result, error) {
	o := applyOptions(optFns)
	o.algorithm = AlgorithmExact
	return run(ctx, data, oracle, o)
}

// HierarchicalSegment is Segment with the algorithm fixed to
// AlgorithmHierarchical.
func HierarchicalSegment(ctx context.Context, data mat.Matrix, oracle model.Oracle, optFns ...Option) (*model.Result, error) {
	o := applyOptions(optFns)
	o.algorithm = AlgorithmHierarchical
	return run(ctx, data, oracle, o)
}

func run(ctx context.Context, data mat.Matrix, oracle model.Oracle, o options) (*model.Result, error) {
	start := time.Now()

	_, n := data.Dims()
	maxSegments := o.maxSegments
	if !o.maxSegmentsSet {
		maxSegments = n
	}

	eng := engine.New(engine.Config{
		Pool:     o.pool,
		Parallel: o.parallel,
		Logger:   o.logger.Logger,
	})

	var (
		sg  model.Segmentation
		err error
	)
	switch o.algorithm {
	case AlgorithmExact:
		sg, err = eng.Exact(ctx, data, oracle, maxSegments)
	case AlgorithmHierarchical:
		sg, err = eng.Hierarchical(ctx, data, oracle, maxSegments)
	default:
		err = &ErrConfiguration{Reason: fmt.Sprintf("unknown algorithm %d", int(o.algorithm))}
	}

	st := eng.Stats()
	o.metrics.RecordEvaluations(st.Evaluations)
	o.metrics.RecordCacheHits(st.CacheHits)
	o.metrics.RecordSegmentation(o.algorithm, n, time.Since(start), err)
	o.logger.LogSegment(ctx, o.algorithm, n, len(sg), err)

	if err != nil {
		return nil, translateError(err)
	}
	return assembleResult(sg), nil
}

// AutoPenalize wraps oracle with an automatically estimated length
// penalty; see the penalty package for the estimation details. The
// returned oracle satisfies the same contract as the input and can be
// passed unchanged to Segment.
func AutoPenalize(data mat.Matrix, oracle model.Oracle, optFns ...penalty.Option) (model.Oracle, error) {
	penalized, err := penalty.Auto(data, oracle, optFns...)
	if err != nil {
		return nil, translateError(err)
	}
	return penalized, nil
}

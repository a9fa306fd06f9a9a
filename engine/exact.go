package engine

import (
	"context"
	"math"

	"github.com/hupe1980/seggo/model"
	"gonum.org/v1/gonum/mat"
)

// Exact computes the globally optimal segmentation of data into at
// most maxSegments contiguous segments, maximizing the summed oracle
// likelihood.
//
// The search runs the standard partitioning recurrence: with LL(i, j)
// the oracle value for columns [i, j],
//
//	best[1][j] = LL(1, j)
//	best[k][j] = max over i of best[k-1][i] + LL(i+1, j)
//
// and the answer is the best over k in [1, maxSegments] of best[k][N],
// preferring the lowest k on exact ties. Every LL(i, j) is evaluated
// once and memoized; the O(N²) oracle calls dominate the runtime.
// Columns are processed in increasing order, with the per-column
// candidate evaluations fanned out through the worker pool.
func (e *Engine) Exact(ctx context.Context, data mat.Matrix, oracle model.Oracle, maxSegments int) (model.Segmentation, error) {
	n, err := validate(data, maxSegments)
	if err != nil {
		return nil, err
	}

	cache := newLLCache(n)

	// best[k][j] and arg[k][j] are indexed by segment count k in
	// [1, maxSegments] and 0-based end column j. arg holds the end
	// column of the (k-1)-segment prefix chosen at (k, j), or -1.
	best := make([][]float64, maxSegments+1)
	arg := make([][]int, maxSegments+1)
	for k := 1; k <= maxSegments; k++ {
		best[k] = make([]float64, n)
		arg[k] = make([]int, n)
	}

	for j := 0; j < n; j++ {
		segs := make([]model.Segment, 0, j+1)
		for i := 0; i <= j; i++ {
			segs = append(segs, model.Segment{Start: i + 1, End: j + 1})
		}
		// vals[i] is LL over 0-based columns [i, j].
		vals, err := e.scoreSegments(ctx, data, oracle, cache, segs)
		if err != nil {
			return nil, err
		}

		best[1][j] = vals[0]
		arg[1][j] = -1
		for k := 2; k <= maxSegments; k++ {
			best[k][j] = math.Inf(-1)
			arg[k][j] = -1
			// A prefix of k-1 segments needs at least k-1 columns.
			for i := k - 2; i <= j-1; i++ {
				cand := best[k-1][i] + vals[i+1]
				if cand > best[k][j] {
					best[k][j] = cand
					arg[k][j] = i
				}
			}
		}
	}

	// Argmax over k, lowest k winning ties so exact ties prefer the
	// simpler model.
	bestK, bestVal := 1, best[1][n-1]
	for k := 2; k <= maxSegments; k++ {
		if best[k][n-1] > bestVal {
			bestK, bestVal = k, best[k][n-1]
		}
	}

	segmentation := make(model.Segmentation, bestK)
	j := n - 1
	for k := bestK; k >= 1; k-- {
		start := 0
		if k > 1 {
			start = arg[k][j] + 1
		}
		segmentation[k-1] = model.Segment{Start: start + 1, End: j + 1}
		j = start - 1
	}

	e.logger.DebugContext(ctx, "exact segmentation completed",
		"n", n,
		"max_segments", maxSegments,
		"segments", bestK,
		"likelihood", bestVal,
	)

	return segmentation, nil
}

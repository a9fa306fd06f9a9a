// Package seggo partitions an ordered multivariate numeric sequence
// into contiguous segments that jointly maximize a caller-supplied
// likelihood function.
//
// The input is a gonum matrix whose columns are ordered positions
// (e.g. time steps) and whose rows are parallel observation channels.
// The likelihood oracle scores one segment's data; the optimizers
// search for the partition with the highest summed score.
//
// # Quick Start
//
//	data := mat.NewDense(1, 6, []float64{1, 1, 1, 10, 10, 10})
//
//	res, _ := seggo.Segment(ctx, data, likelihood.NegVariance(),
//	    seggo.WithMaxSegments(2))
//	fmt.Println(res.Changepoints) // [4]
//
// # Choosing an Algorithm
//
// Two optimizers are available:
//
//   - AlgorithmExact finds the global optimum with a dynamic program
//     costing O(N²) oracle calls.
//   - AlgorithmHierarchical approximates it by recursive binary
//     splitting in roughly O(N log N) oracle calls. It never scores
//     higher than the exact result.
//
// # Parallel Evaluation
//
// Oracle calls fan out across an explicitly supplied worker pool:
//
//	p := pool.NewFixed(runtime.GOMAXPROCS(0))
//	defer p.Close()
//	res, _ := seggo.Segment(ctx, data, oracle, seggo.WithPool(p))
//
// Results are bit-identical with and without a pool for any pure
// oracle. Without a pool, evaluation is sequential.
//
// # Length Penalties
//
// Many likelihoods degenerate toward very short or very long
// segments. AutoPenalize calibrates a convex length penalty from the
// data and returns a drop-in penalized oracle:
//
//	penalized, _ := seggo.AutoPenalize(data, oracle)
//	res, _ := seggo.Segment(ctx, data, penalized)
package seggo

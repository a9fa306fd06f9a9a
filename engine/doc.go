// Package engine implements the segmentation optimizers: the exact
// dynamic-programming search and the hierarchical divide-and-merge
// approximation, plus the parallel likelihood evaluator they share.
//
// Both engines produce bit-identical results whether oracle calls run
// sequentially or through a worker pool; the recurrences assume
// reproducible values, so this is a correctness invariant rather than
// a performance detail.
//
// Most callers should use the root seggo package instead of this one.
package engine

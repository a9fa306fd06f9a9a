package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Segment is a contiguous, inclusive range of columns over a data matrix.
// Positions are 1-based: 1 <= Start <= End <= N.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of columns covered by the segment.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// String returns a string representation of the Segment.
func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d]", s.Start, s.End)
}

// View returns the read-only sub-matrix of data restricted to the
// segment's columns (all rows). The returned matrix aliases data and
// must not be mutated.
func (s Segment) View(data mat.Matrix) mat.Matrix {
	return ColumnSlice(data, s.Start-1, s.End)
}

// Segmentation is an ordered sequence of segments that exactly
// partitions the columns [1, N]: segments are contiguous in order
// (segment i's End + 1 == segment i+1's Start) and jointly cover every
// column exactly once.
type Segmentation []Segment

// Changepoints returns the start index of every segment after the
// first. A segmentation of k segments has k-1 changepoints, each in
// [2, N], strictly increasing.
func (sg Segmentation) Changepoints() []int {
	if len(sg) == 0 {
		return nil
	}
	cps := make([]int, 0, len(sg)-1)
	for _, s := range sg[1:] {
		cps = append(cps, s.Start)
	}
	return cps
}

// Result is the externally visible segmentation outcome: the
// changepoint list plus every segment materialized as its explicit
// column-index sequence. It is derived data, immutable once produced
// and owned by the caller.
type Result struct {
	Changepoints []int
	Segments     [][]int
}

// Oracle scores a segment's data. Implementations must be pure
// functions of their argument and safe to call concurrently: the
// engines may evaluate many segments in parallel and assume
// reproducible values. Higher scores rank a segment as more
// preferable.
type Oracle interface {
	Score(seg mat.Matrix) (float64, error)
}

// OracleFunc is an adapter to allow ordinary functions to be used as
// likelihood oracles.
type OracleFunc func(seg mat.Matrix) (float64, error)

// Score implements Oracle.
func (f OracleFunc) Score(seg mat.Matrix) (float64, error) {
	return f(seg)
}

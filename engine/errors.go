package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyData is returned when the data matrix has no columns.
var ErrEmptyData = errors.New("data has no columns")

// InvalidMaxSegmentsError indicates a segment budget outside [1, N].
type InvalidMaxSegmentsError struct {
	MaxSegments int
	N           int
}

func (e *InvalidMaxSegmentsError) Error() string {
	return fmt.Sprintf("invalid max segments %d for %d columns", e.MaxSegments, e.N)
}

// EvaluationError indicates the oracle failed or returned a non-finite
// value for some segment.
//
// The underlying oracle error (if any) can be accessed via
// errors.Unwrap.
type EvaluationError struct {
	Start int
	End   int
	cause error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("likelihood evaluation failed for segment [%d, %d]: %v", e.Start, e.End, e.cause)
}

func (e *EvaluationError) Unwrap() error { return e.cause }

// PoolError indicates the worker pool rejected or failed a task for
// reasons unrelated to the oracle itself. It is surfaced distinctly
// from EvaluationError so callers can tell infrastructure failure
// apart from model failure.
type PoolError struct {
	cause error
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("worker pool failure: %v", e.cause)
}

func (e *PoolError) Unwrap() error { return e.cause }

package penalty

import (
	"errors"
	"fmt"
)

// ErrEmptyData is returned when the data matrix has no columns.
var ErrEmptyData = errors.New("data has no columns")

var errNonFinite = errors.New("oracle returned non-finite value")

// InvalidFactorError indicates a penalty factor outside the valid
// range: factors must be greater than 1, otherwise the log in the
// slope formula is non-positive and the penalty curve inverts.
type InvalidFactorError struct {
	Name  string
	Value float64
}

func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("%s must be > 1, got %v", e.Name, e.Value)
}

// NonPositiveMeanError indicates a sampled likelihood average that is
// zero or negative, which would make the derived curve coefficients
// non-positive. Likelihoods that are naturally negative (e.g. raw
// log-likelihoods) must be shifted or rescaled by the caller before
// automatic penalty estimation.
type NonPositiveMeanError struct {
	Kind string // "small" or "big"
	Mean float64
}

func (e *NonPositiveMeanError) Error() string {
	return fmt.Sprintf("sampled %s-segment likelihood average %v is not positive", e.Kind, e.Mean)
}

// EvaluationError indicates the raw oracle failed while sampling a
// representative segment.
//
// The underlying oracle error can be accessed via errors.Unwrap.
type EvaluationError struct {
	Start int
	End   int
	cause error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("likelihood evaluation failed for sample segment [%d, %d]: %v", e.Start, e.End, e.cause)
}

func (e *EvaluationError) Unwrap() error { return e.cause }

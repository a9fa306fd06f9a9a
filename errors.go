package seggo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seggo/engine"
	"github.com/hupe1980/seggo/penalty"
)

// ErrConfiguration indicates invalid caller input: an out-of-range
// segment budget, empty data, invalid penalty parameters, or an
// unknown algorithm.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap.
type ErrConfiguration struct {
	Reason string
	cause  error
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ErrConfiguration) Unwrap() error { return e.cause }

// ErrLikelihoodEvaluation indicates the oracle failed or returned an
// invalid value for some segment. The whole computation is aborted;
// there is no partial result.
//
// The original oracle error can be accessed via errors.Unwrap.
type ErrLikelihoodEvaluation struct {
	Start int
	End   int
	cause error
}

func (e *ErrLikelihoodEvaluation) Error() string {
	return fmt.Sprintf("likelihood evaluation failed for segment [%d, %d]", e.Start, e.End)
}

func (e *ErrLikelihoodEvaluation) Unwrap() error { return e.cause }

// ErrWorkerPool indicates the externally supplied pool rejected or
// failed a task for reasons unrelated to the oracle. It is never
// masked by a silent fallback to sequential execution.
//
// The original pool error can be accessed via errors.Unwrap.
type ErrWorkerPool struct {
	cause error
}

func (e *ErrWorkerPool) Error() string {
	return fmt.Sprintf("worker pool failure: %v", e.cause)
}

func (e *ErrWorkerPool) Unwrap() error { return e.cause }

// translateError normalizes engine and penalty errors into the three
// public error kinds.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Configuration normalization.
	if errors.Is(err, engine.ErrEmptyData) || errors.Is(err, penalty.ErrEmptyData) {
		return &ErrConfiguration{Reason: "data has no columns", cause: err}
	}
	var ims *engine.InvalidMaxSegmentsError
	if errors.As(err, &ims) {
		return &ErrConfiguration{Reason: ims.Error(), cause: err}
	}
	var ifa *penalty.InvalidFactorError
	if errors.As(err, &ifa) {
		return &ErrConfiguration{Reason: ifa.Error(), cause: err}
	}
	var npm *penalty.NonPositiveMeanError
	if errors.As(err, &npm) {
		return &ErrConfiguration{Reason: npm.Error(), cause: err}
	}

	// Oracle failures.
	var ee *engine.EvaluationError
	if errors.As(err, &ee) {
		return &ErrLikelihoodEvaluation{Start: ee.Start, End: ee.End, cause: err}
	}
	var pe *penalty.EvaluationError
	if errors.As(err, &pe) {
		return &ErrLikelihoodEvaluation{Start: pe.Start, End: pe.End, cause: err}
	}

	// Infrastructure failures.
	var we *engine.PoolError
	if errors.As(err, &we) {
		return &ErrWorkerPool{cause: err}
	}

	return err
}

package pool

import (
	"context"
	"errors"
)

// ErrClosed is returned when a task is submitted to a closed pool.
var ErrClosed = errors.New("pool is closed")

// Pool is an externally owned capability for executing independent
// tasks concurrently. The segmentation engines only ever submit work
// to a pool; they never create, resize, or tear one down. A single
// pool may be shared across many segmentation calls.
//
// Submit enqueues a task and returns once the task has been accepted
// by the pool (it may not have started yet). Waiting for completion is
// the submitter's job, typically with a sync.WaitGroup inside the
// task closure.
type Pool interface {
	// Submit enqueues task for execution.
	//
	// Error conditions:
	//   - Returns ErrClosed (possibly wrapped) if the pool is closed
	//   - Returns the context error if ctx is cancelled before the
	//     task is accepted
	Submit(ctx context.Context, task func()) error

	// Close shuts the pool down. Close blocks until in-flight tasks
	// finish. It is safe to call Close more than once.
	Close()
}

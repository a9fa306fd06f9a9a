package pool

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// BoundedPool runs tasks on demand-spawned goroutines while capping
// concurrency at a fixed limit. Unlike FixedPool it keeps no idle
// workers; it is the cheaper choice when segmentation calls are rare.
type BoundedPool struct {
	g      *errgroup.Group
	closed atomic.Bool
}

var _ Pool = (*BoundedPool)(nil)

// NewBounded creates a pool that never runs more than limit tasks at
// once. If limit <= 0, concurrency is unbounded.
func NewBounded(limit int) *BoundedPool {
	g := &errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &BoundedPool{g: g}
}

// Submit implements Pool. When the limit is reached, Submit blocks
// until a slot frees up or ctx is cancelled.
func (p *BoundedPool) Submit(ctx context.Context, task func()) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.g.Go(func() error {
		task()
		return nil
	})
	return nil
}

// Close implements Pool, waiting for in-flight tasks.
func (p *BoundedPool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	_ = p.g.Wait()
}

package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// AntsPool adapts a github.com/panjf2000/ants goroutine pool to the
// Pool capability. Use it when the host application already runs an
// ants pool and wants segmentation to share it.
type AntsPool struct {
	inner *ants.Pool
	owned bool
}

var _ Pool = (*AntsPool)(nil)

// NewAnts creates an AntsPool with its own underlying ants pool of the
// given size.
func NewAnts(size int, opts ...ants.Option) (*AntsPool, error) {
	inner, err := ants.NewPool(size, opts...)
	if err != nil {
		return nil, fmt.Errorf("create ants pool: %w", err)
	}
	return &AntsPool{inner: inner, owned: true}, nil
}

// WrapAnts adapts an existing ants pool. Close becomes a no-op; the
// caller keeps ownership of the wrapped pool's lifecycle.
func WrapAnts(inner *ants.Pool) *AntsPool {
	return &AntsPool{inner: inner}
}

// Submit implements Pool.
func (p *AntsPool) Submit(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.inner.Submit(task); err != nil {
		if errors.Is(err, ants.ErrPoolClosed) {
			return fmt.Errorf("%w: %w", ErrClosed, err)
		}
		return err
	}
	return nil
}

// Close implements Pool. For owned pools it releases the underlying
// ants pool; for wrapped pools it does nothing.
func (p *AntsPool) Close() {
	if p.owned {
		p.inner.Release()
	}
}

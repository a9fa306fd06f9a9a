package pool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// FixedPool manages a fixed set of goroutines for parallel likelihood
// evaluation. Reusing workers avoids spawning thousands of goroutines
// for the O(N²) oracle fan-out of the exact engine.
type FixedPool struct {
	numWorkers int
	workCh     chan func() // Channel carries work closures
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
}

var _ Pool = (*FixedPool)(nil)

// NewFixed creates a pool with numWorkers goroutines.
//
// Recommended sizing:
//   - For CPU-bound oracles: runtime.GOMAXPROCS(0)
//   - For oracles that do I/O: 2-4x GOMAXPROCS
//
// If numWorkers <= 0, GOMAXPROCS is used.
func NewFixed(numWorkers int) *FixedPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &FixedPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2), // 2x buffer for pipelining
		stopCh:     make(chan struct{}),
	}

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker processes work closures from the work channel.
func (p *FixedPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			// Drain remaining work before exiting
			for {
				select {
				case task, ok := <-p.workCh:
					if !ok {
						return
					}
					task()
				default:
					return
				}
			}
		case task, ok := <-p.workCh:
			if !ok {
				return
			}
			task()
		}
	}
}

// Submit implements Pool. It returns immediately after enqueueing the
// work, applying backpressure when all workers are busy.
func (p *FixedPool) Submit(ctx context.Context, task func()) error {
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}

	select {
	case p.workCh <- task:
		return nil
	case <-p.stopCh:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts down the pool gracefully.
func (p *FixedPool) Close() {
	// Mark as closed (atomic, idempotent)
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.submitMu.Lock()
	close(p.stopCh)
	close(p.workCh)
	p.submitMu.Unlock()

	p.wg.Wait()
}

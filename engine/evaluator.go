package engine

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/seggo/model"
	"gonum.org/v1/gonum/mat"
)

// evalTask is one pending oracle evaluation.
type evalTask struct {
	seg  model.Segment
	view mat.Matrix
}

// score runs the oracle on one task and validates the result.
func (e *Engine) score(oracle model.Oracle, t evalTask) (float64, error) {
	v, err := oracle.Score(t.view)
	e.evaluations.Add(1)
	if err != nil {
		return 0, &EvaluationError{Start: t.seg.Start, End: t.seg.End, cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvaluationError{Start: t.seg.Start, End: t.seg.End, cause: errNonFinite(v)}
	}
	return v, nil
}

// evaluateAll scores every task, returning results in submission order
// regardless of completion order. When a pool is configured and
// parallelism is enabled, tasks fan out across the pool; otherwise
// they run sequentially in input order.
//
// Failure is fail-fast: after the first task failure no new tasks are
// dispatched, already-running tasks finish and are discarded, and the
// first error is returned. No partial results are ever returned.
func (e *Engine) evaluateAll(ctx context.Context, oracle model.Oracle, tasks []evalTask) ([]float64, error) {
	if e.pool == nil || !e.parallel {
		return e.evaluateSequential(ctx, oracle, tasks)
	}

	results := make([]float64, len(tasks))
	var (
		wg       sync.WaitGroup
		failed   atomic.Bool
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		failed.Store(true)
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	for i, t := range tasks {
		i, t := i, t
		if failed.Load() {
			break
		}
		wg.Add(1)
		err := e.pool.Submit(ctx, func() {
			defer wg.Done()
			v, err := e.score(oracle, t)
			if err != nil {
				fail(err)
				return
			}
			results[i] = v
		})
		if err != nil {
			wg.Done()
			fail(&PoolError{cause: err})
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (e *Engine) evaluateSequential(ctx context.Context, oracle model.Oracle, tasks []evalTask) ([]float64, error) {
	results := make([]float64, len(tasks))
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.score(oracle, t)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// scoreSegments returns the oracle value for every segment, serving
// repeats from cache and evaluating the misses in one batch. Values
// for the misses are written back to the cache.
func (e *Engine) scoreSegments(ctx context.Context, data mat.Matrix, oracle model.Oracle, cache *llCache, segs []model.Segment) ([]float64, error) {
	out := make([]float64, len(segs))

	var (
		missTasks []evalTask
		pending   = make(map[cacheKey][]int)
	)
	for i, s := range segs {
		if v, ok := cache.get(s.Start, s.End); ok {
			e.cacheHits.Add(1)
			out[i] = v
			continue
		}
		key := cacheKey{s.Start, s.End}
		if idxs, dup := pending[key]; dup {
			// Same range requested twice in one batch; evaluate once.
			pending[key] = append(idxs, i)
			continue
		}
		pending[key] = []int{i}
		missTasks = append(missTasks, evalTask{seg: s, view: s.View(data)})
	}

	if len(missTasks) == 0 {
		return out, nil
	}

	vals, err := e.evaluateAll(ctx, oracle, missTasks)
	if err != nil {
		return nil, err
	}
	for mi, t := range missTasks {
		v := vals[mi]
		cache.put(t.seg.Start, t.seg.End, v)
		for _, i := range pending[cacheKey{t.seg.Start, t.seg.End}] {
			out[i] = v
		}
	}
	return out, nil
}

func errNonFinite(v float64) error {
	return fmt.Errorf("oracle returned non-finite value %v", v)
}

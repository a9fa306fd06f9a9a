package engine

import (
	"context"
	"math"
	"math/bits"
	"testing"

	"github.com/hupe1980/seggo/likelihood"
	"github.com/hupe1980/seggo/model"
	"github.com/hupe1980/seggo/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hashOracle scores a segment by a deterministic pseudo-random hash of
// its first value and length, so every distinct range gets a distinct,
// reproducible score. The data must have unique column values.
func hashOracle() model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		_, cols := seg.Dims()
		x := math.Sin(seg.At(0, 0)*12.9898+float64(cols)*78.233) * 43758.5453
		return x - math.Floor(x), nil
	})
}

// rampData returns a 1-row matrix with column j holding j+1, so each
// segment view is uniquely identified by its first value and length.
func rampData(n int) *mat.Dense {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	return mat.NewDense(1, n, vals)
}

func totalLikelihood(t *testing.T, data mat.Matrix, oracle model.Oracle, sg model.Segmentation) float64 {
	t.Helper()
	var total float64
	for _, s := range sg {
		v, err := oracle.Score(s.View(data))
		require.NoError(t, err)
		total += v
	}
	return total
}

// bruteForceBest enumerates every partition of n columns into at most
// maxSegments parts and returns the best total likelihood.
func bruteForceBest(t *testing.T, data mat.Matrix, oracle model.Oracle, n, maxSegments int) float64 {
	t.Helper()
	best := math.Inf(-1)
	for mask := 0; mask < 1<<(n-1); mask++ {
		if bits.OnesCount(uint(mask))+1 > maxSegments {
			continue
		}
		var sg model.Segmentation
		start := 1
		for b := 0; b < n-1; b++ {
			if mask&(1<<b) != 0 {
				sg = append(sg, model.Segment{Start: start, End: b + 1})
				start = b + 2
			}
		}
		sg = append(sg, model.Segment{Start: start, End: n})
		if total := totalLikelihood(t, data, oracle, sg); total > best {
			best = total
		}
	}
	return best
}

func requirePartition(t *testing.T, sg model.Segmentation, n int) {
	t.Helper()
	require.NotEmpty(t, sg)
	require.Equal(t, 1, sg[0].Start)
	require.Equal(t, n, sg[len(sg)-1].End)
	for i := 1; i < len(sg); i++ {
		require.Equal(t, sg[i-1].End+1, sg[i].Start)
	}
}

func TestExact(t *testing.T) {
	ctx := context.Background()

	t.Run("StepChangeTwoSegments", func(t *testing.T) {
		data := mat.NewDense(1, 6, []float64{1, 1, 1, 10, 10, 10})
		e := New(Config{})

		sg, err := e.Exact(ctx, data, likelihood.NegVariance(), 2)
		require.NoError(t, err)

		assert.Equal(t, model.Segmentation{{Start: 1, End: 3}, {Start: 4, End: 6}}, sg)
		assert.Equal(t, []int{4}, sg.Changepoints())
	})

	t.Run("SingleSegmentDegeneracy", func(t *testing.T) {
		data := mat.NewDense(1, 6, []float64{1, 1, 1, 10, 10, 10})
		e := New(Config{})

		sg, err := e.Exact(ctx, data, likelihood.NegVariance(), 1)
		require.NoError(t, err)

		assert.Equal(t, model.Segmentation{{Start: 1, End: 6}}, sg)
		assert.Empty(t, sg.Changepoints())
	})

	t.Run("TieBreakPrefersFewerSegments", func(t *testing.T) {
		// A constant oracle scores every partition of k segments as
		// k*c with c = 0, so all k tie and the simplest model wins.
		constant := model.OracleFunc(func(mat.Matrix) (float64, error) { return 0, nil })
		e := New(Config{})

		sg, err := e.Exact(ctx, rampData(5), constant, 5)
		require.NoError(t, err)
		assert.Len(t, sg, 1)
	})

	t.Run("InvalidMaxSegments", func(t *testing.T) {
		data := rampData(4)
		e := New(Config{})

		for _, k := range []int{0, -1, 5} {
			_, err := e.Exact(ctx, data, hashOracle(), k)
			var ims *InvalidMaxSegmentsError
			require.ErrorAs(t, err, &ims)
			assert.Equal(t, k, ims.MaxSegments)
		}
	})

	t.Run("EmptyData", func(t *testing.T) {
		e := New(Config{})
		_, err := e.Exact(ctx, &mat.Dense{}, hashOracle(), 1)
		require.ErrorIs(t, err, ErrEmptyData)
	})

	t.Run("ExhaustiveOptimality", func(t *testing.T) {
		oracle := hashOracle()
		for n := 1; n <= 8; n++ {
			data := rampData(n)
			for maxSegments := 1; maxSegments <= n; maxSegments++ {
				e := New(Config{})
				sg, err := e.Exact(ctx, data, oracle, maxSegments)
				require.NoError(t, err)

				requirePartition(t, sg, n)
				require.LessOrEqual(t, len(sg), maxSegments)

				got := totalLikelihood(t, data, oracle, sg)
				want := bruteForceBest(t, data, oracle, n, maxSegments)
				assert.InDelta(t, want, got, 1e-9, "n=%d maxSegments=%d", n, maxSegments)
			}
		}
	})

	t.Run("DeterministicUnderParallelism", func(t *testing.T) {
		data := rampData(16)
		oracle := hashOracle()

		p := pool.NewFixed(4)
		defer p.Close()

		parallel, err := New(Config{Pool: p, Parallel: true}).Exact(ctx, data, oracle, 5)
		require.NoError(t, err)

		sequential, err := New(Config{}).Exact(ctx, data, oracle, 5)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel)
	})

	t.Run("OracleErrorAborts", func(t *testing.T) {
		data := rampData(6)
		failing := model.OracleFunc(func(seg mat.Matrix) (float64, error) {
			_, cols := seg.Dims()
			if cols == 3 {
				return 0, assert.AnError
			}
			return 0, nil
		})

		_, err := New(Config{}).Exact(ctx, data, failing, 3)
		var ee *EvaluationError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 3, ee.End-ee.Start+1)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("MemoizesOracleCalls", func(t *testing.T) {
		data := rampData(8)
		e := New(Config{})

		_, err := e.Exact(ctx, data, hashOracle(), 4)
		require.NoError(t, err)

		// One evaluation per distinct (start, end) pair.
		assert.Equal(t, int64(8*9/2), e.Stats().Evaluations)
	})
}

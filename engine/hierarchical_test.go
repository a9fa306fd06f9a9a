package engine

import (
	"context"
	"testing"

	"github.com/hupe1980/seggo/likelihood"
	"github.com/hupe1980/seggo/model"
	"github.com/hupe1980/seggo/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHierarchical(t *testing.T) {
	ctx := context.Background()

	t.Run("StepChangeTwoSegments", func(t *testing.T) {
		data := mat.NewDense(1, 6, []float64{1, 1, 1, 10, 10, 10})
		e := New(Config{})

		sg, err := e.Hierarchical(ctx, data, likelihood.NegVariance(), 2)
		require.NoError(t, err)

		assert.Equal(t, model.Segmentation{{Start: 1, End: 3}, {Start: 4, End: 6}}, sg)
	})

	t.Run("SingleSegmentDegeneracy", func(t *testing.T) {
		data := mat.NewDense(1, 6, []float64{1, 1, 1, 10, 10, 10})
		e := New(Config{})

		sg, err := e.Hierarchical(ctx, data, likelihood.NegVariance(), 1)
		require.NoError(t, err)

		assert.Equal(t, model.Segmentation{{Start: 1, End: 6}}, sg)
	})

	t.Run("PartitionInvariant", func(t *testing.T) {
		oracle := hashOracle()
		for _, n := range []int{1, 2, 3, 7, 16, 33, 64} {
			data := rampData(n)
			for _, maxSegments := range []int{1, 2, n/2 + 1, n} {
				if maxSegments > n {
					continue
				}
				e := New(Config{})
				sg, err := e.Hierarchical(ctx, data, oracle, maxSegments)
				require.NoError(t, err)

				requirePartition(t, sg, n)
				assert.LessOrEqual(t, len(sg), maxSegments, "n=%d maxSegments=%d", n, maxSegments)
			}
		}
	})

	t.Run("NeverBeatsExact", func(t *testing.T) {
		oracle := hashOracle()
		for _, n := range []int{4, 8, 12, 16} {
			data := rampData(n)
			for _, maxSegments := range []int{1, 2, 4} {
				hier, err := New(Config{}).Hierarchical(ctx, data, oracle, maxSegments)
				require.NoError(t, err)
				exact, err := New(Config{}).Exact(ctx, data, oracle, maxSegments)
				require.NoError(t, err)

				hierTotal := totalLikelihood(t, data, oracle, hier)
				exactTotal := totalLikelihood(t, data, oracle, exact)
				assert.LessOrEqual(t, hierTotal, exactTotal+1e-9, "n=%d maxSegments=%d", n, maxSegments)
			}
		}
	})

	t.Run("NoImprovingSplitStaysWhole", func(t *testing.T) {
		// The undivided range always scores higher than any split.
		whole := model.OracleFunc(func(seg mat.Matrix) (float64, error) {
			_, cols := seg.Dims()
			return float64(cols * cols), nil
		})
		e := New(Config{})

		sg, err := e.Hierarchical(ctx, rampData(20), whole, 20)
		require.NoError(t, err)
		assert.Equal(t, model.Segmentation{{Start: 1, End: 20}}, sg)
	})

	t.Run("DeterministicUnderParallelism", func(t *testing.T) {
		data := rampData(48)
		oracle := hashOracle()

		p := pool.NewFixed(4)
		defer p.Close()

		parallel, err := New(Config{Pool: p, Parallel: true}).Hierarchical(ctx, data, oracle, 8)
		require.NoError(t, err)

		sequential, err := New(Config{}).Hierarchical(ctx, data, oracle, 8)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel)
	})

	t.Run("InvalidMaxSegments", func(t *testing.T) {
		e := New(Config{})
		_, err := e.Hierarchical(ctx, rampData(4), hashOracle(), 0)
		var ims *InvalidMaxSegmentsError
		require.ErrorAs(t, err, &ims)
	})

	t.Run("OracleErrorAborts", func(t *testing.T) {
		failing := model.OracleFunc(func(mat.Matrix) (float64, error) {
			return 0, assert.AnError
		})
		_, err := New(Config{}).Hierarchical(ctx, rampData(8), failing, 4)
		var ee *EvaluationError
		require.ErrorAs(t, err, &ee)
	})
}

func TestSplitCandidates(t *testing.T) {
	t.Run("SmallRangeTriesEveryPosition", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, splitCandidates(0, 5))
	})

	t.Run("BoundedForLargeRanges", func(t *testing.T) {
		cands := splitCandidates(0, 999)
		assert.LessOrEqual(t, len(cands), 2*splitWindow+1)
		for i := 1; i < len(cands); i++ {
			assert.Greater(t, cands[i], cands[i-1])
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, splitCandidates(17, 230), splitCandidates(17, 230))
	})
}

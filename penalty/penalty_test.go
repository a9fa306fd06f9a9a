package penalty

import (
	"testing"

	"github.com/hupe1980/seggo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func constantOracle(v float64) model.Oracle {
	return model.OracleFunc(func(mat.Matrix) (float64, error) { return v, nil })
}

func testData(n int) *mat.Dense {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i)
	}
	return mat.NewDense(1, n, vals)
}

func TestEstimate(t *testing.T) {
	t.Run("DerivedParameters", func(t *testing.T) {
		data := testData(100)

		m, err := Estimate(data, constantOracle(50), WithSmallPenalty(10), WithBigPenalty(10))
		require.NoError(t, err)

		assert.InDelta(t, 5.0, m.C1, 1e-12)
		assert.InDelta(t, 5.0, m.C2, 1e-12)
		assert.Greater(t, m.S1, 0.0)
		assert.Greater(t, m.S2, 0.0)
		assert.Equal(t, 100.0, m.L)
	})

	t.Run("FactorMustExceedOne", func(t *testing.T) {
		data := testData(10)
		for _, opt := range []Option{WithSmallPenalty(1), WithSmallPenalty(0.5), WithBigPenalty(1), WithBigPenalty(-2)} {
			_, err := Estimate(data, constantOracle(1), opt)
			var ife *InvalidFactorError
			require.ErrorAs(t, err, &ife)
		}
	})

	t.Run("NonPositiveMean", func(t *testing.T) {
		data := testData(10)

		_, err := Estimate(data, constantOracle(-3))
		var npm *NonPositiveMeanError
		require.ErrorAs(t, err, &npm)
		assert.Equal(t, -3.0, npm.Mean)

		_, err = Estimate(data, constantOracle(0))
		require.ErrorAs(t, err, &npm)
	})

	t.Run("EmptyData", func(t *testing.T) {
		_, err := Estimate(&mat.Dense{}, constantOracle(1))
		require.ErrorIs(t, err, ErrEmptyData)
	})

	t.Run("OracleErrorPropagates", func(t *testing.T) {
		failing := model.OracleFunc(func(mat.Matrix) (float64, error) { return 0, assert.AnError })
		_, err := Estimate(testData(10), failing)
		var ee *EvaluationError
		require.ErrorAs(t, err, &ee)
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestModel(t *testing.T) {
	t.Run("SymmetricWhenFactorsMatch", func(t *testing.T) {
		// Equal factors and a constant oracle give C1 == C2 and
		// S1 == S2, so p(l) == p(L-l).
		m, err := Estimate(testData(60), constantOracle(7), WithSmallPenalty(10), WithBigPenalty(10))
		require.NoError(t, err)

		for l := 0.0; l <= m.L; l++ {
			assert.InDelta(t, m.At(m.L-l), m.At(l), 1e-9, "l=%v", l)
		}
	})

	t.Run("MinimizedAtHalfLength", func(t *testing.T) {
		m, err := Estimate(testData(60), constantOracle(7), WithSmallPenalty(10), WithBigPenalty(10))
		require.NoError(t, err)

		min := m.At(m.L / 2)
		for l := 1.0; l <= m.L; l++ {
			assert.GreaterOrEqual(t, m.At(l), min-1e-12, "l=%v", l)
		}
	})

	t.Run("PenalizesExtremes", func(t *testing.T) {
		m := Model{C1: 1, S1: 0.1, C2: 1, S2: 0.1, L: 100}
		assert.Greater(t, m.At(1), m.At(50))
		assert.Greater(t, m.At(100), m.At(50))
	})
}

func TestWrap(t *testing.T) {
	data := testData(20)
	m := Model{C1: 1, S1: 0.1, C2: 1, S2: 0.1, L: 20}

	penalized := Wrap(constantOracle(100), m)

	seg := model.Segment{Start: 1, End: 10}
	v, err := penalized.Score(seg.View(data))
	require.NoError(t, err)
	assert.InDelta(t, 100-m.At(10), v, 1e-12)

	t.Run("PropagatesOracleError", func(t *testing.T) {
		failing := Wrap(model.OracleFunc(func(mat.Matrix) (float64, error) { return 0, assert.AnError }), m)
		_, err := failing.Score(seg.View(data))
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuto(t *testing.T) {
	data := testData(40)

	penalized, err := Auto(data, constantOracle(10))
	require.NoError(t, err)

	// A mid-length segment must be penalized less than a degenerate one.
	short := model.Segment{Start: 1, End: 1}
	mid := model.Segment{Start: 1, End: 20}

	vShort, err := penalized.Score(short.View(data))
	require.NoError(t, err)
	vMid, err := penalized.Score(mid.View(data))
	require.NoError(t, err)

	assert.Greater(t, vMid, vShort)
}

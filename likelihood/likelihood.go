package likelihood

import (
	"math"

	"github.com/hupe1980/seggo/model"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// NegVariance returns an oracle scoring a segment as the negated sum
// of per-row population variances. Homogeneous segments score near
// zero, mixed segments score negative, so maximizing the total splits
// the data at level shifts.
func NegVariance() model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		rows, cols := seg.Dims()
		var total float64
		row := make([]float64, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				row[c] = seg.At(r, c)
			}
			mean := stat.Mean(row, nil)
			var ss float64
			for _, v := range row {
				d := v - mean
				ss += d * d
			}
			total += ss / float64(cols)
		}
		return -total, nil
	})
}

// Multivariate returns an oracle computing the discrete multivariate
// log-likelihood of a segment: for each row, every observed value
// contributes the log of its empirical frequency within the segment.
// Segments whose rows are drawn from a single discrete distribution
// score higher than segments mixing distributions.
func Multivariate() model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		rows, cols := seg.Dims()
		var total float64
		counts := make(map[float64]int, cols)
		for r := 0; r < rows; r++ {
			clear(counts)
			for c := 0; c < cols; c++ {
				counts[seg.At(r, c)]++
			}
			for _, cnt := range counts {
				p := float64(cnt) / float64(cols)
				total += float64(cnt) * math.Log(p)
			}
		}
		return total, nil
	})
}

// Scaled returns an oracle whose value is factor times the wrapped
// oracle's value. Use a positive factor to rescale a likelihood, or
// shift with Offset, before automatic penalty estimation.
func Scaled(oracle model.Oracle, factor float64) model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		v, err := oracle.Score(seg)
		if err != nil {
			return 0, err
		}
		return factor * v, nil
	})
}

// Offset returns an oracle whose value is the wrapped oracle's value
// plus delta.
func Offset(oracle model.Oracle, delta float64) model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		v, err := oracle.Score(seg)
		if err != nil {
			return 0, err
		}
		return v + delta, nil
	})
}

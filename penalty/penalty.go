package penalty

import (
	"math"

	"github.com/hupe1980/seggo/model"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Default penalty factors. A factor of 10 means a degenerate-length
// segment loses roughly one tenth of a representative likelihood.
const (
	DefaultSmallPenalty = 10.0
	DefaultBigPenalty   = 10.0
)

// Model holds the parameters of the length-penalty curve
//
//	p(l) = C1·exp(S1·(l − L/2)) + C2·exp(S2·(L/2 − l))
//
// which is convex with its minimum near l = L/2: the first term grows
// for segments longer than half the data, the second for shorter ones.
// All of C1, S1, C2, S2 are positive; L is the total number of
// columns.
type Model struct {
	C1 float64
	S1 float64
	C2 float64
	S2 float64
	L  float64
}

// At returns the penalty for a segment of length l.
func (m Model) At(l float64) float64 {
	half := m.L / 2
	return m.C1*math.Exp(m.S1*(l-half)) + m.C2*math.Exp(m.S2*(half-l))
}

type options struct {
	smallPenalty float64
	bigPenalty   float64
}

// Option configures the penalty estimator.
type Option func(*options)

// WithSmallPenalty sets the penalty factor for very short segments.
// Must be > 1.
func WithSmallPenalty(p float64) Option {
	return func(o *options) {
		o.smallPenalty = p
	}
}

// WithBigPenalty sets the penalty factor for segments near the full
// data length. Must be > 1.
func WithBigPenalty(p float64) Option {
	return func(o *options) {
		o.bigPenalty = p
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		smallPenalty: DefaultSmallPenalty,
		bigPenalty:   DefaultBigPenalty,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Estimate derives penalty-curve parameters for data by sampling
// representative segments: short ones (length 1-2) at several offsets
// and long ones (length near L/2), averaging their raw likelihoods
// μ_s and μ_b, and solving
//
//	C1 = μ_b / P_b    S1 = 4·ln(P_b) / L
//	C2 = μ_s / P_s    S2 = 4·ln(P_s) / L
//
// Both penalty factors must be greater than 1, and both sampled
// averages must come out strictly positive, otherwise the curve would
// invert; either violation is reported as a configuration error.
func Estimate(data mat.Matrix, oracle model.Oracle, optFns ...Option) (Model, error) {
	o := applyOptions(optFns)

	if o.smallPenalty <= 1 {
		return Model{}, &InvalidFactorError{Name: "small segment penalty", Value: o.smallPenalty}
	}
	if o.bigPenalty <= 1 {
		return Model{}, &InvalidFactorError{Name: "big segment penalty", Value: o.bigPenalty}
	}

	_, n := data.Dims()
	if n == 0 {
		return Model{}, ErrEmptyData
	}

	smallLen := 2
	if smallLen > n {
		smallLen = n
	}
	bigLen := n / 2
	if bigLen < 1 {
		bigLen = 1
	}

	muSmall, err := sampleMean(data, oracle, smallLen)
	if err != nil {
		return Model{}, err
	}
	muBig, err := sampleMean(data, oracle, bigLen)
	if err != nil {
		return Model{}, err
	}

	if muSmall <= 0 {
		return Model{}, &NonPositiveMeanError{Kind: "small", Mean: muSmall}
	}
	if muBig <= 0 {
		return Model{}, &NonPositiveMeanError{Kind: "big", Mean: muBig}
	}

	l := float64(n)
	return Model{
		C1: muBig / o.bigPenalty,
		S1: 4 * math.Log(o.bigPenalty) / l,
		C2: muSmall / o.smallPenalty,
		S2: 4 * math.Log(o.smallPenalty) / l,
		L:  l,
	}, nil
}

// Auto wraps oracle with an estimated length penalty. The returned
// oracle scores a segment as the raw likelihood minus the penalty for
// its length; it satisfies the same contract as the input and can be
// passed unchanged to either engine.
func Auto(data mat.Matrix, oracle model.Oracle, optFns ...Option) (model.Oracle, error) {
	m, err := Estimate(data, oracle, optFns...)
	if err != nil {
		return nil, err
	}
	return Wrap(oracle, m), nil
}

// Wrap returns an oracle that subtracts m's length penalty from the
// raw oracle's value.
func Wrap(oracle model.Oracle, m Model) model.Oracle {
	return model.OracleFunc(func(seg mat.Matrix) (float64, error) {
		v, err := oracle.Score(seg)
		if err != nil {
			return 0, err
		}
		_, cols := seg.Dims()
		return v - m.At(float64(cols)), nil
	})
}

// sampleMean scores segments of the given length at a handful of
// offsets spread across the data and returns the arithmetic mean.
func sampleMean(data mat.Matrix, oracle model.Oracle, length int) (float64, error) {
	_, n := data.Dims()

	starts := []int{0, n / 4, n / 2, 3 * n / 4, n - length}
	var vals []float64
	last := -1
	for _, s := range starts {
		if s < 0 {
			s = 0
		}
		if s+length > n {
			s = n - length
		}
		if s == last {
			continue
		}
		last = s

		seg := model.Segment{Start: s + 1, End: s + length}
		v, err := oracle.Score(seg.View(data))
		if err != nil {
			return 0, &EvaluationError{Start: seg.Start, End: seg.End, cause: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &EvaluationError{Start: seg.Start, End: seg.End, cause: errNonFinite}
		}
		vals = append(vals, v)
	}

	return stat.Mean(vals, nil), nil
}

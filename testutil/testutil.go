package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// StepSpec describes one piece of a piecewise-constant test series.
type StepSpec struct {
	Length int
	Level  float64
}

// StepSeries generates a 1-row matrix of piecewise-constant data with
// additive uniform noise in [-noise, noise]. The true changepoints are
// the 1-based start positions of every step after the first.
func (r *RNG) StepSeries(steps []StepSpec, noise float64) (*mat.Dense, []int) {
	var n int
	for _, s := range steps {
		n += s.Length
	}

	vals := make([]float64, 0, n)
	var changepoints []int
	for i, s := range steps {
		if i > 0 {
			changepoints = append(changepoints, len(vals)+1)
		}
		for j := 0; j < s.Length; j++ {
			vals = append(vals, s.Level+(2*r.Float64()-1)*noise)
		}
	}

	return mat.NewDense(1, n, vals), changepoints
}

// MultiChannelStepSeries generates a matrix with rows channels, each
// an independently noised copy of the same piecewise-constant series.
func (r *RNG) MultiChannelStepSeries(rows int, steps []StepSpec, noise float64) (*mat.Dense, []int) {
	var n int
	for _, s := range steps {
		n += s.Length
	}

	m := mat.NewDense(rows, n, nil)
	var changepoints []int
	for row := 0; row < rows; row++ {
		col := 0
		for i, s := range steps {
			if row == 0 && i > 0 {
				changepoints = append(changepoints, col+1)
			}
			for j := 0; j < s.Length; j++ {
				m.Set(row, col, s.Level+(2*r.Float64()-1)*noise)
				col++
			}
		}
	}

	return m, changepoints
}

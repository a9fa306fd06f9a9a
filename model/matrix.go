package model

import "gonum.org/v1/gonum/mat"

// columnSlice is a zero-copy view of a contiguous column range of an
// underlying matrix. It exists so segment views work for any
// mat.Matrix, not just types that implement their own slicing.
type columnSlice struct {
	m    mat.Matrix
	from int // inclusive, 0-based
	to   int // exclusive
}

// ColumnSlice returns a read-only view of columns [from, to) of m.
// Indices are 0-based. ColumnSlice panics if the range is out of
// bounds.
func ColumnSlice(m mat.Matrix, from, to int) mat.Matrix {
	_, c := m.Dims()
	if from < 0 || to > c || from >= to {
		panic("model: column slice out of bounds")
	}
	// Unwrap nested slices so deep recursions stay flat.
	if cs, ok := m.(*columnSlice); ok {
		return &columnSlice{m: cs.m, from: cs.from + from, to: cs.from + to}
	}
	return &columnSlice{m: m, from: from, to: to}
}

// Dims implements mat.Matrix.
func (cs *columnSlice) Dims() (r, c int) {
	r, _ = cs.m.Dims()
	return r, cs.to - cs.from
}

// At implements mat.Matrix.
func (cs *columnSlice) At(i, j int) float64 {
	if j < 0 || j >= cs.to-cs.from {
		panic("model: column index out of range")
	}
	return cs.m.At(i, cs.from+j)
}

// T implements mat.Matrix.
func (cs *columnSlice) T() mat.Matrix {
	return mat.Transpose{Matrix: cs}
}

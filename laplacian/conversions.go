// Package laplacian: bridge to gonum's mat64 for eigendecomposition.

package laplacian

import (
	"github.com/gonum/matrix/mat64"

	"github.com/katalvlaran/spectral/matrix"
)

// zeroEntry marks entries the copy loop may skip: a fresh Dense already
// holds zeros everywhere.
const zeroEntry = 0.0

// ToMat64 copies a matrix into a gonum mat64.Dense so the result can be fed
// straight into mat64's eigen solvers (mat64.EigenSym and friends). The
// input is read once and never retained.
//
// Errors: matrix.ErrNilMatrix on nil input.
//
// Complexity: Time O(r·c), Space O(r·c).
func ToMat64(m matrix.Matrix) (*mat64.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, laplacianErrorf(opToMat64, err)
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are valid by construction
			data[i*cols+j] = v
		}
	}

	return mat64.NewDense(rows, cols, data), nil
}

// FromMat64 copies a gonum mat64.Dense back into this package's matrix
// representation, the inverse of ToMat64.
//
// Errors: matrix.ErrNilMatrix on nil input.
//
// Complexity: Time O(r·c), Space O(r·c).
func FromMat64(m *mat64.Dense) (*matrix.Dense, error) {
	if m == nil {
		return nil, laplacianErrorf(opFromMat64, matrix.ErrNilMatrix)
	}

	rows, cols := m.Dims()
	res, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, laplacianErrorf(opFromMat64, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = m.At(i, j)
			if v == zeroEntry {
				continue // fresh Dense is zero-initialized already
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, laplacianErrorf(opFromMat64, err)
			}
		}
	}

	return res, nil
}

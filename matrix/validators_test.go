// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// TestValidateNotNil covers the nil and non-nil branches.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateSquare covers square and non-square inputs (non-nil by contract).
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"3x2", MustDense(t, 3, 2), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateSquareNonNil adds the nil branch on top of squareness.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 2)))
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateBinarySameShape covers the composite's nil checks.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, m), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(m, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(m, MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(m, MustDense(t, 2, 2)))
}

// TestValidateMulCompatible covers nil inputs and inner-dimension checks.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 4)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

// TestValidateVecLen covers nil vectors and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 3), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1, 2}, 3), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, 3))
}

// TestValidateDiagonal covers structure and content checks on both paths.
func TestValidateDiagonal(t *testing.T) {
	t.Parallel()

	diag := NewFilledDense(t, 3, 3, []float64{
		2, 0, 0,
		0, 5, 0,
		0, 0, 0, // zero diagonal entries are fine, only off-diagonal matters
	})
	offDiag := NewFilledDense(t, 3, 3, []float64{
		2, 0, 0,
		0, 5, 1,
		0, 0, 3,
	})

	require.NoError(t, matrix.ValidateDiagonal(diag))
	require.NoError(t, matrix.ValidateDiagonal(hide{diag})) // generic fallback path

	require.ErrorIs(t, matrix.ValidateDiagonal(offDiag), matrix.ErrNotDiagonal)
	require.ErrorIs(t, matrix.ValidateDiagonal(hide{offDiag}), matrix.ErrNotDiagonal)

	require.ErrorIs(t, matrix.ValidateDiagonal(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateDiagonal(nil), matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over any Matrix implementation.
// Covers matrix multiplication, element-wise subtraction, transpose,
// matrix-vector product, decimal rounding, and tolerant comparison. All
// kernels perform strict fail-fast validation, never mutate their inputs,
// and return freshly allocated results.
//
// Notes:
//   - Every kernel uses the central validators and wraps sentinels via
//     matrixErrorf at its boundary.
//   - Each kernel carries a *Dense fast path over the flat backing slice and
//     a generic At/Set fallback with a fixed deterministic loop order.

package matrix

import (
	"fmt"
	"math"
)

// zeroSum is the initial accumulator value for dot-product style loops.
const zeroSum = 0.0

// maxRoundDigits bounds Round's digit count to float64's decimal precision.
const maxRoundDigits = 15

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opRound     = "Round"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is. Call only with
// a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If both are *Dense, use i→k→j with row-major strides and skip
//     zero A[i,k]; otherwise use a generic i→j→k accumulation.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C; inputs immutable.
//   - Zero-skip pays off on the sparse-ish adjacency matrices this module
//     produces (graph weight matrices are mostly zeros).
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to stay on the flat row-major path.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast path: both operands are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero rows of work
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate Dense(rows, cols).
//   - Stage 2: Flat 0..n-1 loop when both are *Dense, else fixed i→j fallback.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast path: *Dense with *Dense, single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: *Dense fast path maps data[i*cols+j] → res.data[j*rows+i];
//     fallback uses At/Set in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product y = M·x.
//
// Implementation:
//   - Stage 1: Validate m non-nil and len(x) == m.Cols.
//   - Stage 2: *Dense fast path runs flat row-major dot products with a
//     zero-skip on x(j); fallback accumulates via At.
//
// Inputs:
//   - m: matrix with shape (r × c).
//   - x: vector of length c (nil is rejected).
//
// Returns:
//   - []float64: y of length r.
//
// Errors:
//   - ErrNilMatrix (nil matrix or vector), ErrDimensionMismatch (length).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: flat row-major dot products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < rows; i++ {
			acc = zeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: generic accumulation in fixed i→j order.
	var i, j int
	var acc, mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = zeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Round returns a copy of m with every element rounded to the given number of
// decimal digits, ties away from zero. The input is never mutated.
//
// Implementation:
//   - Stage 1: Validate m non-nil and 0 <= digits <= 15.
//   - Stage 2: Scale by 10^digits, math.Round, scale back; flat loop for
//     *Dense, fixed i→j fallback otherwise.
//
// Behavior highlights:
//   - Negative zero results are normalized to +0 so printed output is stable.
//   - NaN/Inf entries pass through unchanged (math.Round is the identity there).
//
// Inputs:
//   - m: source matrix.
//   - digits: decimal places to keep, within [0, 15].
//
// Returns:
//   - *Dense: rounded copy with m's shape.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidDigits (digits out of range).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use for display/quantization only; keep full precision in pipelines.
func Round(m Matrix, digits int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	if digits < 0 || digits > maxRoundDigits {
		return nil, matrixErrorf(opRound, ErrInvalidDigits)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}

	pow := math.Pow10(digits)

	// roundAt rounds one value, normalizing -0 to +0.
	roundAt := func(v float64) float64 {
		r := math.Round(v*pow) / pow
		if r == 0 {
			r = 0 // collapse negative zero
		}

		return r
	}

	// Fast path: flat loop over the backing slice.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = roundAt(dm.data[idx])
		}

		return res, nil
	}

	// Fallback: fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRound, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, roundAt(v)); err != nil {
				return nil, matrixErrorf(opRound, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// AllClose reports whether a and b match element-wise within tolerances:
// |a[i,j] - b[i,j]| <= atol + rtol*|b[i,j]| for every (i, j).
//
// Implementation:
//   - Stage 1: Reject NaN/Inf tolerances; take absolute values of negatives.
//   - Stage 2: ValidateBinarySameShape; flat fast path for *Dense pairs,
//     fixed i→j fallback otherwise.
//
// Behavior highlights:
//   - NaN entries never compare close (IEEE comparison semantics).
//   - rtol scales with b, making b the reference operand.
//
// Errors:
//   - ErrBadTolerance (non-finite tolerance), ErrNilMatrix,
//     ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c) worst case, early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	rows, cols := a.Rows(), a.Cols()

	// isClose reports one element-wise comparison.
	isClose := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Fast path: both operands are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				if !isClose(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // bounds are valid after shape validation
			bv, _ = b.At(i, j)
			if !isClose(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

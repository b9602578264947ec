// Package laplacian: the three normalizers and the selector dispatcher.

package laplacian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// validatePair runs the shared precondition checks of every normalizer:
// deg must be a strictly diagonal square matrix, adj a square matrix of the
// same shape. Returns the first violation wrapped under op.
func validatePair(op string, adj, deg matrix.Matrix) error {
	if err := matrix.ValidateDiagonal(deg); err != nil {
		return laplacianErrorf(op, err)
	}
	if err := matrix.ValidateSquareNonNil(adj); err != nil {
		return laplacianErrorf(op, err)
	}
	if err := matrix.ValidateSameShape(adj, deg); err != nil {
		return laplacianErrorf(op, err)
	}

	return nil
}

// scaleMatrix builds the diagonal scaling matrix shared by Symmetric and
// RandomWalk: entry k is transform(D[k][k]) when the degree is strictly
// positive. A non-positive degree either leaves the entry zero (default) or
// fails with ErrSingularDegree (StrictDegrees), naming the node index.
func scaleMatrix(op string, deg matrix.Matrix, o Options, transform func(float64) float64) (*matrix.Dense, error) {
	n := deg.Rows()
	scale, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, laplacianErrorf(op, err)
	}

	var (
		k int
		d float64
	)
	for k = 0; k < n; k++ {
		d, _ = deg.At(k, k) // bounds are valid after shape validation
		if d <= 0 {
			if o.StrictDegrees {
				return nil, laplacianErrorf(op, fmt.Errorf("node index %d: %w", k, ErrSingularDegree))
			}

			continue // isolated node: scale entry stays zero
		}
		if err = scale.Set(k, k, transform(d)); err != nil {
			return nil, laplacianErrorf(op, err)
		}
	}

	return scale, nil
}

// applyRounding is the shared finish step of every normalizer: when the
// RoundDigits option is set it snaps the result to the requested precision,
// otherwise the product passes through untouched.
func applyRounding(op string, m *matrix.Dense, o Options) (*matrix.Dense, error) {
	if o.RoundDigits == DefaultRoundDigits {
		return m, nil
	}

	rounded, err := matrix.Round(m, o.RoundDigits)
	if err != nil {
		return nil, laplacianErrorf(op, err)
	}

	return rounded, nil
}

// Symmetric computes the symmetric normalized adjacency S·A·S with
// S = diag(1/√D[k][k]).
//
// Implementation:
//   - Validate the (adj, deg) pair, build the 1/√d scaling diagonal, then
//     evaluate the sandwich product in two dense multiplications.
//
// Behavior highlights:
//   - The result stays symmetric whenever adj is symmetric.
//   - Zero-degree nodes produce an all-zero row and column (default policy);
//     WithStrictDegrees turns them into ErrSingularDegree instead.
//
// Inputs:
//   - adj: square adjacency matrix; deg: matching diagonal degree matrix;
//     opts: WithStrictDegrees, WithRoundDigits.
//
// Returns:
//   - *matrix.Dense: the n×n normalized matrix.
//
// Errors:
//   - Validation sentinels from the matrix package; ErrSingularDegree in
//     strict mode.
//
// Complexity: Time O(n³) (two dense products), Space O(n²).
func Symmetric(adj, deg matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := newOptions(opts...)
	if err := validatePair(opSymmetric, adj, deg); err != nil {
		return nil, err
	}

	scale, err := scaleMatrix(opSymmetric, deg, o, func(d float64) float64 { return 1 / math.Sqrt(d) })
	if err != nil {
		return nil, err
	}

	half, err := matrix.Mul(scale, adj)
	if err != nil {
		return nil, laplacianErrorf(opSymmetric, err)
	}
	res, err := matrix.Mul(half, scale)
	if err != nil {
		return nil, laplacianErrorf(opSymmetric, err)
	}

	return applyRounding(opSymmetric, res, o)
}

// RandomWalk computes the random-walk normalized adjacency R·A with
// R = diag(1/D[k][k]), scaling each row by its node's degree.
//
// Every row of the result sums to 1 on a non-negative adjacency with
// positive degrees (row-stochastic form). Zero-degree nodes yield an
// all-zero row by default; WithStrictDegrees upgrades them to
// ErrSingularDegree.
//
// Errors: validation sentinels from the matrix package; ErrSingularDegree
// in strict mode.
//
// Complexity: Time O(n³), Space O(n²).
func RandomWalk(adj, deg matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := newOptions(opts...)
	if err := validatePair(opRandomWalk, adj, deg); err != nil {
		return nil, err
	}

	scale, err := scaleMatrix(opRandomWalk, deg, o, func(d float64) float64 { return 1 / d })
	if err != nil {
		return nil, err
	}

	res, err := matrix.Mul(scale, adj)
	if err != nil {
		return nil, laplacianErrorf(opRandomWalk, err)
	}

	return applyRounding(opRandomWalk, res, o)
}

// Adaptive computes the adaptive normalized adjacency T·A·T where T is a
// diagonal matrix derived from the neighborhood degree profile of each node:
//
//	local[k] = (Σ over j with adj[k][j] > 0 of D[j][j]) / D[k][k]
//	T[k][k]  = 1/√local[k]  when local[k] > 0, else 0
//
// Only strictly positive adjacency entries count as neighbors, so negative
// edges influence a node's own degree but never its neighborhood average.
// Nodes without positive neighbors, and nodes of zero degree, scale to zero;
// the StrictDegrees option does not apply here because the zero fallback is
// part of the formula.
//
// Errors: validation sentinels from the matrix package.
//
// Complexity: Time O(n³), Space O(n²).
func Adaptive(adj, deg matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := newOptions(opts...)
	if err := validatePair(opAdaptive, adj, deg); err != nil {
		return nil, err
	}

	n := adj.Rows()
	scale, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, laplacianErrorf(opAdaptive, err)
	}

	var (
		k, j      int
		dk, dj, a float64
		posSum    float64
		neighbors int
		local, t  float64
	)
	for k = 0; k < n; k++ {
		dk, _ = deg.At(k, k) // bounds are valid after shape validation
		posSum, neighbors = 0, 0
		for j = 0; j < n; j++ {
			a, _ = adj.At(k, j)
			if a > 0 {
				dj, _ = deg.At(j, j)
				posSum += dj
				neighbors++
			}
		}
		local = 0
		if neighbors > 0 && dk > 0 {
			local = posSum / dk
		}
		t = 0
		if local > 0 {
			t = 1 / math.Sqrt(local)
		}
		if err = scale.Set(k, k, t); err != nil {
			return nil, laplacianErrorf(opAdaptive, err)
		}
	}

	half, err := matrix.Mul(scale, adj)
	if err != nil {
		return nil, laplacianErrorf(opAdaptive, err)
	}
	res, err := matrix.Mul(half, scale)
	if err != nil {
		return nil, laplacianErrorf(opAdaptive, err)
	}

	return applyRounding(opAdaptive, res, o)
}

// Laplacian dispatches on the normalization selector and runs the matching
// normalizer.
//
// Behavior highlights:
//   - NormSymmetric, NormRandomWalk and NormAdaptive route to their
//     normalizers; any other value, the empty string included, silently
//     falls back to NormSymmetric. Only the three canonical lowercase
//     spellings are recognized.
//   - A failing normalizer surfaces as ErrComputation wrapping the original
//     error, so callers can match either the category or the root cause
//     with errors.Is.
//
// Inputs:
//   - adj, deg: the matrix pair accepted by every normalizer; algo: the
//     selector; opts: WithStrictDegrees, WithRoundDigits (forwarded).
//
// Returns:
//   - *matrix.Dense: the normalized matrix of the resolved algorithm.
//
// Errors:
//   - ErrComputation wrapping the normalizer's error.
//
// Complexity: that of the resolved normalizer, O(n³).
func Laplacian(adj, deg matrix.Matrix, algo Normalization, opts ...Option) (*matrix.Dense, error) {
	resolved := algo.resolve()

	var (
		res *matrix.Dense
		err error
	)
	switch resolved {
	case NormRandomWalk:
		res, err = RandomWalk(adj, deg, opts...)
	case NormAdaptive:
		res, err = Adaptive(adj, deg, opts...)
	default:
		res, err = Symmetric(adj, deg, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w: %w", opLaplacian, resolved, ErrComputation, err)
	}

	return res, nil
}

// IdentityShift converts a normalized adjacency N into the corresponding
// Laplacian form I − N, the spectrum-shifted matrix eigen-solvers usually
// want. The input is not modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare via validation.
//
// Complexity: Time O(n²), Space O(n²).
func IdentityShift(normalized matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(normalized); err != nil {
		return nil, laplacianErrorf(opIdentityShift, err)
	}

	eye, err := matrix.NewIdentity(normalized.Rows())
	if err != nil {
		return nil, laplacianErrorf(opIdentityShift, err)
	}
	res, err := matrix.Sub(eye, normalized)
	if err != nil {
		return nil, laplacianErrorf(opIdentityShift, err)
	}

	return res, nil
}

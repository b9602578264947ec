// Package laplacian: diagonal degree matrix from an adjacency matrix.

package laplacian

import (
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// Degrees builds the diagonal degree matrix of an adjacency matrix:
// D[k][k] = Σ_j |adj[k][j]|, every off-diagonal entry zero.
//
// Absolute values keep the degree meaningful on signed graphs; a node whose
// incident weights cancel (for example +1 and -1) still carries mass. On a
// symmetric adjacency the row sums equal the column sums, so either
// convention yields the same matrix.
//
// Inputs:
//   - adj: square adjacency matrix (symmetry is not required here).
//
// Returns:
//   - *matrix.Dense: n×n diagonal degree matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare via validation.
//
// Complexity: Time O(n²), Space O(n²).
func Degrees(adj matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(adj); err != nil {
		return nil, laplacianErrorf(opDegrees, err)
	}

	n := adj.Rows()
	deg, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, laplacianErrorf(opDegrees, err)
	}

	var (
		k, j int
		sum  float64
		v    float64
	)
	for k = 0; k < n; k++ {
		sum = 0
		for j = 0; j < n; j++ {
			v, _ = adj.At(k, j) // bounds are valid after shape validation
			sum += math.Abs(v)
		}
		if err = deg.Set(k, k, sum); err != nil {
			return nil, laplacianErrorf(opDegrees, err)
		}
	}

	return deg, nil
}

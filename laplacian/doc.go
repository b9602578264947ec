// Package laplacian builds the spectral matrix bundle of a weighted graph:
// a symmetric dense adjacency matrix from a string-id edge list, the diagonal
// degree matrix of absolute row sums, and a normalized Laplacian in one of
// three variants. The bundle feeds a downstream eigensolver (see the mat64
// conversions for the gonum hand-off).
//
// Pipeline:
//
//	edges ──BuildAdjacency──▶ A ──Degrees──▶ D
//	(A, D, selector) ──Laplacian──▶ L
//	Compute = all of the above ──▶ *Result
//
// Normalizations (selector values, see Normalization):
//
//	"sym" - S·A·S with S[i][i] = 1/√D[i][i]        (default, and the
//	        fallback for any unrecognized selector)
//	"rw"  - R·A  with R[i][i] = 1/D[i][i]          (row-stochastic on
//	        uniform positive weights)
//	"ad"  - T·A·T with T[i][i] = 1/√local[i], where local[i] scales by the
//	        degree mass of i's strictly positive neighbors
//
// Degenerate degrees: by default every normalizer zeroes the scale factor of
// a zero-degree node, so isolated nodes contribute zero rows and columns and
// no NaN/Inf ever leaves this package. WithStrictDegrees() switches "sym" and
// "rw" to fail fast with ErrSingularDegree instead; "ad" is guarded by
// construction and ignores the option.
//
// Node ids: edge endpoints are strings that must parse as non-negative
// base-10 integers. Indices come from the ascending order of the distinct
// parsed ids, so a dense id range 0..n-1 maps to itself and sparse id spaces
// still produce a compact, correctly sized matrix.
//
// Errors: sentinel values in errors.go, matched with errors.Is. Builder and
// degree errors propagate directly; normalizer failures are wrapped with
// ErrComputation at the Laplacian dispatch boundary, original cause attached.
//
// Complexity: O(n²) construction, O(n³) for the normalizer products, n being
// the node count. All operations are pure and re-entrant; results share no
// state between calls.
//
// Example:
//
//	res, err := laplacian.Compute(edges, laplacian.NormSymmetric)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Laplacian())
package laplacian

// Package laplacian: the immutable pipeline result and the one-call driver.

package laplacian

import "github.com/katalvlaran/spectral/matrix"

// Result bundles the three matrices of one pipeline run together with the
// node-id order that defines their rows and columns. Instances are built
// once by Compute and never written afterwards, so a Result may be shared
// across goroutines freely.
//
// Accessors hand out the matrices the Result holds, not copies. Treat them
// as read-only; callers that need a private mutable matrix should Clone().
type Result struct {
	adjacency *matrix.Dense
	degree    *matrix.Dense
	laplacian *matrix.Dense
	nodeIDs   []int
	algorithm Normalization
}

// Adjacency returns the symmetric adjacency matrix of the run.
func (r *Result) Adjacency() *matrix.Dense { return r.adjacency }

// Degree returns the diagonal degree matrix of the run.
func (r *Result) Degree() *matrix.Dense { return r.degree }

// Laplacian returns the normalized matrix produced by the resolved
// algorithm.
func (r *Result) Laplacian() *matrix.Dense { return r.laplacian }

// NodeIDs returns the ascending node ids backing the matrix row/column
// order: row k of every matrix in this Result describes node NodeIDs()[k].
func (r *Result) NodeIDs() []int { return r.nodeIDs }

// Algorithm returns the normalization that actually ran. When Compute was
// handed an unknown selector this is NormSymmetric, the fallback, not the
// original input.
func (r *Result) Algorithm() Normalization { return r.algorithm }

// Compute runs the whole preprocessing pipeline in one call:
// adjacency from the edge list, degrees from the adjacency, then the
// normalizer selected by algo (unknown selectors fall back to
// NormSymmetric, silently).
//
// Inputs:
//   - edges: non-empty undirected weighted edge list; algo: normalization
//     selector; opts: WithStrictDegrees, WithRoundDigits (forwarded to the
//     normalizer).
//
// Returns:
//   - *Result: the immutable bundle of all three matrices.
//
// Errors:
//   - ErrNoEdges, ErrBadNodeID, ErrNonFiniteWeight from the adjacency
//     stage; ErrComputation (wrapping the root cause) from the
//     normalization stage.
//
// Complexity: Time O(E + n³), Space O(n²).
func Compute(edges []Edge, algo Normalization, opts ...Option) (*Result, error) {
	ids, adj, err := BuildAdjacency(edges)
	if err != nil {
		return nil, err
	}

	deg, err := Degrees(adj)
	if err != nil {
		return nil, err
	}

	lap, err := Laplacian(adj, deg, algo, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		adjacency: adj,
		degree:    deg,
		laplacian: lap,
		nodeIDs:   ids,
		algorithm: algo.resolve(),
	}, nil
}

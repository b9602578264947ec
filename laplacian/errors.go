// Package laplacian: sentinel error set and wrap helper.
// Sentinels are returned bare or wrapped with operation context via
// laplacianErrorf; tests and callers match them with errors.Is.

package laplacian

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEdges indicates an empty edge list; there is no graph to build.
	// Usage: returned by BuildAdjacency and Compute before any allocation.
	ErrNoEdges = errors.New("laplacian: edge list is empty")

	// ErrBadNodeID indicates an edge endpoint that does not parse as a
	// non-negative base-10 integer. The wrap names the offending literal.
	// Usage: returned by BuildAdjacency; propagates directly out of Compute.
	ErrBadNodeID = errors.New("laplacian: node id is not a non-negative integer")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or ±Inf.
	// Usage: returned by BuildAdjacency; negative finite weights are legal.
	ErrNonFiniteWeight = errors.New("laplacian: edge weight must be finite")

	// ErrSingularDegree indicates a zero (or negative) degree entry under the
	// strict-degree policy, where scaling by 1/D[i][i] is impossible.
	// Usage: returned by Symmetric and RandomWalk when WithStrictDegrees()
	// is set; reaches Compute callers wrapped in ErrComputation.
	ErrSingularDegree = errors.New("laplacian: degree matrix is singular")

	// ErrComputation wraps any normalizer failure at the Laplacian dispatch
	// boundary; the original cause stays in the chain for errors.Is.
	ErrComputation = errors.New("laplacian: laplacian computation failed")

	// ErrNoNodes indicates an empty node-record sequence for the feature
	// matrix builder.
	ErrNoNodes = errors.New("laplacian: node list is empty")

	// ErrNoFeatureColumns indicates that the first node record carries no
	// eigenvector_* keys, leaving the feature matrix without columns.
	ErrNoFeatureColumns = errors.New("laplacian: first record has no eigenvector keys")

	// ErrBadDigits indicates a WithRoundDigits argument outside [0, 15].
	// Usage: panic message of the option constructor.
	ErrBadDigits = errors.New("laplacian: RoundDigits must be within [0, 15]")
)

// Operation name constants for unified error wrapping.
const (
	opBuildAdjacency = "BuildAdjacency"
	opDegrees        = "Degrees"
	opSymmetric      = "Symmetric"
	opRandomWalk     = "RandomWalk"
	opAdaptive       = "Adaptive"
	opLaplacian      = "Laplacian"
	opIdentityShift  = "IdentityShift"
	opFeatures       = "BuildFeatureMatrix"
	opToMat64        = "ToMat64"
	opFromMat64      = "FromMat64"
)

// laplacianErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with a non-nil err.
func laplacianErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_random_sparse.go - implementation of the RandomSparse(n, p) generator.
//
// Canonical model:
//   - Erdős-Rényi-like sampling: each unordered pair {i, j} with i < j is
//     included independently with probability p.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - An RNG is required regardless of p (else ErrNeedSeed); the contract
//     stays uniform instead of special-casing the degenerate probabilities.
//   - Trial order is stable: i ascending, then j > i ascending. A pair is
//     included when rng.Float64() < p, so p=0 emits nothing and p=1
//     emits K_n.
//   - Weight policy: cfg.weightFn(cfg.rng) per included edge.
//   - May emit an empty list; feeding that downstream surfaces
//     laplacian.ErrNoEdges.
//
// Complexity: O(n²) Bernoulli trials; space proportional to emitted edges.
// Determinism: fixed seed and options reproduce the exact edge list.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/spectral/laplacian"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 2
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse samples an Erdős-Rényi-like graph over n nodes with
// independent edge probability p and returns it as an edge list.
func RandomSparse(n int, p float64, opts ...Option) ([]laplacian.Edge, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%g not in [%g,%g]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedSeed)
	}

	edges := make([]laplacian.Edge, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, laplacian.Edge{
					Source: decimalID(i),
					Target: decimalID(j),
					Weight: cfg.weightFn(cfg.rng),
				})
			}
		}
	}

	return edges, nil
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_complete.go - implementation of the Complete(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Emits every unordered pair {i, j} with i < j, outer index ascending.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, default constant 1.
//
// Complexity: O(n²) time and space.
// Determinism: stable emission order; stable weights for a fixed seed.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/spectral/laplacian"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns the complete simple graph K_n as an edge list.
func Complete(n int, opts ...Option) ([]laplacian.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	cfg := newGenConfig(opts...)
	edges := make([]laplacian.Edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, laplacian.Edge{
				Source: decimalID(i),
				Target: decimalID(j),
				Weight: cfg.weightFn(cfg.rng),
			})
		}
	}

	return edges, nil
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_path.go - implementation of the Path(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Emits edges (i-1)-(i) for i = 1..n-1 in increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, default constant 1.
//
// Complexity: O(n) time, O(n) space.
// Determinism: stable emission order; stable weights for a fixed seed.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/spectral/laplacian"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns the n-node simple path 0-1-...-(n-1) as an edge list.
func Path(n int, opts ...Option) ([]laplacian.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	cfg := newGenConfig(opts...)
	edges := make([]laplacian.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, laplacian.Edge{
			Source: decimalID(i - 1),
			Target: decimalID(i),
			Weight: cfg.weightFn(cfg.rng),
		})
	}

	return edges, nil
}

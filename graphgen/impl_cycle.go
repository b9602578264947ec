// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_cycle.go - implementation of the Cycle(n) generator.
//
// Contract:
//   - n >= 3 (else ErrTooFewNodes; a 2-cycle would duplicate the path edge).
//   - Emits edges i-(i+1) for i = 0..n-2, then the closing edge (n-1)-0.
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
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns the n-node simple cycle 0-1-...-(n-1)-0 as an edge list.
func Cycle(n int, opts ...Option) ([]laplacian.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	cfg := newGenConfig(opts...)
	edges := make([]laplacian.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, laplacian.Edge{
			Source: decimalID(i - 1),
			Target: decimalID(i),
			Weight: cfg.weightFn(cfg.rng),
		})
	}
	edges = append(edges, laplacian.Edge{
		Source: decimalID(n - 1),
		Target: decimalID(0),
		Weight: cfg.weightFn(cfg.rng),
	})

	return edges, nil
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_star.go - implementation of the Star(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - The hub is node 0; leaves are 1..n-1. Numeric ids keep the output
//     parseable downstream, so there is no symbolic "Center" label here.
//   - Emits spokes 0-i for i = 1..n-1 in increasing leaf order.
//   - Weight policy: cfg.weightFn(cfg.rng) per spoke, default constant 1.
//
// Complexity: O(n) time, O(n) space.
// Determinism: stable emission order; stable weights for a fixed seed.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/spectral/laplacian"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHubIndex = 0
)

// Star returns the n-node star with hub 0 and n-1 leaves as an edge list.
func Star(n int, opts ...Option) ([]laplacian.Edge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	cfg := newGenConfig(opts...)
	hub := decimalID(starHubIndex)
	edges := make([]laplacian.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, laplacian.Edge{
			Source: hub,
			Target: decimalID(i),
			Weight: cfg.weightFn(cfg.rng),
		})
	}

	return edges, nil
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// impl_grid.go - implementation of the Grid(rows, cols) generator.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right and bottom neighbor
//     per cell).
//   - Node ids are row-major indices: cell (r, c) is node r*cols + c. The
//     coordinate pair never appears in the id because downstream parsing
//     expects plain non-negative integers.
//
// Contract:
//   - rows >= 1, cols >= 1 and rows*cols >= 2 (else ErrTooFewNodes; a 1x1
//     grid has no edges to emit).
//   - For each cell in row-major order, emits the Right edge then the
//     Bottom edge where those neighbors exist.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, default constant 1.
//
// Complexity: O(rows*cols) time and space.
// Determinism: stable emission order; stable weights for a fixed seed.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/spectral/laplacian"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	minGridCells = 2
)

// Grid returns the rows×cols orthogonal grid as an edge list.
func Grid(rows, cols int, opts ...Option) ([]laplacian.Edge, error) {
	if rows < minGridDim || cols < minGridDim || rows*cols < minGridCells {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (need each >= %d and at least %d cells): %w",
			methodGrid, rows, cols, minGridDim, minGridCells, ErrTooFewNodes)
	}

	cfg := newGenConfig(opts...)
	edges := make([]laplacian.Edge, 0, 2*rows*cols)
	var r, c, id int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			id = r*cols + c
			if c+1 < cols {
				edges = append(edges, laplacian.Edge{
					Source: decimalID(id),
					Target: decimalID(id + 1),
					Weight: cfg.weightFn(cfg.rng),
				})
			}
			if r+1 < rows {
				edges = append(edges, laplacian.Edge{
					Source: decimalID(id),
					Target: decimalID(id + cols),
					Weight: cfg.weightFn(cfg.rng),
				})
			}
		}
	}

	return edges, nil
}

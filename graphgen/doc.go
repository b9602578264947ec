// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// doc.go - package overview.

// Package graphgen builds deterministic edge-list fixtures for the
// laplacian pipeline.
//
// Every generator returns []laplacian.Edge with decimal string ids
// ("0", "1", ...) and constant unit weights by default, exactly the input
// shape laplacian.BuildAdjacency consumes:
//
//	edges, err := graphgen.Cycle(8)
//	if err != nil { ... }
//	res, err := laplacian.Compute(edges, laplacian.NormSymmetric)
//
// Topologies:
//
//   - Path(n)            - simple path 0-1-...-(n-1), n >= 2
//   - Cycle(n)           - simple cycle with closing edge, n >= 3
//   - Star(n)            - hub 0 with n-1 leaves, n >= 2
//   - Complete(n)        - K_n over all unordered pairs, n >= 2
//   - Grid(rows, cols)   - 4-neighborhood grid, row-major ids
//   - RandomSparse(n, p) - Erdős-Rényi sampling, seeded rng required
//
// Concat and Shift compose generator outputs into multi-cluster graphs.
//
// Determinism: generators are pure given their options. Stochastic
// generators demand an explicit seed (WithSeed/WithRand) and fail with
// ErrNeedSeed otherwise; the same seed always reproduces the same list.
// Weights come from WithWeightFn when set, otherwise every edge weighs 1.
package graphgen

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - genConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - rng      = nil                (stochastic generators must be seeded)
//   - weightFn = constWeight        (every edge weighs 1)

package graphgen

import (
	"math/rand"
	"strconv"
)

// genConfig aggregates the knobs used by generators.
// It is passed by VALUE to generator bodies (immutable to callers).
type genConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// Weight generator for edges; receives the configured RNG (possibly nil).
	weightFn func(*rand.Rand) float64
}

// defaultConstWeight is the weight every edge carries unless WithWeightFn
// overrides the policy.
const defaultConstWeight = 1.0

// constWeight ignores the RNG and returns the default edge weight.
func constWeight(*rand.Rand) float64 { return defaultConstWeight }

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order, last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:      nil,
		weightFn: constWeight,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders a node index as a base-10 string ("0","1","2",...),
// exactly the id shape laplacian.BuildAdjacency parses back.
func decimalID(i int) string {
	return strconv.Itoa(i)
}

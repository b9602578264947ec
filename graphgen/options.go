// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// options.go - functional options for the graphgen package.
//
// Contract:
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand,
//     and the same seed always reproduces the same edge list.

package graphgen

import "math/rand"

// Option customizes a generator by mutating its resolved genConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithSeed attaches a fresh deterministic RNG seeded with the given value.
// Use this to lock RandomSparse outcomes in tests and examples.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG, sharing its stream with the caller.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the configured (possibly nil) RNG and must be deterministic
// with respect to its state. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("graphgen: WithWeightFn(nil)")
	}

	return func(c *genConfig) {
		c.weightFn = fn
	}
}

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// errors.go - sentinel errors for the graphgen package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are context, not API.
//   - Generators attach method context via %w wrapping and never panic;
//     validation panics are confined to option constructors (WithX...).

package graphgen

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller
// than the minimum the requested topology needs.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("graphgen: node count too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedSeed indicates that a stochastic generator ran without an RNG;
// supply WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedSeed) { /* seed the generator */ }.
var ErrNeedSeed = errors.New("graphgen: seeded rng is required")

// ErrBadOffset indicates a negative id offset passed to Shift; shifted ids
// must stay non-negative to remain parseable downstream.
// Usage: if errors.Is(err, ErrBadOffset) { /* fix the offset */ }.
var ErrBadOffset = errors.New("graphgen: offset must be non-negative")

// SPDX-License-Identifier: MIT
// Package: spectral/graphgen
//
// helpers.go - edge-list composition utilities.
//
// Generators emit independent lists over ids starting at 0; Shift relabels
// a list into a disjoint id range and Concat merges lists, which together
// build multi-cluster fixtures out of the primitive topologies.

package graphgen

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spectral/laplacian"
)

const methodShift = "Shift"

// Concat merges edge lists in order into a single list. Input slices are
// not modified; the result is freshly allocated.
func Concat(lists ...[]laplacian.Edge) []laplacian.Edge {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	merged := make([]laplacian.Edge, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	return merged
}

// Shift relabels every endpoint of an edge list by a non-negative offset,
// so two generator outputs can occupy disjoint id ranges before Concat.
// Weights pass through untouched.
//
// Errors: ErrBadOffset (negative offset), laplacian.ErrBadNodeID (an
// endpoint does not parse as a non-negative integer).
func Shift(edges []laplacian.Edge, offset int) ([]laplacian.Edge, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%s: offset=%d: %w", methodShift, offset, ErrBadOffset)
	}

	shifted := make([]laplacian.Edge, len(edges))
	for k, e := range edges {
		s, err := strconv.Atoi(e.Source)
		if err != nil || s < 0 {
			return nil, fmt.Errorf("%s: edge %d: node id %q: %w", methodShift, k, e.Source, laplacian.ErrBadNodeID)
		}
		t, err := strconv.Atoi(e.Target)
		if err != nil || t < 0 {
			return nil, fmt.Errorf("%s: edge %d: node id %q: %w", methodShift, k, e.Target, laplacian.ErrBadNodeID)
		}
		shifted[k] = laplacian.Edge{
			Source: decimalID(s + offset),
			Target: decimalID(t + offset),
			Weight: e.Weight,
		}
	}

	return shifted, nil
}

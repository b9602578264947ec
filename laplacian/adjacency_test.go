package laplacian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
)

// TestBuildAdjacency_PathGraph covers the canonical happy path: two edges,
// three nodes, symmetric fill.
func TestBuildAdjacency_PathGraph(t *testing.T) {
	ids, adj, err := laplacian.BuildAdjacency(pathEdges())
	require.NoError(t, err)               // well-formed input must succeed
	require.Equal(t, []int{0, 1, 2}, ids) // ascending id order
	compareExact(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, adj)
}

// TestBuildAdjacency_SelfLoopKeepsDiagonalZero checks that a self-loop
// contributes its endpoint to the node set without ever writing a weight.
func TestBuildAdjacency_SelfLoopKeepsDiagonalZero(t *testing.T) {
	edges := []laplacian.Edge{
		{Source: "0", Target: "1", Weight: 2},
		{Source: "1", Target: "1", Weight: 9}, // self-loop, must not land on the diagonal
		{Source: "5", Target: "5", Weight: 4}, // self-loop on an otherwise unseen node
	}

	ids, adj, err := laplacian.BuildAdjacency(edges)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 5}, ids) // node 5 exists despite carrying no edge weight
	compareExact(t, [][]float64{
		{0, 2, 0},
		{2, 0, 0},
		{0, 0, 0}, // isolated row for node 5
	}, adj)
}

// TestBuildAdjacency_LastWriteWins: a repeated (i, j) pair, in either
// orientation, must keep the weight seen last.
func TestBuildAdjacency_LastWriteWins(t *testing.T) {
	edges := []laplacian.Edge{
		{Source: "0", Target: "1", Weight: 1},
		{Source: "1", Target: "0", Weight: 4}, // same pair, reversed orientation
	}

	_, adj, err := laplacian.BuildAdjacency(edges)
	require.NoError(t, err)
	compareExact(t, [][]float64{
		{0, 4},
		{4, 0},
	}, adj)
}

// TestBuildAdjacency_SparseIDsCompactMapping: arbitrary non-contiguous ids
// still produce an n×n matrix indexed by sorted order.
func TestBuildAdjacency_SparseIDsCompactMapping(t *testing.T) {
	edges := []laplacian.Edge{
		{Source: "10", Target: "30", Weight: 2},
		{Source: "30", Target: "7", Weight: 1},
	}

	ids, adj, err := laplacian.BuildAdjacency(edges)
	require.NoError(t, err)
	require.Equal(t, []int{7, 10, 30}, ids) // sorted, not first-seen, order
	compareExact(t, [][]float64{
		{0, 0, 1}, // 7-30
		{0, 0, 2}, // 10-30
		{1, 2, 0},
	}, adj)
}

// TestBuildAdjacency_LeadingZerosCollapse: "007" and "7" parse to the same
// node, so an edge between the two spellings is a self-loop.
func TestBuildAdjacency_LeadingZerosCollapse(t *testing.T) {
	ids, adj, err := laplacian.BuildAdjacency([]laplacian.Edge{
		{Source: "7", Target: "007", Weight: 3},
	})
	require.NoError(t, err)
	require.Equal(t, []int{7}, ids) // a single node, not two
	compareExact(t, [][]float64{{0}}, adj)

	ids, adj, err = laplacian.BuildAdjacency([]laplacian.Edge{
		{Source: "07", Target: "8", Weight: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []int{7, 8}, ids)
	compareExact(t, [][]float64{
		{0, 2},
		{2, 0},
	}, adj)
}

// TestBuildAdjacency_NegativeWeightAllowed: signed weights pass through
// untouched; only non-finite values are rejected.
func TestBuildAdjacency_NegativeWeightAllowed(t *testing.T) {
	_, adj, err := laplacian.BuildAdjacency([]laplacian.Edge{
		{Source: "0", Target: "1", Weight: -2.5},
	})
	require.NoError(t, err)
	compareExact(t, [][]float64{
		{0, -2.5},
		{-2.5, 0},
	}, adj)
}

// TestBuildAdjacency_EmptyInput: an empty edge list is an error, never a
// 0×0 matrix.
func TestBuildAdjacency_EmptyInput(t *testing.T) {
	_, _, err := laplacian.BuildAdjacency(nil)
	require.ErrorIs(t, err, laplacian.ErrNoEdges)

	_, _, err = laplacian.BuildAdjacency([]laplacian.Edge{})
	require.ErrorIs(t, err, laplacian.ErrNoEdges)
}

// TestBuildAdjacency_BadNodeID: unparseable and negative ids fail with the
// offending literal and edge position in the message.
func TestBuildAdjacency_BadNodeID(t *testing.T) {
	tests := []struct {
		name string
		edge laplacian.Edge
	}{
		{name: "alphabetic source", edge: laplacian.Edge{Source: "x", Target: "1", Weight: 1}},
		{name: "empty target", edge: laplacian.Edge{Source: "1", Target: "", Weight: 1}},
		{name: "negative id", edge: laplacian.Edge{Source: "-3", Target: "1", Weight: 1}},
		{name: "float literal", edge: laplacian.Edge{Source: "1.5", Target: "2", Weight: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := laplacian.BuildAdjacency([]laplacian.Edge{
				{Source: "0", Target: "1", Weight: 1}, // a valid edge first: position must still be reported
				tc.edge,
			})
			require.ErrorIs(t, err, laplacian.ErrBadNodeID)
			require.Contains(t, err.Error(), "edge 1") // failing position, zero-based
		})
	}
}

// TestBuildAdjacency_NonFiniteWeight: NaN and infinities are rejected up
// front so they can never poison a degree sum.
func TestBuildAdjacency_NonFiniteWeight(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err := laplacian.BuildAdjacency([]laplacian.Edge{
			{Source: "0", Target: "1", Weight: w},
		})
		require.ErrorIs(t, err, laplacian.ErrNonFiniteWeight)
	}
}

// TestBuildAdjacency_Deterministic: the same edge list twice must give the
// same ids and the same matrix, map iteration order notwithstanding.
func TestBuildAdjacency_Deterministic(t *testing.T) {
	edges := []laplacian.Edge{
		{Source: "3", Target: "1", Weight: 0.25},
		{Source: "1", Target: "9", Weight: 1.5},
		{Source: "9", Target: "3", Weight: -4},
	}

	idsA, adjA, err := laplacian.BuildAdjacency(edges)
	require.NoError(t, err)
	idsB, adjB, err := laplacian.BuildAdjacency(edges)
	require.NoError(t, err)

	require.Equal(t, idsA, idsB)
	eq, err := matrix.AllClose(adjA, adjB, 0, 0)
	require.NoError(t, err)
	require.True(t, eq) // identical runs, identical matrices
}

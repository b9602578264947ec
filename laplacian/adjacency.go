// Package laplacian: adjacency construction from a weighted edge list.

package laplacian

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/spectral/matrix"
)

// parseNodeID parses a node id string as a non-negative base-10 integer.
// Leading zeros are tolerated ("007" is node 7, the same node as "7").
func parseNodeID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("node id %q: %w", raw, ErrBadNodeID)
	}

	return id, nil
}

// BuildAdjacency converts an edge list into a symmetric dense adjacency
// matrix plus the node-id index that defines its row/column order.
//
// Implementation:
//   - Stage 1: Validate and collect. Every endpoint must parse as a
//     non-negative integer and every weight must be finite; the distinct
//     parsed ids form the node set.
//   - Stage 2: Index. The distinct ids are sorted ascending; row/column k of
//     the matrix corresponds to ids[k]. A dense id range 0..n-1 therefore
//     maps to itself; sparse or shifted id spaces still get a compact,
//     correctly sized matrix.
//   - Stage 3: Fill. Edges are applied in input order, writing the weight at
//     [i][j] and [j][i]. Duplicate (i, j) pairs overwrite: last write wins.
//     Self-loops contribute their endpoint to the node set but never a
//     weight; the diagonal stays zero.
//
// Behavior highlights:
//   - Output is symmetric with a zero diagonal by construction.
//   - Negative weights pass through signed; only non-finite weights fail.
//   - Deterministic: identical edge lists produce identical matrices.
//
// Inputs:
//   - edges: the undirected weighted edge list; must be non-empty.
//
// Returns:
//   - []int: distinct node ids in ascending order (index position = matrix
//     row/column).
//   - *matrix.Dense: the n×n adjacency matrix, n = len(ids).
//
// Errors:
//   - ErrNoEdges (empty input), ErrBadNodeID (unparseable or negative id,
//     offending literal named), ErrNonFiniteWeight (NaN/±Inf weight).
//
// Complexity:
//   - Time O(E + n log n + n²) for validation, sort, and allocation;
//     Space O(n²).
func BuildAdjacency(edges []Edge) ([]int, *matrix.Dense, error) {
	if len(edges) == 0 {
		return nil, nil, laplacianErrorf(opBuildAdjacency, ErrNoEdges)
	}

	// Stage 1: validate every edge once, remembering the parsed endpoints so
	// the fill stage never re-parses.
	type endpoints struct{ src, tgt int }
	parsed := make([]endpoints, len(edges))
	seen := make(map[int]struct{}, len(edges)*2)
	var (
		idx  int
		e    Edge
		s, t int
		err  error
	)
	for idx, e = range edges {
		if s, err = parseNodeID(e.Source); err != nil {
			return nil, nil, laplacianErrorf(opBuildAdjacency, fmt.Errorf("edge %d: %w", idx, err))
		}
		if t, err = parseNodeID(e.Target); err != nil {
			return nil, nil, laplacianErrorf(opBuildAdjacency, fmt.Errorf("edge %d: %w", idx, err))
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, nil, laplacianErrorf(opBuildAdjacency,
				fmt.Errorf("edge %d (%s,%s): %w", idx, e.Source, e.Target, ErrNonFiniteWeight))
		}
		parsed[idx] = endpoints{src: s, tgt: t}
		seen[s] = struct{}{}
		seen[t] = struct{}{}
	}

	// Stage 2: sorted distinct ids define the row/column order.
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	index := make(map[int]int, len(ids))
	for k, id := range ids {
		index[id] = k
	}

	// Stage 3: allocate and fill symmetrically, input order, last write wins.
	n := len(ids)
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, laplacianErrorf(opBuildAdjacency, err)
	}
	var i, j int
	for idx = range edges {
		i = index[parsed[idx].src]
		j = index[parsed[idx].tgt]
		if i == j {
			continue // self-loop: node exists, diagonal stays zero
		}
		if err = adj.Set(i, j, edges[idx].Weight); err != nil {
			return nil, nil, laplacianErrorf(opBuildAdjacency, err)
		}
		if err = adj.Set(j, i, edges[idx].Weight); err != nil {
			return nil, nil, laplacianErrorf(opBuildAdjacency, err)
		}
	}

	return ids, adj, nil
}

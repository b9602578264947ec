// Package laplacian: node feature matrix extraction.

package laplacian

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/matrix"
)

// BuildFeatureMatrix assembles an n×m feature matrix from per-node property
// maps: row i holds node i's values under the keys "eigenvector_0" through
// "eigenvector_<m-1>".
//
// The column count m is the number of EigenvectorPrefix keys on the FIRST
// record; later records are never inspected for width. Lookups are by
// constructed key, so a record missing "eigenvector_j" simply contributes
// 0 at column j, and keys beyond the first record's count are ignored. A
// first record with gapped indices (say 0 and 2) therefore yields width 2
// with column 1 read from the nonexistent key "eigenvector_1".
//
// Inputs:
//   - nodes: property maps in row order; must be non-empty.
//
// Returns:
//   - *matrix.Dense: the n×m feature matrix.
//
// Errors:
//   - ErrNoNodes (empty input), ErrNoFeatureColumns (first record carries no
//     EigenvectorPrefix keys).
//
// Complexity: Time O(n·m), Space O(n·m).
func BuildFeatureMatrix(nodes []NodeProperties) (*matrix.Dense, error) {
	if len(nodes) == 0 {
		return nil, laplacianErrorf(opFeatures, ErrNoNodes)
	}

	// Width comes from the first record alone; map order never matters
	// because we only count matches here.
	width := 0
	for key := range nodes[0] {
		if strings.HasPrefix(key, EigenvectorPrefix) {
			width++
		}
	}
	if width == 0 {
		return nil, laplacianErrorf(opFeatures, ErrNoFeatureColumns)
	}

	features, err := matrix.NewDense(len(nodes), width)
	if err != nil {
		return nil, laplacianErrorf(opFeatures, err)
	}

	var (
		i, j int
	)
	for i = range nodes {
		for j = 0; j < width; j++ {
			// Absent keys read as the zero value, which is exactly the
			// fill we want.
			v := nodes[i][EigenvectorPrefix+strconv.Itoa(j)]
			if v == 0 {
				continue
			}
			if err = features.Set(i, j, v); err != nil {
				return nil, laplacianErrorf(opFeatures, err)
			}
		}
	}

	return features, nil
}

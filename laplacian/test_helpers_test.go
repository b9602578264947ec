package laplacian_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spectral/laplacian"
	"github.com/katalvlaran/spectral/matrix"
)

// mustDense builds a dense matrix from explicit rows, failing the test on
// any construction or write error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	if len(rows) == 0 || len(rows[0]) == 0 {
		t.Fatalf("mustDense: empty row spec")
	}
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("mustDense: NewDense: %v", err)
	}
	for i := range rows {
		if len(rows[i]) != len(rows[0]) {
			t.Fatalf("mustDense: ragged row %d", i)
		}
		for j, v := range rows[i] {
			if err = d.Set(i, j, v); err != nil {
				t.Fatalf("mustDense: Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// diagDense builds a square matrix carrying entries on its diagonal and
// zeros elsewhere.
func diagDense(t *testing.T, entries ...float64) *matrix.Dense {
	t.Helper()
	n := len(entries)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("diagDense: NewDense: %v", err)
	}
	for k, v := range entries {
		if err = d.Set(k, k, v); err != nil {
			t.Fatalf("diagDense: Set(%d,%d): %v", k, k, err)
		}
	}

	return d
}

// compareExact fails unless got matches want entry for entry with
// bit-exact equality.
func compareExact(t *testing.T, want [][]float64, got *matrix.Dense) {
	t.Helper()
	if got == nil {
		t.Fatalf("compareExact: got nil matrix")
	}
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("compareExact: shape %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			if err != nil {
				t.Fatalf("compareExact: At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				t.Fatalf("compareExact: [%d][%d] = %v, want %v", i, j, v, want[i][j])
			}
		}
	}
}

// compareClose fails unless got matches want entry for entry within an
// absolute tolerance.
func compareClose(t *testing.T, want [][]float64, got *matrix.Dense, atol float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("compareClose: got nil matrix")
	}
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("compareClose: shape %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			if err != nil {
				t.Fatalf("compareClose: At(%d,%d): %v", i, j, err)
			}
			if math.Abs(v-want[i][j]) > atol {
				t.Fatalf("compareClose: [%d][%d] = %v, want %v (atol %g)", i, j, v, want[i][j], atol)
			}
		}
	}
}

// expectPanic runs fn and fails unless it panics with exactly want.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expectPanic: no panic, want %q", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("expectPanic: got %v, want %q", r, want)
		}
	}()
	fn()
}

// pathEdges returns the unit-weight 3-node path 0-1-2, the smallest graph
// with two distinct degrees.
func pathEdges() []laplacian.Edge {
	return []laplacian.Edge{
		{Source: "0", Target: "1", Weight: 1},
		{Source: "1", Target: "2", Weight: 1},
	}
}

// onesVec returns an all-ones vector of length n, handy for row-sum checks
// through MatVec.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

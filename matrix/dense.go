// SPDX-License-Identifier: MIT
// Package matrix: core Matrix interface and the Dense row-major implementation.
//
// Purpose:
//   - Declare the minimal Matrix contract shared by every kernel in this package.
//   - Provide Dense, the contiguous row-major float64 type carrying the spectral
//     bundle (adjacency, degree, Laplacian, feature matrices).
//
// Notes:
//   - Constructors validate shape before allocation; storage is zero-filled.
//   - Indexers return sentinels instead of panicking; see errors.go.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is the minimal contract kernels operate on: shape queries, bounds-checked
// element access, and deep copying. Implementations must keep At/Set O(1).
type Matrix interface {
	// Rows returns the number of rows (>= 1 for constructed matrices).
	Rows() int
	// Cols returns the number of columns (>= 1 for constructed matrices).
	Cols() int
	// At returns the element at (i, j) or ErrIndexOutOfBounds.
	At(i, j int) (float64, error)
	// Set stores v at (i, j) or returns ErrIndexOutOfBounds.
	Set(i, j int, v float64) error
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values: element (i, j) lives at
// data[i*c+j].
type Dense struct {
	r, c int       // number of rows and columns (>= 1, enforced by constructors)
	data []float64 // flat backing storage, length == r*c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// String() formatting constants; named to keep the renderer free of magic literals.
const (
	fmtRowOpen  = "["  // opens each printed row
	fmtRowClose = "]"  // closes each printed row
	fmtElemSep  = " "  // separates elements within a row
	fmtRowSep   = "\n" // separates printed rows
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice; make() zero-fills it.
// Stage 3 (Finalize): return the new Dense.
// Errors: ErrInvalidDimensions on non-positive shape.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewZeros is a readability alias for NewDense: an explicit all-zero matrix.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity creates the n×n identity matrix (ones on the main diagonal).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Walk the diagonal directly on the flat buffer.
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (d *Dense) Rows() int {
	return d.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (d *Dense) Cols() int {
	return d.c
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): read from the flat slice.
// Errors: ErrIndexOutOfBounds wrapped with method context.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return d.data[row*d.c+col], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): write into the flat slice.
// Errors: ErrIndexOutOfBounds wrapped with method context.
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return denseErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	d.data[row*d.c+col] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix; the copy shares no storage
// with the receiver, so mutating one never affects the other.
// Complexity: O(r*c) time and memory.
func (d *Dense) Clone() Matrix {
	copyData := make([]float64, len(d.data))
	copy(copyData, d.data)

	return &Dense{r: d.r, c: d.c, data: copyData}
}

// String implements fmt.Stringer: one bracketed row per line, elements in
// strconv 'g' form (shortest exact representation). Intended for diagnostics
// and example output, not machine parsing.
// Complexity: O(r*c) for string construction.
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ { // iterate over rows
		if i > 0 {
			sb.WriteString(fmtRowSep)
		}
		sb.WriteString(fmtRowOpen)
		for j = 0; j < d.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(fmtElemSep)
			}
			sb.WriteString(strconv.FormatFloat(d.data[i*d.c+j], 'g', -1, 64))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}

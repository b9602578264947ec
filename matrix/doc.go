// Package matrix offers the dense linear-algebra substrate of the module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the small Matrix interface,
//     with bounds-checked At/Set and deep Clone.
//   - Constructors NewDense/NewZeros/NewIdentity with validated shapes.
//   - Kernels Mul, Sub, Transpose, MatVec, Round, and AllClose; each validates
//     first, runs a flat fast path for *Dense operands, and falls back to the
//     interface otherwise.
//   - Central validators (nil, shape, squareness, diagonality) returning
//     sentinel errors matched with errors.Is.
//
// Dense storage is best for the small-to-medium graphs this module targets,
// where O(V²) memory is acceptable.
//
// See the laplacian package for the pipeline these kernels serve.
package matrix

// Package spectral prepares the matrix bundle of spectral graph theory:
// adjacency, degree, and normalized Laplacian matrices, computed from a
// weighted edge list and ready for eigendecomposition.
//
// 🚀 What is spectral?
//
//	A small, deterministic preprocessing library that brings together:
//		• Dense kernel: row-major float64 matrices with validated ops
//		• Adjacency builder: string-id edge lists to symmetric matrices
//		• Degree matrix: diagonal of absolute row sums
//		• Laplacian normalizers: symmetric, random-walk, adaptive
//		• Feature matrices: eigenvector coordinates per node
//		• gonum bridge: hand the bundle to a mat64-based eigensolver
//
// ✨ Why choose spectral?
//
//   - Predictable numerics: no NaN/Inf escapes, documented degeneracy policy
//   - Pure functions: no global state, safe for concurrent use
//   - Clear errors: sentinel values, errors.Is friendly wrapping
//   - Deterministic: fixed iteration orders, reproducible output
//
// Everything is organized under four subpackages:
//
//	matrix/    - dense matrix type, linear-algebra kernels, validators
//	laplacian/ - edge list in, (adjacency, degree, Laplacian) bundle out
//	graphgen/  - deterministic edge-list generators for tests and demos
//	examples/  - runnable end-to-end demonstration
//
// Quick ASCII example:
//
//	    0───1───2
//
//	a path on three nodes; its symmetric normalized Laplacian has
//	1/√2 on the adjacent pairs and zeros elsewhere.
//
// Dive into the laplacian package docs for the pipeline entry point
// (Compute) and the normalization selector.
//
//	go get github.com/katalvlaran/spectral
package spectral

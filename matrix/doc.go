// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind tspdemo distance models.
//
// The package provides:
//
//   - Reader, the read-only surface (Rows, Cols, At) handed to callers that must
//     not mutate a matrix, and Matrix, the mutable surface used while building.
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - ReadOnly, a wrapper that hides Set/Clone so an immutable value object can
//     expose its storage without copying it.
//   - Validators for the distance-matrix contract: square, symmetric, zero
//     diagonal, non-negative and finite entries.
//
// Errors are package-level sentinels (errors.go) wrapped with "%w" and method
// context; branch on them with errors.Is.
//
// Complexity: At/Set O(1), Clone O(r*c), validators O(n²).
package matrix

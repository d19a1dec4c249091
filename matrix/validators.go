// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface as well as a typed-nil *Dense, or a view over one.
func isNil(m Reader) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Dense:
		return v == nil
	case readOnlyView:
		return isNil(v.base)
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil, including a
// typed-nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Reader) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// normalizeTol rejects non-finite tolerances and folds negatives to |tol|.
func normalizeTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Reader, tol float64) error {
	const tag = "ValidateSymmetric"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // strict upper triangle
			aij, _ = m.At(i, j) // shape already validated
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m Reader, tol float64) error {
	const tag = "ValidateZeroDiagonal"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}

	var (
		i int
		v float64
	)
	for i = 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.IsNaN(v) || math.Abs(v) > tol {
			return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateNonNegative checks that every entry is finite and ≥ 0.
// NaN/±Inf report ErrNaNInf; negatives report ErrNegativeWeight.
// Complexity: O(r*c).
func ValidateNonNegative(m Reader) error {
	const tag = "ValidateNonNegative"
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			if v < 0 {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNegativeWeight))
			}
		}
	}

	return nil
}

// ValidateDistance is the composite distance-matrix check:
// Square → ZeroDiagonal → NonNegative → Symmetric, in that order.
// The first failure wins, so error priority is stable.
func ValidateDistance(m Reader, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}

	return ValidateSymmetric(m, tol)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspdemo/matrix"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

// sliceMatrix is a tiny Reader backed by [][]float64 so validator paths can see
// values Dense.Set would refuse (NaN, Inf) and non-square shapes.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Reader = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Reader
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed-nil dense", (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"2x2", sliceMatrix{[][]float64{{0, 1}, {1, 0}}}, nil},
		{"2x3", sliceMatrix{[][]float64{{0, 1, 2}, {1, 0, 2}}}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateDistance walks the composite check through each failure class.
func TestValidateDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a       [][]float64
		wantErr error
	}{
		{"ok 3x3", [][]float64{{0, 3, 4}, {3, 0, 5}, {4, 5, 0}}, nil},
		{"ok 1x1", [][]float64{{0}}, nil},
		{"non-square", [][]float64{{0, 1}}, matrix.ErrNonSquare},
		{"diagonal", [][]float64{{0, 1}, {1, 2}}, matrix.ErrNonZeroDiagonal},
		{"diagonal NaN", [][]float64{{nan(), 1}, {1, 0}}, matrix.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNegativeWeight},
		{"inf", [][]float64{{0, inf()}, {inf(), 0}}, matrix.ErrNaNInf},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistance(sliceMatrix{tc.a}, 1e-12)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSymmetricTolerance checks tolerance handling.
func TestValidateSymmetricTolerance(t *testing.T) {
	t.Parallel()

	m := sliceMatrix{[][]float64{{0, 1}, {1 + 1e-9, 0}}}

	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-12), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-6))
	require.NoError(t, matrix.ValidateSymmetric(m, -1e-6)) // negative tol folds to |tol|
	require.ErrorIs(t, matrix.ValidateSymmetric(m, nan()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m, inf()), matrix.ErrNaNInf)
}

// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspdemo/matrix"
	"gonum.org/v1/gonum/spatial/r2"
)

// symTol is the structural tolerance used when self-checking built matrices.
// Entries are mirrored on write, so any deviation at all is a bug.
const symTol = 0.0

// vec lifts an integer point into gonum's planar vector type.
func vec(p Point) r2.Vec { return r2.Vec{X: float64(p.X), Y: float64(p.Y)} }

// Distance returns the Euclidean distance between a and b in float64,
// without rounding.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(vec(a), vec(b)))
}

// BuildDistanceMatrix returns the N×N Euclidean distance matrix of cities,
// N = len(cities). Entry (i, j) is Distance(cities[i], cities[j]); the diagonal
// is exactly zero and (i, j) == (j, i) bit for bit.
//
// Errors:
//   - ErrInvalidInput when cities is empty.
//
// Complexity: O(N²) time and space.
func BuildDistanceMatrix(cities []Point) (*matrix.Dense, error) {
	n := len(cities)
	if n == 0 {
		return nil, fmt.Errorf("BuildDistanceMatrix: no cities: %w", ErrInvalidInput)
	}
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildDistanceMatrix: %w", err)
	}

	// Fill the strict upper triangle and mirror it; the diagonal stays 0.
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = dist.SetSym(i, j, Distance(cities[i], cities[j])); err != nil {
				return nil, fmt.Errorf("BuildDistanceMatrix: %w", err)
			}
		}
	}

	if err = matrix.ValidateDistance(dist, symTol); err != nil {
		return nil, fmt.Errorf("BuildDistanceMatrix: %w", err)
	}

	return dist, nil
}

// ValidateSeparation checks that every pair of distinct points is at least
// minSep apart. It returns nil for fewer than two points.
//
// Complexity: O(N²).
func ValidateSeparation(points []Point, minSep float64) error {
	var (
		i, j int
		d    float64
	)
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			d = Distance(points[i], points[j])
			if d < minSep {
				return fmt.Errorf("%v–%v at %.6g < %.6g: %w",
					points[i], points[j], d, minSep, ErrSeparationViolated)
			}
		}
	}

	return nil
}

// Separated reports whether the instance's cities and start city satisfy the
// separation constraint.
func (in *Instance) Separated() error {
	all := make([]Point, 0, len(in.cities)+1)
	all = append(all, in.cities...)
	all = append(all, in.start)

	return ValidateSeparation(all, in.MinSeparation())
}

// SPDX-License-Identifier: MIT
//
// Package tsp - validation utilities shared by the generator and the distance model.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspdemo/matrix"
)

// Validate reports ErrInvalidConfiguration when NumCities < 1 or leaves no
// room for the start city (NumCities+1 overflows int), or when the domain
// [CoordMin, CoordMax) is empty, inverted, or too wide to represent as an int.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.NumCities < 1 {
		return fmt.Errorf("NumCities=%d < 1: %w", c.NumCities, ErrInvalidConfiguration)
	}
	if c.NumCities == math.MaxInt {
		return fmt.Errorf("NumCities=%d leaves no room for the start city: %w", c.NumCities, ErrInvalidConfiguration)
	}
	if c.CoordMax <= c.CoordMin {
		return fmt.Errorf("CoordMax=%d <= CoordMin=%d: %w", c.CoordMax, c.CoordMin, ErrInvalidConfiguration)
	}
	// CoordMax > CoordMin, so a non-positive span can only mean int overflow.
	if c.CoordMax-c.CoordMin <= 0 {
		return fmt.Errorf("domain [%d,%d) overflows int: %w", c.CoordMin, c.CoordMax, ErrInvalidConfiguration)
	}

	return nil
}

// validateDistMatrix checks that dist is usable for route queries and returns
// its order n. Only shape is checked here; entries are trusted because every
// matrix built by this package is validated at construction.
//
// Complexity: O(1).
func validateDistMatrix(dist matrix.Reader) (int, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, fmt.Errorf("distance matrix: %w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("distance matrix: %w: %w", ErrInvalidInput, err)
	}
	if dist.Rows() == 0 {
		return 0, fmt.Errorf("distance matrix: empty: %w", ErrInvalidInput)
	}

	return dist.Rows(), nil
}

// ValidateRoute checks that every index of route lies in [0, n).
// Empty routes are valid. Repeated indices are allowed.
//
// Complexity: O(len(route)).
func ValidateRoute(route []int, n int) error {
	var (
		i int
		v int
	)
	for i = 0; i < len(route); i++ {
		v = route[i]
		if v < 0 || v >= n {
			return fmt.Errorf("route[%d]=%d not in [0,%d): %w", i, v, n, ErrIndexOutOfRange)
		}
	}

	return nil
}

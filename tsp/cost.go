// SPDX-License-Identifier: MIT
//
// Package tsp - route cost utilities.
//
// Design:
//   - Fast path for *matrix.Dense and generic path for any matrix.Reader.
//   - All indices are range-checked before any edge is summed, so a failing
//     query never returns a partial sum.
//   - Plain float64 accumulation in route order; no rounding.
//
// Complexity:
//   - O(k) time for a route of length k, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspdemo/matrix"
)

// RouteLength returns the open path length of route: the sum of
// dist[route[i]][route[i+1]] over consecutive pairs. No edge back to route[0]
// is added. Routes of length 0 or 1 have length 0.
//
// Errors:
//   - ErrInvalidInput for a nil, empty or non-square dist.
//   - ErrIndexOutOfRange if any route index is outside [0, N).
func RouteLength(dist matrix.Reader, route []int) (float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, fmt.Errorf("RouteLength: %w", err)
	}
	if err = ValidateRoute(route, n); err != nil {
		return 0, fmt.Errorf("RouteLength: %w", err)
	}
	var sum float64
	if d, ok := dist.(*matrix.Dense); ok {
		sum, err = pathCostDense(d, route)
	} else {
		sum, err = pathCostGeneric(dist, route)
	}
	if err != nil {
		return 0, fmt.Errorf("RouteLength: %w", err)
	}

	return sum, nil
}

// TourLength returns RouteLength plus the closing edge route[last]→route[0]
// when route is a full permutation of [0, N). Any other route, including a
// complete-length route with repeats, is measured open.
func TourLength(dist matrix.Reader, route []int) (float64, error) {
	open, err := RouteLength(dist, route)
	if err != nil {
		return 0, fmt.Errorf("TourLength: %w", err)
	}
	if !IsTour(route, dist.Rows()) {
		return open, nil
	}

	closing, err := edgeCost(dist, route[len(route)-1], route[0])
	if err != nil {
		return 0, fmt.Errorf("TourLength: %w", err)
	}

	return open + closing, nil
}

// pathCostDense sums route edges on *matrix.Dense. Indices are pre-validated;
// errors carry edge context only and the caller adds the method name.
func pathCostDense(d *matrix.Dense, route []int) (float64, error) {
	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(route); i++ {
		w, err = d.At(route[i], route[i+1])
		if err != nil {
			return 0, fmt.Errorf("edge (%d,%d): %w: %w", route[i], route[i+1], ErrIndexOutOfRange, err)
		}
		sum += w
	}

	return sum, nil
}

// pathCostGeneric sums route edges through the Reader interface.
// Same semantics as pathCostDense; slightly higher call overhead.
func pathCostGeneric(m matrix.Reader, route []int) (float64, error) {
	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(route); i++ {
		if w, err = edgeCost(m, route[i], route[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// edgeCost fetches the weight of a single edge u→v with range checks.
//
// Complexity: O(1).
func edgeCost(m matrix.Reader, u, v int) (float64, error) {
	n := m.Rows()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, fmt.Errorf("edge (%d,%d) with n=%d: %w", u, v, n, ErrIndexOutOfRange)
	}
	w, err := m.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("edge (%d,%d): %w: %w", u, v, ErrIndexOutOfRange, err)
	}

	return w, nil
}

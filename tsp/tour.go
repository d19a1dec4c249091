// SPDX-License-Identifier: MIT
//
// Package tsp - route structure utilities.
//
// These helpers operate purely on index sequences, without distance matrices.
// A route here is open: closure is a caller-level concept.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// IsTour reports whether route visits every index of [0, n) exactly once.
//
// Complexity: O(n) time, O(n) space.
func IsTour(route []int, n int) bool {
	return ValidatePermutation(route, n) == nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// Out-of-range entries report ErrIndexOutOfRange; wrong length or duplicates
// report ErrInvalidInput.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("permutation length %d, want %d: %w", len(perm), n, ErrInvalidInput)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("perm[%d]=%d not in [0,%d): %w", i, v, n, ErrIndexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("perm[%d]=%d repeated: %w", i, v, ErrInvalidInput)
		}
		seen[v] = true
	}

	return nil
}

// CloseRoute returns a copy of route with route[0] appended, the explicit
// form of a closed tour. Empty routes are returned empty.
func CloseRoute(route []int) []int {
	if len(route) == 0 {
		return []int{}
	}
	out := make([]int, len(route), len(route)+1)
	copy(out, route)

	return append(out, route[0])
}

// FormatRoute renders a route as "0 -> 2 -> 1".
func FormatRoute(route []int) string {
	parts := make([]string, len(route))
	for i, v := range route {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// SPDX-License-Identifier: MIT

package tsp

import "errors"

// Sentinel errors. They are returned wrapped with method context via "%w";
// match them with errors.Is, never by message.
var (
	// ErrInvalidConfiguration is returned by Generate when NumCities < 1 or the
	// coordinate domain is empty or inverted (CoordMax <= CoordMin).
	ErrInvalidConfiguration = errors.New("tsp: invalid configuration")

	// ErrInvalidInput is returned for structurally unusable inputs:
	// an empty city list, or a nil or non-square distance matrix.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrIndexOutOfRange is returned when a route references an index
	// outside [0, N) for the distance matrix in use.
	ErrIndexOutOfRange = errors.New("tsp: route index out of range")

	// ErrGenerationFailed is returned only when WithMaxAttempts is set and
	// sampling exhausted its budget before enough points were accepted.
	ErrGenerationFailed = errors.New("tsp: generation failed")

	// ErrSeparationViolated is returned by ValidateSeparation when two points
	// are closer than the required minimum distance.
	ErrSeparationViolated = errors.New("tsp: separation constraint violated")
)

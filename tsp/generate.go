// SPDX-License-Identifier: MIT
//
// Canonical model:
//   - Rejection sampling over the integer grid [CoordMin, CoordMax)².
//   - A candidate is accepted iff its Euclidean distance to every accepted
//     point is ≥ MinSeparation. Stop at NumCities+1 accepted points.
//   - One accepted point, picked uniformly, becomes the start city and is
//     removed; the remainder keep acceptance order.
//
// Determinism:
//   - Fixed draw order (x then y per candidate, start index last), so a fixed
//     seed reproduces the same instance.

package tsp

import (
	"fmt"
	"math/rand"
)

const methodGenerate = "Generate"

// maxPrealloc bounds the up-front capacity of the accepted set; larger
// instances grow by append as points are actually accepted.
const maxPrealloc = 1024

// Generate builds a new immutable Instance for cfg.
//
// Errors:
//   - ErrInvalidConfiguration when cfg fails Config.Validate.
//   - ErrGenerationFailed when WithMaxAttempts is set and exhausted.
//
// Without WithMaxAttempts the sampling loop has no upper bound: if the domain
// cannot hold NumCities+1 points at MinSeparation, Generate does not return.
//
// Complexity: O(A·n) distance checks for A attempts, plus O(n²) for the matrix.
func Generate(cfg Config, opts ...Option) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	gc := newGenConfig(opts...)
	r, seed, seeded := resolveRNG(gc)

	points, err := samplePoints(r, cfg, gc.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	start, cities := splitStart(r, points)

	dist, err := BuildDistanceMatrix(cities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return &Instance{
		cfg:    cfg,
		seed:   seed,
		seeded: seeded,
		cities: cities,
		start:  start,
		dist:   dist,
	}, nil
}

// samplePoints runs the accept/reject loop until NumCities+1 points are held.
// maxAttempts == 0 means no bound on candidate draws.
func samplePoints(r *rand.Rand, cfg Config, maxAttempts int) ([]Point, error) {
	var (
		want     = cfg.NumCities + 1
		minSep   = cfg.MinSeparation()
		span     = cfg.CoordMax - cfg.CoordMin
		accepted = make([]Point, 0, min(want, maxPrealloc))
		attempts int
		p        Point
	)
	for len(accepted) < want {
		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, fmt.Errorf("accepted %d of %d points after %d attempts: %w",
				len(accepted), want, attempts, ErrGenerationFailed)
		}
		attempts++

		p = drawPoint(r, cfg.CoordMin, span)
		if farFromAll(p, accepted, minSep) {
			accepted = append(accepted, p)
		}
	}

	return accepted, nil
}

// farFromAll reports whether p is at least minSep away from every point in set.
func farFromAll(p Point, set []Point, minSep float64) bool {
	for _, q := range set {
		if Distance(p, q) < minSep {
			return false
		}
	}

	return true
}

// splitStart removes a uniformly chosen point and returns it with a fresh
// slice of the remaining points in their original order.
func splitStart(r *rand.Rand, points []Point) (Point, []Point) {
	idx := r.Intn(len(points))
	start := points[idx]

	rest := make([]Point, 0, len(points)-1)
	rest = append(rest, points[:idx]...)
	rest = append(rest, points[idx+1:]...)

	return start, rest
}

// SPDX-License-Identifier: MIT
//
// Package tsp - RNG utilities used by the generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) (*rand.Rand, int64) {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s)), s
}

// resolveRNG picks the caller's source when present, else a seeded one.
// seeded reports whether the returned seed describes the source.
func resolveRNG(cfg genConfig) (r *rand.Rand, seed int64, seeded bool) {
	if cfg.rng != nil {
		return cfg.rng, 0, false
	}
	r, seed = rngFromSeed(cfg.seed)

	return r, seed, true
}

// drawPoint samples one point uniformly from [lo, lo+span)², x first then y.
// span must be > 0.
//
// Complexity: O(1).
func drawPoint(r *rand.Rand, lo, span int) Point {
	x := lo + r.Intn(span)
	y := lo + r.Intn(span)

	return Point{X: x, Y: y}
}

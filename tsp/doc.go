// SPDX-License-Identifier: MIT

// Package tsp generates Travelling Salesman Problem instances for interactive
// route selection and evaluates candidate routes against them.
//
// It has two parts:
//
//   - Instance Generator - Generate draws integer city coordinates uniformly
//     from [CoordMin, CoordMax)² by rejection sampling, keeping only candidates
//     at Euclidean distance ≥ MinSeparation from every accepted point, where
//     MinSeparation = (CoordMax − CoordMin) / NumCities. It accepts
//     NumCities+1 points, then picks one at random to become the start city.
//
//   - Distance Model - BuildDistanceMatrix derives the symmetric, zero-diagonal
//     Euclidean matrix; RouteLength sums consecutive edges of a route without
//     a closing edge; TourLength adds the closing edge only when the route is a
//     full permutation of the cities.
//
// An *Instance is immutable once Generate returns: accessors hand out copies or
// read-only views, so it is safe to share between goroutines.
//
// Sampling is unbounded by default. If NumCities is large relative to the
// coordinate domain, Generate may never return; pass WithMaxAttempts to turn
// that into ErrGenerationFailed.
//
// The package does not solve the TSP and keeps no global state. Given the same
// Config and seed, Generate returns identical instances.
package tsp

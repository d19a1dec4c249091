// SPDX-License-Identifier: MIT

// Package tspdemo is the core of a small travelling-salesman playground:
// generate a random instance, pick a route through it, measure it, draw it.
//
// Packages:
//
//	matrix/      dense float64 matrices, read-only views and shape validators
//	tsp/         instance generation under a minimum-separation rule, the
//	               Euclidean distance matrix and route/tour length queries
//	route/       incremental route selection (select, undo, reset) and parsing
//	render/      plots of an instance and a route via gonum/plot
//	cmd/tspdemo  command-line front end
//
// Quick start:
//
//	inst, err := tsp.Generate(tsp.DefaultConfig(), tsp.WithSeed(42))
//	if err != nil { ... }
//	length, err := inst.RouteLength([]int{0, 3, 1})
//
// Nothing here solves the TSP; routes come from the caller.
package tspdemo

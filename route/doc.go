// SPDX-License-Identifier: MIT

// Package route holds the caller-side route a user builds city by city.
//
// A Selection is bound to one *tsp.Instance. Cities are appended with Select,
// removed from the end with Undo, and cleared with Reset. Each city can be
// chosen once. Once every city is chosen the selection is Complete, and
// TourLength adds the closing edge back to the first city; Length always
// reports the open path.
//
// Selections are plain mutable state for a single event loop and are not safe
// for concurrent use. The Instance they query is immutable, so many selections
// may share one.
package route

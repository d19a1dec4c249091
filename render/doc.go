// SPDX-License-Identifier: MIT

// Package render draws a tsp.Instance and a route with gonum/plot.
//
// Cities are drawn as filled circles labelled with their route index, the
// start city as a distinct marker, and the route as a polyline in selection
// order. The closing edge back to the first city is drawn only when the route
// visits every city. Axes are pinned to the instance's coordinate domain, so
// images for the same instance line up regardless of which cities are routed.
//
// Output format follows the file extension (png, svg, pdf, ...) as supported
// by gonum.org/v1/plot.
package render

// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspdemo/matrix"
)

// Defaults mirror the demo's stock settings.
const (
	DefaultNumCities = 10
	DefaultCoordMin  = 0
	DefaultCoordMax  = 100
	DefaultSeed      = int64(42)
)

// Point is an integer city coordinate.
type Point struct {
	X, Y int
}

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Config is the problem definition passed to Generate.
// Both axes share the half-open domain [CoordMin, CoordMax).
type Config struct {
	// NumCities is the number of cities excluding the start city. Must be ≥ 1.
	NumCities int
	// CoordMin is the inclusive lower coordinate bound.
	CoordMin int
	// CoordMax is the exclusive upper coordinate bound. Must be > CoordMin.
	CoordMax int
}

// DefaultConfig returns the stock 10-city instance on [0, 100).
func DefaultConfig() Config {
	return Config{
		NumCities: DefaultNumCities,
		CoordMin:  DefaultCoordMin,
		CoordMax:  DefaultCoordMax,
	}
}

// MinSeparation is (CoordMax − CoordMin) / NumCities. It is only meaningful
// for a Config that passes Validate; it returns 0 otherwise.
func (c Config) MinSeparation() float64 {
	if c.NumCities < 1 {
		return 0
	}

	return float64(c.CoordMax-c.CoordMin) / float64(c.NumCities)
}

// Instance is a generated problem: cities, start city and the derived
// distance matrix. It is immutable after Generate returns.
type Instance struct {
	cfg    Config
	seed   int64
	seeded bool // false when the caller supplied its own *rand.Rand

	cities []Point
	start  Point
	dist   *matrix.Dense
}

// NumCities returns the number of cities excluding the start city.
func (in *Instance) NumCities() int { return in.cfg.NumCities }

// CoordMin returns the inclusive lower coordinate bound.
func (in *Instance) CoordMin() int { return in.cfg.CoordMin }

// CoordMax returns the exclusive upper coordinate bound.
func (in *Instance) CoordMax() int { return in.cfg.CoordMax }

// Config returns the configuration the instance was generated from.
func (in *Instance) Config() Config { return in.cfg }

// MinSeparation returns the enforced minimum distance between any two points.
func (in *Instance) MinSeparation() float64 { return in.cfg.MinSeparation() }

// Seed reports the seed used for generation. ok is false when the instance
// was drawn from a caller-supplied source (WithRand), whose seed is unknown.
func (in *Instance) Seed() (seed int64, ok bool) { return in.seed, in.seeded }

// Cities returns a copy of the city coordinates in acceptance order.
// Route indices refer to positions in this slice.
func (in *Instance) Cities() []Point {
	out := make([]Point, len(in.cities))
	copy(out, in.cities)

	return out
}

// City returns the coordinate of city i.
func (in *Instance) City(i int) (Point, error) {
	if i < 0 || i >= len(in.cities) {
		return Point{}, fmt.Errorf("City(%d): n=%d: %w", i, len(in.cities), ErrIndexOutOfRange)
	}

	return in.cities[i], nil
}

// StartCity returns the designated start city. It is not part of Cities.
func (in *Instance) StartCity() Point { return in.start }

// Distances returns a read-only view of the NumCities×NumCities distance matrix.
func (in *Instance) Distances() matrix.Reader { return matrix.ReadOnly(in.dist) }

// RouteLength returns the open path length of route over this instance.
// See the package-level RouteLength.
func (in *Instance) RouteLength(route []int) (float64, error) {
	return RouteLength(in.dist, route)
}

// TourLength returns the closed length when route visits every city once,
// and the open length otherwise. See the package-level TourLength.
func (in *Instance) TourLength(route []int) (float64, error) {
	return TourLength(in.dist, route)
}

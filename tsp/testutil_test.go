// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspdemo/matrix"
	"github.com/katalvlaran/tspdemo/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the seed used by the reference scenario.
	seedDet = int64(42)

	// attemptsCap bounds sampling in tests whose parameters can be infeasible
	// for some draws, so a bad seed fails instead of hanging.
	attemptsCap = 200_000
)

// Repeat runs fn n times (useful to lock determinism and catch flakiness).
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustGenerate builds an instance or fails the test.
func mustGenerate(t testing.TB, cfg tsp.Config, opts ...tsp.Option) *tsp.Instance {
	t.Helper()
	inst, err := tsp.Generate(cfg, opts...)
	require.NoError(t, err)
	require.NotNil(t, inst)

	return inst
}

// at reads m[i][j] or fails the test.
func at(t testing.TB, m matrix.Reader, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// snapshot copies a Reader into [][]float64 for whole-matrix comparisons.
func snapshot(t testing.TB, m matrix.Reader) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = at(t, m, i, j)
		}
	}

	return out
}

// sliceMatrix is a minimal matrix.Reader backed by [][]float64. It drives the
// generic (non-Dense) cost path.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Reader = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}

// triangle is the 3-4-5 right triangle: d01=3, d12=4, d02=5.
var triangle = []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}

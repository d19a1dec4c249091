// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface and its read-only view.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tspdemo/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2) // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23) // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRejectsNaNInf checks the finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, nan()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, inf()), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v) // rejected writes leave the cell untouched
}

// TestSetSym writes both mirrored cells.
func TestSetSym(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.SetSym(0, 2, 5))
	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, 5.0, a)
	require.Equal(t, 5.0, b)

	require.ErrorIs(t, m.SetSym(0, 3, 1), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestRowCopy checks Row returns an independent copy.
func TestRowCopy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4))
	require.NoError(t, m.Set(1, 1, 6))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, row)

	row[0] = 100
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString renders rows deterministically.
func TestString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 1, 1.5))

	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}

// TestReadOnly verifies the view hides mutation and shares storage.
func TestReadOnly(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	view := matrix.ReadOnly(m)
	_, isMutable := view.(matrix.Matrix)
	require.False(t, isMutable, "view must not expose Set/Clone")

	require.NoError(t, m.Set(1, 1, 9)) // base writes are visible through the view
	v, err := view.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = view.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, 2, view.Rows())
	require.Equal(t, 2, view.Cols())
	require.Equal(t, view, matrix.ReadOnly(view)) // idempotent
	require.Nil(t, matrix.ReadOnly(nil))
	require.Nil(t, matrix.ReadOnly((*matrix.Dense)(nil)))
}

// TestNilReceiver verifies a nil *Dense reports ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense

	require.NotPanics(t, func() {
		require.Zero(t, m.Rows())
		require.Zero(t, m.Cols())

		_, err := m.At(0, 0)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
		require.ErrorIs(t, m.SetSym(0, 1, 1), matrix.ErrNilMatrix)

		_, err = m.Row(0)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		require.Nil(t, m.Clone())
		require.Equal(t, "<nil>", m.String())
	})
	require.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// readOnlyView is a non-owning, read-only window over a Reader.
// It shares storage with the base; it only removes the mutating methods
// from the dynamic type so callers cannot type-assert their way back to Set.
type readOnlyView struct {
	base Reader
}

var _ Reader = readOnlyView{}

// ReadOnly returns a view of m that exposes only Rows, Cols and At.
// A nil m, including a typed-nil *Dense, yields a nil Reader.
//
// Complexity: O(1), no copy.
func ReadOnly(m Reader) Reader {
	if isNil(m) {
		return nil
	}
	if v, ok := m.(readOnlyView); ok {
		return v
	}

	return readOnlyView{base: m}
}

func (v readOnlyView) Rows() int { return v.base.Rows() }

func (v readOnlyView) Cols() int { return v.base.Cols() }

func (v readOnlyView) At(i, j int) (float64, error) {
	val, err := v.base.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("ReadOnly.At: %w", err)
	}

	return val, nil
}

// String delegates to the base when it can render itself.
func (v readOnlyView) String() string {
	if s, ok := v.base.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("matrix.ReadOnly(%dx%d)", v.base.Rows(), v.base.Cols())
}

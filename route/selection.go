// SPDX-License-Identifier: MIT

package route

import (
	"fmt"

	"github.com/katalvlaran/tspdemo/tsp"
)

// Selection is an ordered, duplicate-free list of city indices over one instance.
type Selection struct {
	inst   *tsp.Instance
	route  []int
	chosen []bool // chosen[i] ⇔ i ∈ route
}

// NewSelection returns an empty selection over inst.
func NewSelection(inst *tsp.Instance) (*Selection, error) {
	if inst == nil {
		return nil, fmt.Errorf("NewSelection: %w", ErrNoInstance)
	}

	return &Selection{
		inst:   inst,
		route:  make([]int, 0, inst.NumCities()),
		chosen: make([]bool, inst.NumCities()),
	}, nil
}

// Select appends city i.
//
// Errors:
//   - tsp.ErrIndexOutOfRange when i is not a city index of the instance.
//   - ErrAlreadySelected when i is already part of the route; the route is unchanged.
func (s *Selection) Select(i int) error {
	if i < 0 || i >= len(s.chosen) {
		return fmt.Errorf("Select(%d): n=%d: %w", i, len(s.chosen), tsp.ErrIndexOutOfRange)
	}
	if s.chosen[i] {
		return fmt.Errorf("Select(%d): %w", i, ErrAlreadySelected)
	}
	s.chosen[i] = true
	s.route = append(s.route, i)

	return nil
}

// SelectAll selects each index in order and stops at the first error.
// Indices selected before the failure stay selected.
func (s *Selection) SelectAll(indices []int) error {
	for _, i := range indices {
		if err := s.Select(i); err != nil {
			return err
		}
	}

	return nil
}

// Undo removes the most recently selected city. It reports false when the
// selection was already empty.
func (s *Selection) Undo() bool {
	n := len(s.route)
	if n == 0 {
		return false
	}
	s.chosen[s.route[n-1]] = false
	s.route = s.route[:n-1]

	return true
}

// Reset clears the selection.
func (s *Selection) Reset() {
	for _, i := range s.route {
		s.chosen[i] = false
	}
	s.route = s.route[:0]
}

// Route returns a copy of the selected indices in selection order.
func (s *Selection) Route() []int {
	out := make([]int, len(s.route))
	copy(out, s.route)

	return out
}

// Len returns the number of selected cities.
func (s *Selection) Len() int { return len(s.route) }

// Contains reports whether city i is selected.
func (s *Selection) Contains(i int) bool {
	return i >= 0 && i < len(s.chosen) && s.chosen[i]
}

// Complete reports whether every city of the instance has been selected.
func (s *Selection) Complete() bool { return len(s.route) == len(s.chosen) }

// Instance returns the instance the selection is bound to.
func (s *Selection) Instance() *tsp.Instance { return s.inst }

// Length returns the open path length of the current selection.
func (s *Selection) Length() (float64, error) {
	return s.inst.RouteLength(s.route)
}

// TourLength returns the closed tour length once the selection is complete
// and the open length before that.
func (s *Selection) TourLength() (float64, error) {
	return s.inst.TourLength(s.route)
}

// String renders the selection as "0 -> 2 -> 1".
func (s *Selection) String() string { return tsp.FormatRoute(s.route) }

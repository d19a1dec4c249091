// SPDX-License-Identifier: MIT

package route

import "errors"

var (
	// ErrAlreadySelected is returned by Select for a city already in the route.
	ErrAlreadySelected = errors.New("route: city already selected")

	// ErrNoInstance is returned when a Selection is created without an instance.
	ErrNoInstance = errors.New("route: nil instance")

	// ErrEmptyRoute is returned by Parse when the input holds no indices.
	ErrEmptyRoute = errors.New("route: empty route")

	// ErrSyntax is returned by Parse for tokens that are not integers.
	ErrSyntax = errors.New("route: invalid index")
)

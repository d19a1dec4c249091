// SPDX-License-Identifier: MIT

package route

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a route written as indices separated by commas, whitespace or
// "->" arrows, e.g. "0,1,2", "0 1 2" or "0 -> 1 -> 2". Indices are not
// range-checked here; that needs an instance.
func Parse(s string) ([]int, error) {
	fields := strings.FieldsFunc(strings.ReplaceAll(s, "->", " "), func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrEmptyRoute)
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): token %d %q: %w: %w", s, i, f, ErrSyntax, err)
		}
		out[i] = v
	}

	return out, nil
}

package route_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/tspdemo/route"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []int
	}{
		{"0,1,2", []int{0, 1, 2}},
		{" 3 1\t2 ", []int{3, 1, 2}},
		{"0 -> 2 -> 1", []int{0, 2, 1}},
		{"4;5, 6", []int{4, 5, 6}},
		{"7", []int{7}},
		{"-1", []int{-1}}, // range is checked by the instance, not here
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := route.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := route.Parse("")
	require.ErrorIs(t, err, route.ErrEmptyRoute)

	_, err = route.Parse(" , ; ")
	require.ErrorIs(t, err, route.ErrEmptyRoute)

	_, err = route.Parse("0,x,2")
	require.ErrorIs(t, err, route.ErrSyntax)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

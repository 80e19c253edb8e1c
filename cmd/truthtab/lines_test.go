package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	type testCase struct {
		in   string
		want []string
	}

	tests := []testCase{
		{in: "B = !A\nA AND B\n", want: []string{"B = !A", "A AND B"}},
		{in: "B = !A\n\n  A AND B  ", want: []string{"B = !A", "A AND B"}},
		{in: "B = !A\nA OR B\nundo\nA AND B\n", want: []string{"B = !A", "A AND B"}},
		{in: "undo\nA\n", want: []string{"A"}},
		{in: "B = !A\nrestart\nA\n", want: []string{"A"}},
		{in: "", want: nil},
	}

	for _, tc := range tests {
		got, err := readLines(strings.NewReader(tc.in))
		require.NoError(t, err)
		if tc.want == nil {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

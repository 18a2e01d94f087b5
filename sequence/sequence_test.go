// SPDX-License-Identifier: MIT
package sequence_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvloops/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBalanceIndex covers the documented vectors and edge lengths.
func TestBalanceIndex(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"nil", nil, -1},
		{"single", []float64{5}, 0},
		{"pair", []float64{1, 1}, -1},
		{"middle", []float64{1, 2, 5, 3, 0}, 2},
		{"even length", []float64{2, 3, 9, 5}, 2},
		{"none", []float64{1, 2, 3, 4, 5}, -1},
		{"first", []float64{7, 3, -3}, 0},
		{"last", []float64{3, -3, 7}, 2},
		{"highest of several", []float64{0, 0, 0}, 2},
		{"fractions", []float64{0.5, 0.25, 8, 0.75}, 2},
		{"negative", []float64{-1.5, 4, -0.5, -1}, 1},
		{"nan", []float64{1, math.NaN(), 1}, -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sequence.BalanceIndex(tc.in))
		})
	}
}

// shuffleNaive applies the step one iteration at a time.
func shuffleNaive(s string, iterations int) string {
	r := []rune(s)
	for k := 0; k < iterations; k++ {
		var even, odd []rune
		for i, c := range r {
			if i%2 == 0 {
				even = append(even, c)
			} else {
				odd = append(odd, c)
			}
		}
		r = append(even, odd...)
	}
	return string(r)
}

// TestShuffle_Known checks the documented vectors.
func TestShuffle_Known(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"012345", 0, "012345"},
		{"012345", 1, "024135"},
		{"qwerty", 1, "qetwry"},
		{"012345", 2, "043215"},
		{"qwerty", 2, "qtrewy"},
		{"012345", 3, "031425"},
		{"qwerty", 3, "qrwtey"},
		{"012345", 4, "012345"},
		{"", 5, ""},
		{"ab", 7, "ab"},
		{"привет", 1, "пиервт"},
	}

	for _, tc := range tests {
		got, err := sequence.Shuffle(tc.in, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q x%d", tc.in, tc.n)
	}
}

// TestShuffle_CycleSkipping compares against naive stepping and checks that
// huge counts are reduced by the period.
func TestShuffle_CycleSkipping(t *testing.T) {
	for _, s := range []string{"abc", "abcdefg", "0123456789", strings.Repeat("xy", 9) + "z"} {
		for n := 0; n <= 40; n++ {
			got, err := sequence.Shuffle(s, n)
			require.NoError(t, err)
			require.Equal(t, shuffleNaive(s, n), got, "%q x%d", s, n)
		}
	}

	got, err := sequence.Shuffle("012345", 1_000_000_001)
	require.NoError(t, err)
	assert.Equal(t, "024135", got, "period 4")
}

// TestShuffle_Negative covers the iteration guard.
func TestShuffle_Negative(t *testing.T) {
	got, err := sequence.Shuffle("abc", -1)
	assert.ErrorIs(t, err, sequence.ErrNegativeIterations)
	assert.Equal(t, "abc", got)
}

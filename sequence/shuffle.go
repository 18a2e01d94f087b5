// SPDX-License-Identifier: MIT

package sequence

import "github.com/go-faster/errors"

// Shuffle applies the odd-to-end step iterations times and returns the
// result. One step keeps the runes at even positions in order and moves the
// runes at odd positions, in order, behind them:
//
//	"012345" → "024135" → "043215" → "031425"
//
// The step is a fixed permutation, so the string returns to its source after
// some period p. Once p is observed only iterations mod p further steps run,
// which makes very large iteration counts cheap.
//
// Errors: ErrNegativeIterations.
// Complexity: O(n · min(iterations, p)) time, O(n) memory.
func Shuffle(s string, iterations int) (string, error) {
	if iterations < 0 {
		return s, errors.Wrapf(ErrNegativeIterations, "Shuffle(%d)", iterations)
	}
	src := []rune(s)
	if len(src) < 3 {
		return s, nil // positions 0 and 1 never move
	}

	cur := append([]rune(nil), src...)
	buf := make([]rune, len(src))
	for k := 1; k <= iterations; k++ {
		shuffleStep(cur, buf)
		cur, buf = buf, cur
		if equalRunes(cur, src) {
			// period k found; replay the remainder from the source.
			for r := iterations % k; r > 0; r-- {
				shuffleStep(cur, buf)
				cur, buf = buf, cur
			}
			break
		}
	}

	return string(cur), nil
}

// shuffleStep writes the even-index runes of in followed by its odd-index
// runes into out. len(out) must equal len(in).
func shuffleStep(in, out []rune) {
	j := 0
	for i := 0; i < len(in); i += 2 {
		out[j] = in[i]
		j++
	}
	for i := 1; i < len(in); i += 2 {
		out[j] = in[i]
		j++
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

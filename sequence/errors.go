// SPDX-License-Identifier: MIT

package sequence

import "github.com/go-faster/errors"

// ErrNegativeIterations is returned by Shuffle for iterations < 0.
var ErrNegativeIterations = errors.New("sequence: iterations must be >= 0")

// SPDX-License-Identifier: MIT

package permutation

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures NextLarger via functional arguments.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes a Debug record describing the pivot and successor to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o *options) step(number int64, pivot, successor int) {
	if o.logger.Core().Enabled(zapcore.DebugLevel) {
		o.logger.Debug("permutation step",
			zap.Int64("number", number),
			zap.Int("pivot", pivot),
			zap.Int("successor", successor),
		)
	}
}

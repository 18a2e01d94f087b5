// SPDX-License-Identifier: MIT

package sorting

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures a sort call via functional arguments.
type Option func(*Options)

// Options holds the resolved configuration of a sort call.
type Options struct {
	// onPartition is called after each partition of [left, right] with the
	// pivot's resting index.
	onPartition func(left, right, pivot int)

	logger *zap.Logger
	debug  bool
}

// defaultOptions returns Options with a nop logger and a no-op hook.
func defaultOptions() Options {
	return Options{
		onPartition: func(int, int, int) {},
		logger:      zap.NewNop(),
	}
}

// WithOnPartition registers a callback to run after every partition.
func WithOnPartition(fn func(left, right, pivot int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPartition = fn
		}
	}
}

// WithLogger routes per-partition Debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.debug = o.logger.Core().Enabled(zapcore.DebugLevel)

	return o
}

func (o *Options) partitioned(left, right, pivot int) {
	o.onPartition(left, right, pivot)
	if o.debug {
		o.logger.Debug("sorting partition",
			zap.Int("left", left),
			zap.Int("right", right),
			zap.Int("pivot", pivot),
		)
	}
}

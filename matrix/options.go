// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the ring kernels.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Nil arguments are ignored, so options can be passed through unchanged.
package matrix

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of a Spiral or Rotate call.
type Options struct {
	logger *zap.Logger
	onRing func(Ring)
}

// defaultOptions returns the zero-cost configuration: nop logger, no hook.
func defaultOptions() Options {
	return Options{
		logger: zap.NewNop(),
		onRing: func(Ring) {},
	}
}

// WithLogger routes per-ring Debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnRing registers a callback invoked before each ring is processed.
func WithOnRing(fn func(Ring)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onRing = fn
		}
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// visit runs the ring hook and, when debug is enabled, logs the ring.
func (o *Options) visit(op string, r Ring) {
	o.onRing(r)
	if o.logger.Core().Enabled(zapcore.DebugLevel) {
		o.logger.Debug("matrix ring",
			zap.String("op", op),
			zap.Int("offset", r.Offset),
			zap.Int("size", r.Size),
		)
	}
}

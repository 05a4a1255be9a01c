// SPDX-License-Identifier: MIT
// Package: ninefold/calibrate
//
// options.go — functional options; constructors panic on meaningless input.

package calibrate

import "log/slog"

// Option customizes a calibration run.
type Option func(*config)

type config struct {
	trials   int
	length   int
	seed     int64
	parallel int
	logger   *slog.Logger
}

// Deterministic defaults.
const (
	DefaultTrials   = 50
	DefaultLength   = 1000
	DefaultSeed     = int64(1)
	DefaultParallel = 4

	// WeakFactor and StrongFactor scale p95 into thresholds.
	WeakFactor   = 1.1
	StrongFactor = 1.65
)

func newConfig(opts ...Option) config {
	c := config{
		trials:   DefaultTrials,
		length:   DefaultLength,
		seed:     DefaultSeed,
		parallel: DefaultParallel,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithTrials sets the number of random sequences. Panics if n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic("calibrate: WithTrials(n<1)")
	}
	return func(c *config) { c.trials = n }
}

// WithLength sets the length of each sequence. Panics if n < 1.
func WithLength(n int) Option {
	if n < 1 {
		panic("calibrate: WithLength(n<1)")
	}
	return func(c *config) { c.length = n }
}

// WithSeed fixes the base seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithParallel bounds concurrent trials. Panics if n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic("calibrate: WithParallel(n<1)")
	}
	return func(c *config) { c.parallel = n }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("calibrate: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

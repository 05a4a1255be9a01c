// SPDX-License-Identifier: MIT
// Package: ninefold/batch
//
// options.go — functional options for Run.

package batch

import (
	"log/slog"

	"github.com/katalvlaran/ninefold/store"
)

// DefaultParallel bounds concurrent analyses when WithParallel is not given.
const DefaultParallel = 4

// Option customizes Run.
type Option func(*config)

type config struct {
	parallel int
	store    *store.Store
	logger   *slog.Logger
}

func newConfig(opts ...Option) config {
	c := config{parallel: DefaultParallel}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithParallel bounds concurrent analyses. Panics if n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic("batch: WithParallel(n<1)")
	}
	return func(c *config) { c.parallel = n }
}

// WithStore routes analyses through the report cache. A nil store disables it.
func WithStore(s *store.Store) Option {
	return func(c *config) { c.store = s }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

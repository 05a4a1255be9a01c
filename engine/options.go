// SPDX-License-Identifier: MIT
// Package: ninefold/engine
//
// options.go — functional options.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Options apply in order; later options override earlier ones.
//   • Analysis itself never panics.

package engine

import (
	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/track"
)

// Option customizes an Engine.
type Option func(*config)

// WithMode selects Fixed or Sliding partitioning and resets the stride to
// the mode's default.
func WithMode(m block.Mode) Option {
	if m != block.Fixed && m != block.Sliding {
		panic("engine: WithMode(unknown mode)")
	}
	return func(c *config) {
		c.mode = m
		c.stride = m.Stride()
	}
}

// WithStride overrides the block stride. Panics if n <= 0.
func WithStride(n int) Option {
	if n <= 0 {
		panic("engine: WithStride(n<=0)")
	}
	return func(c *config) {
		c.stride = n
	}
}

// WithThresholds sets the Ω classification thresholds. Panics unless
// 0 <= weak < strong.
func WithThresholds(t omega.Thresholds) Option {
	if err := t.Validate(); err != nil {
		panic("engine: WithThresholds: " + err.Error())
	}
	return func(c *config) {
		c.thresholds = t
	}
}

// WithTracks replaces the track set. Panics on an invalid set.
func WithTracks(s track.Set) Option {
	if err := s.Validate(); err != nil {
		panic("engine: WithTracks: " + err.Error())
	}
	s = append(track.Set(nil), s...)
	return func(c *config) {
		c.tracks = s
	}
}

// WithAttributeTable replaces the attribute table. Panics on nil.
func WithAttributeTable(t *attribute.Table) Option {
	if t == nil {
		panic("engine: WithAttributeTable(nil)")
	}
	return func(c *config) {
		c.table = t
	}
}

// WithOmegaBasis selects which ratios enter Ω.
func WithOmegaBasis(b omega.Basis) Option {
	if b != omega.BasisDimensions && b != omega.BasisTracks {
		panic("engine: WithOmegaBasis(unknown basis)")
	}
	return func(c *config) {
		c.basis = b
	}
}

// WithComposite adds composite scores to every report.
func WithComposite() Option {
	return func(c *config) {
		c.composite = true
	}
}

// SPDX-License-Identifier: MIT
// Package: ninefold/engine
//
// config.go — the immutable engine configuration and its fingerprint.
//
// Deterministic defaults:
//   • mode       = block.Fixed, stride = 12
//   • table      = attribute.Default()
//   • tracks     = track.Reference()
//   • basis      = omega.BasisDimensions
//   • thresholds = omega.DefaultThresholds()
//   • composite  = off

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/track"
)

type config struct {
	mode       block.Mode
	stride     int
	table      *attribute.Table
	tracks     track.Set
	basis      omega.Basis
	thresholds omega.Thresholds
	composite  bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		mode:       block.Fixed,
		stride:     block.Fixed.Stride(),
		table:      attribute.Default(),
		tracks:     track.Reference(),
		basis:      omega.BasisDimensions,
		thresholds: omega.DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// fingerprint hashes everything that can change a report, so cached
// reports are only reused by an identically configured engine.
func (c config) fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "mode=%s stride=%d basis=%s weak=%g strong=%g composite=%t\n",
		c.mode, c.stride, c.basis, c.thresholds.Weak, c.thresholds.Strong, c.composite)
	fmt.Fprintf(h, "profiles=%v relation=%v\n", c.table.Profiles(), c.table.Matrix())
	for _, d := range c.tracks {
		writeTrack(h, d)
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func writeTrack(w io.Writer, d *track.Definition) {
	fmt.Fprintf(w, "track %d %s %s dims=%v", d.ID(), d.Name(), d.Kind(), d.Dimensions())
	for v := uint8(0); v < digits.Base; v++ {
		fmt.Fprintf(w, " %d:%s:%t", v, d.Symbol(v), d.IsYang(v))
	}
	for _, r := range d.Rules() {
		fmt.Fprintf(w, " (%d,%d,%s,%s)", r.A, r.B, r.Type, r.Polarity)
	}
	fmt.Fprintln(w)
}

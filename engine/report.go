// SPDX-License-Identifier: MIT
// Package: ninefold/engine
//
// report.go — the typed analysis report.

package engine

import (
	"github.com/katalvlaran/ninefold/composite"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/symmetry"
	"github.com/katalvlaran/ninefold/track"
)

// DirectReport compares adjacent pairing in both directions.
type DirectReport struct {
	Forward  pairing.DirectResult  `json:"forward" yaml:"forward"`
	Backward pairing.DirectResult  `json:"backward" yaml:"backward"`
	Symmetry symmetry.DirectResult `json:"symmetry" yaml:"symmetry"`
}

// TrackReport is one track analysed in both directions.
type TrackReport struct {
	Track    track.ID            `json:"track" yaml:"track"`
	Name     string              `json:"name" yaml:"name"`
	Kind     track.Kind          `json:"kind" yaml:"kind"`
	Forward  pairing.TrackResult `json:"forward" yaml:"forward"`
	Backward pairing.TrackResult `json:"backward" yaml:"backward"`
	Symmetry symmetry.Result     `json:"symmetry" yaml:"symmetry"`
	Direct   *DirectReport       `json:"direct_pairing,omitempty" yaml:"direct_pairing,omitempty"`
}

// Report is the result of one analysis call.
type Report struct {
	Length       int               `json:"length" yaml:"length"`
	Mode         string            `json:"mode" yaml:"mode"`
	Stride       int               `json:"stride" yaml:"stride"`
	Fingerprint  string            `json:"fingerprint" yaml:"fingerprint"`
	Tracks       []TrackReport     `json:"tracks" yaml:"tracks"`
	Basis        omega.Basis       `json:"omega_basis" yaml:"omega_basis"`
	Deltas       []omega.Delta     `json:"deltas" yaml:"deltas"`
	Omega        float64           `json:"omega" yaml:"omega"`
	Level        omega.Level       `json:"level" yaml:"level"`
	Thresholds   omega.Thresholds  `json:"thresholds" yaml:"thresholds"`
	Symmetry     symmetry.Summary  `json:"reverse_analysis" yaml:"reverse_analysis"`
	Insufficient bool              `json:"insufficient_length" yaml:"insufficient_length"`
	Composite    *composite.Result `json:"composite,omitempty" yaml:"composite,omitempty"`
}

// Track returns the report of track id, or nil.
func (r *Report) Track(id track.ID) *TrackReport {
	for i := range r.Tracks {
		if r.Tracks[i].Track == id {
			return &r.Tracks[i]
		}
	}

	return nil
}

// Warning returns ErrInsufficientLength when the sequence was too short for
// block analysis, nil otherwise.
func (r *Report) Warning() error {
	if r.Insufficient {
		return ErrInsufficientLength
	}

	return nil
}

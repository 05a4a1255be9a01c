// SPDX-License-Identifier: MIT
// Package: ninefold/engine
//
// engine.go — construction and analysis.

package engine

import (
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/composite"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/symmetry"
	"github.com/katalvlaran/ninefold/track"
)

// Engine analyses digit sequences under one immutable configuration.
type Engine struct {
	cfg         config
	fingerprint string
	basisTrack  *track.Definition // attribute track feeding the dimension basis
}

// New builds an Engine from options.
func New(opts ...Option) (*Engine, error) {
	cfg := newConfig(opts...)
	e := &Engine{cfg: cfg, fingerprint: cfg.fingerprint()}
	if attr := cfg.tracks.Of(track.Attribute); len(attr) > 0 {
		e.basisTrack = attr[0]
	}
	if cfg.basis == omega.BasisDimensions && e.basisTrack == nil {
		return nil, engineErrorf(opNew, ErrNoAttributeTrack)
	}

	return e, nil
}

// Default is New without options; the reference configuration never fails.
func Default() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}

	return e
}

// Fingerprint identifies the configuration; equal fingerprints produce
// equal reports for equal input.
func (e *Engine) Fingerprint() string { return e.fingerprint }

// Thresholds returns the classification thresholds.
func (e *Engine) Thresholds() omega.Thresholds { return e.cfg.thresholds }

// Tracks returns a copy of the configured tracks.
func (e *Engine) Tracks() track.Set { return append(track.Set(nil), e.cfg.tracks...) }

// Analyze validates raw and analyses it.
func (e *Engine) Analyze(raw []int) (*Report, error) {
	seq, err := digits.New(raw)
	if err != nil {
		return nil, engineErrorf(opAnalyze, joinInvalid(err))
	}

	return e.analyze(seq)
}

// AnalyzeSequence analyses an already converted sequence, re-validating it.
func (e *Engine) AnalyzeSequence(seq digits.Sequence) (*Report, error) {
	if err := seq.Validate(); err != nil {
		return nil, engineErrorf(opAnalyze, joinInvalid(err))
	}

	return e.analyze(seq)
}

// Omega is a shortcut returning only Ω and its level.
func (e *Engine) Omega(seq digits.Sequence) (float64, omega.Level, error) {
	r, err := e.AnalyzeSequence(seq)
	if err != nil {
		return 0, omega.None, err
	}

	return r.Omega, r.Level, nil
}

func (e *Engine) analyze(seq digits.Sequence) (*Report, error) {
	if e.cfg.composite && len(seq) == 0 {
		return nil, engineErrorf(opAnalyze, joinInvalid(composite.ErrEmptySequence))
	}
	rep := &Report{
		Length:       len(seq),
		Mode:         e.cfg.mode.String(),
		Stride:       e.cfg.stride,
		Fingerprint:  e.fingerprint,
		Basis:        e.cfg.basis,
		Thresholds:   e.cfg.thresholds,
		Insufficient: len(seq) < block.Size,
		Tracks:       make([]TrackReport, 0, len(e.cfg.tracks)),
	}

	rev := seq.Reverse()
	scores := make([]symmetry.TrackScore, 0, len(e.cfg.tracks))
	for _, def := range e.cfg.tracks {
		tr, err := e.analyzeTrack(def, seq, rev)
		if err != nil {
			return nil, engineErrorf(opAnalyze, err)
		}
		rep.Tracks = append(rep.Tracks, tr)
		scores = append(scores, symmetry.TrackScore{Track: def.ID(), Overall: tr.Symmetry.Overall})
	}
	rep.Symmetry = symmetry.Summarize(scores)

	rep.Deltas = e.deltas(rep)
	rep.Omega = omega.Compute(rep.Deltas)
	rep.Level = omega.Classify(rep.Omega, e.cfg.thresholds)

	if e.cfg.composite {
		var ratio float64
		if tr := rep.Track(e.basisTrackID()); tr != nil {
			ratio = tr.Forward.State.Ratio
		}
		c, err := composite.Analyze(seq, ratio)
		if err != nil {
			return nil, engineErrorf(opAnalyze, joinInvalid(err))
		}
		rep.Composite = &c
	}

	return rep, nil
}

func (e *Engine) analyzeTrack(def *track.Definition, seq, rev digits.Sequence) (TrackReport, error) {
	fwd, err := pairing.AnalyzeTrack(def, e.cfg.table, seq, e.cfg.stride)
	if err != nil {
		return TrackReport{}, err
	}
	bwd, err := pairing.AnalyzeTrack(def, e.cfg.table, rev, e.cfg.stride)
	if err != nil {
		return TrackReport{}, err
	}
	tr := TrackReport{
		Track:    def.ID(),
		Name:     def.Name(),
		Kind:     def.Kind(),
		Forward:  fwd,
		Backward: bwd,
		Symmetry: symmetry.Compare(fwd, bwd),
	}
	if def.Kind() == track.Alphabet {
		tr.Direct = &DirectReport{
			Forward:  fwd.Direct,
			Backward: bwd.Direct,
			Symmetry: symmetry.CompareDirect(fwd.Direct, bwd.Direct),
		}
	}

	return tr, nil
}

func (e *Engine) basisTrackID() track.ID {
	if e.basisTrack == nil {
		return 0
	}

	return e.basisTrack.ID()
}

// deltas builds the ΔR terms of the configured basis.
func (e *Engine) deltas(rep *Report) []omega.Delta {
	var out []omega.Delta
	switch e.cfg.basis {
	case omega.BasisTracks:
		for _, tr := range rep.Tracks {
			out = append(out, omega.NewDelta(tr.Track.String(), tr.Forward.Primary(), tr.Backward.Primary()))
		}
	default:
		tr := rep.Track(e.basisTrackID())
		for _, dim := range e.basisTrack.Dimensions() {
			f, _ := tr.Forward.State.Dimension(dim)
			b, _ := tr.Backward.State.Dimension(dim)
			out = append(out, omega.NewDelta(dim.String(), f.Ratio, b.Ratio))
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: ninefold/pairing
//
// track.go — one track, one direction.

package pairing

import (
	"fmt"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/track"
)

// AnalyzeTrack scores seq on def. Attribute tracks partition seq at stride
// and pair part states; alphabet tracks pair globally and directly.
// Sequences shorter than block.Size yield zero pairing results and a
// polarity computed over the whole sequence.
//
// To analyse the backward direction pass seq.Reverse(); the block series is
// then reverse-then-slice.
func AnalyzeTrack(def *track.Definition, tab *attribute.Table, seq digits.Sequence, stride int) (TrackResult, error) {
	if def == nil {
		return TrackResult{}, ErrNilTrack
	}
	res := TrackResult{Track: def.ID(), Kind: def.Kind(), Polarity: Polarity(def, seq)}
	if len(seq) < block.Size {
		if stride <= 0 {
			return TrackResult{}, fmt.Errorf("AnalyzeTrack(%s): %w", def.ID(), block.ErrBadStride)
		}
		return res, nil
	}

	switch def.Kind() {
	case track.Attribute:
		if tab == nil {
			return TrackResult{}, fmt.Errorf("AnalyzeTrack(%s): %w", def.ID(), ErrNilTable)
		}
		blocks, err := block.Partition(seq, stride)
		if err != nil {
			return TrackResult{}, fmt.Errorf("AnalyzeTrack(%s): %w", def.ID(), err)
		}
		res.State = StatePairs(tab, blocks, def.Dimensions())
	case track.Alphabet:
		res.Global = GlobalPairs(def, seq)
	}
	res.Direct = DirectPairs(def, seq)

	return res, nil
}

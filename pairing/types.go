// SPDX-License-Identifier: MIT
// Package: ninefold/pairing
//
// types.go — result records.

package pairing

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/ninefold/attribute"
	"github.com/katalvlaran/ninefold/track"
)

// Result counts valid pairs among attempted pairs.
type Result struct {
	Valid int     `json:"valid_pairs" yaml:"valid_pairs"`
	Total int     `json:"total_pairs" yaml:"total_pairs"`
	Ratio float64 `json:"pair_ratio" yaml:"pair_ratio"`
}

// NewResult fills Ratio, defining 0/0 as 0.
func NewResult(valid, total int) Result {
	r := Result{Valid: valid, Total: total}
	if total > 0 {
		r.Ratio = float64(valid) / float64(total)
	}

	return r
}

func (r Result) add(o Result) Result { return NewResult(r.Valid+o.Valid, r.Total+o.Total) }

// DimensionResult is the state pairing of one dimension.
type DimensionResult struct {
	Dimension attribute.Dimension `json:"dimension" yaml:"dimension"`
	Result    `yaml:",inline"`
}

// StateResult aggregates block state pairing over all dimensions.
type StateResult struct {
	Result      `yaml:",inline"`
	Blocks      int               `json:"blocks" yaml:"blocks"`
	ByDimension []DimensionResult `json:"by_dimension,omitempty" yaml:"by_dimension,omitempty"`
}

// Dimension returns the result of dim, or false if dim was not observed.
func (s StateResult) Dimension(dim attribute.Dimension) (Result, bool) {
	for _, d := range s.ByDimension {
		if d.Dimension == dim {
			return d.Result, true
		}
	}

	return Result{}, false
}

// TypeCount is the number of pairs formed under one rule type.
type TypeCount struct {
	Type     track.Symbol `json:"type" yaml:"type"`
	Polarity string       `json:"polarity" yaml:"polarity"`
	Count    int          `json:"count" yaml:"count"`
}

// GlobalResult is the whole-sequence multiset pairing of an alphabet track.
type GlobalResult struct {
	Result   `yaml:",inline"`
	Types    []TypeCount   `json:"pair_types,omitempty" yaml:"pair_types,omitempty"`
	Unpaired map[uint8]int `json:"unpaired,omitempty" yaml:"unpaired,omitempty"`
}

// DirectResult is the adjacent-pair scan of an alphabet track.
type DirectResult struct {
	Result   `yaml:",inline"`
	Unpaired int `json:"unpaired_count" yaml:"unpaired_count"`
}

// Ratio is a yang/yin ratio. +Inf (no yin digits) is encoded in JSON as
// the string "inf".
type Ratio float64

// MarshalJSON implements json.Marshaler.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(r), 1) {
		return []byte(`"inf"`), nil
	}

	return json.Marshal(float64(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == `"inf"` {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Ratio(f)

	return nil
}

// PolarityResult is the yang/yin balance of a sequence on one track.
type PolarityResult struct {
	Yang        int     `json:"yang_count" yaml:"yang_count"`
	Yin         int     `json:"yin_count" yaml:"yin_count"`
	Ratio       Ratio   `json:"ratio" yaml:"ratio"`
	YangPercent float64 `json:"yang_percent" yaml:"yang_percent"`
}

// TrackResult is one track analysed in one direction. State is populated
// for attribute tracks, Global for alphabet tracks.
type TrackResult struct {
	Track    track.ID       `json:"track" yaml:"track"`
	Kind     track.Kind     `json:"kind" yaml:"kind"`
	State    StateResult    `json:"symbol_pairs" yaml:"symbol_pairs"`
	Global   GlobalResult   `json:"global_digit_pairs" yaml:"global_digit_pairs"`
	Direct   DirectResult   `json:"digit_pairs" yaml:"digit_pairs"`
	Polarity PolarityResult `json:"yinyang" yaml:"yinyang"`
}

// Primary returns the pairing ratio that represents the track in Ω:
// the state ratio for attribute tracks, the global ratio for alphabet ones.
func (t TrackResult) Primary() float64 {
	if t.Kind == track.Alphabet {
		return t.Global.Ratio
	}

	return t.State.Ratio
}

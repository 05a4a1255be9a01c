// SPDX-License-Identifier: MIT
// Package: ninefold/symmetry
//
// symmetry.go — forward/backward comparison.

package symmetry

import (
	"math"

	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/track"
)

// Result is the symmetry of one track.
type Result struct {
	PairRatioDiff         float64 `json:"pair_ratio_diff" yaml:"pair_ratio_diff"`
	PairRatioSimilarity   float64 `json:"pair_ratio_similarity" yaml:"pair_ratio_similarity"`
	GlobalRatioDiff       float64 `json:"global_ratio_diff" yaml:"global_ratio_diff"`
	GlobalRatioSimilarity float64 `json:"global_ratio_similarity" yaml:"global_ratio_similarity"`
	YangPercentDiff       float64 `json:"yang_percent_diff" yaml:"yang_percent_diff"`
	YangPercentSimilarity float64 `json:"yang_percent_similarity" yaml:"yang_percent_similarity"`
	BlockDiff             int     `json:"window_diff" yaml:"window_diff"`
	Overall               float64 `json:"overall_symmetry" yaml:"overall_symmetry"`
}

// DirectResult compares adjacent pairing in both directions.
type DirectResult struct {
	PairRatioDiff       float64 `json:"pair_ratio_diff" yaml:"pair_ratio_diff"`
	PairRatioSimilarity float64 `json:"pair_ratio_similarity" yaml:"pair_ratio_similarity"`
	ValidPairsDiff      int     `json:"valid_pairs_diff" yaml:"valid_pairs_diff"`
	TotalPairsDiff      int     `json:"total_pairs_diff" yaml:"total_pairs_diff"`
}

// Similarity returns 1 − |a − b| clamped to [0, 1].
func Similarity(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 1 {
		return 0
	}

	return 1 - d
}

// Compare scores fwd against bwd. Both must describe the same track.
func Compare(fwd, bwd pairing.TrackResult) Result {
	r := Result{
		PairRatioDiff:         math.Abs(fwd.State.Ratio - bwd.State.Ratio),
		PairRatioSimilarity:   Similarity(fwd.State.Ratio, bwd.State.Ratio),
		GlobalRatioDiff:       math.Abs(fwd.Global.Ratio - bwd.Global.Ratio),
		GlobalRatioSimilarity: Similarity(fwd.Global.Ratio, bwd.Global.Ratio),
		YangPercentDiff:       math.Abs(fwd.Polarity.YangPercent - bwd.Polarity.YangPercent),
		YangPercentSimilarity: Similarity(fwd.Polarity.YangPercent, bwd.Polarity.YangPercent),
		BlockDiff:             absInt(fwd.State.Blocks - bwd.State.Blocks),
	}
	if fwd.Kind == track.Alphabet {
		r.Overall = (r.PairRatioSimilarity + r.GlobalRatioSimilarity + r.YangPercentSimilarity) / 3
	} else {
		r.Overall = (r.PairRatioSimilarity + r.YangPercentSimilarity) / 2
	}

	return r
}

// CompareDirect scores forward against backward adjacent pairing.
func CompareDirect(fwd, bwd pairing.DirectResult) DirectResult {
	return DirectResult{
		PairRatioDiff:       math.Abs(fwd.Ratio - bwd.Ratio),
		PairRatioSimilarity: Similarity(fwd.Ratio, bwd.Ratio),
		ValidPairsDiff:      absInt(fwd.Valid - bwd.Valid),
		TotalPairsDiff:      absInt(fwd.Total - bwd.Total),
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// SPDX-License-Identifier: MIT
// Package: ninefold/composite
//
// composite.go — bounded scores, complexity and consistency.

package composite

import (
	"math"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/pattern"
	"github.com/katalvlaran/ninefold/stats"
)

// Weights of the complexity score.
const (
	WeightEntropy     = 0.4
	WeightDensity     = 0.3
	WeightPairRatio   = 0.2
	WeightCorrelation = 0.1
)

// Scores are the four bounded scores and their mean.
type Scores struct {
	Randomness        float64 `json:"randomness" yaml:"randomness"`
	PatternComplexity float64 `json:"pattern_complexity" yaml:"pattern_complexity"`
	Symmetry          float64 `json:"symmetry" yaml:"symmetry"`
	Predictability    float64 `json:"predictability" yaml:"predictability"`
	Overall           float64 `json:"overall" yaml:"overall"`
}

// Consistency cross-checks statistics that usually move together.
type Consistency struct {
	Pattern     float64 `json:"pattern_consistency" yaml:"pattern_consistency"`
	Correlation float64 `json:"correlation_consistency" yaml:"correlation_consistency"`
	Overall     float64 `json:"overall_consistency" yaml:"overall_consistency"`
}

// Result is the composite analysis of one sequence.
type Result struct {
	Stats       stats.Summary    `json:"statistical" yaml:"statistical"`
	Patterns    pattern.Analysis `json:"pattern" yaml:"pattern"`
	PairRatio   float64          `json:"four_track_pair_ratio" yaml:"four_track_pair_ratio"`
	Complexity  float64          `json:"complexity_score" yaml:"complexity_score"`
	Scores      Scores           `json:"scores" yaml:"scores"`
	Consistency Consistency      `json:"consistency" yaml:"consistency"`
}

// Analyze computes statistics and patterns of seq and scores them together
// with pairRatio, the attribute-track state-pairing ratio.
func Analyze(seq digits.Sequence, pairRatio float64) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrEmptySequence
	}
	r := Result{Stats: stats.Describe(seq), Patterns: pattern.Analyze(seq), PairRatio: pairRatio}
	r.Scores = Score(r.Stats, r.Patterns, pairRatio)
	r.Complexity = ComplexityScore(r.Stats, r.Patterns, pairRatio)
	r.Consistency = Check(r.Stats, r.Patterns, pairRatio)

	return r, nil
}

func clamp1(v float64) float64 { return math.Min(v, 1) }

func densityScore(p pattern.Analysis) float64 { return clamp1(p.Density * 10) }

// Score computes the four bounded scores and their mean.
func Score(s stats.Summary, p pattern.Analysis, pairRatio float64) Scores {
	sc := Scores{
		Randomness:        clamp1(s.Entropy / stats.MaxEntropy),
		PatternComplexity: (densityScore(p) + clamp1(float64(p.Total)/100)) / 2,
		Symmetry:          clamp1(pairRatio * 2),
		Predictability:    clamp1((math.Abs(s.Correlation) + densityScore(p)) / 2),
	}
	sc.Overall = (sc.Randomness + sc.PatternComplexity + sc.Symmetry + sc.Predictability) / 4

	return sc
}

// ComplexityScore is the weighted blend of entropy, density, pairing and
// correlation.
func ComplexityScore(s stats.Summary, p pattern.Analysis, pairRatio float64) float64 {
	return WeightEntropy*clamp1(s.Entropy/stats.MaxEntropy) +
		WeightDensity*densityScore(p) +
		WeightPairRatio*clamp1(pairRatio*2) +
		WeightCorrelation*math.Abs(s.Correlation)
}

// Check compares pattern density with the density expected from entropy
// and |r1| with the correlation expected from pairing.
func Check(s stats.Summary, p pattern.Analysis, pairRatio float64) Consistency {
	expDensity := math.Max(0, 1-s.Entropy/stats.MaxEntropy)
	c := Consistency{
		Pattern:     1 - math.Abs(p.Density-expDensity),
		Correlation: 1 - math.Abs(math.Abs(s.Correlation)-pairRatio*2),
	}
	c.Overall = (c.Pattern + c.Correlation) / 2

	return c
}

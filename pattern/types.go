// SPDX-License-Identifier: MIT
// Package: ninefold/pattern
//
// types.go — pattern records and the analysis summary.

package pattern

// Kind names a pattern family.
type Kind string

// Pattern families.
const (
	Repetition           Kind = "repetition"
	SequentialIncreasing Kind = "sequential_increasing"
	SequentialDecreasing Kind = "sequential_decreasing"
	Pair                 Kind = "pair"
)

// Detection limits.
const (
	MinRepeatLength = 2
	MaxRepeatLength = 20
	MinRepeats      = 2
	MinSequential   = 3
	TopPairs        = 10
	MinPairCount    = 3
	MaxScoreLength  = 10
)

// Pattern is one detected pattern. Count is 1 for sequential runs, which
// report Start/End instead of Positions.
type Pattern struct {
	Kind      Kind  `json:"type" yaml:"type"`
	Digits    []int `json:"pattern" yaml:"pattern,flow"`
	Length    int   `json:"length" yaml:"length"`
	Count     int   `json:"count" yaml:"count"`
	Positions []int `json:"positions,omitempty" yaml:"positions,omitempty,flow"`
	Start     int   `json:"start,omitempty" yaml:"start,omitempty"`
	End       int   `json:"end,omitempty" yaml:"end,omitempty"`
	Score     int   `json:"score" yaml:"score"`
}

// Analysis is the pattern summary of a sequence.
type Analysis struct {
	Patterns        []Pattern    `json:"patterns" yaml:"patterns"`
	RepetitionScore int          `json:"repetition_score" yaml:"repetition_score"`
	PairScore       int          `json:"pair_score" yaml:"pair_score"`
	SequentialScore int          `json:"sequential_score" yaml:"sequential_score"`
	Density         float64      `json:"pattern_density" yaml:"pattern_density"`
	Distribution    map[Kind]int `json:"pattern_distribution" yaml:"pattern_distribution"`
	Total           int          `json:"total_patterns" yaml:"total_patterns"`
}

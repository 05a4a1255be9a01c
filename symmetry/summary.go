// SPDX-License-Identifier: MIT
// Package: ninefold/symmetry
//
// summary.go — cross-track symmetry summary.

package symmetry

import "github.com/katalvlaran/ninefold/track"

const (
	// HighAbove is the lower bound (exclusive) of the high grade.
	HighAbove = 0.8
	// MediumAbove is the lower bound (exclusive) of the medium grade.
	MediumAbove = 0.4
)

// Grade buckets a symmetry score: Low, Medium or High.
type Grade uint8

const (
	Low Grade = iota
	Medium
	High
)

// String returns "low", "medium" or "high".
func (g Grade) String() string {
	switch g {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// GradeOf buckets v.
func GradeOf(v float64) Grade {
	switch {
	case v > HighAbove:
		return High
	case v > MediumAbove:
		return Medium
	default:
		return Low
	}
}

// TrackScore is the overall symmetry of one track.
type TrackScore struct {
	Track   track.ID `json:"track" yaml:"track"`
	Overall float64  `json:"overall_symmetry" yaml:"overall_symmetry"`
}

// Distribution counts tracks per grade.
type Distribution struct {
	High   int `json:"high" yaml:"high"`
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
}

// Summary describes symmetry across tracks.
type Summary struct {
	Tracks       []TrackScore `json:"track_symmetry" yaml:"track_symmetry"`
	Mean         float64      `json:"overall_symmetry" yaml:"overall_symmetry"`
	Max          float64      `json:"max_symmetry" yaml:"max_symmetry"`
	Min          float64      `json:"min_symmetry" yaml:"min_symmetry"`
	Range        float64      `json:"symmetry_range" yaml:"symmetry_range"`
	Most         track.ID     `json:"most_symmetric_track,omitempty" yaml:"most_symmetric_track,omitempty"`
	Least        track.ID     `json:"least_symmetric_track,omitempty" yaml:"least_symmetric_track,omitempty"`
	Distribution Distribution `json:"symmetry_distribution" yaml:"symmetry_distribution"`
}

// Summarize aggregates per-track scores. Ties for most/least symmetric go
// to the earliest track. An empty input yields the zero Summary.
func Summarize(scores []TrackScore) Summary {
	var s Summary
	if len(scores) == 0 {
		return s
	}
	s.Tracks = append([]TrackScore(nil), scores...)
	s.Max, s.Min = scores[0].Overall, scores[0].Overall
	s.Most, s.Least = scores[0].Track, scores[0].Track

	sum := 0.0
	for _, ts := range scores {
		sum += ts.Overall
		if ts.Overall > s.Max {
			s.Max, s.Most = ts.Overall, ts.Track
		}
		if ts.Overall < s.Min {
			s.Min, s.Least = ts.Overall, ts.Track
		}
		switch GradeOf(ts.Overall) {
		case High:
			s.Distribution.High++
		case Medium:
			s.Distribution.Medium++
		default:
			s.Distribution.Low++
		}
	}
	s.Mean = sum / float64(len(scores))
	s.Range = s.Max - s.Min

	return s
}

// Of returns the tracks whose score falls in grade g, in input order.
func (s Summary) Of(g Grade) []track.ID {
	var out []track.ID
	for _, ts := range s.Tracks {
		if GradeOf(ts.Overall) == g {
			out = append(out, ts.Track)
		}
	}

	return out
}

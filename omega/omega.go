// SPDX-License-Identifier: MIT
// Package: ninefold/omega
//
// omega.go — ΔR terms, Ω, thresholds and levels.

package omega

import (
	"fmt"
	"math"
)

// Default calibrated thresholds.
const (
	DefaultWeak   = 0.040158
	DefaultStrong = 0.060237
)

// Basis selects which ratios enter Ω.
type Basis uint8

const (
	// BasisDimensions uses the per-dimension state ratios of the first
	// attribute track.
	BasisDimensions Basis = iota
	// BasisTracks uses one primary ratio per track.
	BasisTracks
)

// String returns "dimensions" or "tracks".
func (b Basis) String() string {
	if b == BasisTracks {
		return "tracks"
	}

	return "dimensions"
}

// ParseBasis is the inverse of String; "" selects BasisDimensions.
func ParseBasis(s string) (Basis, error) {
	switch s {
	case "", "dimensions":
		return BasisDimensions, nil
	case "tracks":
		return BasisTracks, nil
	default:
		return 0, fmt.Errorf("ParseBasis(%q): %w", s, ErrBadBasis)
	}
}

// Delta is one ΔR term.
type Delta struct {
	Label    string  `json:"label" yaml:"label"`
	Forward  float64 `json:"forward" yaml:"forward"`
	Backward float64 `json:"backward" yaml:"backward"`
	Delta    float64 `json:"delta" yaml:"delta"`
}

// NewDelta computes |forward − backward|.
func NewDelta(label string, forward, backward float64) Delta {
	return Delta{Label: label, Forward: forward, Backward: backward, Delta: math.Abs(forward - backward)}
}

// Compute returns sqrt(Σ ΔR²). An empty list yields 0.
func Compute(deltas []Delta) float64 {
	sum := 0.0
	for _, d := range deltas {
		sum += d.Delta * d.Delta
	}

	return math.Sqrt(sum)
}

// Thresholds are the classification cut points.
type Thresholds struct {
	Weak   float64 `json:"weak" yaml:"weak"`
	Strong float64 `json:"strong" yaml:"strong"`
}

// DefaultThresholds returns the calibrated defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{Weak: DefaultWeak, Strong: DefaultStrong}
}

// Validate checks 0 ≤ Weak < Strong.
func (t Thresholds) Validate() error {
	if math.IsNaN(t.Weak) || math.IsNaN(t.Strong) || t.Weak < 0 || t.Weak >= t.Strong {
		return fmt.Errorf("Thresholds{%g, %g}: %w", t.Weak, t.Strong, ErrBadThresholds)
	}

	return nil
}

// Level is the structural classification of Ω.
type Level uint8

const (
	// None: random-like, no structure.
	None Level = iota
	// Weak structure.
	Weak
	// Strong structure.
	Strong
)

var levelNames = [...]string{"none", "weak", "strong"}

var levelDescriptions = [...]string{
	"no structure (random-like)",
	"weak structure",
	"strong structure",
}

// String returns "none", "weak" or "strong".
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}

	return "unknown"
}

// Description returns a human-readable label.
func (l Level) Description() string {
	if int(l) < len(levelDescriptions) {
		return levelDescriptions[l]
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	for i, n := range levelNames {
		if n == string(b) {
			*l = Level(i)
			return nil
		}
	}

	return fmt.Errorf("Level(%q): %w", b, ErrBadLevel)
}

// Classify grades v against t.
func Classify(v float64, t Thresholds) Level {
	switch {
	case v < t.Weak:
		return None
	case v < t.Strong:
		return Weak
	default:
		return Strong
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Basis) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Basis) UnmarshalText(text []byte) error {
	v, err := ParseBasis(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

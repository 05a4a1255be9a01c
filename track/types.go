// SPDX-License-Identifier: MIT
// Package: ninefold/track
//
// types.go — track identifiers, kinds, symbols, polarity and pair rules.

package track

import "fmt"

// ID identifies a track inside a Set. The reference set uses 1..4.
type ID uint8

// String renders the conventional "trackN" label.
func (id ID) String() string { return fmt.Sprintf("track%d", id) }

// Kind distinguishes attribute tracks from alphabet tracks.
type Kind uint8

const (
	// Attribute tracks are scored by per-block state pairing.
	Attribute Kind = iota + 1
	// Alphabet tracks are scored by whole-sequence complementary pairing.
	Alphabet
)

// String returns "attribute" or "alphabet".
func (k Kind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Alphabet:
		return "alphabet"
	default:
		return "unknown"
	}
}

// Symbol is one element of an alphabet track's alphabet.
type Symbol string

// Polarity is the binary yang/yin class.
type Polarity uint8

const (
	// Yin is the passive class.
	Yin Polarity = iota
	// Yang is the active class.
	Yang
)

// String returns "yin" or "yang".
func (p Polarity) String() string {
	if p == Yang {
		return "yang"
	}

	return "yin"
}

// PairRule declares that digits A and B complement each other. Type labels
// the rule in per-type counts; rules sharing a Type are aggregated.
type PairRule struct {
	A, B     uint8
	Type     Symbol
	Polarity Polarity
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "attribute":
		*k = Attribute
	case "alphabet":
		*k = Alphabet
	default:
		return fmt.Errorf("Kind(%q): %w", b, ErrBadKind)
	}

	return nil
}

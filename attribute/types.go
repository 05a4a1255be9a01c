// SPDX-License-Identifier: MIT
// Package: ninefold/attribute
//
// types.go — profiles, the relation matrix and analysis dimensions.

package attribute

import (
	"fmt"

	"github.com/katalvlaran/ninefold/digits"
)

// Levels is the number of distinct levels and the order of RelationMatrix.
const Levels = 5

// Profile holds the four attributes of one digit.
type Profile struct {
	Scale    uint8 // 1 = small, 0 = large
	Level    uint8 // 1..5
	Position uint8 // 1 = up, 0 = down
	Parity   uint8 // 1 = odd, 0 = even
}

// RelationMatrix holds R[i][j], the relation of level i+1 acting on level j+1.
type RelationMatrix [Levels][Levels]uint8

// Profiles is the full digit → profile mapping.
type Profiles [digits.Base]Profile

// Dimension selects which bit pattern of a 3-digit part is encoded.
type Dimension uint8

const (
	// Scale reads the small/large bit of each digit.
	Scale Dimension = iota
	// Position reads the up/down bit of each digit.
	Position
	// Parity reads the odd/even bit of each digit.
	Parity
	// Relation reads the level relations around the part's ring.
	Relation
)

// Dimensions lists every dimension in canonical order.
var Dimensions = []Dimension{Scale, Position, Parity, Relation}

var dimensionNames = [...]string{"scale", "position", "parity", "relation"}

// String returns the lower-case dimension name.
func (d Dimension) String() string {
	if int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}

	return "unknown"
}

// ParseDimension is the inverse of String.
func ParseDimension(name string) (Dimension, bool) {
	for i, n := range dimensionNames {
		if n == name {
			return Dimension(i), true
		}
	}

	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	if int(d) >= len(dimensionNames) {
		return nil, fmt.Errorf("Dimension(%d): %w", d, ErrBadDimension)
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(b []byte) error {
	v, ok := ParseDimension(string(b))
	if !ok {
		return fmt.Errorf("Dimension(%q): %w", b, ErrBadDimension)
	}
	*d = v

	return nil
}

// SPDX-License-Identifier: MIT
// Package: ninefold/state
//
// state.go — encoding, decoding and the sum-to-9 pairing rule.
//
// Contract:
//   • Encode is a bijection {0,1}³ → 1..8, ordered (1,1,1)→1 … (0,0,0)→8.
//   • Complement(Encode(b)) == Encode(¬b) for every tuple b.
//   • Pairs is commutative and true only for valid states summing to 9.

package state

import "fmt"

// Encode maps the tuple (b0,b1,b2) to its state. Any value other than 0 or 1
// yields Invalid.
//
// The tuple is read as a binary number v = b0·4 + b1·2 + b2 and the state is
// 8 − v, which reproduces the fixed table (1,1,1)→1, (1,1,0)→2, … (0,0,0)→8.
// Complexity: O(1).
func Encode(b0, b1, b2 uint8) ID {
	if b0 > 1 || b1 > 1 || b2 > 1 {
		return Invalid
	}
	v := b0<<2 | b1<<1 | b2

	return ID(8 - v)
}

// EncodeBits is the slice form of Encode. It returns ErrBadBits when bits
// does not hold exactly three binary values.
func EncodeBits(bits []uint8) (ID, error) {
	if len(bits) != Width {
		return Invalid, fmt.Errorf("EncodeBits(len=%d): %w", len(bits), ErrBadBits)
	}
	s := Encode(bits[0], bits[1], bits[2])
	if s == Invalid {
		return Invalid, fmt.Errorf("EncodeBits(%v): %w", bits, ErrBadBits)
	}

	return s, nil
}

// Decode returns the bit tuple of a valid state.
func Decode(s ID) ([Width]uint8, error) {
	if !s.Valid() {
		return [Width]uint8{}, fmt.Errorf("Decode(%d): %w", s, ErrBadState)
	}
	v := uint8(8 - s)

	return [Width]uint8{v >> 2 & 1, v >> 1 & 1, v & 1}, nil
}

// Complement returns 9 − s for valid states and Invalid otherwise.
func Complement(s ID) ID {
	if !s.Valid() {
		return Invalid
	}

	return PairSum - s
}

// Pairs reports whether s and t are complementary.
func Pairs(s, t ID) bool {
	return s.Valid() && t.Valid() && int(s)+int(t) == PairSum
}

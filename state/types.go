// SPDX-License-Identifier: MIT
// Package: ninefold/state
//
// types.go — the state identifier and its fixed bounds.

package state

// ID identifies one of the eight states. The zero value is Invalid.
type ID uint8

const (
	// Invalid is returned for malformed input; it never pairs with anything.
	Invalid ID = 0
	// Min is the smallest valid state (bits 1,1,1).
	Min ID = 1
	// Max is the largest valid state (bits 0,0,0).
	Max ID = 8
	// PairSum is the sum of two complementary states.
	PairSum = 9
	// Width is the number of bits encoded into one state.
	Width = 3
)

// Valid reports whether s lies in 1..8.
func (s ID) Valid() bool { return s >= Min && s <= Max }

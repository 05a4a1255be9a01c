// SPDX-License-Identifier: MIT
// Package: ninefold/block
//
// types.go — block geometry, modes and the Block view.

package block

import "github.com/katalvlaran/ninefold/digits"

const (
	// Size is the number of digits in one block.
	Size = 12
	// PartSize is the number of digits in one part.
	PartSize = 3
	// PartsPerBlock is Size / PartSize.
	PartsPerBlock = Size / PartSize
	// SlidingStride is the stride used by Sliding mode.
	SlidingStride = 5
)

// Mode selects how consecutive blocks are placed.
type Mode uint8

const (
	// Fixed places blocks back to back.
	Fixed Mode = iota
	// Sliding overlaps blocks with stride SlidingStride.
	Sliding
)

// Stride returns the default stride of the mode.
func (m Mode) Stride() int {
	if m == Sliding {
		return SlidingStride
	}

	return Size
}

// String returns "fixed" or "sliding".
func (m Mode) String() string {
	if m == Sliding {
		return "sliding"
	}

	return "fixed"
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "fixed", "":
		return Fixed, true
	case "sliding":
		return Sliding, true
	default:
		return Fixed, false
	}
}

// Block is one 12-digit window of a sequence.
type Block struct {
	Index  int             // position in the series, from 0
	Offset int             // start index in the partitioned sequence
	Digits digits.Sequence // exactly Size digits, shared with the input
}

// Part returns part i (0-based) of the block.
func (b Block) Part(i int) digits.Sequence {
	return b.Digits[i*PartSize : (i+1)*PartSize : (i+1)*PartSize]
}

// Parts returns the four parts in order.
func (b Block) Parts() [PartsPerBlock]digits.Sequence {
	var p [PartsPerBlock]digits.Sequence
	for i := range p {
		p[i] = b.Part(i)
	}

	return p
}

// SymmetricPairs lists the 0-based part indices compared inside a block:
// part1↔part3 and part2↔part4.
var SymmetricPairs = [2][2]int{{0, 2}, {1, 3}}

// SPDX-License-Identifier: MIT
// Package: ninefold/dna
//
// errors.go — sentinel errors for encoding and decoding.

package dna

import "errors"

var (
	// ErrBadBase indicates a character other than A, C, G, T or whitespace.
	ErrBadBase = errors.New("dna: invalid base")
	// ErrNotDecodable indicates Decode on a non-pair encoding.
	ErrNotDecodable = errors.New("dna: only the pair scheme is decodable")
	// ErrBadDigit indicates a digit outside 0..9 (pair) or 0..3 (simple).
	ErrBadDigit = errors.New("dna: digit out of range")
)

// SPDX-License-Identifier: MIT
// Package: ninefold/digits
//
// errors.go — sentinel errors for sequence validation and ingestion.

package digits

import "errors"

var (
	// ErrOutOfRange indicates an element outside 0..9.
	ErrOutOfRange = errors.New("digits: value out of range 0..9")
	// ErrForeignRune indicates a non-digit, non-separator rune in strict parsing.
	ErrForeignRune = errors.New("digits: unexpected character")
)

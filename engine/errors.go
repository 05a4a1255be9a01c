// SPDX-License-Identifier: MIT
// Package: ninefold/engine
//
// errors.go — sentinel errors and wrapping helper.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed input; the call produces no result.
	ErrInvalidInput = errors.New("engine: invalid input")
	// ErrInsufficientLength marks a sequence shorter than one block. It is
	// informational: the report is complete and its pairing results are zero.
	ErrInsufficientLength = errors.New("engine: sequence shorter than one block")
	// ErrNoAttributeTrack indicates the dimension basis was selected but no
	// attribute track is configured.
	ErrNoAttributeTrack = errors.New("engine: dimension basis needs an attribute track")
)

// Operation names for error wrapping.
const (
	opNew     = "New"
	opAnalyze = "Analyze"
)

func engineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// joinInvalid tags a validation failure as ErrInvalidInput while keeping
// the underlying cause reachable through errors.Is.
func joinInvalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

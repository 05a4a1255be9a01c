// SPDX-License-Identifier: MIT
// Package: ninefold/track
//
// errors.go — sentinel errors for track construction.

package track

import "errors"

var (
	// ErrNoDimensions indicates an attribute track without dimensions.
	ErrNoDimensions = errors.New("track: attribute track needs at least one dimension")
	// ErrPolarityOverlap indicates a symbol listed as both yang and yin.
	ErrPolarityOverlap = errors.New("track: symbol is both yang and yin")
	// ErrPolarityGap indicates a mapped symbol that is neither yang nor yin.
	ErrPolarityGap = errors.New("track: symbol has no polarity")
	// ErrBadRule indicates a pair rule with a digit outside 0..9 or an empty type.
	ErrBadRule = errors.New("track: invalid pair rule")
	// ErrBadDigit indicates a polarity digit outside 0..9.
	ErrBadDigit = errors.New("track: digit out of range 0..9")
	// ErrDuplicateID indicates two tracks with the same ID in a Set.
	ErrDuplicateID = errors.New("track: duplicate track id")
	// ErrEmptySet indicates a Set without tracks.
	ErrEmptySet = errors.New("track: empty track set")
	// ErrBadKind indicates an unknown track kind name.
	ErrBadKind = errors.New("track: unknown kind")
)

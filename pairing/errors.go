// SPDX-License-Identifier: MIT
// Package: ninefold/pairing
//
// errors.go — sentinel errors for track analysis.

package pairing

import "errors"

var (
	// ErrNilTrack indicates a nil *track.Definition.
	ErrNilTrack = errors.New("pairing: nil track definition")
	// ErrNilTable indicates a nil *attribute.Table for an attribute track.
	ErrNilTable = errors.New("pairing: nil attribute table")
)

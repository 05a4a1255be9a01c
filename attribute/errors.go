// SPDX-License-Identifier: MIT
// Package: ninefold/attribute
//
// errors.go — sentinel errors for table construction and lookups.

package attribute

import "errors"

var (
	// ErrBadProfile indicates a profile field outside its domain.
	ErrBadProfile = errors.New("attribute: profile field out of domain")
	// ErrBadRelation indicates a relation matrix entry other than 0 or 1.
	ErrBadRelation = errors.New("attribute: relation entry must be 0 or 1")
	// ErrBadLevel indicates a level outside 1..5.
	ErrBadLevel = errors.New("attribute: level out of range 1..5")
	// ErrBadPart indicates a part that does not hold exactly three digits.
	ErrBadPart = errors.New("attribute: part must hold exactly 3 digits")
	// ErrBadDimension indicates an unknown Dimension value.
	ErrBadDimension = errors.New("attribute: unknown dimension")
)

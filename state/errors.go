// SPDX-License-Identifier: MIT
// Package: ninefold/state
//
// errors.go — sentinel errors for the state package.
// Callers branch with errors.Is; messages are stable.

package state

import "errors"

var (
	// ErrBadBits indicates a tuple that is not exactly three binary values.
	ErrBadBits = errors.New("state: expected exactly 3 binary values")
	// ErrBadState indicates a state outside 1..8.
	ErrBadState = errors.New("state: id out of range 1..8")
)

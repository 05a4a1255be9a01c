// SPDX-License-Identifier: MIT
// Package: ninefold/omega
//
// errors.go — sentinel errors for Ω configuration.

package omega

import "errors"

var (
	// ErrBadThresholds indicates thresholds that are negative, NaN or not
	// strictly increasing.
	ErrBadThresholds = errors.New("omega: thresholds must satisfy 0 <= weak < strong")
	// ErrBadBasis indicates an unknown basis name.
	ErrBadBasis = errors.New("omega: unknown basis")
	// ErrBadLevel indicates an unknown level name.
	ErrBadLevel = errors.New("omega: unknown level")
)

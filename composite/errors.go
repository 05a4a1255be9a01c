// SPDX-License-Identifier: MIT
// Package: ninefold/composite
//
// errors.go — sentinel errors for composite scoring.

package composite

import "errors"

// ErrEmptySequence indicates composite scoring of an empty sequence.
var ErrEmptySequence = errors.New("composite: empty sequence")

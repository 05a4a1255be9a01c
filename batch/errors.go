// SPDX-License-Identifier: MIT
// Package: ninefold/batch
//
// errors.go — sentinel errors.

package batch

import "errors"

var (
	// ErrNoInputs is returned by Run for an empty input list.
	ErrNoInputs = errors.New("batch: no inputs")

	// ErrNilEngine is returned by Run when no engine is given.
	ErrNilEngine = errors.New("batch: nil engine")
)

// SPDX-License-Identifier: MIT
// Package: ninefold/store
//
// errors.go — sentinel errors.

package store

import "errors"

var (
	// ErrNotFound is returned by Get when no report is cached for the key.
	ErrNotFound = errors.New("store: report not found")

	// ErrNilReport is returned by Put for a nil report.
	ErrNilReport = errors.New("store: nil report")
)

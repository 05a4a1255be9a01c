// SPDX-License-Identifier: MIT
// Package: ninefold/report
//
// errors.go — sentinel errors.

package report

import "errors"

var (
	// ErrBadFormat is returned for an unknown output format.
	ErrBadFormat = errors.New("report: unknown format")

	// ErrNilReport is returned when rendering a nil report.
	ErrNilReport = errors.New("report: nil report")
)

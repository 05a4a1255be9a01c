// SPDX-License-Identifier: MIT
// Package: ninefold/calibrate
//
// errors.go — sentinel errors.

package calibrate

import "errors"

// ErrNilEngine is returned by Run when no engine is given.
var ErrNilEngine = errors.New("calibrate: nil engine")

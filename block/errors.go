// SPDX-License-Identifier: MIT
// Package: ninefold/block
//
// errors.go — sentinel errors for block partitioning.

package block

import "errors"

// ErrBadStride indicates a non-positive stride.
var ErrBadStride = errors.New("block: stride must be positive")

// SPDX-License-Identifier: MIT
// Package: ninefold/block
//
// block.go — forward and backward partitioning.

package block

import (
	"fmt"

	"github.com/katalvlaran/ninefold/digits"
)

// Count returns how many blocks Partition yields for length n.
func Count(n, stride int) int {
	if stride <= 0 || n < Size {
		return 0
	}

	return (n-Size)/stride + 1
}

// Partition returns the blocks of seq at the given stride.
// Complexity: O(N/stride) time and space.
func Partition(seq digits.Sequence, stride int) ([]Block, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("Partition(stride=%d): %w", stride, ErrBadStride)
	}
	out := make([]Block, 0, Count(len(seq), stride))
	for off := 0; off+Size <= len(seq); off += stride {
		out = append(out, Block{
			Index:  len(out),
			Offset: off,
			Digits: seq[off : off+Size : off+Size],
		})
	}

	return out, nil
}

// Backward partitions the reversed sequence. Offsets refer to the reversed
// copy.
func Backward(seq digits.Sequence, stride int) ([]Block, error) {
	return Partition(seq.Reverse(), stride)
}

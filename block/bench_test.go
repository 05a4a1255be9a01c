package block_test

import (
	"testing"

	"github.com/katalvlaran/ninefold/block"
)

func BenchmarkPartitionSliding(b *testing.B) {
	s := seqOf(100_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = block.Partition(s, block.SlidingStride)
	}
}

func BenchmarkBackward(b *testing.B) {
	s := seqOf(100_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = block.Backward(s, block.Size)
	}
}

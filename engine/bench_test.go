package engine_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/engine"
)

func randomDigits(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(10)
	}

	return out
}

func BenchmarkAnalyzeFixed(b *testing.B) {
	e := engine.Default()
	raw := randomDigits(10_000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Analyze(raw)
	}
}

func BenchmarkAnalyzeSliding(b *testing.B) {
	e, _ := engine.New(engine.WithMode(block.Sliding))
	raw := randomDigits(10_000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Analyze(raw)
	}
}

package divergence_test

import (
	"testing"

	"github.com/katalvlaran/zeckmath/divergence"
	"github.com/katalvlaran/zeckmath/sequence"
)

// BenchmarkRange_10k measures the incremental production of the first 10^4
// divergence points from a cold analyzer (warm generator).
func BenchmarkRange_10k(b *testing.B) {
	gen := sequence.New()
	warm, err := divergence.NewAnalyzer(gen)
	if err != nil {
		b.Fatalf("NewAnalyzer failed: %v", err)
	}
	if _, err := warm.Range(10_000); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		an, err := divergence.NewAnalyzer(gen)
		if err != nil {
			b.Fatalf("NewAnalyzer failed: %v", err)
		}
		if _, err := an.Range(10_000); err != nil {
			b.Fatalf("Range failed: %v", err)
		}
	}
}

// BenchmarkAt_Absorbed measures the O(1) lookup path.
func BenchmarkAt_Absorbed(b *testing.B) {
	an, err := divergence.NewAnalyzer(sequence.New())
	if err != nil {
		b.Fatalf("NewAnalyzer failed: %v", err)
	}
	if _, err := an.Range(10_000); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := an.At(9_999); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}

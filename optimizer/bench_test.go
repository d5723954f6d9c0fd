package optimizer_test

import (
	"testing"

	"github.com/katalvlaran/zeckmath/divergence"
	"github.com/katalvlaran/zeckmath/optimizer"
	"github.com/katalvlaran/zeckmath/sequence"
)

// BenchmarkTrainStep measures one full-batch XOR iteration, the unit cost
// of the whole training loop.
func BenchmarkTrainStep(b *testing.B) {
	an, err := divergence.NewAnalyzer(sequence.New())
	if err != nil {
		b.Fatalf("NewAnalyzer failed: %v", err)
	}
	cfg := optimizer.DefaultConfig()
	// Keep the state machine out of the way for arbitrary b.N.
	cfg.MaxIterations = 1 << 30
	cfg.ConvergenceWindow = 1 << 30
	opt, err := optimizer.New(cfg, an)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := opt.TrainStep(xorInputs, xorTargets); err != nil {
			b.Fatalf("TrainStep failed: %v", err)
		}
	}
}

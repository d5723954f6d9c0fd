// Package divergence computes the cumulative decomposition-length statistics
// of the Zeckendorf (Fibonacci) and greedy Lucas representations, and their
// difference S(n), the divergence sequence.
//
// Overview:
//
//   - z(n) is the length of the Zeckendorf decomposition of n; ℓ(n) is the
//     length of the greedy decomposition of n into distinct Lucas numbers
//     (repeatedly subtract the largest Lucas value not exceeding the
//     remainder).
//   - V(n) = Σ z(k) and L(n) = Σ ℓ(k) for k = 0..n are maintained as running
//     sums, so producing the whole sequence 0..N costs O(N log N) instead of
//     O(N²). The resulting Points are append-only and fully determined by N.
//   - S(n) = V(n) - L(n). Whenever n+1 is a Lucas number, S(n) == 0: the two
//     length sums realign exactly at Lucas boundaries. The converse does not
//     hold — S has a sparse set of further zeros, each within distance 5
//     below a Lucas number — so equilibrium detection and Lucas membership
//     are exposed as two independent signals: Point.IsZero reads S, and
//     AtLucasBoundary searches the Lucas cache directly, never the sums.
//
// Concurrency:
//
//   - An Analyzer is a single-consumer object: it mutates its running sums
//     in place and is not safe for concurrent use. The generator behind it
//     may be shared freely.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidIndex: a negative n.
//   - ErrBadRange:     Stats called with lo < 0 or hi < lo.
//   - ErrNilGenerator: NewAnalyzer received a nil generator.
//
// API reference:
//
//	NewAnalyzer(gen *sequence.Generator) (*Analyzer, error)
//	(*Analyzer) ZeckendorfLength(n int) (int, error)
//	(*Analyzer) LucasLength(n int) (int, error)
//	(*Analyzer) At(n int) (Point, error)
//	(*Analyzer) S(n int) (int64, error)
//	(*Analyzer) Range(n int) ([]Point, error)
//	(*Analyzer) AtLucasBoundary(n int) (bool, error)
//	(*Analyzer) Stats(lo, hi int) (RangeStats, error)
//	(*Analyzer) Reset()
//
// See also:
//
//   - optimizer: consumes S through the divergence-penalized loss.
package divergence

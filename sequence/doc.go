// Package sequence provides exact, memoized generators for the Fibonacci and
// Lucas sequences over math/big integers.
//
// Overview:
//
//   - F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2); L(0)=2, L(1)=1, L(n)=L(n-1)+L(n-2).
//   - A Generator owns two monotonically growing caches, one per sequence.
//     Computing a new index costs O(k) big-integer additions for k new terms
//     and O(1) amortized thereafter; every returned value is a fresh copy, so
//     callers can never corrupt the caches.
//   - Floor searches (largest F(k) ≤ x, largest Lucas value ≤ x) are the
//     primitives behind greedy decompositions; both are O(log n) binary
//     searches over the cache after an amortized growth step.
//
// When to use:
//
//   - As the single exact-arithmetic source for Zeckendorf codecs, cascade
//     normalizers and divergence analyzers (inject one Generator, share it).
//   - Anywhere index-addressed Fibonacci/Lucas values are needed without
//     floating-point drift: Binet-style closed forms are never used.
//
// Concurrency:
//
//   - A Generator is safe for concurrent use. Cache growth is serialized
//     behind a write lock; lookups of already-cached terms proceed under a
//     shared read lock.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidIndex: negative sequence index (or n < 1 for GoldenRatio).
//   - ErrBadRange:     range accessor called with lo < 0 or hi < lo.
//   - ErrNilValue:     a nil *big.Int was passed to a search.
//   - ErrNonPositive:  floor search on a value below 1, where no floor exists.
//
// API reference:
//
//	New() *Generator
//	(*Generator) Fibonacci(n int) (*big.Int, error)
//	(*Generator) Lucas(n int) (*big.Int, error)
//	(*Generator) FibonacciRange(lo, hi int) ([]*big.Int, error)
//	(*Generator) LucasRange(lo, hi int) ([]*big.Int, error)
//	(*Generator) FloorFibonacci(x *big.Int) (idx int, val *big.Int, err error)
//	(*Generator) FloorLucas(x *big.Int) (idx int, val *big.Int, err error)
//	(*Generator) IsLucas(x *big.Int) (bool, error)
//	(*Generator) GoldenRatio(n int) (float64, error)
//
// See also:
//
//   - zeck.Codec: greedy Zeckendorf encoding built on FloorFibonacci.
//   - divergence.Analyzer: length statistics built on both floor searches.
package sequence

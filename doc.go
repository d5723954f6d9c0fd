// Package zeckmath is your in-memory playground for exact Fibonacci–Lucas
// arithmetic — from Zeckendorf codecs and carry cascades to divergence
// statistics and divergence-regularized optimization.
//
// 🚀 What is zeckmath?
//
//	A modern, thread-safe library that brings together:
//		• Sequence generation: exact Fibonacci & Lucas numbers over math/big
//		• Zeckendorf codec: unique non-consecutive decompositions + fibbinary strings
//		• Cascade normalizer: carry-propagation rewriting and a Combine monoid
//		• Divergence analysis: cumulative V/L length statistics and S(n) zeros
//		• Regularized optimizer: a feed-forward net penalized by the divergence signal
//
// ✨ Why choose zeckmath?
//
//   - Exact by construction – every integer identity runs over math/big
//   - Rock-solid guarantees – sentinel errors, validated configs, fail-fast numerics
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every component is an explicit instance you inject and own
//
// Under the hood, everything is organized under six subpackages:
//
//	sequence/   — memoized exact Fibonacci & Lucas generators, floor searches
//	zeck/       — Zeckendorf encode/decode, index sets, fibbinary bitstrings
//	cascade/    — carry-propagation normalizer, exact-addition Combine, Hamming distance
//	divergence/ — running V/L counts, S(n), Lucas-boundary cross-checks
//	matrix/     — dense float64 kernels backing the optimizer
//	optimizer/  — divergence-penalized gradient descent with Nash-window stopping
//
// Quick ASCII example:
//
//	100 = F(11) + F(6) + F(4) = 89 + 8 + 3
//	      {4, 6, 11}  ←  unique, no two indices adjacent
//
// Dive into each package's doc.go for full examples and complexity notes.
//
//	go get github.com/katalvlaran/zeckmath
package zeckmath

// Package sequence defines the Generator type and its sentinel errors.
//
// The Generator is an explicit instance rather than a package-level cache:
// callers construct one with New, share it between collaborators, and own its
// lifetime. All exported methods return copies of cached values.
package sequence

import (
	"errors"
	"math/big"
	"sync"
)

// Sentinel errors returned by Generator methods.
var (
	// ErrInvalidIndex indicates a negative sequence index, or n < 1 for
	// GoldenRatio (whose denominator F(n) must be non-zero).
	ErrInvalidIndex = errors.New("sequence: index must be non-negative")

	// ErrBadRange indicates a range accessor call with lo < 0 or hi < lo.
	ErrBadRange = errors.New("sequence: range bounds must satisfy 0 <= lo <= hi")

	// ErrNilValue indicates that a nil *big.Int was passed to a search method.
	ErrNilValue = errors.New("sequence: value is nil")

	// ErrNonPositive indicates a floor search on a value < 1; the smallest
	// searchable terms are F(2)=1 and L(1)=1, so no floor exists below 1.
	ErrNonPositive = errors.New("sequence: value must be positive")
)

// Generator produces exact Fibonacci and Lucas numbers, memoizing every term
// it has ever computed. Safe for concurrent use: growth is serialized behind
// the write lock, reads of cached terms share the read lock.
type Generator struct {
	mu  sync.RWMutex
	fib []*big.Int // fib[i] = F(i); always holds at least F(0), F(1)
	luc []*big.Int // luc[i] = L(i); always holds at least L(0), L(1)
}

// New returns a Generator seeded with the base cases
// F(0)=0, F(1)=1 and L(0)=2, L(1)=1.
func New() *Generator {
	return &Generator{
		fib: []*big.Int{big.NewInt(0), big.NewInt(1)},
		luc: []*big.Int{big.NewInt(2), big.NewInt(1)},
	}
}

package sequence

import (
	"math/big"
	"sort"
)

// FloorFibonacci returns the largest index k >= 2 with F(k) <= x, together
// with a copy of F(k). The search starts at index 2 so that the value 1 is
// always reported as F(2), never F(1); greedy Zeckendorf encoding depends on
// that choice. Requires x >= 1.
//
// Complexity: O(log x) amortized cache growth plus an O(log n) binary search.
func (g *Generator) FloorFibonacci(x *big.Int) (int, *big.Int, error) {
	if x == nil {
		return 0, nil, ErrNilValue
	}
	if x.Sign() < 1 {
		return 0, nil, ErrNonPositive
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.growFibAbove(x)

	// fib[2..] is strictly increasing (1, 2, 3, 5, ...) and the last cached
	// term exceeds x, so the first term above x exists; its predecessor is
	// the floor. fib[2]=1 <= x keeps the result within [2, len).
	first := sort.Search(len(g.fib)-2, func(i int) bool {
		return g.fib[i+2].Cmp(x) > 0
	})
	idx := first + 1 // first+2-1: index of the last term <= x

	return idx, new(big.Int).Set(g.fib[idx]), nil
}

// FloorLucas returns the index and a copy of the largest Lucas value <= x.
// The head of the sequence is not monotone (L(0)=2 > L(1)=1), so values 1
// and 2 are resolved explicitly before the binary search over L(2..) = 3, 4,
// 7, 11, ... Requires x >= 1.
func (g *Generator) FloorLucas(x *big.Int) (int, *big.Int, error) {
	if x == nil {
		return 0, nil, ErrNilValue
	}
	if x.Sign() < 1 {
		return 0, nil, ErrNonPositive
	}
	switch {
	case x.Cmp(big.NewInt(1)) == 0:
		return 1, big.NewInt(1), nil
	case x.Cmp(big.NewInt(3)) < 0: // x == 2
		return 0, big.NewInt(2), nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.growLucAbove(x)

	first := sort.Search(len(g.luc)-2, func(i int) bool {
		return g.luc[i+2].Cmp(x) > 0
	})
	idx := first + 1

	return idx, new(big.Int).Set(g.luc[idx]), nil
}

// IsLucas reports whether x is a Lucas number. Membership is decided by
// searching the cached sequence directly; it is deliberately independent of
// any divergence statistic, so the two can cross-check each other.
func (g *Generator) IsLucas(x *big.Int) (bool, error) {
	if x == nil {
		return false, ErrNilValue
	}
	if x.Sign() < 1 {
		return false, nil
	}
	_, val, err := g.FloorLucas(x)
	if err != nil {
		return false, err
	}

	return val.Cmp(x) == 0, nil
}

package sequence

import "math/big"

// Fibonacci returns F(n) as a fresh copy, computing and caching any missing
// prefix of the sequence on the way. O(k) additions for k uncached terms,
// O(1) amortized afterwards.
func (g *Generator) Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidIndex
	}
	// Fast path: term already cached, shared read lock only.
	g.mu.RLock()
	if n < len(g.fib) {
		v := new(big.Int).Set(g.fib[n])
		g.mu.RUnlock()

		return v, nil
	}
	g.mu.RUnlock()

	g.mu.Lock()
	g.growFib(n)
	v := new(big.Int).Set(g.fib[n])
	g.mu.Unlock()

	return v, nil
}

// Lucas returns L(n) as a fresh copy, growing the cache as needed.
func (g *Generator) Lucas(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidIndex
	}
	g.mu.RLock()
	if n < len(g.luc) {
		v := new(big.Int).Set(g.luc[n])
		g.mu.RUnlock()

		return v, nil
	}
	g.mu.RUnlock()

	g.mu.Lock()
	g.growLuc(n)
	v := new(big.Int).Set(g.luc[n])
	g.mu.Unlock()

	return v, nil
}

// FibonacciRange returns copies of F(lo)..F(hi) inclusive.
func (g *Generator) FibonacciRange(lo, hi int) ([]*big.Int, error) {
	if lo < 0 || hi < lo {
		return nil, ErrBadRange
	}
	g.mu.Lock()
	g.growFib(hi)
	out := make([]*big.Int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, new(big.Int).Set(g.fib[i]))
	}
	g.mu.Unlock()

	return out, nil
}

// LucasRange returns copies of L(lo)..L(hi) inclusive.
func (g *Generator) LucasRange(lo, hi int) ([]*big.Int, error) {
	if lo < 0 || hi < lo {
		return nil, ErrBadRange
	}
	g.mu.Lock()
	g.growLuc(hi)
	out := make([]*big.Int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, new(big.Int).Set(g.luc[i]))
	}
	g.mu.Unlock()

	return out, nil
}

// GoldenRatio returns the rational approximation F(n+1)/F(n) of φ as a
// float64. Requires n >= 1 so that the denominator F(n) is non-zero; the
// quotient converges to φ = (1+√5)/2 as n grows.
func (g *Generator) GoldenRatio(n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidIndex
	}
	g.mu.Lock()
	g.growFib(n + 1)
	num := new(big.Float).SetInt(g.fib[n+1])
	den := new(big.Float).SetInt(g.fib[n])
	g.mu.Unlock()

	phi, _ := new(big.Float).Quo(num, den).Float64()

	return phi, nil
}

// growFib extends the Fibonacci cache up to index n. Caller holds the write lock.
func (g *Generator) growFib(n int) {
	for k := len(g.fib); k <= n; k++ {
		g.fib = append(g.fib, new(big.Int).Add(g.fib[k-1], g.fib[k-2]))
	}
}

// growLuc extends the Lucas cache up to index n. Caller holds the write lock.
func (g *Generator) growLuc(n int) {
	for k := len(g.luc); k <= n; k++ {
		g.luc = append(g.luc, new(big.Int).Add(g.luc[k-1], g.luc[k-2]))
	}
}

// growFibAbove extends the Fibonacci cache until its last term exceeds x.
// Caller holds the write lock.
func (g *Generator) growFibAbove(x *big.Int) {
	for g.fib[len(g.fib)-1].Cmp(x) <= 0 {
		g.growFib(len(g.fib))
	}
}

// growLucAbove extends the Lucas cache until its last term exceeds x.
// Caller holds the write lock.
func (g *Generator) growLucAbove(x *big.Int) {
	for g.luc[len(g.luc)-1].Cmp(x) <= 0 {
		g.growLuc(len(g.luc))
	}
}

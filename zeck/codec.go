package zeck

import "math/big"

// Encode returns the canonical Zeckendorf index set of n: the unique
// ascending set of indices >= 2, pairwise gaps >= 2, whose Fibonacci values
// sum to n. Encode(0) is the empty set. Deterministic for a given n.
//
// Complexity: O(log n) floor searches over the shared generator cache.
func (c *Codec) Encode(n *big.Int) (IndexSet, error) {
	if n == nil {
		return nil, ErrNilValue
	}
	if n.Sign() < 0 {
		return nil, ErrNegativeInput
	}

	// Greedy descent: the largest F(k) <= remainder, subtract, repeat.
	// Indices come out strictly decreasing with gaps >= 2.
	var rev IndexSet
	rem := new(big.Int).Set(n)
	for rem.Sign() > 0 {
		idx, val, err := c.gen.FloorFibonacci(rem)
		if err != nil {
			return nil, err
		}
		rev = append(rev, idx)
		rem.Sub(rem, val)
	}

	out := make(IndexSet, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}

	return out, nil
}

// EncodeUint64 is a convenience wrapper over Encode.
func (c *Codec) EncodeUint64(n uint64) (IndexSet, error) {
	return c.Encode(new(big.Int).SetUint64(n))
}

// Decode sums F(i) over the set and returns the exact value. Unlike Encode's
// output, the input may repeat indices, contain adjacent indices, or use
// indices 0 and 1; only negative indices are rejected. This permissiveness is
// what lets cascade intermediates be valued during rewriting.
func (c *Codec) Decode(set IndexSet) (*big.Int, error) {
	sum := new(big.Int)
	for _, idx := range set {
		if idx < 0 {
			return nil, ErrInvalidIndex
		}
		f, err := c.gen.Fibonacci(idx)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, f)
	}

	return sum, nil
}

// Length returns |Encode(n)| without materializing the index set. This is
// the z(n) statistic consumed by the divergence analyzer.
func (c *Codec) Length(n *big.Int) (int, error) {
	if n == nil {
		return 0, ErrNilValue
	}
	if n.Sign() < 0 {
		return 0, ErrNegativeInput
	}

	count := 0
	rem := new(big.Int).Set(n)
	for rem.Sign() > 0 {
		_, val, err := c.gen.FloorFibonacci(rem)
		if err != nil {
			return 0, err
		}
		count++
		rem.Sub(rem, val)
	}

	return count, nil
}

// IsFibonacci reports whether n itself is a Fibonacci number, i.e. whether
// its Zeckendorf decomposition has at most one term (zero is F(0)).
func (c *Codec) IsFibonacci(n *big.Int) (bool, error) {
	length, err := c.Length(n)
	if err != nil {
		return false, err
	}

	return length <= 1, nil
}

package divergence

import "math/big"

// ZeckendorfLength returns z(n), the number of terms in the Zeckendorf
// decomposition of n. z(0) == 0.
func (a *Analyzer) ZeckendorfLength(n int) (int, error) {
	if n < 0 {
		return 0, ErrInvalidIndex
	}

	count := 0
	rem := big.NewInt(int64(n))
	for rem.Sign() > 0 {
		_, val, err := a.gen.FloorFibonacci(rem)
		if err != nil {
			return 0, err
		}
		count++
		rem.Sub(rem, val)
	}

	return count, nil
}

// LucasLength returns ℓ(n), the number of terms in the greedy decomposition
// of n into distinct Lucas numbers. The greedy remainder is always smaller
// than the subtracted term, so the terms are distinct and the loop
// terminates (1 and 2 are both Lucas numbers). ℓ(0) == 0.
func (a *Analyzer) LucasLength(n int) (int, error) {
	if n < 0 {
		return 0, ErrInvalidIndex
	}

	count := 0
	rem := big.NewInt(int64(n))
	for rem.Sign() > 0 {
		_, val, err := a.gen.FloorLucas(rem)
		if err != nil {
			return 0, err
		}
		count++
		rem.Sub(rem, val)
	}

	return count, nil
}

// advance absorbs points up to and including n.
func (a *Analyzer) advance(n int) error {
	for k := len(a.points); k <= n; k++ {
		z, err := a.ZeckendorfLength(k)
		if err != nil {
			return err
		}
		l, err := a.LucasLength(k)
		if err != nil {
			return err
		}
		a.v += int64(z)
		a.l += int64(l)
		a.points = append(a.points, Point{N: k, VCount: a.v, LCount: a.l, S: a.v - a.l})
	}

	return nil
}

// At returns the divergence point for n, advancing the running sums as far
// as needed. O(1) for any n already absorbed.
func (a *Analyzer) At(n int) (Point, error) {
	if n < 0 {
		return Point{}, ErrInvalidIndex
	}
	if err := a.advance(n); err != nil {
		return Point{}, err
	}

	return a.points[n], nil
}

// S returns just the divergence value S(n).
func (a *Analyzer) S(n int) (int64, error) {
	p, err := a.At(n)
	if err != nil {
		return 0, err
	}

	return p.S, nil
}

// Range returns a copy of the full prefix 0..n of the divergence sequence.
func (a *Analyzer) Range(n int) ([]Point, error) {
	if n < 0 {
		return nil, ErrInvalidIndex
	}
	if err := a.advance(n); err != nil {
		return nil, err
	}

	out := make([]Point, n+1)
	copy(out, a.points[:n+1])

	return out, nil
}

// AtLucasBoundary reports whether n+1 is a Lucas number. Membership comes
// from the sequence cache, never from the divergence sums, so this can
// cross-check IsZero rather than restate it.
func (a *Analyzer) AtLucasBoundary(n int) (bool, error) {
	if n < 0 {
		return false, ErrInvalidIndex
	}

	return a.gen.IsLucas(big.NewInt(int64(n) + 1))
}

// Stats summarizes the window [lo, hi]: per-window length totals and the
// spread of S. TotalV/TotalL count only lengths inside the window, i.e.
// VCount(hi) - VCount(lo-1).
func (a *Analyzer) Stats(lo, hi int) (RangeStats, error) {
	if lo < 0 || hi < lo {
		return RangeStats{}, ErrBadRange
	}
	if err := a.advance(hi); err != nil {
		return RangeStats{}, err
	}

	var baseV, baseL int64
	if lo > 0 {
		baseV = a.points[lo-1].VCount
		baseL = a.points[lo-1].LCount
	}

	st := RangeStats{
		TotalV: a.points[hi].VCount - baseV,
		TotalL: a.points[hi].LCount - baseL,
		MinS:   a.points[lo].S,
		MaxS:   a.points[lo].S,
	}
	var sum int64
	for k := lo; k <= hi; k++ {
		s := a.points[k].S
		if s < st.MinS {
			st.MinS = s
		}
		if s > st.MaxS {
			st.MaxS = s
		}
		sum += s
	}
	st.MeanS = float64(sum) / float64(hi-lo+1)

	return st, nil
}

package sequence_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeckmath/sequence"
)

// TestFibonacci_SmallTerms verifies the first terms against the classical
// sequence 0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55.
func TestFibonacci_SmallTerms(t *testing.T) {
	g := sequence.New()
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		v, err := g.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(w), v, "F(%d)", n)
	}
}

// TestLucas_SmallTerms verifies the first terms against the classical
// sequence 2, 1, 3, 4, 7, 11, 18, 29, 47, 76, 123.
func TestLucas_SmallTerms(t *testing.T) {
	g := sequence.New()
	want := []int64{2, 1, 3, 4, 7, 11, 18, 29, 47, 76, 123}
	for n, w := range want {
		v, err := g.Lucas(n)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(w), v, "L(%d)", n)
	}
}

// TestGenerator_NegativeIndex ensures both sequences reject n < 0 with the
// ErrInvalidIndex sentinel.
func TestGenerator_NegativeIndex(t *testing.T) {
	g := sequence.New()

	_, err := g.Fibonacci(-1)
	assert.ErrorIs(t, err, sequence.ErrInvalidIndex)

	_, err = g.Lucas(-5)
	assert.ErrorIs(t, err, sequence.ErrInvalidIndex)
}

// TestGenerator_LargeTerms checks exactness far beyond int64 range:
// F(100) and L(100) must match their published decimal expansions.
func TestGenerator_LargeTerms(t *testing.T) {
	g := sequence.New()

	f, err := g.Fibonacci(100)
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075", f.String())

	l, err := g.Lucas(100)
	require.NoError(t, err)
	assert.Equal(t, "792070839848372253127", l.String())
}

// TestGenerator_LucasIdentity verifies L(n)^2 - 5*F(n)^2 == 4*(-1)^n exactly
// for n = 0..9, tying the two caches to each other.
func TestGenerator_LucasIdentity(t *testing.T) {
	g := sequence.New()
	five := big.NewInt(5)
	for n := 0; n <= 9; n++ {
		f, err := g.Fibonacci(n)
		require.NoError(t, err)
		l, err := g.Lucas(n)
		require.NoError(t, err)

		lhs := new(big.Int).Mul(l, l)
		lhs.Sub(lhs, new(big.Int).Mul(five, new(big.Int).Mul(f, f)))

		want := big.NewInt(4)
		if n%2 == 1 {
			want.Neg(want)
		}
		assert.Equal(t, want, lhs, "L(%d)^2 - 5F(%d)^2", n, n)
	}
}

// TestGenerator_ReturnsCopies mutates a returned value and re-fetches the
// same index; the cache must be unaffected.
func TestGenerator_ReturnsCopies(t *testing.T) {
	g := sequence.New()

	v, err := g.Fibonacci(10)
	require.NoError(t, err)
	v.SetInt64(-999)

	again, err := g.Fibonacci(10)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(55), again)
}

// TestGenerator_Ranges covers the inclusive batch accessors and their bound
// validation.
func TestGenerator_Ranges(t *testing.T) {
	g := sequence.New()

	fs, err := g.FibonacciRange(3, 7)
	require.NoError(t, err)
	require.Len(t, fs, 5)
	for i, w := range []int64{2, 3, 5, 8, 13} {
		assert.Equal(t, big.NewInt(w), fs[i])
	}

	ls, err := g.LucasRange(0, 4)
	require.NoError(t, err)
	require.Len(t, ls, 5)
	for i, w := range []int64{2, 1, 3, 4, 7} {
		assert.Equal(t, big.NewInt(w), ls[i])
	}

	_, err = g.FibonacciRange(5, 2)
	assert.ErrorIs(t, err, sequence.ErrBadRange)
	_, err = g.LucasRange(-1, 2)
	assert.ErrorIs(t, err, sequence.ErrBadRange)
}

// TestGenerator_GoldenRatio checks convergence of F(n+1)/F(n) toward φ and
// the n >= 1 requirement.
func TestGenerator_GoldenRatio(t *testing.T) {
	g := sequence.New()

	phi, err := g.GoldenRatio(40)
	require.NoError(t, err)
	assert.InDelta(t, 1.6180339887498949, phi, 1e-12)

	_, err = g.GoldenRatio(0)
	assert.ErrorIs(t, err, sequence.ErrInvalidIndex)
}

// TestGenerator_ConcurrentGrowth hammers one Generator from many goroutines;
// the race detector plus exact results guard the locking discipline.
func TestGenerator_ConcurrentGrowth(t *testing.T) {
	g := sequence.New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for n := seed; n < 400; n += 8 {
				f, err := g.Fibonacci(n)
				assert.NoError(t, err)
				l, err := g.Lucas(n)
				assert.NoError(t, err)
				if n >= 1 {
					// L(n) = F(n-1) + F(n+1) must hold for every answer.
					lo, err := g.Fibonacci(n - 1)
					assert.NoError(t, err)
					hi, err := g.Fibonacci(n + 1)
					assert.NoError(t, err)
					assert.Equal(t, new(big.Int).Add(lo, hi), l)
				}
				_ = f
			}
		}(w)
	}
	wg.Wait()
}

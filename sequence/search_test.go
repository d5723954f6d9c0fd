package sequence_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeckmath/sequence"
)

// TestFloorFibonacci_KnownValues pins the floor search on hand-checked
// inputs, including the convention that value 1 is reported as F(2).
func TestFloorFibonacci_KnownValues(t *testing.T) {
	g := sequence.New()
	cases := []struct {
		x       int64
		idx     int
		val     int64
		comment string
	}{
		{1, 2, 1, "1 is F(2), never F(1)"},
		{2, 3, 2, "exact hit"},
		{4, 4, 3, "between F(4)=3 and F(5)=5"},
		{5, 5, 5, "exact hit"},
		{100, 11, 89, "largest term below 100"},
		{144, 12, 144, "exact hit on F(12)"},
	}
	for _, c := range cases {
		idx, val, err := g.FloorFibonacci(big.NewInt(c.x))
		require.NoError(t, err, c.comment)
		assert.Equal(t, c.idx, idx, c.comment)
		assert.Equal(t, big.NewInt(c.val), val, c.comment)
	}
}

// TestFloorFibonacci_Errors exercises the nil and non-positive guards.
func TestFloorFibonacci_Errors(t *testing.T) {
	g := sequence.New()

	_, _, err := g.FloorFibonacci(nil)
	assert.ErrorIs(t, err, sequence.ErrNilValue)

	_, _, err = g.FloorFibonacci(big.NewInt(0))
	assert.ErrorIs(t, err, sequence.ErrNonPositive)

	_, _, err = g.FloorFibonacci(big.NewInt(-7))
	assert.ErrorIs(t, err, sequence.ErrNonPositive)
}

// TestFloorLucas_KnownValues covers the non-monotone head (L(0)=2 > L(1)=1)
// explicitly, then the monotone tail.
func TestFloorLucas_KnownValues(t *testing.T) {
	g := sequence.New()
	cases := []struct {
		x   int64
		idx int
		val int64
	}{
		{1, 1, 1},
		{2, 0, 2},
		{3, 2, 3},
		{5, 3, 4},
		{7, 4, 7},
		{100, 9, 76},
		{123, 10, 123},
	}
	for _, c := range cases {
		idx, val, err := g.FloorLucas(big.NewInt(c.x))
		require.NoError(t, err, "x=%d", c.x)
		assert.Equal(t, c.idx, idx, "x=%d", c.x)
		assert.Equal(t, big.NewInt(c.val), val, "x=%d", c.x)
	}
}

// TestIsLucas separates members from non-members around the dense start of
// the sequence, where misclassification is most likely.
func TestIsLucas(t *testing.T) {
	g := sequence.New()

	for _, m := range []int64{1, 2, 3, 4, 7, 11, 18, 29, 47, 76, 123, 199} {
		ok, err := g.IsLucas(big.NewInt(m))
		require.NoError(t, err)
		assert.True(t, ok, "%d is a Lucas number", m)
	}
	for _, m := range []int64{0, 5, 6, 8, 10, 12, 100, 200} {
		ok, err := g.IsLucas(big.NewInt(m))
		require.NoError(t, err)
		assert.False(t, ok, "%d is not a Lucas number", m)
	}

	_, err := g.IsLucas(nil)
	assert.ErrorIs(t, err, sequence.ErrNilValue)
}

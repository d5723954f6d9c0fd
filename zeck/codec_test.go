package zeck_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeckmath/sequence"
	"github.com/katalvlaran/zeckmath/zeck"
)

// newCodec builds a codec over a fresh generator, failing the test on error.
func newCodec(t *testing.T) *zeck.Codec {
	t.Helper()
	c, err := zeck.NewCodec(sequence.New())
	require.NoError(t, err)

	return c
}

// TestNewCodec_NilGenerator verifies the constructor guard.
func TestNewCodec_NilGenerator(t *testing.T) {
	_, err := zeck.NewCodec(nil)
	assert.ErrorIs(t, err, zeck.ErrNilGenerator)
}

// TestEncode_KnownDecompositions pins hand-checked decompositions, including
// 100 = F(11) + F(6) + F(4) = 89 + 8 + 3.
func TestEncode_KnownDecompositions(t *testing.T) {
	c := newCodec(t)
	cases := []struct {
		n    int64
		want zeck.IndexSet
	}{
		{0, zeck.IndexSet{}},
		{1, zeck.IndexSet{2}},
		{2, zeck.IndexSet{3}},
		{3, zeck.IndexSet{4}},
		{4, zeck.IndexSet{2, 4}},
		{10, zeck.IndexSet{3, 6}},
		{12, zeck.IndexSet{2, 4, 6}},
		{100, zeck.IndexSet{4, 6, 11}},
	}
	for _, tc := range cases {
		got, err := c.Encode(big.NewInt(tc.n))
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
		assert.NoError(t, got.Validate(), "n=%d must be canonical", tc.n)
	}
}

// TestEncode_HundredRoundTrip validates Encode(100) against Decode rather
// than a literal table.
func TestEncode_HundredRoundTrip(t *testing.T) {
	c := newCodec(t)

	set, err := c.Encode(big.NewInt(100))
	require.NoError(t, err)

	back, err := c.Decode(set)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), back)
}

// TestEncode_InputGuards covers the negative and nil sentinels.
func TestEncode_InputGuards(t *testing.T) {
	c := newCodec(t)

	_, err := c.Encode(big.NewInt(-1))
	assert.ErrorIs(t, err, zeck.ErrNegativeInput)

	_, err = c.Encode(nil)
	assert.ErrorIs(t, err, zeck.ErrNilValue)

	_, err = c.Length(big.NewInt(-3))
	assert.ErrorIs(t, err, zeck.ErrNegativeInput)
}

// TestRoundTrip_Exhaustive checks Decode(Encode(n)) == n and canonical form
// for every n up to 10^6 (10^5 under -short). This is the codec's core
// contract.
func TestRoundTrip_Exhaustive(t *testing.T) {
	limit := uint64(1_000_000)
	if testing.Short() {
		limit = 100_000
	}
	c := newCodec(t)

	for n := uint64(0); n <= limit; n++ {
		set, err := c.Encode(new(big.Int).SetUint64(n))
		require.NoError(t, err, "n=%d", n)
		if err := set.Validate(); err != nil {
			t.Fatalf("Encode(%d) not canonical: %v (%v)", n, err, set)
		}
		back, err := c.Decode(set)
		require.NoError(t, err, "n=%d", n)
		if back.Uint64() != n {
			t.Fatalf("round trip broke at n=%d: got %s", n, back)
		}
	}
}

// TestUniqueness_BruteForce enumerates every canonical index set drawn from
// indices 2..16 and checks that each value below F(17)=1597 is produced by
// exactly one of them. Together with the round trip this pins uniqueness.
func TestUniqueness_BruteForce(t *testing.T) {
	c := newCodec(t)

	const maxIdx = 16
	counts := make(map[uint64]int)

	var walk func(next int, set zeck.IndexSet)
	walk = func(next int, set zeck.IndexSet) {
		sum, err := c.Decode(set)
		require.NoError(t, err)
		counts[sum.Uint64()]++
		for idx := next; idx <= maxIdx; idx++ {
			walk(idx+2, append(set, idx))
		}
	}
	walk(2, nil)

	for n := uint64(0); n < 1597; n++ {
		assert.Equal(t, 1, counts[n], "value %d must have exactly one canonical set", n)
	}
}

// TestLength_MatchesEncode cross-checks the allocation-free length path
// against the full decomposition.
func TestLength_MatchesEncode(t *testing.T) {
	c := newCodec(t)
	for _, n := range []int64{0, 1, 4, 12, 100, 5000, 832040, 832041} {
		set, err := c.Encode(big.NewInt(n))
		require.NoError(t, err)
		length, err := c.Length(big.NewInt(n))
		require.NoError(t, err)
		assert.Equal(t, len(set), length, "n=%d", n)
	}
}

// TestIsFibonacci separates members from near-misses.
func TestIsFibonacci(t *testing.T) {
	c := newCodec(t)
	for _, n := range []int64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144} {
		ok, err := c.IsFibonacci(big.NewInt(n))
		require.NoError(t, err)
		assert.True(t, ok, "%d is Fibonacci", n)
	}
	for _, n := range []int64{4, 6, 7, 9, 12, 20, 100, 145} {
		ok, err := c.IsFibonacci(big.NewInt(n))
		require.NoError(t, err)
		assert.False(t, ok, "%d is not Fibonacci", n)
	}
}

// TestDecode_PermissiveInputs verifies that Decode values duplicated,
// adjacent and low indices exactly, while still rejecting negatives.
func TestDecode_PermissiveInputs(t *testing.T) {
	c := newCodec(t)

	// F(2)+F(2)+F(3) = 1+1+2.
	v, err := c.Decode(zeck.IndexSet{2, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), v)

	// F(0)+F(1) = 0+1.
	v, err = c.Decode(zeck.IndexSet{0, 1})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), v)

	_, err = c.Decode(zeck.IndexSet{3, -1})
	assert.ErrorIs(t, err, zeck.ErrInvalidIndex)
}

// TestIndexSet_Validate covers every canonical-form violation.
func TestIndexSet_Validate(t *testing.T) {
	assert.NoError(t, zeck.IndexSet{}.Validate())
	assert.NoError(t, zeck.IndexSet{2}.Validate())
	assert.NoError(t, zeck.IndexSet{4, 6, 11}.Validate())

	assert.ErrorIs(t, zeck.IndexSet{-2}.Validate(), zeck.ErrInvalidIndex)
	assert.ErrorIs(t, zeck.IndexSet{1, 3}.Validate(), zeck.ErrNotCanonical)
	assert.ErrorIs(t, zeck.IndexSet{2, 3}.Validate(), zeck.ErrNotCanonical)
	assert.ErrorIs(t, zeck.IndexSet{4, 4}.Validate(), zeck.ErrNotCanonical)
	assert.ErrorIs(t, zeck.IndexSet{5, 3}.Validate(), zeck.ErrNotCanonical)
}

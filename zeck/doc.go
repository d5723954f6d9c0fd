// Package zeck implements the Zeckendorf codec: every non-negative integer
// has exactly one representation as a sum of non-consecutive Fibonacci
// numbers with indices >= 2, and this package converts between integers and
// those index sets.
//
// Overview:
//
//   - Encode is the classical greedy algorithm: repeatedly subtract the
//     largest F(k) <= remainder (k >= 2). Greedy choice is what forces the
//     non-consecutive property, and the result is unique (Zeckendorf's
//     theorem).
//   - Decode sums F(i) over any multiset of non-negative indices. It is
//     deliberately more permissive than Encode's output: cascade rewriting
//     produces transient duplicated and adjacent indices, and those
//     intermediate states must still be valued exactly.
//   - An IndexSet is canonical iff it is strictly ascending, every index is
//     >= 2, and consecutive entries differ by at least 2. Validate checks
//     exactly that.
//   - BitString/ParseBitString expose the "fibbinary" form (OEIS A003714):
//     bit i of the string corresponds to F(i+2), so canonical sets map to
//     binary strings with no adjacent 1-bits.
//
// Complexity:
//
//   - Encode/Length: O(log n) floor searches, each O(log n) after amortized
//     cache growth inside the shared sequence.Generator.
//   - Decode: O(|set|) cached lookups.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeInput: Encode/Length called on a negative integer.
//   - ErrInvalidIndex:  an index set contains a negative index.
//   - ErrNotCanonical:  a canonical-only operation received a set that is
//     unsorted, duplicated, adjacent, or uses indices 0/1.
//   - ErrNilValue:      a nil *big.Int input.
//   - ErrNilGenerator:  NewCodec received a nil sequence.Generator.
//   - ErrBadBitString:  ParseBitString met a character other than '0'/'1',
//     or an empty string.
//
// API reference:
//
//	NewCodec(gen *sequence.Generator) (*Codec, error)
//	(*Codec) Encode(n *big.Int) (IndexSet, error)
//	(*Codec) EncodeUint64(n uint64) (IndexSet, error)
//	(*Codec) Decode(set IndexSet) (*big.Int, error)
//	(*Codec) Length(n *big.Int) (int, error)
//	(*Codec) IsFibonacci(n *big.Int) (bool, error)
//	(IndexSet) Validate() error
//	BitString(set IndexSet) (string, error)
//	ParseBitString(s string) (IndexSet, error)
//
// See also:
//
//   - cascade: normalizes arbitrary index multisets back to canonical form.
//   - divergence: consumes Length as the z(n) statistic.
package zeck

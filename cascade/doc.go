// Package cascade normalizes arbitrary Fibonacci index multisets back to
// canonical Zeckendorf form by carry propagation, and builds the Combine
// monoid on top of it.
//
// Overview:
//
//   - The identity F(k) + F(k+1) = F(k+2) lets any adjacent pair of indices
//     be rewritten one step up. Unions of canonical sets also produce
//     duplicated indices (e.g. {2,3,4} collapses to {4,4}), so the
//     normalizer works on occurrence counts and carries duplicates with the
//     exact identities
//
//	2·F(2) = F(3)
//	2·F(3) = F(4) + F(2)
//	2·F(k) = F(k+1) + F(k-2)   for k >= 4
//
//   - Every rewrite preserves the decoded value exactly, so the fixed point
//     is the canonical Zeckendorf set of the input's value: by uniqueness,
//     Cascade(x) == Encode(Decode(x)) for every valid x. Cascade is
//     idempotent on its own output.
//   - Indices 0 and 1 are folded on entry: F(0)=0 is dropped, F(1) is
//     rewritten to the equal-valued F(2).
//   - Combine(a, b) = Cascade(a ⊎ b) cascades the multiset union, realizing
//     exact addition on Zeckendorf codes and making the canonical sets a
//     commutative monoid with identity ∅. A symmetric-difference variant is
//     not associative (the rewrite system is not confluent modulo 2:
//     {2,3,4} reduces to either ∅ or {2,5} depending on rule order), so the
//     union form is the one that carries the monoid structure.
//     Distance(a, b) is the Hamming metric |a Δ b| on representations.
//
// Termination:
//
//   - Each rewrite strictly decreases the triple (set size, index sum, count
//     of duplicated 3s) in lexicographic order, and no rewrite increases the
//     index sum, so normalization always halts. A quadratic rewrite budget
//     guards the loop anyway; ErrRewriteBudget is defined but unreachable
//     for finite inputs.
//
// Complexity:
//
//   - O(r · m) where r is the number of rewrites (bounded by the index sum)
//     and m the largest live index. Canonical inputs normalize in one scan.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidIndex:        input contains a negative index.
//   - ErrRewriteBudget:       normalization exceeded its budget (impossible
//     for finite inputs; kept as an explicit guard).
//   - zeck.ErrNotCanonical:   Combine/Distance received a non-canonical set;
//     propagated from IndexSet.Validate.
//
// API reference:
//
//	Cascade(set zeck.IndexSet) (zeck.IndexSet, error)
//	SymmetricDifference(a, b zeck.IndexSet) zeck.IndexSet
//	Combine(a, b zeck.IndexSet) (zeck.IndexSet, error)
//	Distance(a, b zeck.IndexSet) (int, error)
//
// See also:
//
//   - zeck.Codec: Encode produces the canonical sets Combine operates on;
//     Decode values the intermediates Cascade preserves.
package cascade

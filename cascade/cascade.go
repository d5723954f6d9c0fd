package cascade

import (
	"sort"

	"github.com/katalvlaran/zeckmath/zeck"
)

// Cascade normalizes an arbitrary index multiset to the canonical Zeckendorf
// set of equal value. Duplicates, adjacent indices and the low indices 0 and
// 1 are all legal input; only negative indices are rejected.
func Cascade(set zeck.IndexSet) (zeck.IndexSet, error) {
	counts := make(map[int]int, len(set))
	maxIdx, total := 0, 0
	for _, idx := range set {
		switch {
		case idx < 0:
			return nil, ErrInvalidIndex
		case idx == 0:
			// F(0) = 0 contributes nothing.
			continue
		case idx == 1:
			// F(1) = F(2) = 1.
			counts[2]++
		default:
			counts[idx]++
		}
		total++
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if maxIdx < 2 {
		maxIdx = 2
	}

	// The index sum never increases under any rule, so live indices stay
	// below sum(set)+2 and the rewrite count is quadratically bounded.
	budget := (maxIdx + total + 16) * (maxIdx + total + 16)
	for applied := true; applied; {
		if budget--; budget < 0 {
			return nil, ErrRewriteBudget
		}
		applied, maxIdx = rewriteOnce(counts, maxIdx)
	}

	out := make(zeck.IndexSet, 0, len(counts))
	for idx := range counts {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out, nil
}

// rewriteOnce applies the lowest applicable carry rule, mirroring how a
// carry ripples upward through a positional system. Reports whether a rule
// fired and the (possibly raised) maximum live index. Empty count entries
// are deleted so the fixpoint map holds exactly the canonical indices.
func rewriteOnce(counts map[int]int, maxIdx int) (bool, int) {
	for k := 2; k <= maxIdx; k++ {
		switch {
		case counts[k] >= 2:
			bump(counts, k, -2)
			switch {
			case k == 2: // 2F(2) = F(3)
				bump(counts, 3, 1)
			case k == 3: // 2F(3) = F(4) + F(2)
				bump(counts, 4, 1)
				bump(counts, 2, 1)
			default: // 2F(k) = F(k+1) + F(k-2)
				bump(counts, k+1, 1)
				bump(counts, k-2, 1)
			}
			return true, max(maxIdx, k+1)
		case counts[k] >= 1 && counts[k+1] >= 1:
			// F(k) + F(k+1) = F(k+2)
			bump(counts, k, -1)
			bump(counts, k+1, -1)
			bump(counts, k+2, 1)

			return true, max(maxIdx, k+2)
		}
	}

	return false, maxIdx
}

// bump adjusts one occurrence count, dropping the entry at zero.
func bump(counts map[int]int, k, delta int) {
	if counts[k] += delta; counts[k] == 0 {
		delete(counts, k)
	}
}

// SymmetricDifference returns the indices present in exactly one of a and b,
// ascending. Inputs are treated as sets: duplicate entries within one input
// count once.
func SymmetricDifference(a, b zeck.IndexSet) zeck.IndexSet {
	in := make(map[int]int, len(a)+len(b))
	seen := make(map[int]bool, len(a))
	for _, idx := range a {
		if !seen[idx] {
			seen[idx] = true
			in[idx]++
		}
	}
	seen = make(map[int]bool, len(b))
	for _, idx := range b {
		if !seen[idx] {
			seen[idx] = true
			in[idx]++
		}
	}

	out := make(zeck.IndexSet, 0, len(in))
	for idx, n := range in {
		if n == 1 {
			out = append(out, idx)
		}
	}
	sort.Ints(out)

	return out
}

// Combine folds two canonical sets into one by cascading their multiset
// union, which realizes exact addition on Zeckendorf codes:
// Decode(Combine(a, b)) == Decode(a) + Decode(b). On canonical sets the
// operation is commutative and associative with the empty set as identity,
// so the canonical sets form a commutative monoid (not a group; no
// inverses). Non-canonical inputs are rejected with the zeck validation
// sentinels.
func Combine(a, b zeck.IndexSet) (zeck.IndexSet, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	union := make(zeck.IndexSet, 0, len(a)+len(b))
	union = append(union, a...)
	union = append(union, b...)

	return Cascade(union)
}

// Distance is the Hamming metric on Zeckendorf representations: the number
// of indices in which the two canonical sets differ.
func Distance(a, b zeck.IndexSet) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	return len(SymmetricDifference(a, b)), nil
}

// Package zeck defines the IndexSet representation, the Codec and their
// sentinel errors.
package zeck

import (
	"errors"

	"github.com/katalvlaran/zeckmath/sequence"
)

// Sentinel errors returned by the codec and index-set operations.
var (
	// ErrNegativeInput indicates an attempt to encode a negative integer;
	// Zeckendorf representations exist for non-negative integers only.
	ErrNegativeInput = errors.New("zeck: cannot encode a negative integer")

	// ErrInvalidIndex indicates an index set containing a negative index.
	ErrInvalidIndex = errors.New("zeck: index set contains a negative index")

	// ErrNotCanonical indicates a set that is not in canonical Zeckendorf
	// form: indices must be >= 2, strictly ascending, with gaps >= 2.
	ErrNotCanonical = errors.New("zeck: index set is not in canonical Zeckendorf form")

	// ErrNilValue indicates a nil *big.Int input.
	ErrNilValue = errors.New("zeck: value is nil")

	// ErrNilGenerator indicates that NewCodec received a nil generator.
	ErrNilGenerator = errors.New("zeck: sequence generator is nil")

	// ErrBadBitString indicates a fibbinary string that is empty or contains
	// a character other than '0' and '1'.
	ErrBadBitString = errors.New("zeck: bit string must be a non-empty run of '0' and '1'")
)

// IndexSet is a list of Fibonacci indices. In canonical form it is strictly
// ascending, every index is >= 2, and no two indices are adjacent, which is
// exactly the shape Encode produces. Decode and the cascade package also
// accept non-canonical sets (duplicates, adjacency, indices 0 and 1).
type IndexSet []int

// Validate reports whether the set is canonical. A negative index yields
// ErrInvalidIndex; any other violation yields ErrNotCanonical.
func (s IndexSet) Validate() error {
	for i, idx := range s {
		if idx < 0 {
			return ErrInvalidIndex
		}
		if idx < 2 {
			return ErrNotCanonical
		}
		if i > 0 && idx-s[i-1] < 2 {
			return ErrNotCanonical
		}
	}

	return nil
}

// Clone returns an independent copy of the set.
func (s IndexSet) Clone() IndexSet {
	if s == nil {
		return nil
	}
	out := make(IndexSet, len(s))
	copy(out, s)

	return out
}

// Equal reports element-wise equality.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Codec converts between integers and Zeckendorf index sets. All arithmetic
// runs through the injected Generator, so codecs sharing one generator also
// share its caches.
type Codec struct {
	gen *sequence.Generator
}

// NewCodec builds a Codec around gen.
func NewCodec(gen *sequence.Generator) (*Codec, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	return &Codec{gen: gen}, nil
}

// Package divergence defines the Analyzer, its Point record and sentinel
// errors.
package divergence

import (
	"errors"

	"github.com/katalvlaran/zeckmath/sequence"
)

// Sentinel errors returned by Analyzer methods.
var (
	// ErrInvalidIndex indicates a negative n.
	ErrInvalidIndex = errors.New("divergence: n must be non-negative")

	// ErrBadRange indicates Stats bounds with lo < 0 or hi < lo.
	ErrBadRange = errors.New("divergence: range bounds must satisfy 0 <= lo <= hi")

	// ErrNilGenerator indicates that NewAnalyzer received a nil generator.
	ErrNilGenerator = errors.New("divergence: sequence generator is nil")
)

// Point is one element of the divergence sequence: cumulative length sums
// up to and including n, and their difference.
type Point struct {
	N      int
	VCount int64 // Σ z(k), k = 0..n
	LCount int64 // Σ ℓ(k), k = 0..n
	S      int64 // VCount - LCount
}

// IsZero reports S == 0, the equilibrium condition of the divergence
// sequence. Independent of AtLucasBoundary.
func (p Point) IsZero() bool { return p.S == 0 }

// RangeStats summarizes the divergence sequence over a window [lo, hi].
type RangeStats struct {
	TotalV int64   // Σ z(k) over the window
	TotalL int64   // Σ ℓ(k) over the window
	MinS   int64   // minimum S(k) in the window
	MaxS   int64   // maximum S(k) in the window
	MeanS  float64 // arithmetic mean of S(k) over the window
}

// Analyzer produces the divergence sequence incrementally. Points are
// append-only: once n has been absorbed its Point never changes, and every
// prefix is retained so lookups are O(1) after the initial advance.
//
// Not safe for concurrent use; the generator behind it may be shared.
type Analyzer struct {
	gen    *sequence.Generator
	points []Point // points[k] holds the sums over 0..k
	v, l   int64   // running sums mirrored from the last point
}

// NewAnalyzer builds an Analyzer around gen.
func NewAnalyzer(gen *sequence.Generator) (*Analyzer, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	return &Analyzer{gen: gen}, nil
}

// Reset discards all absorbed points, returning the analyzer to its initial
// state while keeping the generator caches warm.
func (a *Analyzer) Reset() {
	a.points = nil
	a.v, a.l = 0, 0
}

// Package cascade defines the sentinel errors of the normalizer.
package cascade

import "errors"

// Sentinel errors returned by the cascade operations.
var (
	// ErrInvalidIndex indicates an input multiset containing a negative index.
	ErrInvalidIndex = errors.New("cascade: index set contains a negative index")

	// ErrRewriteBudget indicates that normalization exceeded its rewrite
	// budget. Every rewrite strictly decreases a bounded potential, so this
	// is unreachable for finite inputs; the guard replaces an unbounded loop.
	ErrRewriteBudget = errors.New("cascade: rewrite budget exhausted before reaching canonical form")
)

// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels over Dense.
// All kernels perform strict fail-fast validation through the central
// validators, never mutate their operands (except the explicitly in-place
// AddScaled), and wrap sentinel violations via matrixErrorf at the kernel
// boundary.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opOuter     = "Outer"
	opAddScaled = "AddScaled"
	opNorm      = "FrobeniusNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Single flat loop over the backing slices; operands are not mutated.
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b as a fresh Dense.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b as a fresh Dense.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*a as a fresh Dense.
// Complexity: O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = alpha * a.data[i]
	}

	return out, nil
}

// Mul returns the matrix product a·b as a fresh Dense.
// Deterministic i→k→j loop order over flat storage.
// Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns aᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense{r: a.c, c: a.r, data: make([]float64, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Hadamard returns the elementwise product a∘b as a fresh Dense.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] * b.data[i]
	}

	return out, nil
}

// MatVec returns the matrix-vector product a·x as a fresh slice of length
// a.Rows().
// Complexity: O(r*c).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		sum := 0.0
		base := i * a.c
		for j := 0; j < a.c; j++ {
			sum += a.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Outer returns the outer product u·vᵀ as a fresh len(u)×len(v) Dense.
// The workhorse of gradient accumulation: ∂L/∂W = δ·hᵀ.
// Complexity: O(len(u)*len(v)).
func Outer(u, v []float64) (*Dense, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, matrixErrorf(opOuter, ErrInvalidDimensions)
	}

	out := &Dense{r: len(u), c: len(v), data: make([]float64, len(u)*len(v))}
	for i, ui := range u {
		base := i * len(v)
		for j, vj := range v {
			out.data[base+j] = ui * vj
		}
	}

	return out, nil
}

// AddScaled performs the in-place axpy update dst += alpha*src. The only
// mutating kernel; weight updates run through it to avoid per-step
// allocation. Finiteness of the result is the caller's policy concern
// (ValidateFinite).
// Complexity: O(r*c).
func AddScaled(dst, src *Dense, alpha float64) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddScaled, err)
	}

	for i := range dst.data {
		dst.data[i] += alpha * src.data[i]
	}

	return nil
}

// FrobeniusNorm returns sqrt(Σ a_ij²).
// Complexity: O(r*c).
func FrobeniusNorm(a *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	sum := 0.0
	for _, v := range a.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to the
//     canonical kernel and never changes its loop order or error policy.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // in range by construction
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone that rejects nil with ErrNilMatrix.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// AddScaledProduct evaluates A + (alpha·B) × Cᵀ, the fixed expression the
// demonstration driver prints. Intermediate matrices are freshly allocated
// and every stage reports its own error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from the underlying kernels, wrapped
//     as "AddScaledProduct: <stage>: ..." with the stage that failed
//     (α·B, Cᵗ, (α·B)·Cᵗ, A+P).
func AddScaledProduct(a, b, c Matrix, alpha float64) (Matrix, error) {
	scaled, err := Scale(b, alpha)
	if err != nil {
		return nil, stageErrorf(stageScale, err)
	}
	ct, err := Transpose(c)
	if err != nil {
		return nil, stageErrorf(stageTranspose, err)
	}
	prod, err := Mul(scaled, ct)
	if err != nil {
		return nil, stageErrorf(stageMul, err)
	}
	sum, err := Add(a, prod)
	if err != nil {
		return nil, stageErrorf(stageAdd, err)
	}

	return sum, nil
}

const (
	stageScale     = "α·B"
	stageTranspose = "Cᵗ"
	stageMul       = "(α·B)·Cᵗ"
	stageAdd       = "A+P"
)

func stageErrorf(stage string, err error) error {
	return fmt.Errorf("AddScaledProduct: %s: %w", stage, err)
}

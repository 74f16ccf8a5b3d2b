// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Purpose:
//   - Compare two matrices cell by cell, exactly (Equal) or within a
//     tolerance (AllClose), without allocating.

package matrix

import "math"

const (
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Equal reports whether a and b have the same shape and bitwise-equal
// float64 values under ==. NaN never equals NaN, matching IEEE-754.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity: O(r*c) time, O(1) space.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	return allWithin(a, b, 0, 0), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allWithin(a, b, math.Abs(rtol), math.Abs(atol)), nil
}

// allWithin assumes validated, same-shape operands.
func allWithin(a, b Matrix, rtol, atol float64) bool {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx], rtol, atol) {
					return false // early-exit on first violation
				}
			}

			return true
		}
	}

	var av, bv float64
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shape validated by caller
			bv, _ = b.At(i, j)
			if !within(av, bv, rtol, atol) {
				return false
			}
		}
	}

	return true
}

// within keeps exact equality as a first check so equal infinities compare true.
func within(av, bv, rtol, atol float64) bool {
	if av == bv {
		return true
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}

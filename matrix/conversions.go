// SPDX-License-Identifier: MIT
// Package matrix provides converters between Dense and gonum's mat.Dense,
// for callers that need routines outside this package (factorizations,
// solvers) without giving up the bounds-checked core type.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// gonum forbids zero-sized matrices, so an empty m yields ErrBadShape.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrBadShape)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if buf[i*c+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf("ToGonum", err)
				}
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// The zero-value mat.Dense (0×0) converts to an empty Dense.
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure the package can report is one of the sentinels below, wrapped
// with operation or coordinate context. Callers match with errors.Is.
// No exported function panics or exits on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, err); Dense accessors wrap with
// denseErrorf(method, row, col, err). The sentinel survives both wrappers.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> allocation -> index/NaN.

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative side.
	// Zero-sized shapes (0×n, n×0) are legal.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrAllocation signals that backing storage for the requested shape cannot
	// be acquired: rows*cols overflows int or exceeds MaxElements.
	ErrAllocation = errors.New("matrix: cannot allocate backing storage")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this and never write.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under a finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadShape is returned when a shape cannot be represented by the target
	// (e.g. exporting an empty matrix to gonum, which forbids zero dimensions).
	ErrBadShape = errors.New("matrix: invalid shape")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

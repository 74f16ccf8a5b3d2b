// Package densemat is a small dense-matrix arithmetic toolkit for float64
// grids: allocate, read and write single elements with bounds checking, and
// compute sums, scalar products, matrix products and transposes.
//
// What's inside
//
//	matrix/        — Dense row-major storage, the Matrix contract, kernels
//	                 (Add, Sub, Scale, Mul, Transpose), sentinel errors and
//	                 gonum interop
//	render/        — text presentation: "[a b]" per row with shortest
//	                 round-trip digits, plus in-place stage rendering
//	editor/        — interactive prompt loop that writes elements through Set
//	cmd/densemat/  — the command: evaluates D = A + (3·B)·Cᵗ or runs the editor
//
// Quick example:
//
//	d, _ := matrix.AddScaledProduct(a, b, c, 3)
//	render.Fprint(os.Stdout, d)
//	// [90 70]
//	// [200 150]
//
// Library code never exits or panics on user input: every failure is a
// wrapped sentinel (ErrOutOfRange, ErrDimensionMismatch, ErrAllocation, ...)
// checked with errors.Is.
//
//	go get github.com/katalvlaran/densemat
package densemat

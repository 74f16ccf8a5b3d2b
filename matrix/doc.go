// Package matrix is a minimal dense-matrix arithmetic library.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 grid with bounds-checked At/Set.
//   - Kernels Add, Sub, Scale, Mul and Transpose, each returning a freshly
//     allocated result and never mutating an operand.
//   - Sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ErrAllocation, ...)
//     matched with errors.Is; nothing in the package exits or panics on
//     user input.
//   - Converters to and from gonum's mat.Dense.
//
// Presentation and interaction live outside the core, in the render and
// editor packages.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep data finite unless a test is explicitly about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
// Values go through Set, so the fixture exercises the public write path.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDims fails the test unless m is r×c.
func MustDims(t *testing.T, m matrix.Matrix, r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("shape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), r, c)
	}
}

// CompareExact asserts m equals want cell by cell with ==.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	cols := 0
	if len(want) > 0 {
		cols = len(want[0])
	}
	MustDims(t, m, len(want), cols)
	var i, j int
	var got float64
	for i = 0; i < len(want); i++ {
		for j = 0; j < cols; j++ {
			got = MustAt(t, m, i, j)
			if got != want[i][j] {
				t.Fatalf("cell [%d,%d]: got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// naiveMul is the reference triple loop: sum from 0.0 over k = 0..n-1.
func naiveMul(t *testing.T, a, b matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, a.Rows())
	for i := range out {
		out[i] = make([]float64, b.Cols())
		for j := range out[i] {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				sum += float64(MustAt(t, a, i, k) * MustAt(t, b, k, j))
			}
			out[i][j] = sum
		}
	}

	return out
}

// mustDense is the benchmark twin of MustDense.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand fills d with deterministic U(-1,1) values for benchmarks.
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := d.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

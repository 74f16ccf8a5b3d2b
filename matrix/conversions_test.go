// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonum_RoundTrip(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	for _, in := range []matrix.Matrix{a, hide{a}} {
		g, err := matrix.ToGonum(in)
		require.NoError(t, err)
		r, c := g.Dims()
		require.Equal(t, [2]int{2, 3}, [2]int{r, c})
		require.Equal(t, 6.0, g.At(1, 2))

		back, err := matrix.FromGonum(g)
		require.NoError(t, err)
		eq, err := matrix.Equal(a, back)
		require.NoError(t, err)
		require.True(t, eq)
	}
}

func TestToGonum_Independent(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 1, 1, []float64{7})
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)

	g.Set(0, 0, 8)
	require.Equal(t, 7.0, MustAt(t, a, 0, 0))
}

func TestToGonum_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.ToGonum(MustDense(t, 0, 2))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum(t *testing.T) {
	t.Parallel()
	sym := mat.NewSymDense(2, []float64{1, 2, 2, 3})
	m, err := matrix.FromGonum(sym)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {2, 3}}, m)

	empty, err := matrix.FromGonum(&mat.Dense{})
	require.NoError(t, err)
	MustDims(t, empty, 0, 0)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	withNaN := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err = matrix.FromGonum(withNaN, matrix.WithValidateNaNInf(true))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

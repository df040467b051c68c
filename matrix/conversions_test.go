// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlstat/matrix"
)

func TestToGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	m := RandFilledDense(t, 4, 3, 401)
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)

	r, c := g.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareClose(t, back, m, 0, 0)
}

func TestToGonum_NoAliasing(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	g.Set(0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0)) // copies, never aliases
}

func TestToGonum_FallbackPath(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	g, err := matrix.ToGonum(hide{m})
	require.NoError(t, err)
	require.Equal(t, 6.0, g.At(1, 2))
}

func TestToGonum_NilAndZeroSize(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	z := MustDense(t, 0, 3)
	g, err := matrix.ToGonum(z)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
}

func TestFromGonum_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCrossCovariance_FeedsGonumSVD walks the documented downstream path:
// preprocess with CrossCovariance, decompose with gonum's SVD.
func TestCrossCovariance_FeedsGonumSVD(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 30, 4, 402)
	Y := RandFilledDense(t, 30, 3, 403)

	R, err := matrix.CrossCovariance(X, Y)
	require.NoError(t, err)

	g, err := matrix.ToGonum(R)
	require.NoError(t, err)

	var svd mat.SVD
	require.True(t, svd.Factorize(g, mat.SVDThin))
	values := svd.Values(nil)
	require.Len(t, values, 3) // min(K, J) singular values
	// Singular values are non-negative and sorted descending.
	for i := 1; i < len(values); i++ {
		require.GreaterOrEqual(t, values[i-1], values[i])
	}
	require.GreaterOrEqual(t, values[len(values)-1], 0.0)
}

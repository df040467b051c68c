// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstat/matrix"
)

func TestMul_Known2x2(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want := [][]float64{{19, 22}, {43, 50}}
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, c, i, j))
		}
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // inner dims 3 vs 2 mismatch
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 3, 301)
	b := RandFilledDense(t, 3, 5, 302)
	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, epsTight)
}

func TestTranspose_RoundTrip(t *testing.T) {
	t.Parallel()

	m := RandFilledDense(t, 3, 5, 303)
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 5, mt.Rows())
	require.Equal(t, 3, mt.Cols())

	back, err := matrix.Transpose(mt)
	require.NoError(t, err)
	CompareClose(t, back, m, 0, 0)
}

func TestScale_ZeroAndNegative(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, -2, 3, -4})

	z, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, 0.0, MustAt(t, z, i, j))
		}
	}

	n, err := matrix.Scale(m, -1)
	require.NoError(t, err)
	require.Equal(t, -1.0, MustAt(t, n, 0, 0))
	require.Equal(t, 4.0, MustAt(t, n, 1, 1))
}

func TestNilInputs(t *testing.T) {
	t.Parallel()

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4 + 1e-13})

	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-14)
	require.NoError(t, err)
	require.False(t, ok)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstat/matrix"
)

const epsTight = 1e-12

// ------------------------------
// ZScore
// ------------------------------

func TestZScore_ColumnsMeanZeroStdOne(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 50, 4, 7)
	Z, err := matrix.ZScore(X)
	require.NoError(t, err)
	require.Equal(t, 50, Z.Rows())
	require.Equal(t, 4, Z.Cols())

	// Each column: mean ≈ 0, population std ≈ 1.
	for j := 0; j < 4; j++ {
		col := colSlice(t, Z, j)
		var sum, sumsq float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		for _, v := range col {
			sumsq += (v - mean) * (v - mean)
		}
		std := math.Sqrt(sumsq / float64(len(col)))
		require.InDelta(t, 0.0, mean, 1e-10, "col %d mean", j)
		require.InDelta(t, 1.0, std, 1e-10, "col %d std", j)
	}
}

func TestZScore_MatchesIndependentOracle(t *testing.T) {
	t.Parallel()

	// Cross-check column 0 against montanaflynn/stats mean + population std.
	X := NewFilledDense(t, 5, 2, []float64{
		2, 9,
		4, 1,
		6, 5,
		8, 3,
		10, 7,
	})
	Z, err := matrix.ZScore(X)
	require.NoError(t, err)

	raw := colSlice(t, X, 0)
	mean, err := stats.Mean(raw)
	require.NoError(t, err)
	std, err := stats.StandardDeviationPopulation(raw)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		want := (raw[i] - mean) / std
		require.InDelta(t, want, MustAt(t, Z, i, 0), epsTight)
	}
}

func TestZScore_ZeroVarianceColumnBecomesZeros(t *testing.T) {
	t.Parallel()

	// Column 1 is constant: it must come out identically zero — no NaN/Inf.
	X := NewFilledDense(t, 4, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
		4, 5,
	})
	Z, err := matrix.ZScore(X)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		v := MustAt(t, Z, i, 1)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		require.Equal(t, 0.0, v)
	}
	// The non-degenerate column is still standardized.
	require.Negative(t, MustAt(t, Z, 0, 0))
	require.Positive(t, MustAt(t, Z, 3, 0))
}

func TestZScore_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 8, 3, 11)
	Zf, err := matrix.ZScore(X)
	require.NoError(t, err)
	Zs, err := matrix.ZScore(hide{X})
	require.NoError(t, err)
	CompareClose(t, Zf, Zs, 0, epsTight)
}

func TestZScore_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 1, []float64{1, 2, 3})
	_, err := matrix.ZScore(X)
	require.NoError(t, err)
	sliceClose(t, colSlice(t, X, 0), []float64{1, 2, 3}, 0, 0)
}

func TestZScore_NilAndZeroSize(t *testing.T) {
	t.Parallel()

	_, err := matrix.ZScore(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	X, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	Z, err := matrix.ZScore(X)
	require.NoError(t, err)
	require.Equal(t, 0, Z.Rows())
	require.Equal(t, 3, Z.Cols())
}

// ------------------------------
// Normalize
// ------------------------------

func TestNormalizeColumns_UnitNorms(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 10, 3, 23)
	Y, err := matrix.NormalizeColumns(X)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		var sumsq float64
		for _, v := range colSlice(t, Y, j) {
			sumsq += v * v
		}
		require.InDelta(t, 1.0, math.Sqrt(sumsq), 1e-10, "col %d norm", j)
	}
}

func TestNormalizeRows_UnitNorms(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 4, 6, 29)
	Y, err := matrix.Normalize(X, matrix.Rows)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		var sumsq float64
		for j := 0; j < 6; j++ {
			v := MustAt(t, Y, i, j)
			sumsq += v * v
		}
		require.InDelta(t, 1.0, math.Sqrt(sumsq), 1e-10, "row %d norm", i)
	}
}

func TestNormalize_ZeroNormSliceBecomesZeros(t *testing.T) {
	t.Parallel()

	// Column 0 is all zeros; it must stay all zeros, no ±Inf artifacts.
	X := NewFilledDense(t, 3, 2, []float64{
		0, 1,
		0, 2,
		0, 3,
	})
	Y, err := matrix.NormalizeColumns(X)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v := MustAt(t, Y, i, 0)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		require.Equal(t, 0.0, v)
	}
}

func TestNormalize_BadAxis(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 2, 2)
	_, err := matrix.Normalize(X, matrix.Axis(9))
	require.ErrorIs(t, err, matrix.ErrBadAxis)
}

func TestNormalize_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 7, 5, 31)
	Yf, err := matrix.Normalize(X, matrix.Rows)
	require.NoError(t, err)
	Ys, err := matrix.Normalize(hide{X}, matrix.Rows)
	require.NoError(t, err)
	CompareClose(t, Yf, Ys, 0, epsTight)
}

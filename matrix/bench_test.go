// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlstat/matrix"
)

// benchDense builds an r×c Dense with deterministic pseudo-random content.
func benchDense(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	src := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = d.Set(i, j, src.Float64()*2-1)
		}
	}

	return d
}

func BenchmarkZScore_200x50(b *testing.B) {
	X := benchDense(b, 200, 50, 1)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := matrix.ZScore(X); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormalizeColumns_200x50(b *testing.B) {
	X := benchDense(b, 200, 50, 2)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := matrix.NormalizeColumns(X); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCrossCovariance_200x20x10(b *testing.B) {
	X := benchDense(b, 200, 20, 3)
	Y := benchDense(b, 200, 10, 4)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := matrix.CrossCovariance(X, Y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGroupedCrossCovariance_4Groups(b *testing.B) {
	X := benchDense(b, 200, 20, 5)
	Y := benchDense(b, 200, 10, 6)
	grouping := make([]int, 200)
	for i := range grouping {
		grouping[i] = i % 4
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := matrix.GroupedCrossCovariance(X, Y, grouping); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDummyCode_10kRows(b *testing.B) {
	grouping := make([]int, 10_000)
	for i := range grouping {
		grouping[i] = i % 7
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := matrix.DummyCode(grouping); err != nil {
			b.Fatal(err)
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the standardization transforms (z-scoring, Frobenius/L2 axis
//     normalization) as deterministic compositions over ew* micro-kernels.
//   - Centralize the degenerate-input policy: zero variance and zero norm are
//     NOT errors — the affected slice is emitted as all zeros, never NaN/Inf.
//
// Exposed API (facades in api.go):
//   - ZScore(X)            -> Z            // per-column (x − mean)/std, population std
//   - Normalize(X, axis)   -> Y            // per-axis L2 normalization, degenerate → zeros
//   - NormalizeColumns(X)  -> Y            // Normalize(X, Columns)
//   - NormalizeRows(X)     -> Y            // Normalize(X, Rows)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - ZScore∘Normalize(Columns) is the canonical prelude to CrossCovariance.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opZScore    = "ZScore"
	opNormalize = "Normalize"
)

// zScore standardizes every column to zero mean and unit standard deviation
// using the population convention (divisor N, not N−1).
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Accumulate column means in a deterministic pass (Dense
//     fast-path; At fallback).
//   - Stage 3: Accumulate centered sums of squares; std[j] = sqrt(ssq[j]/r).
//   - Stage 4: Build invStd with 0 for degenerate columns and apply
//     ewBroadcastSubCols + ewScaleCols. The zero factor blanks a
//     zero-variance column exactly (its centered values are already 0).
//
// Behavior highlights:
//   - Zero-variance columns (std==0) come out identically 0 — no NaN, no Inf,
//     no error, no warning. Constant columns carry no information to
//     standardize, so zero is the neutral representation downstream.
//   - Zero-size (0×N or N×0): returns X itself without allocations.
//
// Inputs:
//   - X: input matrix (r×c), observations in rows.
//
// Returns:
//   - Matrix: standardized copy (r×c); X is never mutated.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Determinism:
//   - Fixed loop order; no randomness; stable results.
//
// Complexity:
//   - Time O(r*c) over two passes, Space O(r*c) output (+ O(c) auxiliaries).
//
// AI-Hints:
//   - A single column with equal values is the classic degenerate probe;
//     expect an all-zero column, not a failure.
func zScore(X Matrix) (Matrix, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opZScore, err)
	}

	// Stage 1 (Zero-size policy): standardization is a no-op without elements.
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, nil
	}

	// Stage 2 (Means): accumulate sums, then divide once by r.
	means := make([]float64, c)
	var i, j int
	var v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c           // cache row base offset
			for j = 0; j < c; j++ { // deterministic column order
				means[j] += d.data[base+j] // accumulate sum for column j
			}
		}
	} else {
		// Generic fallback with full error propagation.
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opZScore, err)
				}
				means[j] += v
			}
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Population std): ssq over centered values, divided by r.
	sumsq := make([]float64, c)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j] - means[j]
				sumsq[j] += v * v
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opZScore, err)
				}
				v -= means[j]
				sumsq[j] += v * v
			}
		}
	}

	// Stage 4 (Build invStd): degenerate std==0 ⇒ invStd=0 (zero-out the column).
	invStd := make([]float64, c)
	var std float64
	for j = 0; j < c; j++ {
		std = math.Sqrt(sumsq[j] * invR)
		if std > 0 {
			invStd[j] = 1.0 / std
		} else {
			invStd[j] = 0.0 // silences the would-be division by zero
		}
	}

	// Stage 4 (Apply): Z = (X − mean) * diag(invStd) via canonical kernels.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, matrixErrorf(opZScore, err)
	}
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, matrixErrorf(opZScore, err)
	}

	return Z, nil
}

// normalizeAxis scales every slice along axis to unit L2 (Frobenius) norm.
// Implementation:
//   - Stage 1: Validate X (non-nil) and axis; zero-size is a strict no-op.
//   - Stage 2: Compute per-slice L2 norms deterministically.
//   - Stage 3: Build scale factors 1/norm; for norm==0 use 0, which emits the
//     slice as all zeros instead of producing ±Inf artifacts.
//   - Stage 4: Apply ewScaleCols (axis=Columns) or ewScaleRows (axis=Rows).
//
// Behavior highlights:
//   - Degenerate slices (norm==0) become identically 0 — the zero vector has
//     no direction to preserve, and a zero output keeps downstream
//     cross-products finite.
//
// Inputs:
//   - X: input matrix (r×c).
//   - axis: Columns (normalize each column) or Rows (normalize each row).
//
// Returns:
//   - Matrix: normalized copy (r×c); X is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrBadAxis; wrapped At errors from fallback paths.
//
// Determinism:
//   - Fixed i→j traversal; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) output (+ O(slices) auxiliaries).
//
// AI-Hints:
//   - Columns is the convention for variable-wise pipelines; Rows is typical
//     before cosine-similarity style comparisons.
func normalizeAxis(X Matrix, axis Axis) (Matrix, error) {
	// Stage 1 (Validate): presence and axis legality.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	// Stage 1 (Zero-size policy): no elements ⇒ no-op.
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, nil
	}

	// Stage 2 (Norms): accumulate squared sums per slice along the axis.
	slices := c // slice count for Columns
	if axis == Rows {
		slices = r
	}
	sumsq := make([]float64, slices)

	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if axis == Columns {
					sumsq[j] += v * v
				} else {
					sumsq[i] += v * v
				}
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opNormalize, err)
				}
				if axis == Columns {
					sumsq[j] += v * v
				} else {
					sumsq[i] += v * v
				}
			}
		}
	}

	// Stage 3 (Scales): 1/norm for regular slices; 0 for degenerate ones.
	scale := make([]float64, slices)
	var norm float64
	for i = 0; i < slices; i++ {
		norm = math.Sqrt(sumsq[i])
		if norm > 0 {
			scale[i] = 1.0 / norm
		} else {
			scale[i] = 0.0 // zero slice stays a zero slice
		}
	}

	// Stage 4 (Apply): scale along the requested axis via ew micro-kernels.
	if axis == Columns {
		Y, err := ewScaleCols(X, scale)
		if err != nil {
			return nil, matrixErrorf(opNormalize, err)
		}
		return Y, nil
	}
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	return Y, nil
}

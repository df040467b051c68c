// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the cross-covariance kernel between two observation matrices
//     and its grouped variant (per-group computation, row-stacked output).
//   - Compose strictly over the canonical kernels: zScore → normalizeAxis →
//     Transpose/Mul/Scale → rowStack.
//
// Numeric contract:
//   - crossCovariance(X, Y) = normalize(zscore(Y))ᵀ · normalize(zscore(X)) / (N−1).
//     The zscore-then-normalize order is intentional: entries come out as
//     bounded, scale-invariant cross-correlation-like coefficients rather
//     than raw covariances.
//
// Determinism & Performance:
//   - Group partitioning preserves original row order inside each group and
//     processes groups in ascending sorted order of unique labels.
//   - Per-group blocks land in a single pre-sized output via rowStack.
//
// AI-Hints:
//   - Keep X and Y as *Dense end to end; every stage has a flat fast path.
//   - Index sets, not copies, define groups; rows are materialized only for
//     the per-group kernel input.

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Operation name constants for unified error wrapping.
const (
	opCrossCovariance        = "CrossCovariance"
	opGroupedCrossCovariance = "GroupedCrossCovariance"
)

// minGroupRows is the smallest observation count for which the (N−1)
// denominator is defined.
const minGroupRows = 2

// crossCovariance computes the K×J cross-covariance of standardized,
// column-normalized X (N×J) and Y (N×K).
// Implementation:
//   - Stage 1: ValidateSameRows(X, Y); require N ≥ minGroupRows.
//   - Stage 2: Standardize both inputs (zScore) and column-normalize the
//     standardized results (normalizeAxis Columns).
//   - Stage 3: Cross-product Ynzᵀ · Xnz scaled by 1/(N−1).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row-count mismatch),
//     ErrTooFewRows (N < 2).
//
// Complexity:
//   - Time O(N·J·K + N·(J+K)), Space O(J·K) for the result.
func crossCovariance(X, Y Matrix) (Matrix, error) {
	// Stage 1 (Validate): paired inputs must share the observation count.
	if err := ValidateSameRows(X, Y); err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	n := X.Rows()
	if n < minGroupRows {
		return nil, matrixErrorf(opCrossCovariance, ErrTooFewRows)
	}

	// Stage 2 (Standardize): zscore then column-normalize, both sides.
	Xz, err := zScore(X)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	Xnz, err := normalizeAxis(Xz, Columns)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	Yz, err := zScore(Y)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	Ynz, err := normalizeAxis(Yz, Columns)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}

	// Stage 3 (Cross-product): (Ynzᵀ · Xnz) / (n−1).
	Yt, err := Transpose(Ynz)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	G, err := Mul(Yt, Xnz)
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}
	out, err := Scale(G, 1.0/float64(n-1))
	if err != nil {
		return nil, matrixErrorf(opCrossCovariance, err)
	}

	return out, nil
}

// groupIndexSets partitions row indices 0..n−1 by their grouping label.
// Returns the unique labels in ascending sorted order and, aligned with
// them, the per-group index sets preserving original row order.
// Complexity: O(n log n) for the label sort, O(n) otherwise.
func groupIndexSets[L constraints.Ordered](grouping []L) ([]L, [][]int) {
	// Bucket row indices per label; insertion preserves row order.
	buckets := make(map[L][]int, len(grouping))
	for i, label := range grouping {
		buckets[label] = append(buckets[label], i)
	}

	// Sorted unique labels define the canonical group order.
	labels := make([]L, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	// Align index sets with the sorted labels.
	idx := make([][]int, len(labels))
	for g, label := range labels {
		idx[g] = buckets[label]
	}

	return labels, idx
}

// groupedCrossCovariance computes crossCovariance independently per group and
// stacks the G K×J blocks row-wise into one (K·G)×J result.
// Implementation:
//   - Stage 1: ValidateSameRows(X, Y); len(grouping) must equal N; grouping
//     must be non-empty.
//   - Stage 2: Partition rows into index sets by ascending unique label.
//   - Stage 3: Gather each group's rows (selectRows) from BOTH inputs, run the
//     kernel on that group's rows only — no cross-group leakage — and
//     collect the blocks.
//   - Stage 4: rowStack the blocks in label order (single pre-sized buffer).
//
// Behavior highlights:
//   - Any group with fewer than minGroupRows rows fails the whole call;
//     a one-observation group cannot carry an (N−1)-scaled statistic.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row mismatch or grouping length),
//     ErrEmptyGrouping, ErrTooFewRows (undersized group).
//
// Complexity:
//   - Time Σ_g O(n_g·J·K), Space O(G·J·K) for the stacked result.
func groupedCrossCovariance[L constraints.Ordered](X, Y Matrix, grouping []L) (Matrix, error) {
	// Stage 1 (Validate): paired shapes and grouping length.
	if err := ValidateSameRows(X, Y); err != nil {
		return nil, matrixErrorf(opGroupedCrossCovariance, err)
	}
	if len(grouping) == 0 {
		return nil, matrixErrorf(opGroupedCrossCovariance, ErrEmptyGrouping)
	}
	if len(grouping) != X.Rows() {
		return nil, matrixErrorf(opGroupedCrossCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Partition): ascending unique labels, row order kept per set.
	labels, idx := groupIndexSets(grouping)

	// Stage 3 (Per-group kernel): gather rows, compute, collect.
	blocks := make([]Matrix, len(labels))
	for g := range labels {
		if len(idx[g]) < minGroupRows {
			return nil, matrixErrorf(opGroupedCrossCovariance,
				fmt.Errorf("group %v: %w", labels[g], ErrTooFewRows))
		}
		Xg, err := selectRows(X, idx[g])
		if err != nil {
			return nil, matrixErrorf(opGroupedCrossCovariance, err)
		}
		Yg, err := selectRows(Y, idx[g])
		if err != nil {
			return nil, matrixErrorf(opGroupedCrossCovariance, err)
		}
		block, err := crossCovariance(Xg, Yg)
		if err != nil {
			return nil, matrixErrorf(opGroupedCrossCovariance,
				fmt.Errorf("group %v: %w", labels[g], err))
		}
		blocks[g] = block
	}

	// Stage 4 (Assemble): stack blocks in label order.
	out, err := rowStack(blocks)
	if err != nil {
		return nil, matrixErrorf(opGroupedCrossCovariance, err)
	}

	return out, nil
}

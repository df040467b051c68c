// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Encode a categorical grouping vector as an N×G one-hot indicator
//     matrix and decode such a matrix back to a canonical label vector.
//
// Contract:
//   - Column order is the ascending sorted order of unique labels. This
//     ordering is load-bearing: it is the same order GroupedCrossCovariance
//     stacks its blocks in, and it is what makes the round trip canonical.
//   - ReverseDummyCode(DummyCode(g)) recovers group MEMBERSHIP, re-labeled
//     1..G by ascending-unique-label rank — a deliberate lossy re-encoding,
//     not a label-preserving inverse.
//
// AI-Hints:
//   - DummyCode output feeds directly into regression-style design matrices.
//   - ReverseDummyCode assumes valid one-hot rows; it does not validate.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Operation name constants for unified error wrapping.
const (
	opDummyCode        = "DummyCode"
	opReverseDummyCode = "ReverseDummyCode"
)

// dummyCode builds the N×G indicator matrix for grouping.
// Implementation:
//   - Stage 1: Reject an empty grouping (no rows to encode).
//   - Stage 2: Partition indices by ascending unique label (groupIndexSets).
//   - Stage 3: Allocate N×G zeros and set one 1.0 per (row, group) pair.
//
// Behavior highlights:
//   - Every row receives exactly one 1; row sums are identically 1.
//   - Labels need not be contiguous or pre-sorted.
//
// Inputs:
//   - grouping: length-N label vector (any ordered label type).
//
// Returns:
//   - *Dense: N×G indicator, column g ↔ g-th smallest unique label.
//
// Errors:
//   - ErrEmptyGrouping.
//
// Complexity:
//   - Time O(N log N + N·G) (allocation dominates), Space O(N·G).
func dummyCode[L constraints.Ordered](grouping []L) (*Dense, error) {
	// Stage 1 (Validate): an empty vector has no encoding.
	if len(grouping) == 0 {
		return nil, matrixErrorf(opDummyCode, ErrEmptyGrouping)
	}

	// Stage 2 (Partition): sorted unique labels and their row index sets.
	labels, idx := groupIndexSets(grouping)

	// Stage 3 (Encode): one pass per group over its own rows.
	out, err := NewDense(len(grouping), len(labels))
	if err != nil {
		return nil, matrixErrorf(opDummyCode, err)
	}
	for g := range labels {
		for _, i := range idx[g] {
			out.data[i*out.c+g] = 1.0 // direct flat write; indices pre-validated
		}
	}

	return out, nil
}

// reverseDummyCode reconstructs a canonical label vector from an N×G
// indicator matrix: row i receives Σ_g Y[i,g]·(g+1).
// For a valid one-hot row (single 1) the sum is exactly the 1-based rank of
// the set column. Rows with zero or multiple set entries produce whatever the
// sum yields — that fragility is documented, not validated, so callers that
// construct indicators by hand keep the raw arithmetic semantics.
//
// Inputs:
//   - Y: N×G indicator matrix (assumed one-hot per row).
//
// Returns:
//   - []int: length-N label vector with values in 1..G for one-hot rows.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from non-Dense implementations.
//
// Complexity:
//   - Time O(N·G), Space O(N).
func reverseDummyCode(Y Matrix) ([]int, error) {
	// Validate presence.
	if err := ValidateNotNil(Y); err != nil {
		return nil, matrixErrorf(opReverseDummyCode, err)
	}

	r, c := Y.Rows(), Y.Cols()
	out := make([]int, r)

	// Dense fast path: weighted row sums over the flat buffer.
	if d, ok := Y.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			s := 0.0
			for g := 0; g < c; g++ {
				s += d.data[base+g] * float64(g+1) // weight = 1-based column rank
			}
			out[i] = int(math.Round(s))
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		s := 0.0
		for g := 0; g < c; g++ {
			v, err := Y.At(i, g)
			if err != nil {
				return nil, matrixErrorf(opReverseDummyCode, err)
			}
			s += v * float64(g+1)
		}
		out[i] = int(math.Round(s))
	}
	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row-oriented assembly kernels: vertical stacking of conformable
//     blocks and index-set row gathers.
//   - Both kernels pre-size a single output Dense (no incremental growth) and
//     never mutate or alias their inputs.
//
// Determinism & Performance:
//   - Fixed block→row→column traversal; stable output for identical inputs.
//   - Dense fast-paths copy whole row blocks via copy(); fallbacks use At.
//
// AI-Hints:
//   - RowStack is the canonical way to assemble per-group results in label order.
//   - SelectRows implements arena-free partitioning: build index sets over the
//     original matrix, gather only when a dense block is actually needed.

package matrix

import "fmt"

// rowStack vertically concatenates blocks into one (Σrows)×c Dense.
// Implementation:
//   - Stage 1: Validate every block non-nil and column-conformable; sum rows.
//   - Stage 2: Allocate the output once, pre-sized to the exact total shape.
//   - Stage 3: Copy block rows in order (Dense fast-path copies flat row spans).
//
// Behavior highlights:
//   - Zero blocks → 0×0 result (legal zero-size Dense).
//   - Blocks with zero rows contribute nothing but must still match c.
//
// Inputs:
//   - blocks: ordered slice of matrices sharing one column count.
//
// Returns:
//   - *Dense: stacked result, rows appear in block order.
//
// Errors:
//   - ErrNilMatrix (nil block), ErrDimensionMismatch (column mismatch).
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func rowStack(blocks []Matrix) (*Dense, error) {
	// Stage 1 (Validate): establish the common width and total height.
	if len(blocks) == 0 {
		return NewDense(0, 0)
	}
	if err := ValidateNotNil(blocks[0]); err != nil {
		return nil, matrixErrorf(opRowStack, err)
	}
	c := blocks[0].Cols()
	total := 0
	for k, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(opRowStack, err)
		}
		if b.Cols() != c {
			return nil, matrixErrorf(opRowStack, fmt.Errorf("block %d: %w", k, ErrDimensionMismatch))
		}
		total += b.Rows()
	}

	// Stage 2 (Prepare): one allocation for the entire result.
	out, err := NewDense(total, c)
	if err != nil {
		return nil, matrixErrorf(opRowStack, err)
	}

	// Stage 3 (Execute): copy block rows in deterministic order.
	offset := 0 // running row offset into the output
	for _, b := range blocks {
		br := b.Rows()
		if d, ok := b.(*Dense); ok {
			// Dense fast-path: copy the whole flat block in one call.
			copy(out.data[offset*c:(offset+br)*c], d.data)
		} else {
			// Generic fallback: elementwise At with fixed i→j order.
			for i := 0; i < br; i++ {
				base := (offset + i) * c
				for j := 0; j < c; j++ {
					v, e := b.At(i, j)
					if e != nil {
						return nil, matrixErrorf(opRowStack, e)
					}
					out.data[base+j] = v
				}
			}
		}
		offset += br
	}

	return out, nil
}

// selectRows gathers the rows of m named by idx (in idx order, duplicates
// allowed) into a fresh len(idx)×c Dense.
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateIndexSet(idx, rows).
//   - Stage 2: Allocate the pre-sized output.
//   - Stage 3: Copy row spans (Dense fast-path) or At-walk (fallback).
//
// Behavior highlights:
//   - idx order defines output row order; the input is never reordered.
//   - Empty idx → 0×c result.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (stale index).
//
// Complexity:
//   - Time O(len(idx)*c), Space O(len(idx)*c).
func selectRows(m Matrix, idx []int) (*Dense, error) {
	// Stage 1 (Validate): presence and index bounds.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateIndexSet(idx, r); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}

	// Stage 2 (Prepare): single pre-sized allocation.
	out, err := NewDense(len(idx), c)
	if err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}

	// Stage 3 (Execute): gather rows in idx order.
	if d, ok := m.(*Dense); ok {
		// Dense fast-path: one copy per selected row.
		for k, i := range idx {
			copy(out.data[k*c:(k+1)*c], d.data[i*c:(i+1)*c])
		}
		return out, nil
	}

	// Generic fallback.
	for k, i := range idx {
		base := k * c
		for j := 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opSelectRows, e)
			}
			out.data[base+j] = v
		}
	}
	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - CrossCovariance's grouped variant stacks blocks in ascending unique-label
//     order; the same order DummyCode assigns its columns in.

package matrix

import "golang.org/x/exp/constraints"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ---------- Assembly (facades map 1:1 to kernels) ----------

// RowStack vertically concatenates blocks (all sharing one column count) into
// a single pre-sized Dense, rows in block order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(total elements).
func RowStack(blocks ...Matrix) (*Dense, error) { return rowStack(blocks) }

// SelectRows gathers the rows of m named by idx (in idx order) into a fresh
// len(idx)×Cols Dense. The input is never mutated or aliased.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(len(idx)*c).
func SelectRows(m Matrix, idx []int) (*Dense, error) { return selectRows(m, idx) }

// ---------- Statistical transforms ----------

// ZScore standardizes every column of X to zero mean and unit standard
// deviation (population convention, divisor N). Zero-variance columns are
// emitted as all zeros — never NaN/Inf, never an error.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
//
// AI-Hints: pass *Dense for the flat fast path; zero-size X is a no-op.
func ZScore(X Matrix) (Matrix, error) { return zScore(X) }

// Normalize scales every slice of X along axis to unit L2 (Frobenius) norm.
// Zero-norm slices are emitted as all zeros instead of division-by-zero
// artifacts.
// Errors: ErrNilMatrix, ErrBadAxis.
// Complexity: O(r*c).
func Normalize(X Matrix, axis Axis) (Matrix, error) { return normalizeAxis(X, axis) }

// NormalizeColumns is Normalize(X, Columns) — the default for variable-wise
// preprocessing pipelines.
func NormalizeColumns(X Matrix) (Matrix, error) { return normalizeAxis(X, Columns) }

// NormalizeRows is Normalize(X, Rows) — typical before cosine-similarity
// style comparisons.
func NormalizeRows(X Matrix) (Matrix, error) { return normalizeAxis(X, Rows) }

// CrossCovariance computes the K×J cross-covariance of X (N×J) and Y (N×K):
// normalize(zscore(Y))ᵀ · normalize(zscore(X)) / (N−1). Entries are bounded,
// scale-invariant cross-correlation-like coefficients.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row mismatch), ErrTooFewRows.
// Complexity: O(N·J·K).
func CrossCovariance(X, Y Matrix) (Matrix, error) { return crossCovariance(X, Y) }

// GroupedCrossCovariance partitions the rows of X and Y by grouping label,
// computes CrossCovariance independently per group (each group sees only its
// own rows) and stacks the G K×J blocks row-wise into a (K·G)×J result, in
// ascending sorted order of unique labels.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row/grouping mismatch),
// ErrEmptyGrouping, ErrTooFewRows (any group with fewer than two rows).
// Complexity: Σ_g O(n_g·J·K).
func GroupedCrossCovariance[L constraints.Ordered](X, Y Matrix, grouping []L) (Matrix, error) {
	return groupedCrossCovariance(X, Y, grouping)
}

// ---------- Grouping codecs ----------

// DummyCode one-hot encodes a length-N grouping vector into an N×G indicator
// matrix, one column per unique label in ascending sorted order.
// Errors: ErrEmptyGrouping.
// Complexity: O(N log N + N·G).
func DummyCode[L constraints.Ordered](grouping []L) (*Dense, error) {
	return dummyCode(grouping)
}

// ReverseDummyCode decodes an N×G indicator matrix into a length-N label
// vector, assigning each one-hot row the 1-based rank of its set column.
// Rows with zero or multiple set entries yield the raw weighted row sum;
// the input is deliberately not validated.
// Errors: ErrNilMatrix.
// Complexity: O(N·G).
func ReverseDummyCode(Y Matrix) ([]int, error) { return reverseDummyCode(Y) }

// ---------- Comparison ----------

// AllClose reports whether a and b agree elementwise within
// atol + rtol*|b[i,j]|. NaN anywhere compares not-close.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

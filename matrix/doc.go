// Package matrix provides dense linear-algebra primitives and the
// statistical preprocessing transforms built on top of them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 implementation of the Matrix interface,
//     with O(1) element access and flat-buffer fast paths in every kernel.
//   - Canonical kernels (Transpose, Mul, Scale, RowStack, SelectRows) with
//     strict fail-fast validation and sentinel errors.
//   - Statistical transforms: ZScore (per-column standardization),
//     Normalize (per-axis L2 scaling), CrossCovariance and
//     GroupedCrossCovariance (standardized/normalized cross-products),
//     DummyCode and ReverseDummyCode (one-hot grouping codecs).
//   - Converters to and from gonum's mat.Dense for downstream
//     decompositions (SVD, eigen) outside this package.
//
// Degenerate numeric inputs (zero-variance columns, zero-norm slices) are
// deliberately mapped to zero output instead of NaN/Inf or errors; shape
// violations are surfaced as sentinel errors matched via errors.Is.
//
// See the examples in this package for usage patterns.
package matrix

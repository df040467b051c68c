// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf(tag, ErrX) at the
// call site — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Zero-size matrices (0×N or N×0) are legal and act as no-op
	// carriers through the transforms.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g., row-count mismatch between paired inputs, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadAxis signals an Axis value other than Columns or Rows.
	ErrBadAxis = errors.New("matrix: invalid axis")

	// ErrTooFewRows is returned by sample statistics that divide by (n−1)
	// when fewer than two observations are available (globally or within a
	// single group).
	ErrTooFewRows = errors.New("matrix: fewer than two rows")

	// ErrEmptyGrouping indicates a zero-length grouping vector where at
	// least one label was required.
	ErrEmptyGrouping = errors.New("matrix: empty grouping vector")
)

// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by dense storage and kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// Axis selector. Errors live in errors.go, validators in validators.go,
// per the package conventions.
package matrix

// Axis selects the direction of a per-slice reduction or scaling.
// Columns (the default throughout this package) treats each column as a
// slice; Rows treats each row as a slice.
type Axis int

const (
	// Columns applies a transform per column (slice index = column).
	Columns Axis = iota

	// Rows applies a transform per row (slice index = row).
	Rows
)

// DefaultAxis is the axis used by transforms when callers have no reason to
// deviate: observations in rows, variables in columns.
const DefaultAxis = Columns

// Matrix represents a two-dimensional mutable array of float64 values.
// All implementations must keep Rows/Cols/At/Set O(1); Clone is O(r*c).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

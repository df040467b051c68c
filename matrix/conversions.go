// SPDX-License-Identifier: MIT

// Package matrix: two-way adapters between the local Dense type and
// gonum's mat.Dense.
//
// Use converters to hand preprocessed matrices to gonum decompositions
// (SVD, eigen) — the usual next step after CrossCovariance in a PLS-style
// pipeline — and to ingest gonum results back without manual copying.
//
// Both directions materialize a full copy: the two libraries never alias
// each other's backing storage.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum converts m into a freshly allocated *mat.Dense.
// Zero-size matrices map to an empty (nil-backed) gonum Dense, which is the
// representation gonum itself uses for empty results.
// Errors: ErrNilMatrix; wrapped At errors from non-Dense implementations.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	// Validate presence first; gonum panics on nil shapes, we do not.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}

	// Dense fast path: copy the flat row-major buffer wholesale; gonum's
	// Dense is also row-major so the layout matches element for element.
	if d, ok := m.(*Dense); ok {
		data := make([]float64, len(d.data))
		copy(data, d.data)
		return mat.NewDense(r, c, data), nil
	}

	// Generic fallback via At.
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// FromGonum copies any gonum mat.Matrix into a local *Dense.
// Errors: ErrNilMatrix on nil input.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	// gonum matrices are interfaces too; reject nil explicitly.
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	// gonum's At panics only on bounds violations, which r/c preclude here.
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = g.At(i, j)
		}
	}
	return out, nil
}

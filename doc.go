// Package lvlstat is your in-memory toolkit for numerically careful
// statistical preprocessing — the building blocks that sit between raw
// observation matrices and multivariate models such as partial least
// squares (PLS).
//
// 🚀 What is lvlstat?
//
//	A modern, dependency-light library that brings together:
//		• Dense primitives: a row-major float64 matrix core with strict,
//		  fail-fast validation and deterministic kernels
//		• Standardization: per-column z-scoring with silent zero-variance handling
//		• Normalization: per-axis Frobenius (L2) scaling, degenerate-safe
//		• Cross-covariance: standardized/normalized cross-products, optionally
//		  computed per group and stacked row-wise
//		• Dummy coding: one-hot encoding of grouping vectors and its canonical
//		  reverse mapping
//		• Random sources: reproducible seed resolution with an injectable
//		  process-wide default
//
// ✨ Why choose lvlstat?
//
//   - Predictable numerics – degenerate inputs (zero variance, zero norm)
//     produce zeros, never NaN/Inf and never spurious warnings
//   - Pure functions – inputs are never mutated; every transform returns a
//     fresh matrix
//   - Rock-solid guarantees – sentinel errors, deterministic loop orders,
//     in-code docs & complexity notes
//   - Pure Go – no cgo; interops with gonum when you need decompositions
//
// Everything is organized under two subpackages:
//
//	matrix/ — dense Matrix core, linear-algebra kernels and the statistical
//	          transforms (ZScore, Normalize, CrossCovariance, DummyCode)
//	rng/    — seed specification → *rand.Rand resolution with a shared,
//	          injectable default source
//
// Quick sketch of a grouped cross-covariance pipeline:
//
//	    X (N×J)  ──zscore──▶ ──normalize──▶ ┐
//	                                        ├─▶ Yᵀ·X / (N−1) per group ─▶ stack
//	    Y (N×K)  ──zscore──▶ ──normalize──▶ ┘
//
// Dive into the package docs and examples for the full contracts.
//
//	go get github.com/katalvlaran/lvlstat
package lvlstat

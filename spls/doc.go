// SPDX-License-Identifier: MIT

// Package spls adapts a sparse canonical PLS decomposition to the omicsnet
// data model.
//
// The package has two halves:
//
//	Adapter:   converts sparsity fractions into retention counts, validates
//	           dimensions, calls a Decomposer and normalizes its raw output
//	           into a Result keyed by feature ID.
//	Canonical: a gonum-backed Decomposer implementing sparse PLS in
//	           canonical mode (alternating soft-thresholded power steps with
//	           symmetric deflation).
//
// Any other numerical library can be plugged in through the Decomposer
// interface; tests use hand-written stubs.
//
// Retention:
//
//	keep = max(round(total * (1 - sparsity)), 1)
//
// so sparsity 1.0 keeps a single feature and 0.0 keeps all of them. The same
// keep count applies to every component.
//
// Errors are reported as *FittingError, unwrapping to one of ErrInvalidSparsity,
// ErrDimensionMismatch, ErrNotConverged or ErrDegenerate. Nothing is retried.
package spls

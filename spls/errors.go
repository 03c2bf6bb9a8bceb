// SPDX-License-Identifier: MIT
// Package: spls
//
// errors.go: sentinel and typed errors for decomposition.

package spls

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSparsity indicates a sparsity fraction outside [0,1] (or NaN).
	ErrInvalidSparsity = errors.New("spls: sparsity must be in [0,1]")

	// ErrDimensionMismatch covers inconsistent shapes: fewer samples than
	// components, empty feature sets, row-count mismatch, or a collaborator
	// returning arrays of the wrong size.
	ErrDimensionMismatch = errors.New("spls: dimension mismatch")

	// ErrNotConverged indicates the alternating iterations hit the cap.
	ErrNotConverged = errors.New("spls: decomposition did not converge")

	// ErrDegenerate indicates a zero loading or zero score vector, e.g. a
	// block whose residual variance has been exhausted.
	ErrDegenerate = errors.New("spls: degenerate component")

	// ErrComponentOutOfRange indicates a 1-based component index outside the result.
	ErrComponentOutOfRange = errors.New("spls: component index out of range")

	// ErrNilPair indicates a nil aligned pair.
	ErrNilPair = errors.New("spls: nil aligned pair")
)

// FittingError reports a failed decomposition. Op names the stage
// ("Fit", "Decompose", ...), Err is one of the sentinels above, possibly
// wrapped with more context.
type FittingError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *FittingError) Error() string {
	return fmt.Sprintf("spls: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is.
func (e *FittingError) Unwrap() error { return e.Err }

// fitErrorf builds a *FittingError with a formatted, %w-wrapped cause.
func fitErrorf(op, format string, args ...interface{}) error {
	return &FittingError{Op: op, Err: fmt.Errorf(format, args...)}
}

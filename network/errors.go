// SPDX-License-Identifier: MIT
// Package: network
//
// errors.go: sentinel and typed errors for edge construction.
//
// EmptySelectionError is an expected outcome of aggressive sparsity, not a
// bug; callers typically relax sparsity and rerun.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection indicates one side has no nonzero loading for the component.
	ErrEmptySelection = errors.New("network: no features selected")

	// ErrInvalidThreshold indicates a negative or NaN magnitude threshold.
	ErrInvalidThreshold = errors.New("network: threshold must be >= 0")

	// ErrNilResult indicates a nil decomposition result.
	ErrNilResult = errors.New("network: nil result")
)

// Dataset labels used in EmptySelectionError.
const (
	DatasetA = "A"
	DatasetB = "B"
)

// EmptySelectionError reports that every loading of one dataset is zero
// for the requested component.
type EmptySelectionError struct {
	Component int    // 1-based, 0 when built from bare loading vectors
	Dataset   string // DatasetA or DatasetB
}

// Error implements error.
func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("%s: dataset %s, component %d", ErrEmptySelection, e.Dataset, e.Component)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EmptySelectionError) Unwrap() error { return ErrEmptySelection }

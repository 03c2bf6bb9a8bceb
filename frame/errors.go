// SPDX-License-Identifier: MIT
// Package: frame
//
// errors.go: sentinel errors for the frame package.
//
// Callers branch with errors.Is; implementations attach context with
// fmt.Errorf("<Op>: ...: %w", ErrX).

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when rows/cols are non-positive or the data
	// length does not equal rows*cols.
	ErrBadShape = errors.New("frame: invalid shape")

	// ErrEmptyID signals an empty sample or feature identifier.
	ErrEmptyID = errors.New("frame: empty identifier")

	// ErrDuplicateID signals a repeated sample ID or feature ID within one matrix.
	ErrDuplicateID = errors.New("frame: duplicate identifier")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion.
	ErrNaNInf = errors.New("frame: NaN or Inf encountered")

	// ErrUnknownSample indicates a referenced sample ID is absent.
	ErrUnknownSample = errors.New("frame: unknown sample id")

	// ErrUnknownFeature indicates a referenced feature ID is absent.
	ErrUnknownFeature = errors.New("frame: unknown feature id")

	// ErrTooFewSamples is returned by statistics that need at least two rows.
	ErrTooFewSamples = errors.New("frame: at least two samples required")

	// ErrSampleMismatch indicates two matrices do not share the same ordered samples.
	ErrSampleMismatch = errors.New("frame: sample sequences differ")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("frame: nil matrix")
)

// frameErrorf attaches an operation tag to err, preserving it for errors.Is.
func frameErrorf(op string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{op}, args...)...)
}

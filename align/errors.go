// SPDX-License-Identifier: MIT
// Package: align
//
// errors.go: sentinel and typed errors for sample alignment.
//
// Error policy:
//   • ErrNoCommonSamples is the sentinel for an empty intersection.
//   • *AlignmentError carries the sample counts of both inputs and unwraps to
//     ErrNoCommonSamples, so callers may use errors.Is or errors.As.

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCommonSamples indicates the two matrices share no sample identifier.
	ErrNoCommonSamples = errors.New("align: no common samples")

	// ErrNilMatrix indicates a nil matrix was passed to Align.
	ErrNilMatrix = errors.New("align: nil matrix")
)

// AlignmentError reports an empty sample intersection. No partial alignment
// is ever produced alongside it.
type AlignmentError struct {
	SamplesA int // rows in the first matrix
	SamplesB int // rows in the second matrix
}

// Error implements error.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s (%d vs %d samples)", ErrNoCommonSamples, e.SamplesA, e.SamplesB)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *AlignmentError) Unwrap() error { return ErrNoCommonSamples }

// SPDX-License-Identifier: MIT
// Package: synth
//
// errors.go: sentinel errors for the synthetic data generator.

package synth

import "errors"

// ErrBadSize indicates an invalid sample, feature or linked-feature count:
// nSamples < 2, nFeaturesA/B < 1, nLinked < 0 or nLinked > min(nFeaturesA, nFeaturesB).
var ErrBadSize = errors.New("synth: invalid size")

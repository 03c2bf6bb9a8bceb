// SPDX-License-Identifier: MIT

package spls

import "math"

// minRetained is the floor on retained features per block and component.
const minRetained = 1

// RetentionCount converts a sparsity fraction into the number of features
// to keep: max(round(total*(1-sparsity)), 1). Rounding is half away from
// zero. The result is non-increasing in sparsity for a fixed total.
// sparsity is assumed to be validated by the caller (see ValidSparsity).
func RetentionCount(total int, sparsity float64) int {
	keep := int(math.Round(float64(total) * (1 - sparsity)))
	if keep < minRetained {
		return minRetained
	}
	return keep
}

// ValidSparsity reports whether s lies in the closed interval [0,1].
func ValidSparsity(s float64) bool {
	return s >= 0 && s <= 1 // false for NaN
}

// SPDX-License-Identifier: MIT
// Package: frame
//
// Purpose:
//   - Column standardization (zero mean, unit sample std) for fixtures and collaborators.
//   - Pearson cross-correlation between features of two aligned matrices (heatmap input).
//
// Determinism:
//   - Fixed column-then-row traversal; no map iteration on the hot path.

package frame

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	opStandardize      = "Standardize"
	opCrossCorrelation = "CrossCorrelation"
)

// Standardize returns a copy of m where every feature has zero mean and
// unit sample standard deviation (n-1 denominator).
//
// Behavior highlights:
//   - Zero-variance features are centered and left unscaled (all zeros).
//   - m itself is never modified.
//
// Errors: ErrTooFewSamples when m has fewer than two rows.
//
// Complexity: O(r*c) time, O(r*c) memory.
func (m *Matrix) Standardize() (*Matrix, error) {
	r, c := m.Rows(), m.Cols()
	if r < 2 {
		return nil, frameErrorf(opStandardize, "%d rows: %w", r, ErrTooFewSamples)
	}

	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m.data)
		mean, std := stat.MeanStdDev(col, nil)
		for i := 0; i < r; i++ {
			v := col[i] - mean
			if std > 0 {
				v /= std
			}
			out.Set(i, j, v)
		}
	}

	return fromDense(m, m.samples, m.sampleIdx, out), nil
}

// CrossCorrelation computes Pearson correlations between the named features
// of a (rows) and b (columns). Both matrices must carry the same ordered
// samples, as produced by the aligner.
//
// Degenerate (constant) features yield NaN entries, matching stat.Correlation.
//
// Errors: ErrNilMatrix, ErrSampleMismatch, ErrTooFewSamples, ErrUnknownFeature.
//
// Complexity: O(|fa|*|fb|*r).
func CrossCorrelation(a, b *Matrix, featuresA, featuresB []string) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, frameErrorf(opCrossCorrelation, "%w", ErrNilMatrix)
	}
	if !SameSamples(a, b) {
		return nil, frameErrorf(opCrossCorrelation, "%w", ErrSampleMismatch)
	}
	if a.Rows() < 2 {
		return nil, frameErrorf(opCrossCorrelation, "%d rows: %w", a.Rows(), ErrTooFewSamples)
	}
	if len(featuresA) == 0 || len(featuresB) == 0 {
		return nil, frameErrorf(opCrossCorrelation, "%d×%d features: %w", len(featuresA), len(featuresB), ErrBadShape)
	}

	colsB := make([][]float64, len(featuresB))
	for j, f := range featuresB {
		col, err := b.Column(f)
		if err != nil {
			return nil, frameErrorf(opCrossCorrelation, "%w", err)
		}
		colsB[j] = col
	}

	out := mat.NewDense(len(featuresA), len(featuresB), nil)
	for i, f := range featuresA {
		colA, err := a.Column(f)
		if err != nil {
			return nil, frameErrorf(opCrossCorrelation, "%w", err)
		}
		for j := range colsB {
			out.Set(i, j, stat.Correlation(colA, colsB[j], nil))
		}
	}

	return out, nil
}

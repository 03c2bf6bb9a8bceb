// SPDX-License-Identifier: MIT

// Package frame - labelled, immutable feature matrix.
//
// Purpose:
//   - Keep sample and feature identifiers glued to a row-major value buffer.
//   - Guarantee safety at the public surface: accessors return errors or copies, never panic.
//   - Keep deterministic iteration: rows and columns are always visited in stored order.
//
// Complexity quicksheet:
//   - New: O(r*c); At: O(1); SelectSamples: O(r'*c); Dense/Column: O(r*c)/O(r).

package frame

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Operation tags used in error wrapping.
const (
	opNew           = "New"
	opAt            = "At"
	opSelectSamples = "SelectSamples"
	opColumn        = "Column"
)

// Matrix is a sample×feature table of float64 values.
//   - samples / features hold identifiers in row / column order.
//   - sampleIdx / featureIdx map identifiers back to positions.
//   - data is never exposed directly; see Dense.
type Matrix struct {
	samples    []string
	features   []string
	sampleIdx  map[string]int
	featureIdx map[string]int
	data       *mat.Dense
}

// New builds a Matrix from identifiers and row-major values.
//
// Implementation:
//   - Stage 1: validate shape (len(samples)>0, len(features)>0, len(data)==r*c).
//   - Stage 2: index identifiers, rejecting empty or duplicate IDs.
//   - Stage 3: reject NaN/Inf, copy values into a fresh *mat.Dense.
//
// Errors: ErrBadShape, ErrEmptyID, ErrDuplicateID, ErrNaNInf (wrapped with context).
//
// Complexity: O(r*c) time and memory. The caller's slices are copied.
func New(samples, features []string, data []float64) (*Matrix, error) {
	r, c := len(samples), len(features)
	if r == 0 || c == 0 || len(data) != r*c {
		return nil, frameErrorf(opNew, "%d×%d with %d values: %w", r, c, len(data), ErrBadShape)
	}

	sampleIdx, err := indexIDs(samples, "sample")
	if err != nil {
		return nil, frameErrorf(opNew, "%w", err)
	}
	featureIdx, err := indexIDs(features, "feature")
	if err != nil {
		return nil, frameErrorf(opNew, "%w", err)
	}

	buf := make([]float64, len(data))
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, frameErrorf(opNew, "row %d col %d: %w", k/c, k%c, ErrNaNInf)
		}
		buf[k] = v
	}

	return &Matrix{
		samples:    append([]string(nil), samples...),
		features:   append([]string(nil), features...),
		sampleIdx:  sampleIdx,
		featureIdx: featureIdx,
		data:       mat.NewDense(r, c, buf),
	}, nil
}

// fromDense wraps an already validated buffer; identifiers are shared, not copied.
// Internal use only: callers guarantee shape and ID uniqueness.
func fromDense(m *Matrix, samples []string, sampleIdx map[string]int, d *mat.Dense) *Matrix {
	return &Matrix{
		samples:    samples,
		features:   m.features,
		sampleIdx:  sampleIdx,
		featureIdx: m.featureIdx,
		data:       d,
	}
}

// indexIDs maps every identifier to its position.
func indexIDs(ids []string, kind string) (map[string]int, error) {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%s at position %d: %w", kind, i, ErrEmptyID)
		}
		if prev, dup := idx[id]; dup {
			return nil, fmt.Errorf("%s %q at positions %d and %d: %w", kind, id, prev, i, ErrDuplicateID)
		}
		idx[id] = i
	}

	return idx, nil
}

// Rows returns the number of samples.
func (m *Matrix) Rows() int { return len(m.samples) }

// Cols returns the number of features.
func (m *Matrix) Cols() int { return len(m.features) }

// Samples returns a copy of the sample identifiers in row order.
func (m *Matrix) Samples() []string { return append([]string(nil), m.samples...) }

// Features returns a copy of the feature identifiers in column order.
func (m *Matrix) Features() []string { return append([]string(nil), m.features...) }

// HasSample reports whether id is a row of m.
func (m *Matrix) HasSample(id string) bool {
	_, ok := m.sampleIdx[id]
	return ok
}

// SampleIndex returns the row position of id.
func (m *Matrix) SampleIndex(id string) (int, bool) {
	i, ok := m.sampleIdx[id]
	return i, ok
}

// FeatureIndex returns the column position of id.
func (m *Matrix) FeatureIndex(id string) (int, bool) {
	j, ok := m.featureIdx[id]
	return j, ok
}

// At returns the value at (row, col).
// Returns ErrBadShape (wrapped) when indices are out of range.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, frameErrorf(opAt, "(%d,%d): %w", row, col, ErrBadShape)
	}

	return m.data.At(row, col), nil
}

// Value returns the value for a (sample, feature) identifier pair.
func (m *Matrix) Value(sample, feature string) (float64, error) {
	i, ok := m.sampleIdx[sample]
	if !ok {
		return 0, frameErrorf(opAt, "%q: %w", sample, ErrUnknownSample)
	}
	j, ok := m.featureIdx[feature]
	if !ok {
		return 0, frameErrorf(opAt, "%q: %w", feature, ErrUnknownFeature)
	}

	return m.data.At(i, j), nil
}

// Column returns a copy of the values of one feature in row order.
func (m *Matrix) Column(feature string) ([]float64, error) {
	j, ok := m.featureIdx[feature]
	if !ok {
		return nil, frameErrorf(opColumn, "%q: %w", feature, ErrUnknownFeature)
	}

	return mat.Col(nil, j, m.data), nil
}

// Dense returns a deep copy of the values for numerical collaborators.
// Mutating the copy never affects m.
// Complexity: O(r*c).
func (m *Matrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(m.data)
}

// SelectSamples returns a new Matrix holding exactly the rows named by ids,
// in the order of ids.
//
// Errors: ErrBadShape for an empty ids slice, ErrDuplicateID, ErrUnknownSample.
//
// Complexity: O(len(ids)*c).
func (m *Matrix) SelectSamples(ids []string) (*Matrix, error) {
	if len(ids) == 0 {
		return nil, frameErrorf(opSelectSamples, "no samples requested: %w", ErrBadShape)
	}
	idx, err := indexIDs(ids, "sample")
	if err != nil {
		return nil, frameErrorf(opSelectSamples, "%w", err)
	}

	c := m.Cols()
	out := mat.NewDense(len(ids), c, nil)
	for i, id := range ids {
		src, ok := m.sampleIdx[id]
		if !ok {
			return nil, frameErrorf(opSelectSamples, "%q: %w", id, ErrUnknownSample)
		}
		out.SetRow(i, m.data.RawRowView(src))
	}

	return fromDense(m, append([]string(nil), ids...), idx, out), nil
}

// SameSamples reports whether a and b hold identical sample sequences.
func SameSamples(a, b *Matrix) bool {
	if a == nil || b == nil || a.Rows() != b.Rows() {
		return false
	}
	for i := range a.samples {
		if a.samples[i] != b.samples[i] {
			return false
		}
	}

	return true
}

// String renders a compact header-plus-rows view for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("sample")
	for _, f := range m.features {
		sb.WriteString("\t")
		sb.WriteString(f)
	}
	sb.WriteString("\n")
	for i, s := range m.samples {
		sb.WriteString(s)
		for _, v := range m.data.RawRowView(i) {
			fmt.Fprintf(&sb, "\t%g", v)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

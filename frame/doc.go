// SPDX-License-Identifier: MIT

// Package frame provides the labelled feature matrix shared by every stage
// of the omicsnet pipeline.
//
// A Matrix is indexed by (sample ID, feature ID). Rows are samples, columns
// are features, and both ID sets are unique within one matrix. Values live in
// a row-major gonum *mat.Dense that never escapes: every accessor returns a
// copy, and every transform (SelectSamples, Standardize) returns a new Matrix.
// That makes a Matrix safe for concurrent read-only use without locks.
//
// Numeric policy: NaN and ±Inf are rejected at construction (ErrNaNInf).
//
// Helpers:
//
//	ReadCSV         : ingest a sample×feature table (first column = sample ID)
//	CrossCorrelation: Pearson correlation between features of two aligned matrices
package frame

// SPDX-License-Identifier: MIT

// Package omicsnet integrates two omics measurement blocks taken on the same
// samples (say transcriptomics and metabolomics) and turns their shared
// variation into a signed, weighted feature network.
//
// The flow is a single pass:
//
//	frame.Matrix A ─┐
//	                ├─ align.Align ──▶ align.Pair ──▶ spls.Adapter.Fit ──▶ spls.Result
//	frame.Matrix B ─┘                                                          │
//	                                                network.BuildEdges ◀───────┘
//
// Subpackages:
//
//	frame/   : labelled sample×feature matrices over gonum mat.Dense, CSV ingestion, standardization
//	align/   : intersect and reorder two matrices onto one lexicographic sample sequence
//	spls/    : sparsity → retention counts, the Decomposer seam, a gonum canonical sPLS
//	network/ : cross products of loadings into a bipartite edge list, gonum graph export
//	synth/   : seeded paired matrices with a planted shared signal
//	pipeline/: align → fit → build in one call
//
// The command in cmd/omicsnet runs the pipeline on two CSV files or on a
// generated pair and prints the edge list as TSV.
package omicsnet

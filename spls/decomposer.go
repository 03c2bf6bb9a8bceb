// SPDX-License-Identifier: MIT

package spls

import "gonum.org/v1/gonum/mat"

// Decomposer is the external numerical collaborator: a sparse multi-block
// decomposition in canonical mode with per-block cardinality constraints.
//
// Given n×p X and n×q Y, it extracts nComponents components, keeping exactly
// keepX (resp. keepY) nonzero loadings per component where the data allows.
// Implementations must not retain or mutate x and y.
type Decomposer interface {
	Decompose(x, y mat.Matrix, nComponents, keepX, keepY int) (*Raw, error)
}

// Raw is a Decomposer's output before normalization.
//
// Shapes: LoadingsX p×k, LoadingsY q×k, ScoresX n×k, ScoresY n×k, where
// column h holds component h+1. Iterations is optional (len k when set).
type Raw struct {
	LoadingsX *mat.Dense
	LoadingsY *mat.Dense
	ScoresX   *mat.Dense
	ScoresY   *mat.Dense

	Iterations []int
}

// DecomposerFunc adapts a plain function to Decomposer.
type DecomposerFunc func(x, y mat.Matrix, nComponents, keepX, keepY int) (*Raw, error)

// Decompose calls f.
func (f DecomposerFunc) Decompose(x, y mat.Matrix, nComponents, keepX, keepY int) (*Raw, error) {
	return f(x, y, nComponents, keepX, keepY)
}

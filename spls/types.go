// SPDX-License-Identifier: MIT
// Package: spls
//
// types.go: loading vectors, components and the decomposition result.
// All types are immutable after construction; accessors return copies.

package spls

import (
	"fmt"
	"math"
	"sort"
)

// LoadingVector holds one weight per feature for one dataset and one
// component, in the dataset's column order. A weight of exactly zero means
// the feature was not selected.
type LoadingVector struct {
	features []string
	weights  []float64
	index    map[string]int
}

// FeatureWeight is a single (feature, weight) entry.
type FeatureWeight struct {
	Feature string
	Weight  float64
}

// NewLoadingVector pairs features with weights. Lengths must match and
// feature IDs must be unique.
func NewLoadingVector(features []string, weights []float64) (LoadingVector, error) {
	if len(features) != len(weights) {
		return LoadingVector{}, fmt.Errorf("NewLoadingVector: %d features, %d weights: %w",
			len(features), len(weights), ErrDimensionMismatch)
	}
	index := make(map[string]int, len(features))
	for i, f := range features {
		if _, dup := index[f]; dup {
			return LoadingVector{}, fmt.Errorf("NewLoadingVector: duplicate feature %q: %w", f, ErrDimensionMismatch)
		}
		index[f] = i
	}

	return LoadingVector{
		features: append([]string(nil), features...),
		weights:  append([]float64(nil), weights...),
		index:    index,
	}, nil
}

// Len returns the number of features, selected or not.
func (v LoadingVector) Len() int { return len(v.features) }

// Features returns the feature IDs in column order.
func (v LoadingVector) Features() []string { return append([]string(nil), v.features...) }

// Weights returns the weights in column order.
func (v LoadingVector) Weights() []float64 { return append([]float64(nil), v.weights...) }

// Weight returns the weight of feature id.
func (v LoadingVector) Weight(id string) (float64, bool) {
	i, ok := v.index[id]
	if !ok {
		return 0, false
	}
	return v.weights[i], true
}

// Entries returns all (feature, weight) pairs in column order.
func (v LoadingVector) Entries() []FeatureWeight {
	out := make([]FeatureWeight, len(v.features))
	for i, f := range v.features {
		out[i] = FeatureWeight{Feature: f, Weight: v.weights[i]}
	}
	return out
}

// Selected returns the nonzero entries in column order.
func (v LoadingVector) Selected() []FeatureWeight {
	out := make([]FeatureWeight, 0, len(v.features))
	for i, f := range v.features {
		if v.weights[i] != 0 {
			out = append(out, FeatureWeight{Feature: f, Weight: v.weights[i]})
		}
	}
	return out
}

// NumSelected counts nonzero weights.
func (v LoadingVector) NumSelected() int {
	n := 0
	for _, w := range v.weights {
		if w != 0 {
			n++
		}
	}
	return n
}

// Top returns up to k selected entries ordered by |weight| descending,
// ties broken by column order. k <= 0 returns every selected entry.
func (v LoadingVector) Top(k int) []FeatureWeight {
	sel := v.Selected()
	sort.SliceStable(sel, func(i, j int) bool {
		return math.Abs(sel[i].Weight) > math.Abs(sel[j].Weight)
	})
	if k > 0 && k < len(sel) {
		sel = sel[:k]
	}
	return sel
}

// Component is one extracted latent axis.
type Component struct {
	// Index is 1-based, in extraction order.
	Index int

	LoadingsA LoadingVector
	LoadingsB LoadingVector

	// ScoresA / ScoresB are the latent sample scores, aligned sample order.
	ScoresA []float64
	ScoresB []float64

	// Correlation is the Pearson correlation between ScoresA and ScoresB.
	Correlation float64
	// SharedVariance is Correlation², the shared-variance diagnostic.
	SharedVariance float64

	// ExplainedVarianceA/B: fraction of each block's total variance captured.
	ExplainedVarianceA float64
	ExplainedVarianceB float64
}

// Result is the normalized decomposition output.
type Result struct {
	samples    []string
	components []Component
	keepA      int // retained A features per component
	keepB      int // retained B features per component
}

// KeepA returns the per-component retention count used for dataset A.
func (r *Result) KeepA() int { return r.keepA }

// KeepB returns the per-component retention count used for dataset B.
func (r *Result) KeepB() int { return r.keepB }

// Samples returns the aligned sample sequence the scores refer to.
func (r *Result) Samples() []string { return append([]string(nil), r.samples...) }

// NumComponents returns the number of extracted components.
func (r *Result) NumComponents() int { return len(r.components) }

// Components returns all components in extraction order.
func (r *Result) Components() []Component {
	out := make([]Component, len(r.components))
	for i := range r.components {
		out[i] = r.components[i].clone()
	}
	return out
}

// Component returns component k (1-based).
func (r *Result) Component(k int) (Component, error) {
	if k < 1 || k > len(r.components) {
		return Component{}, fmt.Errorf("Component(%d) of %d: %w", k, len(r.components), ErrComponentOutOfRange)
	}
	return r.components[k-1].clone(), nil
}

// clone copies the score slices; loading vectors are already immutable.
func (c Component) clone() Component {
	c.ScoresA = append([]float64(nil), c.ScoresA...)
	c.ScoresB = append([]float64(nil), c.ScoresB...)
	return c
}

// NewResult assembles a Result from already normalized components. Component
// indices are renumbered 1..k in slice order. Intended for collaborators that
// produce loadings outside Adapter (fixtures, imported models).
func NewResult(samples []string, components []Component, keepA, keepB int) *Result {
	cs := make([]Component, len(components))
	for i := range components {
		cs[i] = components[i].clone()
		cs[i].Index = i + 1
	}
	return &Result{
		samples:    append([]string(nil), samples...),
		components: cs,
		keepA:      keepA,
		keepB:      keepB,
	}
}

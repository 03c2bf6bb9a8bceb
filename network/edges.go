// SPDX-License-Identifier: MIT

// Package network turns per-component loading vectors into a signed,
// weighted bipartite edge list.
//
// Contract (BuildEdges / CrossEdges):
//   • Features with a loading of exactly zero are dropped on both sides.
//   • An empty side fails with *EmptySelectionError.
//   • Every surviving A feature is paired with every surviving B feature;
//     weight = loadingA × loadingB, sign = Positive iff weight > 0.
//   • Pairs with |weight| < threshold are discarded; threshold 0 keeps all.
//   • An empty result is a valid, non-error outcome.
//
// Determinism:
//   • Emission order is A features in column order, B features inner, in
//     column order. Identical inputs give identical lists.
//
// Complexity:
//   • Time O(pA + pB + |selA|·|selB|), Space O(|edges|).
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/omicsnet/spls"
)

const (
	opBuildEdges = "BuildEdges"
	opCrossEdges = "CrossEdges"
	opFilter     = "Filter"
)

// Sign is the interaction sign of an edge.
type Sign string

// Interaction signs.
const (
	Positive Sign = "Positive"
	Negative Sign = "Negative"
)

// Edge connects a dataset-A feature to a dataset-B feature. The network is
// undirected; the (A, B) field order is fixed for determinism.
type Edge struct {
	FeatureA string
	FeatureB string
	Weight   float64 // loadingA × loadingB
	Sign     Sign
}

// EdgeList is an immutable set of edges, at most one per (FeatureA, FeatureB).
type EdgeList struct {
	component int
	threshold float64
	edges     []Edge
}

// BuildEdges builds the edge list for a 1-based component of res.
//
// Errors:
//   - ErrNilResult, spls.ErrComponentOutOfRange, ErrInvalidThreshold (wrapped).
//   - *EmptySelectionError when a side has no selected feature.
func BuildEdges(res *spls.Result, component int, threshold float64) (*EdgeList, error) {
	if res == nil {
		return nil, fmt.Errorf("%s: %w", opBuildEdges, ErrNilResult)
	}
	comp, err := res.Component(component)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildEdges, err)
	}

	list, err := CrossEdges(comp.LoadingsA, comp.LoadingsB, threshold)
	if err != nil {
		var es *EmptySelectionError
		if errors.As(err, &es) {
			es.Component = component
			return nil, es
		}
		return nil, fmt.Errorf("%s: %w", opBuildEdges, err)
	}
	list.component = component

	return list, nil
}

// CrossEdges builds the edge list directly from two loading vectors.
// The returned list reports Component() == 0.
func CrossEdges(a, b spls.LoadingVector, threshold float64) (*EdgeList, error) {
	// Stage 1 (Validate).
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("%s: %v: %w", opCrossEdges, threshold, ErrInvalidThreshold)
	}

	// Stage 2 (Select): discard unselected features.
	selA := a.Selected()
	if len(selA) == 0 {
		return nil, &EmptySelectionError{Dataset: DatasetA}
	}
	selB := b.Selected()
	if len(selB) == 0 {
		return nil, &EmptySelectionError{Dataset: DatasetB}
	}

	// Stage 3 (Pair): full cross product, filtered by magnitude.
	edges := make([]Edge, 0, len(selA)*len(selB))
	for _, fa := range selA {
		for _, fb := range selB {
			w := fa.Weight * fb.Weight
			if math.Abs(w) < threshold {
				continue
			}
			edges = append(edges, Edge{
				FeatureA: fa.Feature,
				FeatureB: fb.Feature,
				Weight:   w,
				Sign:     signOf(w),
			})
		}
	}

	return &EdgeList{threshold: threshold, edges: edges}, nil
}

// signOf returns Positive iff w > 0.
func signOf(w float64) Sign {
	if w > 0 {
		return Positive
	}
	return Negative
}

func validThreshold(t float64) bool { return t >= 0 } // false for NaN

// Len returns the number of edges.
func (l *EdgeList) Len() int { return len(l.edges) }

// Component returns the 1-based component the list was built from (0 if unknown).
func (l *EdgeList) Component() int { return l.component }

// Threshold returns the magnitude threshold every edge satisfies.
func (l *EdgeList) Threshold() float64 { return l.threshold }

// Edges returns a copy of the edges in emission order.
func (l *EdgeList) Edges() []Edge { return append([]Edge(nil), l.edges...) }

// Filter returns a new list holding the edges with |weight| >= threshold.
// The receiver is unchanged. A threshold below the current one keeps every edge.
func (l *EdgeList) Filter(threshold float64) (*EdgeList, error) {
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("%s: %v: %w", opFilter, threshold, ErrInvalidThreshold)
	}

	out := &EdgeList{component: l.component, threshold: math.Max(l.threshold, threshold)}
	for _, e := range l.edges {
		if math.Abs(e.Weight) >= threshold {
			out.edges = append(out.edges, e)
		}
	}
	return out, nil
}

// Nodes returns the distinct A-side and B-side features that appear in at
// least one edge, in first-appearance order.
func (l *EdgeList) Nodes() (a, b []string) {
	seenA := make(map[string]struct{})
	seenB := make(map[string]struct{})
	for _, e := range l.edges {
		if _, ok := seenA[e.FeatureA]; !ok {
			seenA[e.FeatureA] = struct{}{}
			a = append(a, e.FeatureA)
		}
		if _, ok := seenB[e.FeatureB]; !ok {
			seenB[e.FeatureB] = struct{}{}
			b = append(b, e.FeatureB)
		}
	}
	return a, b
}

// Node identifies a network vertex. Dataset disambiguates features whose
// IDs happen to coincide across the two datasets.
type Node struct {
	Dataset string // DatasetA or DatasetB
	Feature string
}

// Degrees returns the number of incident edges per node.
func (l *EdgeList) Degrees() map[Node]int {
	deg := make(map[Node]int)
	for _, e := range l.edges {
		deg[Node{Dataset: DatasetA, Feature: e.FeatureA}]++
		deg[Node{Dataset: DatasetB, Feature: e.FeatureB}]++
	}
	return deg
}

// SignCounts returns the number of positive and negative edges.
func (l *EdgeList) SignCounts() (pos, neg int) {
	for _, e := range l.edges {
		if e.Sign == Positive {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}

// SPDX-License-Identifier: MIT
// Package: network
//
// graph.go: export to gonum's graph model for layout, centrality or
// community analysis by downstream collaborators.

package network

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Graph materializes the list as a gonum weighted undirected graph.
//
// Node IDs are assigned deterministically: A-side nodes first, then B-side
// nodes, each in first-appearance order (see Nodes). The returned map
// resolves a gonum node ID back to its Node. Edge weights are the signed
// products; absent edges report weight 0 and self weight 0.
//
// Complexity: O(V + E).
func (l *EdgeList) Graph() (*simple.WeightedUndirectedGraph, map[int64]Node) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	labels := make(map[int64]Node)
	ids := make(map[Node]int64)

	add := func(n Node) int64 {
		if id, ok := ids[n]; ok {
			return id
		}
		id := int64(len(ids))
		ids[n] = id
		labels[id] = n
		g.AddNode(simple.Node(id))
		return id
	}

	a, b := l.Nodes()
	for _, f := range a {
		add(Node{Dataset: DatasetA, Feature: f})
	}
	for _, f := range b {
		add(Node{Dataset: DatasetB, Feature: f})
	}

	for _, e := range l.edges {
		u := ids[Node{Dataset: DatasetA, Feature: e.FeatureA}]
		v := ids[Node{Dataset: DatasetB, Feature: e.FeatureB}]
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: e.Weight})
	}

	return g, labels
}

// SPDX-License-Identifier: MIT

// Package pipeline runs the single-shot integration:
//
//	raw A, B ──Align──▶ Pair ──Fit──▶ Result ──BuildEdges──▶ EdgeList
//
// Every stage is a pure function of its inputs; a Pipeline only carries the
// decomposer and the logger, so one value may serve concurrent callers as
// long as its Decomposer does. Errors from each stage are returned wrapped
// with the stage name and keep their typed form (errors.As still finds
// *align.AlignmentError, *spls.FittingError and *network.EmptySelectionError).
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/omicsnet/align"
	"github.com/katalvlaran/omicsnet/frame"
	"github.com/katalvlaran/omicsnet/network"
	"github.com/katalvlaran/omicsnet/spls"
)

// Params controls one run.
type Params struct {
	Components int     // number of latent components to extract (>=1)
	SparsityA  float64 // in [0,1]; 1 keeps the fewest A features
	SparsityB  float64 // in [0,1]; 1 keeps the fewest B features
	Component  int     // 1-based component used for the network
	Threshold  float64 // minimum |loadingA × loadingB| kept (>=0)
}

// DefaultParams: two components, sparsity 0.7 on both sides, network on
// component 1 with threshold 0.01.
func DefaultParams() Params {
	return Params{
		Components: 2,
		SparsityA:  0.7,
		SparsityB:  0.7,
		Component:  1,
		Threshold:  0.01,
	}
}

// Output bundles the artifacts of each stage.
type Output struct {
	Pair   *align.Pair
	Result *spls.Result
	Edges  *network.EdgeList
}

// Pipeline composes the three stages.
type Pipeline struct {
	adapter *spls.Adapter
	logger  *zap.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger shared by all stages. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.logger = l }
}

// New builds a Pipeline around d. Panics on nil d.
func New(d spls.Decomposer, opts ...Option) *Pipeline {
	if d == nil {
		panic("pipeline: New(nil decomposer)")
	}
	p := &Pipeline{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.adapter = spls.NewAdapter(d, spls.WithLogger(p.logger.Named("spls")))
	return p
}

// Run executes align → fit → build for one pair of matrices.
func (p *Pipeline) Run(a, b *frame.Matrix, params Params) (*Output, error) {
	pair, err := align.Align(a, b, align.WithLogger(p.logger.Named("align")))
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}

	res, err := p.adapter.Fit(pair, params.Components, params.SparsityA, params.SparsityB)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	edges, err := network.BuildEdges(res, params.Component, params.Threshold)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	// Candidates are all selected A×B pairs before the threshold applies.
	comp, err := res.Component(params.Component)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	candidates := comp.LoadingsA.NumSelected() * comp.LoadingsB.NumSelected()

	pos, neg := edges.SignCounts()
	p.logger.Info("network built",
		zap.Int("component", params.Component),
		zap.Float64("threshold", params.Threshold),
		zap.Int("candidates", candidates),
		zap.Int("edges", edges.Len()),
		zap.Int("positive", pos),
		zap.Int("negative", neg),
	)

	return &Output{Pair: pair, Result: res, Edges: edges}, nil
}

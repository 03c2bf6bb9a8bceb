// SPDX-License-Identifier: MIT
// Package: spls
//
// adapter.go: parameter translation and output normalization around a Decomposer.

package spls

import (
	"errors"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/omicsnet/align"
	"github.com/katalvlaran/omicsnet/frame"
)

const opFit = "Fit"

// Adapter turns sparsity fractions into retention counts, invokes a
// Decomposer and normalizes its output into a Result.
// An Adapter holds no per-call state and may be shared.
type Adapter struct {
	dec    Decomposer
	logger *zap.Logger
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithLogger routes fitting diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("spls: WithLogger(nil)")
	}
	return func(a *Adapter) { a.logger = l }
}

// NewAdapter wraps d. Panics on nil d.
func NewAdapter(d Decomposer, opts ...Option) *Adapter {
	if d == nil {
		panic("spls: NewAdapter(nil)")
	}
	a := &Adapter{dec: d, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Fit decomposes an aligned pair into nComponents components.
//
// Implementation:
//   - Stage 1: validate pair, sparsity fractions and dimensions.
//   - Stage 2: keepA/keepB = RetentionCount(features, sparsity), same for every component.
//   - Stage 3: call the Decomposer on private copies of the values.
//   - Stage 4: check output shapes, key loadings by feature ID, compute diagnostics.
//
// Errors: always *FittingError, unwrapping to ErrNilPair, ErrInvalidSparsity,
// ErrDimensionMismatch, or whatever the Decomposer reported.
//
// The pair is never modified.
func (a *Adapter) Fit(pair *align.Pair, nComponents int, sparsityA, sparsityB float64) (*Result, error) {
	// Stage 1 (Validate).
	if pair == nil || pair.A == nil || pair.B == nil {
		return nil, fitErrorf(opFit, "%w", ErrNilPair)
	}
	if !frame.SameSamples(pair.A, pair.B) {
		return nil, fitErrorf(opFit, "pair is not sample-aligned: %w", ErrDimensionMismatch)
	}
	if !ValidSparsity(sparsityA) || !ValidSparsity(sparsityB) {
		return nil, fitErrorf(opFit, "sparsity %v/%v: %w", sparsityA, sparsityB, ErrInvalidSparsity)
	}
	n, p, q := pair.Len(), pair.A.Cols(), pair.B.Cols()
	if nComponents < 1 || n < nComponents {
		return nil, fitErrorf(opFit, "%d components for %d samples: %w", nComponents, n, ErrDimensionMismatch)
	}
	if p < 1 || q < 1 {
		return nil, fitErrorf(opFit, "%d×%d features: %w", p, q, ErrDimensionMismatch)
	}

	// Stage 2 (Prepare).
	keepA := RetentionCount(p, sparsityA)
	keepB := RetentionCount(q, sparsityB)
	a.logger.Debug("retention counts",
		zap.Int("features_a", p), zap.Int("keep_a", keepA),
		zap.Int("features_b", q), zap.Int("keep_b", keepB),
		zap.Int("components", nComponents),
	)

	// Stage 3 (Execute).
	X, Y := pair.A.Dense(), pair.B.Dense()
	raw, err := a.dec.Decompose(X, Y, nComponents, keepA, keepB)
	if err != nil {
		var fe *FittingError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, &FittingError{Op: opDecompose, Err: err}
	}

	// Stage 4 (Normalize).
	if err := checkRaw(raw, n, p, q, nComponents); err != nil {
		return nil, err
	}

	featuresA, featuresB := pair.A.Features(), pair.B.Features()
	components := make([]Component, nComponents)
	for h := 0; h < nComponents; h++ {
		la, err := NewLoadingVector(featuresA, mat.Col(nil, h, raw.LoadingsX))
		if err != nil {
			return nil, fitErrorf(opFit, "%w", err)
		}
		lb, err := NewLoadingVector(featuresB, mat.Col(nil, h, raw.LoadingsY))
		if err != nil {
			return nil, fitErrorf(opFit, "%w", err)
		}
		t := mat.Col(nil, h, raw.ScoresX)
		s := mat.Col(nil, h, raw.ScoresY)
		corr := stat.Correlation(t, s, nil)

		components[h] = Component{
			Index:              h + 1,
			LoadingsA:          la,
			LoadingsB:          lb,
			ScoresA:            t,
			ScoresB:            s,
			Correlation:        corr,
			SharedVariance:     corr * corr,
			ExplainedVarianceA: explainedVariance(X, t),
			ExplainedVarianceB: explainedVariance(Y, s),
		}

		fields := []zap.Field{
			zap.Int("component", h+1),
			zap.Int("selected_a", la.NumSelected()),
			zap.Int("selected_b", lb.NumSelected()),
			zap.Float64("correlation", corr),
		}
		if h < len(raw.Iterations) {
			fields = append(fields, zap.Int("iterations", raw.Iterations[h]))
		}
		a.logger.Info("component extracted", fields...)
	}

	return NewResult(pair.Samples(), components, keepA, keepB), nil
}

// checkRaw verifies the collaborator honoured the documented shapes.
func checkRaw(raw *Raw, n, p, q, k int) error {
	if raw == nil || raw.LoadingsX == nil || raw.LoadingsY == nil || raw.ScoresX == nil || raw.ScoresY == nil {
		return fitErrorf(opFit, "decomposer returned incomplete output: %w", ErrDimensionMismatch)
	}
	want := []struct {
		name string
		m    *mat.Dense
		r, c int
	}{
		{"loadings X", raw.LoadingsX, p, k},
		{"loadings Y", raw.LoadingsY, q, k},
		{"scores X", raw.ScoresX, n, k},
		{"scores Y", raw.ScoresY, n, k},
	}
	for _, w := range want {
		if r, c := w.m.Dims(); r != w.r || c != w.c {
			return fitErrorf(opFit, "%s is %d×%d, want %d×%d: %w", w.name, r, c, w.r, w.c, ErrDimensionMismatch)
		}
	}
	return nil
}

// explainedVariance is the mean squared correlation between each feature of
// B and the score vector t. Constant features contribute zero.
func explainedVariance(B *mat.Dense, t []float64) float64 {
	_, c := B.Dims()
	col := make([]float64, len(t))
	sum := 0.0
	for j := 0; j < c; j++ {
		mat.Col(col, j, B)
		r := stat.Correlation(col, t, nil)
		if !math.IsNaN(r) {
			sum += r * r
		}
	}
	return sum / float64(c)
}

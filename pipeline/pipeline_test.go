package pipeline_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/omicsnet/align"
	"github.com/katalvlaran/omicsnet/frame"
	"github.com/katalvlaran/omicsnet/network"
	"github.com/katalvlaran/omicsnet/pipeline"
	"github.com/katalvlaran/omicsnet/spls"
	"github.com/katalvlaran/omicsnet/synth"
)

const (
	e2eSamples   = 60
	e2eFeaturesA = 800
	e2eFeaturesB = 150
	e2eLinked    = 20
)

// TestRun_SyntheticRecoverability plants a shared signal in the first 20
// columns of each block. Every edge must touch a planted feature, every
// planted×planted pair must be present, and those pairs must outweigh any
// edge that pairs a planted feature with an unplanted one.
func TestRun_SyntheticRecoverability(t *testing.T) {
	ds, err := synth.Generate(e2eSamples, e2eFeaturesA, e2eFeaturesB, e2eLinked, synth.WithSeed(42))
	require.NoError(t, err)

	p := pipeline.New(spls.NewCanonical(), pipeline.WithLogger(zaptest.NewLogger(t)))
	out, err := p.Run(ds.A, ds.B, pipeline.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, e2eSamples, out.Pair.Len())
	assert.Equal(t, 240, out.Result.KeepA())
	assert.Equal(t, 45, out.Result.KeepB())
	require.Equal(t, 2, out.Result.NumComponents())

	comp, err := out.Result.Component(1)
	require.NoError(t, err)
	assert.LessOrEqual(t, comp.LoadingsA.NumSelected(), 240)
	assert.LessOrEqual(t, comp.LoadingsB.NumSelected(), 45)
	assert.Greater(t, comp.Correlation, 0.5)

	edges := out.Edges.Edges()
	require.NotEmpty(t, edges)

	linkedA := toSet(synth.LinkedFeatures(ds.A, e2eLinked))
	linkedB := toSet(synth.LinkedFeatures(ds.B, e2eLinked))
	both := 0
	minBoth, maxMixed := math.Inf(1), 0.0
	for _, e := range edges {
		w := math.Abs(e.Weight)
		assert.GreaterOrEqual(t, w, 0.01)
		inA, inB := linkedA[e.FeatureA], linkedB[e.FeatureB]
		require.True(t, inA || inB, "edge %s-%s touches no planted feature", e.FeatureA, e.FeatureB)
		if inA && inB {
			both++
			minBoth = math.Min(minBoth, w)
		} else {
			maxMixed = math.Max(maxMixed, w)
		}
	}
	assert.Equal(t, e2eLinked*e2eLinked, both, "planted pairs missing")
	assert.Greater(t, minBoth, maxMixed, "a mixed edge outweighs a planted pair")

	// The strongest loadings are the planted features.
	for _, fw := range comp.LoadingsA.Top(10) {
		assert.True(t, linkedA[fw.Feature], "top A loading %s not planted", fw.Feature)
	}
	for _, fw := range comp.LoadingsB.Top(10) {
		assert.True(t, linkedB[fw.Feature], "top B loading %s not planted", fw.Feature)
	}
}

func TestRun_Deterministic(t *testing.T) {
	ds, err := synth.Generate(30, 60, 25, 6, synth.WithSeed(7))
	require.NoError(t, err)
	params := pipeline.DefaultParams()

	first, err := pipeline.New(spls.NewCanonical()).Run(ds.A, ds.B, params)
	require.NoError(t, err)
	second, err := pipeline.New(spls.NewCanonical()).Run(ds.A, ds.B, params)
	require.NoError(t, err)

	assert.Equal(t, first.Edges.Edges(), second.Edges.Edges())
	assert.Equal(t, first.Pair.Samples(), second.Pair.Samples())
}

// TestRun_ReorderedInputs shuffles B's rows and drops a sample; alignment
// must restore a consistent pairing before the decomposition sees the data.
func TestRun_ReorderedInputs(t *testing.T) {
	ds, err := synth.Generate(30, 40, 20, 5, synth.WithSeed(3))
	require.NoError(t, err)

	ids := ds.B.Samples()
	reversed := make([]string, 0, len(ids)-1)
	for i := len(ids) - 1; i >= 1; i-- {
		reversed = append(reversed, ids[i])
	}
	shuffledB, err := ds.B.SelectSamples(reversed)
	require.NoError(t, err)

	params := pipeline.DefaultParams()
	params.Components = 1

	p := pipeline.New(spls.NewCanonical())
	out, err := p.Run(ds.A, shuffledB, params)
	require.NoError(t, err)
	assert.Equal(t, 29, out.Pair.Len())
	assert.Equal(t, ids[1:], out.Pair.Samples())

	baseline, err := p.Run(ds.A, ds.B, params)
	require.NoError(t, err)
	assert.Equal(t, 30, baseline.Pair.Len())
}

func TestRun_ErrorsKeepTheirType(t *testing.T) {
	a, err := frame.New([]string{"s1", "s2", "s3"}, []string{"g1", "g2"}, []float64{1, 2, 3, 4, 5, 7})
	require.NoError(t, err)
	b, err := frame.New([]string{"s1", "s2", "s3"}, []string{"m1"}, []float64{1, 0, 2})
	require.NoError(t, err)
	disjoint, err := frame.New([]string{"x1", "x2"}, []string{"m1"}, []float64{1, 2})
	require.NoError(t, err)

	p := pipeline.New(spls.NewCanonical())

	_, err = p.Run(a, disjoint, pipeline.DefaultParams())
	var ae *align.AlignmentError
	require.True(t, errors.As(err, &ae))

	bad := pipeline.DefaultParams()
	bad.SparsityA = 2
	_, err = p.Run(a, b, bad)
	var fe *spls.FittingError
	require.True(t, errors.As(err, &fe))
	require.ErrorIs(t, err, spls.ErrInvalidSparsity)

	// A stub that selects nothing on the A side.
	zeroA := spls.DecomposerFunc(func(x, y mat.Matrix, k, _, _ int) (*spls.Raw, error) {
		n, pa := x.Dims()
		_, pb := y.Dims()
		raw := &spls.Raw{
			LoadingsX: mat.NewDense(pa, k, nil),
			LoadingsY: mat.NewDense(pb, k, nil),
			ScoresX:   mat.NewDense(n, k, nil),
			ScoresY:   mat.NewDense(n, k, nil),
		}
		raw.LoadingsY.Set(0, 0, 1)
		return raw, nil
	})
	_, err = pipeline.New(zeroA).Run(a, b, pipeline.DefaultParams())
	var es *network.EmptySelectionError
	require.True(t, errors.As(err, &es))
	assert.Equal(t, network.DatasetA, es.Dataset)
	assert.Equal(t, 1, es.Component)
}

func TestRun_LogsEdgeCountsAroundThreshold(t *testing.T) {
	a, err := frame.New([]string{"s1", "s2", "s3"}, []string{"g1", "g2"}, []float64{1, 2, 3, 4, 5, 7})
	require.NoError(t, err)
	b, err := frame.New([]string{"s1", "s2", "s3"}, []string{"m1", "m2"}, []float64{1, 0, 0, 1, 2, 5})
	require.NoError(t, err)

	// Fixed loadings: g1=0.5, g2=0.1 against m1=0.4, m2=0.3.
	fixed := spls.DecomposerFunc(func(x, y mat.Matrix, k, _, _ int) (*spls.Raw, error) {
		n, pa := x.Dims()
		_, pb := y.Dims()
		raw := &spls.Raw{
			LoadingsX: mat.NewDense(pa, k, []float64{0.5, 0.1}),
			LoadingsY: mat.NewDense(pb, k, []float64{0.4, 0.3}),
			ScoresX:   mat.NewDense(n, k, []float64{1, 2, 3}),
			ScoresY:   mat.NewDense(n, k, []float64{1, 3, 2}),
		}
		return raw, nil
	})

	core, logs := observer.New(zap.InfoLevel)
	params := pipeline.DefaultParams()
	params.Components = 1
	params.Threshold = 0.1
	out, err := pipeline.New(fixed, pipeline.WithLogger(zap.New(core))).Run(a, b, params)
	require.NoError(t, err)
	require.Equal(t, 2, out.Edges.Len()) // 0.20 and 0.15 survive, 0.04 and 0.03 do not

	entries := logs.FilterMessage("network built").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 4, fields["candidates"])
	assert.EqualValues(t, 2, fields["edges"])
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { pipeline.New(nil) })
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
	assert.NotPanics(t, func() { pipeline.New(spls.NewCanonical(), pipeline.WithLogger(zap.NewNop())) })
}

func toSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}


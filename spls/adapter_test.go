package spls_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/omicsnet/align"
	"github.com/katalvlaran/omicsnet/frame"
	"github.com/katalvlaran/omicsnet/spls"
)

// AdapterSuite drives Adapter with a stub Decomposer so that only the
// translation and normalization logic is under test.
type AdapterSuite struct {
	suite.Suite
	pair *align.Pair

	// recorded by the stub
	gotKeepX, gotKeepY, gotComps int
}

func (s *AdapterSuite) SetupTest() {
	samples := []string{"s1", "s2", "s3", "s4"}
	a, err := frame.New(samples, []string{"g1", "g2", "g3", "g4", "g5"}, []float64{
		1, 2, 3, 4, 5,
		2, 1, 0, 3, 1,
		0, 4, 1, 2, 2,
		5, 3, 2, 1, 0,
	})
	s.Require().NoError(err)
	b, err := frame.New(samples, []string{"m1", "m2"}, []float64{
		1, 0,
		2, 1,
		3, 5,
		4, 2,
	})
	s.Require().NoError(err)
	s.pair, err = align.Align(a, b)
	s.Require().NoError(err)
}

// stub returns fixed loadings: component h has weight h+1 on the first
// keepX A features and keepY B features, zeros elsewhere.
func (s *AdapterSuite) stub() spls.Decomposer {
	return spls.DecomposerFunc(func(x, y mat.Matrix, k, keepX, keepY int) (*spls.Raw, error) {
		s.gotKeepX, s.gotKeepY, s.gotComps = keepX, keepY, k
		n, p := x.Dims()
		_, q := y.Dims()
		raw := &spls.Raw{
			LoadingsX: mat.NewDense(p, k, nil),
			LoadingsY: mat.NewDense(q, k, nil),
			ScoresX:   mat.NewDense(n, k, nil),
			ScoresY:   mat.NewDense(n, k, nil),
		}
		for h := 0; h < k; h++ {
			for i := 0; i < keepX; i++ {
				raw.LoadingsX.Set(i, h, float64(h+1))
			}
			for j := 0; j < keepY; j++ {
				raw.LoadingsY.Set(j, h, -float64(h+1))
			}
			for r := 0; r < n; r++ {
				raw.ScoresX.Set(r, h, float64(r))
				raw.ScoresY.Set(r, h, float64(2*r+1))
			}
		}
		return raw, nil
	})
}

func (s *AdapterSuite) TestFit_NormalizesStubOutput() {
	res, err := spls.NewAdapter(s.stub()).Fit(s.pair, 2, 0.6, 0.5)
	s.Require().NoError(err)

	// 5*(0.4)=2, 2*(0.5)=1
	s.Equal(2, s.gotKeepX)
	s.Equal(1, s.gotKeepY)
	s.Equal(2, s.gotComps)
	s.Equal(2, res.KeepA())
	s.Equal(1, res.KeepB())
	s.Equal(2, res.NumComponents())
	s.Equal([]string{"s1", "s2", "s3", "s4"}, res.Samples())

	c2, err := res.Component(2)
	s.Require().NoError(err)
	s.Equal(2, c2.Index)
	w, ok := c2.LoadingsA.Weight("g2")
	s.True(ok)
	s.Equal(2.0, w)
	w, ok = c2.LoadingsA.Weight("g5")
	s.True(ok)
	s.Equal(0.0, w)
	w, ok = c2.LoadingsB.Weight("m1")
	s.True(ok)
	s.Equal(-2.0, w)
	s.Equal(2, c2.LoadingsA.NumSelected())
	s.Equal([]float64{0, 1, 2, 3}, c2.ScoresA)
	s.InDelta(1.0, c2.Correlation, 1e-12)
	s.InDelta(1.0, c2.SharedVariance, 1e-12)
	s.Greater(c2.ExplainedVarianceA, 0.0)
	s.LessOrEqual(c2.ExplainedVarianceA, 1.0)

	_, err = res.Component(0)
	s.ErrorIs(err, spls.ErrComponentOutOfRange)
	_, err = res.Component(3)
	s.ErrorIs(err, spls.ErrComponentOutOfRange)
}

func (s *AdapterSuite) TestFit_FullSparsityKeepsOne() {
	res, err := spls.NewAdapter(s.stub()).Fit(s.pair, 1, 1.0, 1.0)
	s.Require().NoError(err)
	s.Equal(1, res.KeepA())
	s.Equal(1, res.KeepB())
}

func (s *AdapterSuite) TestFit_ValidationErrors() {
	ad := spls.NewAdapter(s.stub())

	tests := []struct {
		name string
		pair *align.Pair
		k    int
		sa   float64
		sb   float64
		want error
	}{
		{"nil pair", nil, 1, 0.5, 0.5, spls.ErrNilPair},
		{"negative sparsity", s.pair, 1, -0.1, 0.5, spls.ErrInvalidSparsity},
		{"sparsity above one", s.pair, 1, 0.5, 1.5, spls.ErrInvalidSparsity},
		{"zero components", s.pair, 0, 0.5, 0.5, spls.ErrDimensionMismatch},
		{"more components than samples", s.pair, 5, 0.5, 0.5, spls.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := ad.Fit(tc.pair, tc.k, tc.sa, tc.sb)
			s.Require().ErrorIs(err, tc.want)
			var fe *spls.FittingError
			s.Require().True(errors.As(err, &fe))
		})
	}
}

func (s *AdapterSuite) TestFit_WrapsCollaboratorErrors() {
	boom := fmt.Errorf("lapack: %w", spls.ErrNotConverged)
	failing := spls.DecomposerFunc(func(mat.Matrix, mat.Matrix, int, int, int) (*spls.Raw, error) {
		return nil, boom
	})

	_, err := spls.NewAdapter(failing).Fit(s.pair, 1, 0.5, 0.5)
	s.Require().ErrorIs(err, spls.ErrNotConverged)
	var fe *spls.FittingError
	s.Require().True(errors.As(err, &fe))
	s.Equal("Decompose", fe.Op)
}

func (s *AdapterSuite) TestFit_RejectsMisshapenOutput() {
	bad := spls.DecomposerFunc(func(x, y mat.Matrix, k, _, _ int) (*spls.Raw, error) {
		n, p := x.Dims()
		_, q := y.Dims()
		return &spls.Raw{
			LoadingsX: mat.NewDense(p+1, k, nil),
			LoadingsY: mat.NewDense(q, k, nil),
			ScoresX:   mat.NewDense(n, k, nil),
			ScoresY:   mat.NewDense(n, k, nil),
		}, nil
	})
	_, err := spls.NewAdapter(bad).Fit(s.pair, 1, 0.5, 0.5)
	s.Require().ErrorIs(err, spls.ErrDimensionMismatch)

	empty := spls.DecomposerFunc(func(mat.Matrix, mat.Matrix, int, int, int) (*spls.Raw, error) {
		return &spls.Raw{}, nil
	})
	_, err = spls.NewAdapter(empty).Fit(s.pair, 1, 0.5, 0.5)
	s.Require().ErrorIs(err, spls.ErrDimensionMismatch)
}

func (s *AdapterSuite) TestFit_DoesNotMutatePair() {
	vandal := spls.DecomposerFunc(func(x, y mat.Matrix, k, kx, ky int) (*spls.Raw, error) {
		x.(*mat.Dense).Set(0, 0, 1e9)
		return s.stub().Decompose(x, y, k, kx, ky)
	})
	_, err := spls.NewAdapter(vandal).Fit(s.pair, 1, 0.5, 0.5)
	s.Require().NoError(err)

	v, err := s.pair.A.At(0, 0)
	s.Require().NoError(err)
	s.Equal(1.0, v)
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func TestNewAdapter_NilPanics(t *testing.T) {
	assert.Panics(t, func() { spls.NewAdapter(nil) })
}

func TestLoadingVector(t *testing.T) {
	_, err := spls.NewLoadingVector([]string{"a"}, []float64{1, 2})
	require.ErrorIs(t, err, spls.ErrDimensionMismatch)
	_, err = spls.NewLoadingVector([]string{"a", "a"}, []float64{1, 2})
	require.ErrorIs(t, err, spls.ErrDimensionMismatch)

	v, err := spls.NewLoadingVector([]string{"a", "b", "c", "d"}, []float64{0.1, 0, -0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 3, v.NumSelected())
	assert.Equal(t, []spls.FeatureWeight{
		{Feature: "a", Weight: 0.1},
		{Feature: "c", Weight: -0.5},
		{Feature: "d", Weight: 0.5},
	}, v.Selected())
	assert.Equal(t, []spls.FeatureWeight{
		{Feature: "c", Weight: -0.5},
		{Feature: "d", Weight: 0.5},
	}, v.Top(2))
	assert.Len(t, v.Top(0), 3)
	_, ok := v.Weight("zzz")
	assert.False(t, ok)
}

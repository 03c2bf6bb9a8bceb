// SPDX-License-Identifier: MIT
// Package: spls
//
// canonical.go: gonum-backed sparse PLS, canonical mode.
//
// Contract:
//   • Both blocks are centered (and scaled unless WithoutScaling) on private copies.
//   • Per component h:
//       M = XᵀY
//       (u, v) ← leading singular pair of M, sign fixed so max|u| > 0
//       repeat: u ← soft(M v, keepX)/‖·‖,  v ← soft(Mᵀ u, keepY)/‖·‖
//       until max(|Δu|,|Δv|) < tol, else ErrNotConverged after maxIter.
//       t = X u, s = Y v
//       X ← X − t (Xᵀt / tᵀt)ᵀ,  Y ← Y − s (Yᵀs / sᵀs)ᵀ   (canonical deflation)
//   • soft(z, keep) zeroes the len(z)-keep smallest |z_i| and shrinks the rest
//     by the largest zeroed magnitude; keep ≥ len(z) leaves z untouched.
//
// Determinism:
//   • No randomness; the SVD start and the sign convention make repeated calls
//     on identical input bit-for-bit reproducible.
//
// Complexity (per component):
//   • O(n·p·q) for M, O(p·q·min(p,q)) for the SVD start, O(iter·p·q) for the loop.

package spls

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	opDecompose = "Decompose"

	defaultTolerance = 1e-6
	defaultMaxIter   = 500
)

// Canonical implements Decomposer with gonum.
type Canonical struct {
	tol     float64
	maxIter int
	scale   bool
}

// Compile-time check.
var _ Decomposer = (*Canonical)(nil)

// CanonicalOption customizes Canonical.
type CanonicalOption func(*Canonical)

// WithTolerance sets the convergence tolerance on loading updates. Panics if tol <= 0.
func WithTolerance(tol float64) CanonicalOption {
	if !(tol > 0) {
		panic("spls: WithTolerance(tol<=0)")
	}
	return func(c *Canonical) { c.tol = tol }
}

// WithMaxIter caps alternating iterations per component. Panics if n < 1.
func WithMaxIter(n int) CanonicalOption {
	if n < 1 {
		panic("spls: WithMaxIter(n<1)")
	}
	return func(c *Canonical) { c.maxIter = n }
}

// WithoutScaling keeps centering but skips unit-variance scaling of the blocks.
func WithoutScaling() CanonicalOption {
	return func(c *Canonical) { c.scale = false }
}

// NewCanonical returns a Canonical decomposer with defaults
// tol=1e-6, maxIter=500, scaling on.
func NewCanonical(opts ...CanonicalOption) *Canonical {
	c := &Canonical{tol: defaultTolerance, maxIter: defaultMaxIter, scale: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decompose implements Decomposer.
func (c *Canonical) Decompose(x, y mat.Matrix, nComponents, keepX, keepY int) (*Raw, error) {
	// Stage 1 (Validate): shapes and keep counts.
	n, p := x.Dims()
	ny, q := y.Dims()
	switch {
	case n != ny:
		return nil, fitErrorf(opDecompose, "%d vs %d rows: %w", n, ny, ErrDimensionMismatch)
	case n < 2:
		return nil, fitErrorf(opDecompose, "%d samples: %w", n, ErrDimensionMismatch)
	case p < 1 || q < 1:
		return nil, fitErrorf(opDecompose, "%d×%d features: %w", p, q, ErrDimensionMismatch)
	case nComponents < 1 || nComponents > n:
		return nil, fitErrorf(opDecompose, "%d components for %d samples: %w", nComponents, n, ErrDimensionMismatch)
	case keepX < 1 || keepY < 1:
		return nil, fitErrorf(opDecompose, "keep %d/%d: %w", keepX, keepY, ErrDimensionMismatch)
	}

	// Stage 2 (Prepare): private centered/scaled copies.
	X := mat.DenseCopyOf(x)
	Y := mat.DenseCopyOf(y)
	preprocess(X, c.scale)
	preprocess(Y, c.scale)

	raw := &Raw{
		LoadingsX:  mat.NewDense(p, nComponents, nil),
		LoadingsY:  mat.NewDense(q, nComponents, nil),
		ScoresX:    mat.NewDense(n, nComponents, nil),
		ScoresY:    mat.NewDense(n, nComponents, nil),
		Iterations: make([]int, nComponents),
	}

	// Stage 3 (Execute): extract components one by one.
	for h := 0; h < nComponents; h++ {
		u, v, iter, err := c.component(X, Y, keepX, keepY)
		if err != nil {
			return nil, fitErrorf(opDecompose, "component %d: %w", h+1, err)
		}

		t := mat.NewVecDense(n, nil)
		t.MulVec(X, mat.NewVecDense(p, u))
		s := mat.NewVecDense(n, nil)
		s.MulVec(Y, mat.NewVecDense(q, v))

		if err := deflate(X, t); err != nil {
			return nil, fitErrorf(opDecompose, "component %d, block X: %w", h+1, err)
		}
		if err := deflate(Y, s); err != nil {
			return nil, fitErrorf(opDecompose, "component %d, block Y: %w", h+1, err)
		}

		raw.LoadingsX.SetCol(h, u)
		raw.LoadingsY.SetCol(h, v)
		raw.ScoresX.SetCol(h, t.RawVector().Data)
		raw.ScoresY.SetCol(h, s.RawVector().Data)
		raw.Iterations[h] = iter
	}

	return raw, nil
}

// component runs the alternating sparse power iterations on the current residuals.
func (c *Canonical) component(X, Y *mat.Dense, keepX, keepY int) (u, v []float64, iter int, err error) {
	_, p := X.Dims()
	_, q := Y.Dims()

	var M mat.Dense
	M.Mul(X.T(), Y)

	u, v, err = leadingPair(&M)
	if err != nil {
		return nil, nil, 0, err
	}

	mv := mat.NewVecDense(p, nil)
	mu := mat.NewVecDense(q, nil)
	for iter = 1; iter <= c.maxIter; iter++ {
		mv.MulVec(&M, mat.NewVecDense(q, v))
		uNew, err := normalized(softThreshold(mv.RawVector().Data, keepX))
		if err != nil {
			return nil, nil, iter, err
		}
		mu.MulVec(M.T(), mat.NewVecDense(p, uNew))
		vNew, err := normalized(softThreshold(mu.RawVector().Data, keepY))
		if err != nil {
			return nil, nil, iter, err
		}

		delta := math.Max(maxAbsDiff(uNew, u), maxAbsDiff(vNew, v))
		u, v = uNew, vNew
		if delta < c.tol {
			return u, v, iter, nil
		}
	}

	return nil, nil, c.maxIter, fmt.Errorf("%d iterations: %w", c.maxIter, ErrNotConverged)
}

// leadingPair returns the first left/right singular vectors of M with the
// largest-magnitude entry of u made positive.
func leadingPair(M *mat.Dense) ([]float64, []float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(M, mat.SVDThin); !ok {
		return nil, nil, fmt.Errorf("svd start: %w", ErrNotConverged)
	}
	if vals := svd.Values(nil); len(vals) == 0 || vals[0] == 0 {
		return nil, nil, fmt.Errorf("zero cross-covariance: %w", ErrDegenerate)
	}

	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	u := mat.Col(nil, 0, &U)
	v := mat.Col(nil, 0, &V)

	if u[floats.MaxIdx(absAll(u))] < 0 {
		floats.Scale(-1, u)
		floats.Scale(-1, v)
	}

	return u, v, nil
}

// softThreshold keeps the keep largest |z_i|, shrunk by the largest dropped magnitude.
func softThreshold(z []float64, keep int) []float64 {
	out := make([]float64, len(z))
	if keep >= len(z) {
		copy(out, z)
		return out
	}

	abs := absAll(z)
	sorted := append([]float64(nil), abs...)
	sort.Float64s(sorted)
	lambda := sorted[len(z)-keep-1]

	for i, a := range abs {
		if a > lambda {
			out[i] = math.Copysign(a-lambda, z[i])
		}
	}

	return out
}

// normalized scales z to unit L2 norm in place; a zero vector is degenerate.
func normalized(z []float64) ([]float64, error) {
	norm := floats.Norm(z, 2)
	if norm == 0 {
		return nil, fmt.Errorf("all loadings thresholded to zero: %w", ErrDegenerate)
	}
	floats.Scale(1/norm, z)
	return z, nil
}

// deflate removes the rank-one projection of block B onto score t:
// B ← B − t (Bᵀt / tᵀt)ᵀ.
func deflate(B *mat.Dense, t *mat.VecDense) error {
	tt := mat.Dot(t, t)
	if tt == 0 {
		return fmt.Errorf("zero score vector: %w", ErrDegenerate)
	}
	_, cols := B.Dims()
	load := mat.NewVecDense(cols, nil)
	load.MulVec(B.T(), t)
	load.ScaleVec(1/tt, load)
	B.RankOne(B, -1, t, load)
	return nil
}

// preprocess centers each column of B and, if scale, divides by its sample std.
// Constant columns are centered only.
func preprocess(B *mat.Dense, scale bool) {
	r, c := B.Dims()
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, B)
		mean, std := stat.MeanStdDev(col, nil)
		for i := range col {
			col[i] -= mean
			if scale && std > 0 {
				col[i] /= std
			}
		}
		B.SetCol(j, col)
	}
}

func absAll(z []float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = math.Abs(v)
	}
	return out
}

func maxAbsDiff(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

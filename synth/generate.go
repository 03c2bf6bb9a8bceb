// SPDX-License-Identifier: MIT

// Package synth produces paired synthetic omics matrices with a planted,
// recoverable shared signal. It is a fixture source for tests and demos.
//
// Model (per sample i, feature j):
//
//	latent_i      ~ N(0,1)
//	A_ij, B_ij    ~ N(0,1)
//	A_ij += strength * signA(j) * latent_i + noise * N(0,1)   for j < nLinked
//	B_ij += strength * signB(j) * latent_i + noise * N(0,1)   for j < nLinked
//
// signA(j) = +1 for even j, −1 for odd j, and signB(j) = −signA(j). The
// opposite phase gives a mix of positive and negative couplings between the
// two blocks; it is a fixture convention with no biological meaning.
//
// Both matrices are standardized per feature and carry the same sample IDs
// in the same order, so the returned pair is aligned by construction.
//
// Draw order (fixed, so a seed pins the output): latent, A, B, A noise, B noise.
package synth

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/omicsnet/frame"
)

const opGenerate = "Generate"

// SampleInfo is the per-sample ground truth.
type SampleInfo struct {
	ID     string
	Group  string  // "High" if Latent > cut, else "Low"
	Latent float64 // raw latent value
}

// Dataset is the generator output.
type Dataset struct {
	A       *frame.Matrix
	B       *frame.Matrix
	Samples []SampleInfo
}

// LinkedFeatures returns the IDs of the first n columns of m, i.e. the
// planted features when n == nLinked.
func LinkedFeatures(m *frame.Matrix, n int) []string {
	f := m.Features()
	if n > len(f) {
		n = len(f)
	}
	if n < 0 {
		n = 0
	}
	return f[:n]
}

// Generate draws a linked pair of standardized matrices.
//
// Errors: ErrBadSize (wrapped) on invalid counts; frame errors are not
// expected for valid counts.
//
// Complexity: O(nSamples*(nFeaturesA+nFeaturesB)).
func Generate(nSamples, nFeaturesA, nFeaturesB, nLinked int, opts ...Option) (*Dataset, error) {
	// Stage 1 (Validate).
	if nSamples < 2 || nFeaturesA < 1 || nFeaturesB < 1 {
		return nil, fmt.Errorf("%s: n=%d pA=%d pB=%d: %w", opGenerate, nSamples, nFeaturesA, nFeaturesB, ErrBadSize)
	}
	if nLinked < 0 || nLinked > nFeaturesA || nLinked > nFeaturesB {
		return nil, fmt.Errorf("%s: nLinked=%d with pA=%d pB=%d: %w", opGenerate, nLinked, nFeaturesA, nFeaturesB, ErrBadSize)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng

	// Stage 2 (Draw): latent signal and base matrices.
	latent := make([]float64, nSamples)
	for i := range latent {
		latent[i] = rng.NormFloat64()
	}
	a := normalMatrix(nSamples, nFeaturesA, rng.NormFloat64)
	b := normalMatrix(nSamples, nFeaturesB, rng.NormFloat64)

	// Stage 3 (Plant): inject the signal into the first nLinked columns.
	inject(a, nFeaturesA, nLinked, latent, cfg, signA, rng.NormFloat64)
	inject(b, nFeaturesB, nLinked, latent, cfg, signB, rng.NormFloat64)

	// Stage 4 (Label).
	samples := make([]string, nSamples)
	info := make([]SampleInfo, nSamples)
	width := len(strconv.Itoa(nSamples))
	for i := range samples {
		samples[i] = fmt.Sprintf("%s%0*d", cfg.samplePrefix, width, i+1)
		group := groupLow
		if latent[i] > cfg.groupCut {
			group = groupHigh
		}
		info[i] = SampleInfo{ID: samples[i], Group: group, Latent: latent[i]}
	}

	// Stage 5 (Finalize): wrap and standardize.
	ma, err := standardized(samples, featureIDs(cfg.prefixA, nFeaturesA), a)
	if err != nil {
		return nil, fmt.Errorf("%s: dataset A: %w", opGenerate, err)
	}
	mb, err := standardized(samples, featureIDs(cfg.prefixB, nFeaturesB), b)
	if err != nil {
		return nil, fmt.Errorf("%s: dataset B: %w", opGenerate, err)
	}

	return &Dataset{A: ma, B: mb, Samples: info}, nil
}

func signA(j int) float64 {
	if j%2 == 0 {
		return 1
	}
	return -1
}

func signB(j int) float64 { return -signA(j) }

// normalMatrix draws an r×c row-major buffer of N(0,1) values.
func normalMatrix(r, c int, draw func() float64) []float64 {
	data := make([]float64, r*c)
	for k := range data {
		data[k] = draw()
	}
	return data
}

// inject adds strength*sign(j)*latent_i + noise*N(0,1) to columns j < nLinked.
func inject(data []float64, cols, nLinked int, latent []float64, cfg config, sign func(int) float64, draw func() float64) {
	for j := 0; j < nLinked; j++ {
		for i, l := range latent {
			data[i*cols+j] += cfg.strength*sign(j)*l + cfg.noise*draw()
		}
	}
}

// featureIDs renders zero-padded IDs so lexicographic order == column order.
func featureIDs(prefix string, n int) []string {
	width := len(strconv.Itoa(n - 1))
	if width < 3 {
		width = 3
	}
	ids := make([]string, n)
	for j := range ids {
		ids[j] = fmt.Sprintf("%s%0*d", prefix, width, j)
	}
	return ids
}

func standardized(samples, features []string, data []float64) (*frame.Matrix, error) {
	m, err := frame.New(samples, features, data)
	if err != nil {
		return nil, err
	}
	return m.Standardize()
}

// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Determinism is explicit: WithSeed or WithRand; the default seed is fixed.

package synth

import "math/rand"

// Deterministic defaults.
const (
	defaultSeed           = 42
	defaultSignalStrength = 1.5
	defaultNoise          = 0.5
	defaultGroupCut       = 0.0
	defaultPrefixA        = "gene_"
	defaultPrefixB        = "metab_"
	defaultSamplePrefix   = "S"
	groupHigh             = "High"
	groupLow              = "Low"
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	strength     float64 // multiplier of the latent signal in linked columns
	noise        float64 // sigma of the extra noise on linked columns
	groupCut     float64 // latent > groupCut ⇒ "High"
	prefixA      string
	prefixB      string
	samplePrefix string
}

func newConfig(opts ...Option) config {
	cfg := config{
		strength:     defaultSignalStrength,
		noise:        defaultNoise,
		groupCut:     defaultGroupCut,
		prefixA:      defaultPrefixA,
		prefixB:      defaultPrefixB,
		samplePrefix: defaultSamplePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed seeds a fresh RNG; identical seeds give identical datasets.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSignalStrength sets the latent-signal multiplier on linked columns. Panics if s <= 0.
func WithSignalStrength(s float64) Option {
	if !(s > 0) {
		panic("synth: WithSignalStrength(s<=0)")
	}
	return func(c *config) { c.strength = s }
}

// WithNoise sets the extra noise sigma on linked columns. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithGroupCut sets the latent threshold separating "High" from "Low" samples.
func WithGroupCut(cut float64) Option {
	return func(c *config) { c.groupCut = cut }
}

// WithPrefixes sets feature ID prefixes for dataset A and B. Empty values
// keep the defaults; equal values panic because feature namespaces must not overlap.
func WithPrefixes(a, b string) Option {
	if a != "" && a == b {
		panic("synth: WithPrefixes(a==b)")
	}
	return func(c *config) {
		if a != "" {
			c.prefixA = a
		}
		if b != "" {
			c.prefixB = b
		}
	}
}

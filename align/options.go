// SPDX-License-Identifier: MIT

package align

import "go.uber.org/zap"

// Option customizes Align.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes alignment diagnostics (matched sample count) to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("align: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

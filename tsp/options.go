// SPDX-License-Identifier: MIT
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)) and applied in order;
//     later options override earlier ones.
//   • Option constructors panic on meaningless inputs (nil RNG, negative caps);
//     Generate itself never panics on user input.
//   • Determinism is explicit: the default source is seeded with DefaultSeed,
//     never from the clock.

package tsp

import "math/rand"

// Option customizes Generate.
type Option func(*genConfig)

// genConfig aggregates the generator knobs. It never escapes Generate.
type genConfig struct {
	seed        int64      // resolved seed for the default source
	rng         *rand.Rand // caller-supplied source; overrides seed when non-nil
	maxAttempts int        // candidate draws allowed; 0 means unbounded
}

// newGenConfig resolves defaults and applies opts in order.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed seeds the sampling source. seed==0 selects DefaultSeed so the zero
// value stays reproducible. A later WithSeed discards an earlier WithRand.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand draws from r instead of an internally seeded source. Generate
// advances r's state. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tsp: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMaxAttempts caps the number of candidate points Generate may draw.
// n == 0 keeps the default unbounded loop. Panics on n < 0.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic("tsp: WithMaxAttempts(n<0)")
	}

	return func(c *genConfig) {
		c.maxAttempts = n
	}
}

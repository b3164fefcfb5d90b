// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/qanneal/internal/mcmc"
)

// Option configures a build. Options apply in order; later ones win.
type Option func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng        *rand.Rand
	couplingFn WeightFn
	fieldFn    WeightFn
	constant   float64
}

// newBuilderConfig resolves opts over the defaults: seed mcmc.DefaultSeed,
// couplings DefaultCoupling, zero fields and zero constant.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		couplingFn: ConstantFn(DefaultCoupling),
		fieldFn:    ConstantFn(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = mcmc.NewRand(mcmc.DefaultSeed)
	}

	return cfg
}

// WithSeed seeds the build RNG. Seed 0 selects the package default, as in the
// annealers.
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.rng = mcmc.NewRand(seed)
	}
}

// WithRand uses r as the build RNG. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithCouplingFn sets the distribution of every edge weight. Panics if fn is nil.
func WithCouplingFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithCouplingFn(nil)")
	}

	return func(c *builderConfig) {
		c.couplingFn = fn
	}
}

// WithFieldFn sets the distribution of the local fields h_i. Panics if fn is nil.
func WithFieldFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithFieldFn(nil)")
	}

	return func(c *builderConfig) {
		c.fieldFn = fn
	}
}

// WithConstant sets the energy offset of the built model.
func WithConstant(c float64) Option {
	return func(cfg *builderConfig) {
		cfg.constant = c
	}
}

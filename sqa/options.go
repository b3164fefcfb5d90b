// SPDX-License-Identifier: MIT

package sqa

import (
	"math/rand"

	"github.com/katalvlaran/qanneal/internal/mcmc"
)

// Option configures an Annealer at construction.
type Option func(*options)

type options struct {
	seed uint64
}

// WithSeed fixes the generator seed; 0 selects the default seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func gatherOptions(opts []Option) *rand.Rand {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return mcmc.NewRand(o.seed)
}

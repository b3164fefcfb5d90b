// SPDX-License-Identifier: MIT

package anneal

import (
	"math/rand"

	"github.com/katalvlaran/qanneal/internal/mcmc"
)

// Option configures an annealer at construction.
type Option func(*options)

// options is the resolved configuration; fields stay unexported so that
// public constructors are the only way in.
type options struct {
	seed uint64 // 0 ⇒ mcmc.DefaultSeed
}

// WithSeed fixes the initial generator seed (equivalent to calling SetSeed
// right after construction).
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions applies opts over the defaults and returns the seeded generator.
func gatherOptions(opts []Option) *rand.Rand {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return mcmc.NewRand(o.seed)
}

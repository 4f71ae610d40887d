// SPDX-License-Identifier: MIT
// Package: divconq/dataset
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic; runtime sizes surface as ErrBadSize.
//   • Determinism is explicit: WithSeed or WithRand; otherwise defaultSeed.

package dataset

import (
	"math"
	"math/rand"
)

// Option customizes a generator call by mutating a genConfig before use.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The generator advances it; do not share
// it across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithCoordRange sets the closed interval both coordinates are drawn from.
// Panics unless min < max and both are finite.
func WithCoordRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		panic("dataset: WithCoordRange(min>=max or non-finite)")
	}
	return func(c *genConfig) {
		c.minCoord, c.maxCoord = min, max
	}
}

// WithDigitRange sets the inclusive range of operand digit counts.
// Panics unless 1 <= min <= max.
func WithDigitRange(min, max int) Option {
	if min < 1 || min > max {
		panic("dataset: WithDigitRange(min<1 or min>max)")
	}
	return func(c *genConfig) {
		c.minDigits, c.maxDigits = min, max
	}
}

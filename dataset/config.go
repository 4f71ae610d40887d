// SPDX-License-Identifier: MIT
// Package: divconq/dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = rand.New(defaultSeed)
//   • coordinate = [-1000, 1000]
//   • digits     = [100, 100]

package dataset

import "math/rand"

const (
	defaultSeed      int64 = 1
	defaultMinCoord        = -1000.0
	defaultMaxCoord        = 1000.0
	defaultMinDigits       = 100
	defaultMaxDigits       = 100
)

// genConfig aggregates the knobs used by the generators.
type genConfig struct {
	rng *rand.Rand

	minCoord, maxCoord   float64
	minDigits, maxDigits int
}

// newGenConfig applies options in order (last wins) over the defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		minCoord:  defaultMinCoord,
		maxCoord:  defaultMaxCoord,
		minDigits: defaultMinDigits,
		maxDigits: defaultMaxDigits,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

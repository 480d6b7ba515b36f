// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn = DefaultIDFn ("0","1","2",...)
//   - rng  = nil (stochastic constructors refuse to run until seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value; constructors never mutate it.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

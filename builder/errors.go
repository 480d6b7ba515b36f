// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context as "<Method>: <detail>: %w".
//   - Validation order when several checks fail: size first, then
//     probability / edge budget, then RNG presence, then graph mode.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// the constructor accepts (n, k, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrTooManyEdges indicates an edge budget larger than the simple graph on
// n vertices can hold, or a negative budget.
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// graph's mode flags (for example a directed graph for a matching fixture).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a construction that could not be completed,
// such as a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)-i for i=1..n-1.
//   - Cycle: n ≥ 3; the path edges plus (n-1)-0.
//   - Vertices via cfg.idFn in ascending index order.
//
// Matching facts used by the tests: ν(P_n) = ⌊n/2⌋, ν(C_n) = ⌊n/2⌋, and an odd
// cycle is the smallest blossom.

package builder

import (
	"github.com/katalvlaran/blossom/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodPath, n, minPathNodes); err != nil {
			return err
		}

		return ring(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}

		return ring(g, cfg, methodCycle, n, true)
	}
}

// ring emits the path 0-1-…-(n-1) and, if closed, the edge back to 0.
func ring(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := addVertices(g, method, n, cfg.idFn); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, method, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}

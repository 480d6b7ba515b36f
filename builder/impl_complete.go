// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_complete.go - Complete(n) and Star(n).
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair {i,j}, i<j, emitted i asc then j asc.
//   - Star: n ≥ 2; fixed hub CenterVertexID plus leaves idFn(1..n-1).
//
// Determinism:
//   - Stable emission order for equal cfg.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteNodes = 1
	minStarNodes     = 2
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(g, methodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with n vertices: the hub and
// n-1 leaves. Any maximum matching of a star has exactly one edge.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

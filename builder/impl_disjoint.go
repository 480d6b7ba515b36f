// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_disjoint.go - DisjointEdges(k): k components, each a single edge.
//
// Contract:
//   - k ≥ 1; vertices idFn(0..2k-1); edges (2i)-(2i+1) for i asc.
//   - The unique maximum matching is the whole edge set.

package builder

import (
	"github.com/katalvlaran/blossom/core"
)

const (
	methodDisjointEdges = "DisjointEdges"
	minDisjointEdges    = 1
)

// DisjointEdges returns a Constructor that builds k vertex-disjoint edges.
// Complexity: O(k).
func DisjointEdges(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireMin(methodDisjointEdges, k, minDisjointEdges); err != nil {
			return err
		}
		if err := addVertices(g, methodDisjointEdges, 2*k, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := addEdge(g, methodDisjointEdges, cfg.idFn(2*i), cfg.idFn(2*i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

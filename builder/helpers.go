// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// helpers.go - shared vertex/edge emission used by the impl_*.go files.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

// addVertices inserts idFn(0..n-1) in ascending index order.
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects u and v. Directed graphs receive the mirror
// edge as well, so every fixture is symmetric.
func addEdge(g *core.Graph, method string, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}

// requireMin rejects n below min with ErrTooFewVertices.
func requireMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// requireUndirected rejects directed graphs for constructors whose sampling
// model is defined over unordered pairs.
func requireUndirected(g *core.Graph, method string) error {
	if g.Directed() {
		return fmt.Errorf("%s: directed graph: %w", method, ErrUnsupportedGraphMode)
	}

	return nil
}

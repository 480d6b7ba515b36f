// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_petersen.go - the Petersen graph, a fixed 3-regular graph on 10
// vertices with girth 5.
//
// Layout: outer 5-cycle 0..4, spokes i-(i+5), inner pentagram (i+5)-((i+2)%5+5).
// Every augmenting search on it meets 5-cycles, and it has a perfect matching
// (the spokes), which makes it a standard blossom fixture.

package builder

import (
	"github.com/katalvlaran/blossom/core"
)

const (
	methodPetersen   = "Petersen"
	petersenVertices = 10
)

// petersenEdges is the canonical edge list, outer cycle first, then spokes,
// then the pentagram.
var petersenEdges = [...][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	{5, 7}, {6, 8}, {7, 9}, {8, 5}, {9, 6},
}

// Petersen returns a Constructor that builds the Petersen graph.
// Complexity: O(1).
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addVertices(g, methodPetersen, petersenVertices, cfg.idFn); err != nil {
			return err
		}
		for _, e := range petersenEdges {
			if err := addEdge(g, methodPetersen, cfg.idFn(e[0]), cfg.idFn(e[1])); err != nil {
				return err
			}
		}

		return nil
	}
}

// File: index.go
// Role: Dense integer snapshot of a GraphView plus eager validation.
// Determinism:
//   - Vertex i is the i-th ID of Vertices(); adj[i] follows Neighbors() order.

package matching

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/blossom/core"
)

// pairKey identifies an unordered vertex pair, smaller index first.
type pairKey [2]int

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u, v}
}

// index is the engine's private view of the graph. It is built once per
// computation and never mutated afterwards, so searches may share it.
type index struct {
	ids   []string
	pos   map[string]int
	adj   [][]int
	edges map[pairKey]*core.Edge
}

// buildIndex snapshots g and rejects anything that is not an undirected
// simple graph. Every violation is reported, combined with multierr.
//
// Complexity: O(V + E) map operations plus the view's own cost.
func buildIndex(g GraphView) (*index, error) {
	ids := g.Vertices()
	ix := &index{
		ids:   ids,
		pos:   make(map[string]int, len(ids)),
		adj:   make([][]int, len(ids)),
		edges: make(map[pairKey]*core.Edge),
	}
	for i, id := range ids {
		ix.pos[id] = i
	}

	var errs error
	sides := make(map[pairKey]int) // number of endpoints that listed the pair
	for u, id := range ids {
		incident, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
		}
		seen := make(map[int]struct{}, len(incident))
		for _, e := range incident {
			if e.IsNil() {
				continue
			}
			if e.Directed {
				errs = multierr.Append(errs, &InvalidGraphError{VertexID: id, EdgeID: e.ID, Reason: ReasonDirectedEdge})
				continue
			}
			if e.From == e.To {
				errs = multierr.Append(errs, &InvalidGraphError{VertexID: id, EdgeID: e.ID, Reason: ReasonSelfLoop})
				continue
			}
			v, ok := ix.pos[e.Other(id)]
			if !ok {
				errs = multierr.Append(errs, &InvalidGraphError{VertexID: id, EdgeID: e.ID, Reason: ReasonUnknownEndpoint})
				continue
			}
			if _, dup := seen[v]; dup {
				// each parallel edge is seen from both endpoints; report once
				if u < v {
					errs = multierr.Append(errs, &InvalidGraphError{VertexID: id, EdgeID: e.ID, Reason: ReasonParallelEdge})
				}
				continue
			}
			seen[v] = struct{}{}
			ix.adj[u] = append(ix.adj[u], v)
			k := keyOf(u, v)
			sides[k]++
			if _, ok := ix.edges[k]; !ok {
				ix.edges[k] = e
			}
		}
	}
	for k, n := range sides {
		if n != 2 {
			e := ix.edges[k]
			errs = multierr.Append(errs, &InvalidGraphError{VertexID: ids[k[0]], EdgeID: e.ID, Reason: ReasonAsymmetric})
		}
	}
	if errs != nil {
		return nil, errs
	}

	return ix, nil
}

func (ix *index) n() int { return len(ix.ids) }

func (ix *index) hasEdge(u, v int) bool {
	_, ok := ix.edges[keyOf(u, v)]

	return ok
}

// names maps a vertex index path to IDs.
func (ix *index) names(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = ix.ids[v]
	}

	return out
}

// checkMate verifies the matching state: symmetric, loop-free, and every
// pair an edge of the graph. Any violation is an ErrPreconditionViolation.
//
// Complexity: O(V).
func (ix *index) checkMate(mate []int) error {
	if len(mate) != ix.n() {
		return fmt.Errorf("%w: mate has %d entries for %d vertices", ErrPreconditionViolation, len(mate), ix.n())
	}
	for u, v := range mate {
		if v == unMatched {
			continue
		}
		switch {
		case v < 0 || v >= len(mate):
			return fmt.Errorf("%w: %q matched to index %d", ErrPreconditionViolation, ix.ids[u], v)
		case v == u:
			return fmt.Errorf("%w: %q matched to itself", ErrPreconditionViolation, ix.ids[u])
		case mate[v] != u:
			return fmt.Errorf("%w: %q→%q is not symmetric", ErrPreconditionViolation, ix.ids[u], ix.ids[v])
		case !ix.hasEdge(u, v):
			return fmt.Errorf("%w: %q–%q is not an edge", ErrPreconditionViolation, ix.ids[u], ix.ids[v])
		}
	}

	return nil
}

func newMate(n int) []int {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = unMatched
	}

	return mate
}

// greedyInit matches every still-free vertex with its first free neighbor,
// in vertex order. The result is a maximal (not maximum) matching.
func greedyInit(ix *index, mate []int) int {
	added := 0
	for u, nbrs := range ix.adj {
		if mate[u] != unMatched {
			continue
		}
		for _, v := range nbrs {
			if mate[v] == unMatched {
				mate[u], mate[v] = v, u
				added++
				break
			}
		}
	}

	return added
}

// File: result.go
// Role: Immutable matching result and its query surface.
// Determinism:
//   - Edges() and Pairs() follow ascending edge ID order (core.EdgeIDLess).
//   - Free() follows the vertex order of the graph view.
// Concurrency:
//   - A *Matching is never mutated after construction; all methods are safe
//     for concurrent use.

package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/blossom/core"
)

// Stats counts the work done by one computation.
type Stats struct {
	Passes        int // driver passes over the free vertices
	Phases        int // forest searches started
	Augmentations int // successful augmentations
	Blossoms      int // blossom contractions across all phases
	Seeded        int // pairs contributed by the initializer
}

// Matching is a set of pairwise disjoint edges of one graph.
type Matching struct {
	algorithm string
	vertices  []string
	mate      map[string]string
	edges     []*core.Edge
	stats     Stats
}

// newMatching snapshots mate into a Matching. mate must already be valid.
func newMatching(ix *index, mate []int, stats Stats, algorithm string) *Matching {
	m := &Matching{
		algorithm: algorithm,
		vertices:  append([]string(nil), ix.ids...),
		mate:      make(map[string]string),
		stats:     stats,
	}
	for u, v := range mate {
		if v == unMatched {
			continue
		}
		m.mate[ix.ids[u]] = ix.ids[v]
		if u < v {
			m.edges = append(m.edges, ix.edges[keyOf(u, v)])
		}
	}
	sort.Slice(m.edges, func(i, j int) bool { return core.EdgeIDLess(m.edges[i].ID, m.edges[j].ID) })

	return m
}

// FromPairs builds a Matching from explicit vertex pairs, for example a
// matching read from a file that is to be checked with Verify.
// It returns ErrInvalidGraph when g is not a simple undirected graph and
// ErrNotAMatching when a pair is not an edge or two pairs share a vertex.
func FromPairs(g GraphView, pairs [][2]string) (*Matching, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	ix, err := buildIndex(g)
	if err != nil {
		return nil, err
	}
	mate, err := ix.mateOf(pairs)
	if err != nil {
		return nil, err
	}

	return newMatching(ix, mate, Stats{}, "pairs"), nil
}

// mateOf converts ID pairs into a mate array.
func (ix *index) mateOf(pairs [][2]string) ([]int, error) {
	mate := newMate(ix.n())
	for _, p := range pairs {
		u, ok := ix.pos[p[0]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown vertex %q", ErrNotAMatching, p[0])
		}
		v, ok := ix.pos[p[1]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown vertex %q", ErrNotAMatching, p[1])
		}
		if u == v || !ix.hasEdge(u, v) {
			return nil, fmt.Errorf("%w: %q–%q is not an edge", ErrNotAMatching, p[0], p[1])
		}
		if mate[u] != unMatched || mate[v] != unMatched {
			return nil, fmt.Errorf("%w: pair %q–%q reuses a matched vertex", ErrNotAMatching, p[0], p[1])
		}
		mate[u], mate[v] = v, u
	}

	return mate, nil
}

// Algorithm names the strategy that produced m.
func (m *Matching) Algorithm() string { return m.algorithm }

// Size returns the number of matched edges.
func (m *Matching) Size() int { return len(m.edges) }

// Partner returns the vertex matched to id, if any.
func (m *Matching) Partner(id string) (string, bool) {
	p, ok := m.mate[id]

	return p, ok
}

// IsMatched reports whether id is covered by the matching.
func (m *Matching) IsMatched(id string) bool {
	_, ok := m.mate[id]

	return ok
}

// Edges returns the matched edges as stored in the graph, by edge ID.
func (m *Matching) Edges() []*core.Edge {
	return append([]*core.Edge(nil), m.edges...)
}

// Pairs returns the matched vertex pairs, each oriented as its edge.
func (m *Matching) Pairs() [][2]string {
	out := make([][2]string, len(m.edges))
	for i, e := range m.edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

// Contains reports whether the edge with the given ID is matched.
func (m *Matching) Contains(edgeID string) bool {
	for _, e := range m.edges {
		if e.ID == edgeID {
			return true
		}
	}

	return false
}

// Free returns the vertices left exposed.
func (m *Matching) Free() []string {
	var out []string
	for _, id := range m.vertices {
		if _, ok := m.mate[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

// IsPerfect reports whether every vertex is matched.
func (m *Matching) IsPerfect() bool { return len(m.mate) == len(m.vertices) }

// Stats returns the work counters of the computation.
func (m *Matching) Stats() Stats { return m.stats }

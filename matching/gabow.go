// File: gabow.go
// Role: Compact blossom variant kept as an independent second strategy.
//
// Blossoms are never stored: base[] is rewritten for every member, and the
// parent array is re-threaded through the cycle so that alternating
// parent/mate pointers from any vertex already describe a valid path to the
// root. No expansion step is needed.

package matching

import (
	"go.uber.org/zap"
)

type gabow struct {
	ix    *index
	mate  []int
	opts  *Options
	stats *Stats

	base      []int
	parent    []int // odd vertex → even vertex it was reached from
	used      []bool
	inBlossom []bool
	mark      []int
	stamp     int
	queue     []int
}

func newGabow(ix *index, mate []int, opts *Options, stats *Stats) *gabow {
	n := ix.n()

	return &gabow{
		ix:        ix,
		mate:      mate,
		opts:      opts,
		stats:     stats,
		base:      make([]int, n),
		parent:    make([]int, n),
		used:      make([]bool, n),
		inBlossom: make([]bool, n),
		mark:      make([]int, n),
		queue:     make([]int, 0, n),
	}
}

// Gabow computes a maximum-cardinality matching of g with the compact
// parent-pointer formulation of the blossom method. It accepts the same
// options and reports the same errors as Edmonds; the matched size is
// always equal, the chosen edges may differ.
//
// Complexity: O(V·E) per phase in the worst case, O(V) memory beyond the
// index.
func Gabow(g GraphView, opts ...Option) (*Matching, error) {
	return solve(g, opts, "gabow", func(ix *index, mate []int, o *Options, st *Stats) engine {
		return newGabow(ix, mate, o, st)
	})
}

var _ Algorithm = Gabow

func (gb *gabow) search(root int) ([]int, error) {
	leaf, err := gb.grow(root)
	if err != nil || leaf == noVertex {
		return nil, err
	}

	// leaf, parent, mate(parent), parent, … up to the free root
	var path []int
	for v := leaf; ; {
		pv := gb.parent[v]
		path = append(path, v, pv)
		if gb.mate[pv] == unMatched {
			break
		}
		v = gb.mate[pv]
	}

	return path, nil
}

func (gb *gabow) augment(path []int) error {
	return flip(gb.ix, gb.mate, path, gb.opts, gb.stats)
}

// grow runs one BFS phase from root and returns the free vertex that ends an
// augmenting path, or noVertex.
func (gb *gabow) grow(root int) (int, error) {
	gb.stats.Phases++
	for i := range gb.base {
		gb.base[i] = i
		gb.parent[i] = noVertex
		gb.used[i] = false
	}
	gb.used[root] = true
	gb.queue = append(gb.queue[:0], root)

	for head := 0; head < len(gb.queue); head++ {
		if err := gb.opts.Ctx.Err(); err != nil {
			return noVertex, err
		}
		v := gb.queue[head]
		for _, to := range gb.ix.adj[v] {
			if gb.base[v] == gb.base[to] || gb.mate[v] == to {
				continue
			}
			if to == root || gb.mate[to] != unMatched && gb.parent[gb.mate[to]] != noVertex {
				gb.shrink(v, to)
				continue
			}
			if gb.parent[to] != noVertex {
				continue
			}
			gb.parent[to] = v
			if gb.mate[to] == unMatched {
				return to, nil
			}
			next := gb.mate[to]
			gb.used[next] = true
			gb.queue = append(gb.queue, next)
		}
	}

	return noVertex, nil
}

// shrink merges the odd cycle closed by the edge (v, to) into the base of
// their lowest common ancestor.
func (gb *gabow) shrink(v, to int) {
	b := gb.lca(v, to)
	for i := range gb.inBlossom {
		gb.inBlossom[i] = false
	}
	gb.markPath(v, b, to)
	gb.markPath(to, b, v)

	members := []int{b}
	for i := range gb.base {
		if !gb.inBlossom[gb.base[i]] {
			continue
		}
		gb.base[i] = b
		if i != b {
			members = append(members, i)
		}
		if !gb.used[i] {
			gb.used[i] = true
			gb.queue = append(gb.queue, i)
		}
	}
	gb.stats.Blossoms++

	gb.opts.Logger.Debug("blossom contracted",
		zap.String("base", gb.ix.ids[b]),
		zap.Int("members", len(members)),
	)
	gb.opts.OnBlossom(gb.ix.ids[b], gb.ix.names(members))
}

// lca walks from a to the root marking bases, then from b until a marked
// base is met.
func (gb *gabow) lca(a, b int) int {
	gb.stamp++
	for {
		a = gb.base[a]
		gb.mark[a] = gb.stamp
		if gb.mate[a] == unMatched {
			break
		}
		a = gb.parent[gb.mate[a]]
	}
	for {
		b = gb.base[b]
		if gb.mark[b] == gb.stamp {
			return b
		}
		b = gb.parent[gb.mate[b]]
	}
}

// markPath flags every base between v and the blossom base b and points the
// odd vertices on the way back towards child, so that the cycle can be left
// in either direction.
func (gb *gabow) markPath(v, b, child int) {
	for gb.base[v] != b {
		gb.inBlossom[gb.base[v]] = true
		gb.inBlossom[gb.base[gb.mate[v]]] = true
		gb.parent[v] = child
		child = gb.mate[v]
		v = gb.parent[gb.mate[v]]
	}
}

// File: search.go
// Role: Augmenting path search over the alternating forest, with blossom
// contraction and path lifting through contracted blossoms.
//
// The search runs over the contracted graph implicitly: every lookup goes
// through blossoms.base, and a contraction only relinks union-find sets,
// relabels odd members even and enqueues them.

package matching

import (
	"fmt"

	"go.uber.org/zap"
)

// searcher owns the phase-scoped state of one computation. It is reused
// across phases; run resets the forest and the blossom arena first.
type searcher struct {
	ix    *index
	mate  []int
	f     *forest
	bl    *blossoms
	opts  *Options
	stats *Stats
}

func newSearcher(ix *index, mate []int, opts *Options, stats *Stats) *searcher {
	return &searcher{
		ix:    ix,
		mate:  mate,
		f:     newForest(ix.n()),
		bl:    newBlossoms(ix.n()),
		opts:  opts,
		stats: stats,
	}
}

// run grows an alternating forest from roots, which must all be free.
// It returns an augmenting path as vertex indices (both ends free, matched
// edges at odd positions) or nil when the forest is exhausted.
//
// With a single root this is the per-vertex search of the driver loop.
// With every free vertex as a root it yields the Gallai–Edmonds labels used
// by Decompose.
//
// Complexity: O(E + V·B) where B is the number of blossoms formed.
func (s *searcher) run(roots []int) ([]int, error) {
	s.f.reset()
	s.bl.reset()
	s.stats.Phases++
	for _, r := range roots {
		s.f.plant(r)
	}

	for {
		u, ok := s.f.pop()
		if !ok {
			return nil, nil
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		for _, w := range s.ix.adj[u] {
			if w == s.mate[u] {
				continue
			}
			if s.bl.base(u) == s.bl.base(w) {
				continue
			}
			switch s.f.label[w] {
			case unvisited:
				if s.mate[w] == unMatched {
					return s.openPath(u, w)
				}
				s.f.grow(u, w, s.mate[w])
			case even:
				if s.f.root[u] != s.f.root[w] {
					return s.joinPath(u, w)
				}
				s.contract(u, w)
			case odd:
				// no progress through an odd vertex
			}
		}
	}
}

// contract folds the cycle closed by the even–even edge (x, y) into one
// blossom based at the nearest common base of x and y.
func (s *searcher) contract(x, y int) {
	a := s.commonBase(x, y)
	k := len(s.bl.arena)
	left := s.climb(x, a, k, 0)
	right := s.climb(y, a, k, 1)

	cycle := make([]int, 0, 1+len(left)+len(right))
	cycle = append(cycle, a)
	for i := len(left) - 1; i >= 0; i-- {
		cycle = append(cycle, left[i])
	}
	cycle = append(cycle, right...)
	s.bl.arena = append(s.bl.arena, blossom{base: a, bridge: [2]int{x, y}, cycle: cycle})
	s.stats.Blossoms++

	s.opts.Logger.Debug("blossom contracted",
		zap.String("base", s.ix.ids[a]),
		zap.Int("cycle", len(cycle)),
		zap.String("bridge_from", s.ix.ids[x]),
		zap.String("bridge_to", s.ix.ids[y]),
	)
	s.opts.OnBlossom(s.ix.ids[a], s.ix.names(cycle))
}

// climb walks from v's base up to a, merging every sub-blossom base and
// odd vertex on the way into a. Odd vertices become even, remember which
// bridge side they were reached from, and are enqueued.
// It returns the visited members bottom-up.
func (s *searcher) climb(v, a, k int, side uint8) []int {
	var members []int
	for b := s.bl.base(v); b != a; {
		o := s.f.parent[b]
		members = append(members, b, o)
		if s.f.label[o] == odd {
			s.f.label[o] = even
			s.bl.owner[o], s.bl.side[o] = k, side
			s.f.push(o)
		}
		next := s.bl.base(s.f.parent[o])
		s.bl.sets.attach(b, a)
		s.bl.sets.attach(o, a)
		b = next
	}

	return members
}

// commonBase returns the nearest common base of x and y, which must lie in
// the same tree. Both base chains are walked alternately; the first base
// seen twice is the answer.
func (s *searcher) commonBase(x, y int) int {
	s.bl.stamp++
	st := s.bl.stamp
	bx, by := s.bl.base(x), s.bl.base(y)
	for {
		if bx != noVertex {
			if s.bl.mark[bx] == st {
				return bx
			}
			s.bl.mark[bx] = st
			bx = s.parentBase(bx)
		}
		bx, by = by, bx
	}
}

// parentBase returns the base of the even vertex two tree edges above the
// base b, or noVertex at a root.
func (s *searcher) parentBase(b int) int {
	o := s.f.parent[b]
	if o == noVertex {
		return noVertex
	}

	return s.bl.base(s.f.parent[o])
}

// openPath lifts the path root(u) … u plus the edge to the free vertex w.
func (s *searcher) openPath(u, w int) ([]int, error) {
	up, err := s.pathUp(u, s.f.root[u])
	if err != nil {
		return nil, err
	}
	reverseInts(up)

	return append(up, w), nil
}

// joinPath lifts root(u) … u, w … root(w) for an even–even edge between
// two different trees.
func (s *searcher) joinPath(u, w int) ([]int, error) {
	left, err := s.pathUp(u, s.f.root[u])
	if err != nil {
		return nil, err
	}
	right, err := s.pathUp(w, s.f.root[w])
	if err != nil {
		return nil, err
	}
	reverseInts(left)

	return append(left, right...), nil
}

// pathUp returns the even-length alternating path from the even vertex v up
// to its tree ancestor w, expanded to original vertices. The first edge is
// v's matched edge.
//
// A vertex that was odd before a contraction is left through the blossom:
// v, then the cycle walked from mate(v) down to the bridge end x (the
// reversal of pathUp(x, mate(v))), across the bridge to y, and on up from y.
// That is the direction around the odd cycle with the right parity.
func (s *searcher) pathUp(v, w int) ([]int, error) {
	var out []int
	for steps := 0; v != w; steps++ {
		if steps > s.ix.n() {
			return nil, fmt.Errorf("%w: path from %q does not reach %q", ErrPreconditionViolation, s.ix.ids[v], s.ix.ids[w])
		}
		if x, y, ok := s.bl.bridgeFrom(v); ok {
			inner, err := s.pathUp(x, s.mate[v])
			if err != nil {
				return nil, err
			}
			reverseInts(inner)
			out = append(out, v)
			out = append(out, inner...)
			v = y
			continue
		}
		m := s.f.parent[v]
		if m == noVertex {
			return nil, fmt.Errorf("%w: walked past root %q towards %q", ErrPreconditionViolation, s.ix.ids[v], s.ix.ids[w])
		}
		out = append(out, v, m)
		v = s.f.parent[m]
		if v == noVertex {
			return nil, fmt.Errorf("%w: odd vertex %q has no parent", ErrPreconditionViolation, s.ix.ids[m])
		}
	}

	return append(out, w), nil
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
